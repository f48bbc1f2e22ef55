package req

const (
	DefaultMessageLimit = 10
	MaxMessageLimit     = 100
)

type MessageRequest struct {
	Content string `json:"content" validate:"required,max=4096"`
}

type ListMessagesQuery struct {
	LastID int64 `query:"last_id" validate:"gte=0"`
	Limit  int   `query:"limit" validate:"gte=0"`
}

// PageSize clamps Limit into 1..MaxMessageLimit, using the default for zero.
func (q ListMessagesQuery) PageSize() int {
	switch {
	case q.Limit <= 0:
		return DefaultMessageLimit
	case q.Limit > MaxMessageLimit:
		return MaxMessageLimit
	default:
		return q.Limit
	}
}
