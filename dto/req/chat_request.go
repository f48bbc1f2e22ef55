package req

// ChatRequest is the body of both create and update. Membership rules are
// checked by the chat usecase, the tags only reject malformed ids.
type ChatRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=64"`
	Members []int64 `json:"members" validate:"dive,gt=0"`
	Public  bool    `json:"public"`
}
