package entity

// User is the persistence record. PasswordHash never leaves the repository
// and usecase layers; everything facing outward goes through Identity.
type User struct {
	BaseEntity
	WorkspaceID  int64  `json:"workspaceId" gorm:"not null;index"`
	FullName     string `json:"fullName" gorm:"type:varchar(64);not null"`
	Email        string `json:"email" gorm:"type:varchar(64);uniqueIndex:idx_user_email;not null"`
	PasswordHash string `json:"-" gorm:"type:varchar(97);not null"`

	Workspace Workspace `json:"-" gorm:"foreignKey:WorkspaceID;references:ID"`
}

func (u *User) Identity() Identity {
	return Identity{
		ID:          u.ID,
		WorkspaceID: u.WorkspaceID,
		FullName:    u.FullName,
		Email:       u.Email,
	}
}

// Identity is the public snapshot of a user carried in tokens and bound to
// authenticated requests.
type Identity struct {
	ID          int64  `json:"id"`
	WorkspaceID int64  `json:"wsId"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
}
