package entity

// UnownedWorkspace is the owner id of a workspace nobody has claimed yet.
const UnownedWorkspace int64 = 0

type Workspace struct {
	BaseEntity
	Name    string `json:"name" gorm:"type:varchar(32);uniqueIndex:idx_workspace_name;not null"`
	OwnerID int64  `json:"ownerId" gorm:"not null;default:0"`
}

func (w *Workspace) IsOwned() bool {
	return w.OwnerID != UnownedWorkspace
}
