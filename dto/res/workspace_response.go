package res

import (
	"time"

	"workspace-chat-app/entity"
)

type WorkspaceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewWorkspaceResponse(workspace *entity.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        workspace.ID,
		Name:      workspace.Name,
		OwnerID:   workspace.OwnerID,
		CreatedAt: workspace.CreatedAt,
	}
}
