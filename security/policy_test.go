package security

import (
	"testing"

	"github.com/stretchr/testify/require"

	"workspace-chat-app/apperror"
	"workspace-chat-app/entity"
	"workspace-chat-app/enum"
)

func chatIn(workspaceID int64, chatType enum.ChatType, members ...int64) *entity.Chat {
	chat := &entity.Chat{WorkspaceID: workspaceID, Type: chatType, Members: entity.NewChatMembers(members)}
	chat.ID = 1
	return chat
}

func workspace(id, ownerID int64) *entity.Workspace {
	ws := &entity.Workspace{Name: "acme", OwnerID: ownerID}
	ws.ID = id
	return ws
}

func TestCanUpdateChat(t *testing.T) {
	req := require.New(t)
	chat := chatIn(1, enum.ChatTypeSingle, 1, 2)

	req.NoError(CanUpdateChat(entity.Identity{ID: 5, WorkspaceID: 1}, chat))
	req.ErrorIs(CanUpdateChat(entity.Identity{ID: 10, WorkspaceID: 2}, chat), apperror.ErrCrossWorkspaceDenied)
	req.ErrorIs(CanUpdateChat(entity.Identity{ID: 5, WorkspaceID: 1}, nil), apperror.ErrNotFound)
}

func TestCanDeleteChat(t *testing.T) {
	chat := chatIn(1, enum.ChatTypePublicChannel, 1, 2, 3)

	tests := []struct {
		description string
		actor       entity.Identity
		workspace   *entity.Workspace
		want        error
	}{
		{"owner may delete", entity.Identity{ID: 1, WorkspaceID: 1}, workspace(1, 1), nil},
		{"member who is not owner", entity.Identity{ID: 2, WorkspaceID: 1}, workspace(1, 1), apperror.ErrNotWorkspaceOwner},
		{"user of another workspace", entity.Identity{ID: 10, WorkspaceID: 2}, workspace(1, 1), apperror.ErrNotWorkspaceOwner},
		{"unowned workspace", entity.Identity{ID: 1, WorkspaceID: 1}, workspace(1, entity.UnownedWorkspace), apperror.ErrNotWorkspaceOwner},
		{"workspace missing", entity.Identity{ID: 1, WorkspaceID: 1}, nil, apperror.ErrWorkspaceMissing},
		{"workspace of another chat", entity.Identity{ID: 1, WorkspaceID: 1}, workspace(2, 1), apperror.ErrWorkspaceMissing},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			err := CanDeleteChat(tt.actor, chat, tt.workspace)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCanViewChatHidesOtherWorkspaces(t *testing.T) {
	req := require.New(t)
	chat := chatIn(1, enum.ChatTypeGroup, 1, 2, 3)

	req.NoError(CanViewChat(entity.Identity{ID: 4, WorkspaceID: 1}, chat))
	req.ErrorIs(CanViewChat(entity.Identity{ID: 4, WorkspaceID: 2}, chat), apperror.ErrNotFound)
}

func TestMessagePermissions(t *testing.T) {
	req := require.New(t)
	private := chatIn(1, enum.ChatTypePrivateChannel, 1, 2)
	public := chatIn(1, enum.ChatTypePublicChannel, 1, 2)
	member := entity.Identity{ID: 1, WorkspaceID: 1}
	outsider := entity.Identity{ID: 3, WorkspaceID: 1}
	foreigner := entity.Identity{ID: 9, WorkspaceID: 2}

	req.NoError(CanPostMessage(member, private))
	req.ErrorIs(CanPostMessage(outsider, public), apperror.ErrNotChatMember)
	req.ErrorIs(CanPostMessage(foreigner, public), apperror.ErrNotFound)

	req.NoError(CanReadMessages(member, private))
	req.NoError(CanReadMessages(outsider, public))
	req.ErrorIs(CanReadMessages(outsider, private), apperror.ErrNotChatMember)
	req.ErrorIs(CanReadMessages(foreigner, public), apperror.ErrNotFound)
}
