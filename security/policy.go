package security

import (
	"workspace-chat-app/apperror"
	"workspace-chat-app/entity"
	"workspace-chat-app/enum"
)

// The functions below decide whether an authenticated user may act on a
// chat. They take already loaded records and never touch the store.

// CanViewChat hides chats of other workspaces behind NotFound so foreign
// chat ids cannot be probed.
func CanViewChat(actor entity.Identity, chat *entity.Chat) error {
	if chat == nil || actor.WorkspaceID != chat.WorkspaceID {
		return apperror.ErrNotFound
	}
	return nil
}

func CanUpdateChat(actor entity.Identity, chat *entity.Chat) error {
	if chat == nil {
		return apperror.ErrNotFound
	}
	if actor.WorkspaceID != chat.WorkspaceID {
		return apperror.Detail(apperror.ErrCrossWorkspaceDenied, "can not update the chat which is in another workspace")
	}
	return nil
}

// CanDeleteChat requires workspace to be the record chat.WorkspaceID points
// at, or nil when that lookup found nothing.
func CanDeleteChat(actor entity.Identity, chat *entity.Chat, workspace *entity.Workspace) error {
	if chat == nil {
		return apperror.ErrNotFound
	}
	if workspace == nil || workspace.ID != chat.WorkspaceID {
		return apperror.ErrWorkspaceMissing
	}
	if !workspace.IsOwned() || workspace.OwnerID != actor.ID {
		return apperror.ErrNotWorkspaceOwner
	}
	return nil
}

func CanPostMessage(actor entity.Identity, chat *entity.Chat) error {
	if err := CanViewChat(actor, chat); err != nil {
		return err
	}
	if !chat.HasMember(actor.ID) {
		return apperror.ErrNotChatMember
	}
	return nil
}

// CanReadMessages lets any workspace user read a public channel; every other
// chat is readable by its members only.
func CanReadMessages(actor entity.Identity, chat *entity.Chat) error {
	if err := CanViewChat(actor, chat); err != nil {
		return err
	}
	if chat.Type == enum.ChatTypePublicChannel || chat.HasMember(actor.ID) {
		return nil
	}
	return apperror.ErrNotChatMember
}
