package enum

import "strings"

type ChatType string

const (
	ChatTypeSingle         ChatType = "single"
	ChatTypeGroup          ChatType = "group"
	ChatTypePrivateChannel ChatType = "private_channel"
	ChatTypePublicChannel  ChatType = "public_channel"
)

// ResolveChatType derives a chat's type. A blank name counts as no name.
func ResolveChatType(name *string, memberCount int, public bool) ChatType {
	if !HasName(name) {
		if memberCount == 2 {
			return ChatTypeSingle
		}
		return ChatTypeGroup
	}
	if public {
		return ChatTypePublicChannel
	}
	return ChatTypePrivateChannel
}

func HasName(name *string) bool {
	return name != nil && strings.TrimSpace(*name) != ""
}

func (t ChatType) IsChannel() bool {
	return t == ChatTypePublicChannel || t == ChatTypePrivateChannel
}
