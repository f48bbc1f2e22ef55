package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveChatType(t *testing.T) {
	name := "pub"
	blank := "   "

	tests := []struct {
		description string
		name        *string
		members     int
		public      bool
		want        ChatType
	}{
		{"two members without name is single", nil, 2, false, ChatTypeSingle},
		{"public flag ignored without name", nil, 2, true, ChatTypeSingle},
		{"three members without name is group", nil, 3, false, ChatTypeGroup},
		{"eight members without name is group", nil, 8, true, ChatTypeGroup},
		{"blank name counts as absent", &blank, 2, true, ChatTypeSingle},
		{"named public is public channel", &name, 2, true, ChatTypePublicChannel},
		{"named private is private channel", &name, 2, false, ChatTypePrivateChannel},
		{"large named public", &name, 20, true, ChatTypePublicChannel},
		{"large named private", &name, 20, false, ChatTypePrivateChannel},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveChatType(tt.name, tt.members, tt.public))
		})
	}
}

func TestChatTypeIsChannel(t *testing.T) {
	req := require.New(t)
	req.True(ChatTypePublicChannel.IsChannel())
	req.True(ChatTypePrivateChannel.IsChannel())
	req.False(ChatTypeSingle.IsChannel())
	req.False(ChatTypeGroup.IsChannel())
}
