package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workspace-chat-app/entity"
)

func TestUserHandler(t *testing.T) {
	t.Run("me", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.users.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)

		response, body := s.do(t, http.MethodGet, "/api/me", owner, nil)

		req.Equal(http.StatusOK, response.StatusCode)
		data := body["data"].(map[string]interface{})
		req.Equal("Luffy", data["fullName"])
		req.Equal(float64(1), data["wsId"])
	})

	t.Run("users of the caller's workspace", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.workspaces.EXPECT().ListUsers(gomock.Any(), int64(1)).Return([]entity.Identity{owner, member}, nil)

		response, body := s.do(t, http.MethodGet, "/api/users", member, nil)

		req.Equal(http.StatusOK, response.StatusCode)
		req.Len(body["data"], 2)
	})

	t.Run("workspace", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.workspaces.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&entity.Workspace{BaseEntity: entity.BaseEntity{ID: 1}, Name: "acme", OwnerID: owner.ID}, nil)

		response, body := s.do(t, http.MethodGet, "/api/workspace", member, nil)

		req.Equal(http.StatusOK, response.StatusCode)
		data := body["data"].(map[string]interface{})
		req.Equal("acme", data["name"])
		req.Equal(float64(1), data["ownerId"])
	})
}
