package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workspace-chat-app/apperror"
	payload "workspace-chat-app/dto/req"
	"workspace-chat-app/entity"
)

func TestAuthHandler_Signup(t *testing.T) {
	signup := payload.SignupRequest{Workspace: "acme", FullName: "Luffy", Email: "luffy@acme.org", Password: "hunter42"}

	t.Run("created with token", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.auth.EXPECT().Signup(gomock.Any(), &signup).Return(owner, "signed-token", nil)

		response, body := s.do(t, http.MethodPost, "/api/signup", entity.Identity{}, signup)

		req.Equal(http.StatusCreated, response.StatusCode)
		data := body["data"].(map[string]interface{})
		req.Equal("signed-token", data["token"])
		user := data["user"].(map[string]interface{})
		req.Equal("luffy@acme.org", user["email"])
		req.NotContains(user, "password")
		req.NotContains(user, "passwordHash")
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.auth.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(entity.Identity{}, "", apperror.ErrEmailAlreadyExists)

		response, body := s.do(t, http.MethodPost, "/api/signup", entity.Identity{}, signup)

		req.Equal(http.StatusConflict, response.StatusCode)
		req.Equal("email_already_exists", body["code"])
	})
}

func TestAuthHandler_Signin(t *testing.T) {
	t.Run("token on success", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.auth.EXPECT().Signin(gomock.Any(), &payload.SigninRequest{Email: "luffy@acme.org", Password: "hunter42"}).Return("signed-token", nil)

		response, body := s.do(t, http.MethodPost, "/api/signin", entity.Identity{}, map[string]string{"email": "luffy@acme.org", "password": "hunter42"})

		req.Equal(http.StatusOK, response.StatusCode)
		req.Equal("signed-token", body["data"].(map[string]interface{})["token"])
	})

	t.Run("generic rejection", func(t *testing.T) {
		req := require.New(t)
		s := newTestServer(t)
		s.auth.EXPECT().Signin(gomock.Any(), gomock.Any()).Return("", apperror.ErrInvalidCredentials)

		response, body := s.do(t, http.MethodPost, "/api/signin", entity.Identity{}, map[string]string{"email": "nami@acme.org", "password": "x"})

		req.Equal(http.StatusForbidden, response.StatusCode)
		req.Equal("invalid_credentials", body["code"])
	})
}
