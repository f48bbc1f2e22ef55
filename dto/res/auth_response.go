package res

import "workspace-chat-app/entity"

type AuthResponse struct {
	Token string `json:"token"`
}

type SignupResponse struct {
	Token string          `json:"token"`
	User  entity.Identity `json:"user"`
}
