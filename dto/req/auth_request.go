package req

type SignupRequest struct {
	Workspace string `json:"workspace" validate:"required,max=32"`
	FullName  string `json:"fullname" validate:"required,max=64"`
	Email     string `json:"email" validate:"required,email,max=64"`
	Password  string `json:"password" validate:"required,min=6,max=128"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
