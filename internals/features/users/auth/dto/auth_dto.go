package dto

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"` // email atau user_name
	Password   string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	UserID   string     `json:"user_id"`
	UserName string     `json:"user_name"`
	Email    string     `json:"email"`
	Tokens   AuthTokens `json:"tokens"`
}
