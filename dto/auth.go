package dto

// RegisterInput é o cadastro de funcionário
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// GuestRegisterInput é o auto-cadastro de hóspede
type GuestRegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Document string `json:"document" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput é o corpo de login (funcionário ou hóspede)
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginInput carrega o ID token emitido pelo Google
type GoogleLoginInput struct {
	TokenID string `json:"tokenId" validate:"required"`
}

// LoginResponse devolve o token e a identidade autenticada
type LoginResponse struct {
	Token string `json:"token"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Role  int    `json:"role"`
}
