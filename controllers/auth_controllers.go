package controllers

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"hotel/constants"
	"hotel/dto"
	"hotel/models"
	"hotel/response"
	"hotel/services"
	"hotel/utils"
	"hotel/validator"
)

// tokenExpiryMinutes é a validade do token de acesso (8 horas)
const tokenExpiryMinutes = 8 * 60

type AuthController struct {
	store models.Store
}

func NewAuthController(store models.Store) *AuthController {
	return &AuthController{store: store}
}

// Register cadastra um funcionário da recepção
func (ac *AuthController) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateRegister(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	input.Email = strings.ToLower(input.Email)
	existing, err := ac.store.Users().FindByEmail(input.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if existing != nil {
		response.Conflict(c, "Email já cadastrado")
		return
	}

	hash, err := services.HashPassword(input.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
		Role:     constants.RoleStaff,
	}
	if err := ac.store.Users().Save(user); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Recepcionista cadastrado com sucesso."})
}

// Login autentica um funcionário e emite o token
func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateLogin(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	input.Email = strings.ToLower(input.Email)
	user, err := ac.store.Users().FindByEmail(input.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if user == nil || !services.ComparePassword(user.Password, input.Password) {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, tokenExpiryMinutes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Role:  user.Role,
	})
}

// RegisterGuest cria a conta de hóspede
func (ac *AuthController) RegisterGuest(c *gin.Context) {
	var input dto.GuestRegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateGuestRegister(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	input.Email = strings.ToLower(input.Email)
	existing, err := ac.store.Guests().FindByEmail(input.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if existing != nil {
		response.Conflict(c, "Email já cadastrado")
		return
	}

	hash, err := services.HashPassword(input.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	guest := &models.Guest{
		Name:     input.Name,
		Email:    input.Email,
		Document: input.Document,
		Password: hash,
	}
	if err := ac.store.Guests().Save(guest); err != nil {
		handleServiceError(c, err)
		return
	}

	// Melhor esforço: a falha do email não desfaz o cadastro
	if err := services.SendWelcomeEmail(guest.Email, guest.Name); err != nil {
		utils.LogError("falha ao enviar email de boas-vindas para %s: %v", guest.Email, err)
	}

	response.Created(c, gin.H{"message": "Conta criada com sucesso!"})
}

// LoginGuest autentica um hóspede e emite o token
func (ac *AuthController) LoginGuest(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateLogin(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	input.Email = strings.ToLower(input.Email)
	guest, err := ac.store.Guests().FindByEmail(input.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if guest == nil || !services.ComparePassword(guest.Password, input.Password) {
		response.BadRequest(c, "Email ou senha incorretos.")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: guest.ID, Role: constants.RoleGuest}, tokenExpiryMinutes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		ID:    guest.ID,
		Name:  guest.Name,
		Role:  constants.RoleGuest,
	})
}

// GoogleLogin autentica o hóspede com um ID token do Google, criando a
// conta na primeira entrada
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.TokenID == "" {
		response.BadRequest(c, "tokenId é obrigatório")
		return
	}

	payload, err := verifyGoogleIDToken(c.Request.Context(), input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		response.BadRequest(c, "Token do Google sem email")
		return
	}
	email = strings.ToLower(email)

	guest, err := ac.store.Guests().FindByEmail(email)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if guest == nil {
		guest = &models.Guest{
			Name:     name,
			Email:    email,
			Document: "google:" + payload.Subject,
		}
		if err := ac.store.Guests().Save(guest); err != nil {
			handleServiceError(c, err)
			return
		}
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: guest.ID, Role: constants.RoleGuest}, tokenExpiryMinutes)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		ID:    guest.ID,
		Name:  guest.Name,
		Role:  constants.RoleGuest,
	})
}

// verifyGoogleIDToken valida o ID token contra o client ID configurado
func verifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(ctx, tokenID, clientID)
}
