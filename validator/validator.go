package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"hotel/constants"
	"hotel/dto"
	"hotel/errors"
)

var validate = validator.New()

var roomNumberRegex = regexp.MustCompile(`^[0-9]{1,5}[A-Za-z]?$`)

// ValidateCreateRoom valida o cadastro de quarto
func ValidateCreateRoom(req *dto.CreateRoomRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Número e preço positivo são obrigatórios", err)
	}
	if !roomNumberRegex.MatchString(req.Number) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Número de quarto inválido", nil)
	}
	if req.Type != "" && req.Type != constants.RoomTypeStandard && req.Type != constants.RoomTypeLuxury {
		return errors.NewAppError(errors.ErrCodeValidation, "Tipo de quarto deve ser STANDARD ou LUXURY", nil)
	}
	return nil
}

// ValidateCheckIn valida o corpo do check-in; diárias não positivas são
// rejeitadas antes de chegar ao coordenador
func ValidateCheckIn(req *dto.CheckInRequest) error {
	if err := validate.Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "guestId, roomId e daysToStay são obrigatórios", err)
	}
	if req.DaysToStay <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidRequest, "Quantidade de diárias deve ser um inteiro positivo", nil)
	}
	return nil
}

// ValidateRegister valida o cadastro de funcionário
func ValidateRegister(input *dto.RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Nome, email válido e senha de no mínimo 6 caracteres são obrigatórios", err)
	}
	return nil
}

// ValidateGuestRegister valida o auto-cadastro de hóspede
func ValidateGuestRegister(input *dto.GuestRegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Nome, email válido, documento e senha de no mínimo 6 caracteres são obrigatórios", err)
	}
	return nil
}

// ValidateLogin valida o corpo de login
func ValidateLogin(input *dto.LoginInput) error {
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Email e senha são obrigatórios", err)
	}
	return nil
}
