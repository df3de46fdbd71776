package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifica a categoria do erro de negócio
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"

	// Inventory errors
	ErrCodeNotFound               ErrorCode = "NOT_FOUND"
	ErrCodeInvalidStateTransition ErrorCode = "INVALID_STATE_TRANSITION"
	ErrCodeInvalidDateRange       ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"
	ErrCodeDuplicateReservation   ErrorCode = "DUPLICATE_RESERVATION"
	ErrCodeGuestAlreadyOccupying  ErrorCode = "GUEST_ALREADY_OCCUPYING"
	ErrCodeConflictingReservation ErrorCode = "CONFLICTING_RESERVATION"
	ErrCodeConflict               ErrorCode = "CONFLICT"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carrega o código de negócio junto com a mensagem
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError cria um novo AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError verifica se o erro é um AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extrai o AppError do erro, se houver
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode verifica se o erro carrega o código informado
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrUserAlreadyExists = errors.New("usuário já existe")
	ErrInvalidPassword   = errors.New("senha inválida")
	ErrUnauthorized      = errors.New("não autorizado")

	ErrRoomNotFound        = errors.New("quarto não encontrado")
	ErrGuestNotFound       = errors.New("hóspede não encontrado")
	ErrReservationNotFound = errors.New("reserva não encontrada")
	ErrRoomNumberTaken     = errors.New("número de quarto já existe")
)
