package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response é o envelope padrão das respostas
type Response struct {
	Code int         `json:"code"`
	Mess string      `json:"mess"`
	Data interface{} `json:"data,omitempty"`
}

// Success devolve uma resposta de sucesso
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Sucesso",
		Data: data,
	})
}

// Created devolve 201 com os dados criados
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Sucesso",
		Data: data,
	})
}

// BadRequest devolve uma rejeição de regra de negócio ou entrada inválida
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError devolve erro de validação
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Unauthorized devolve falta de autenticação
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Não autenticado",
	})
}

// Forbidden devolve falta de permissão
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Acesso negado",
	})
}

// NotFound devolve recurso inexistente
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Não encontrado"
	}
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict devolve conflito de dados (409)
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Conflito de dados"
	}
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError devolve erro interno
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Erro no servidor",
	})
}
