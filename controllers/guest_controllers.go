package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel/response"
	"hotel/services"
)

type GuestController struct {
	svc *services.InventoryService
}

func NewGuestController(svc *services.InventoryService) *GuestController {
	return &GuestController{svc: svc}
}

// GetAllGuests lista os hóspedes cadastrados
func (gc *GuestController) GetAllGuests(c *gin.Context) {
	guests, err := gc.svc.ListGuests()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, guests)
}
