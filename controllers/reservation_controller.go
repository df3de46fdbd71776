package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotel/dto"
	"hotel/response"
	"hotel/services"
	"hotel/utils"
	"hotel/validator"
)

type ReservationController struct {
	svc   *services.InventoryService
	redis *redis.Client
}

func NewReservationController(svc *services.InventoryService, redisCli *redis.Client) *ReservationController {
	return &ReservationController{
		svc:   svc,
		redis: redisCli,
	}
}

func (rc *ReservationController) invalidateRoomsCache(c *gin.Context) {
	if rc.redis == nil {
		return
	}
	if err := services.DeleteFromRedis(c.Request.Context(), rc.redis, services.RoomsCacheKey); err != nil {
		utils.LogError("falha ao invalidar cache de quartos: %v", err)
	}
}

// CheckIn inicia a estadia do hóspede no quarto
func (rc *ReservationController) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateCheckIn(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	reservation, err := rc.svc.PerformCheckIn(req.GuestID, req.RoomID, req.DaysToStay)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	response.Success(c, gin.H{
		"message":     "Check-in realizado com sucesso!",
		"reservation": reservation,
	})
}

// CheckOut encerra a estadia e devolve o total a pagar
func (rc *ReservationController) CheckOut(c *gin.Context) {
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReservationID == 0 {
		response.BadRequest(c, "reservationId é obrigatório")
		return
	}

	summary, err := rc.svc.PerformCheckOut(req.ReservationID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	response.Success(c, dto.CheckOutResponse{
		Message:      "Check-out realizado.",
		RoomNumber:   summary.RoomNumber,
		Status:       string(summary.RoomStatus),
		TotalPayable: summary.TotalPayable,
	})
}

// GetActiveReservations lista as estadias em andamento
func (rc *ReservationController) GetActiveReservations(c *gin.Context) {
	reservations, err := rc.svc.ListActiveReservations()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Success(c, reservations)
}
