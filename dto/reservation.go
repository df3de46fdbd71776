package dto

import "time"

// CheckInRequest é o corpo do check-in
type CheckInRequest struct {
	GuestID    uint `json:"guestId" validate:"required"`
	RoomID     uint `json:"roomId" validate:"required"`
	DaysToStay int  `json:"daysToStay" validate:"required"`
}

// CheckOutRequest é o corpo do check-out
type CheckOutRequest struct {
	ReservationID uint `json:"reservationId" validate:"required"`
}

// ReservationSummary é a visão de reserva ativa devolvida na listagem
type ReservationSummary struct {
	ID         uint      `json:"id"`
	GuestName  string    `json:"guestName"`
	RoomNumber string    `json:"roomNumber"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Total      float64   `json:"total"`
}

// CheckOutResponse devolve o valor a pagar e o novo estado do quarto
type CheckOutResponse struct {
	Message      string  `json:"message"`
	RoomNumber   string  `json:"roomNumber"`
	Status       string  `json:"status"`
	TotalPayable float64 `json:"totalPayable"`
}
