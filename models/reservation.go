package models

import (
	"math"
	"time"

	"hotel/errors"
)

const nightDuration = 24 * time.Hour

type Reservation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	GuestID     uint      `json:"guestId"`
	Guest       Guest     `json:"guest" gorm:"foreignKey:GuestID"`
	RoomID      uint      `json:"roomId"`
	Room        Room      `json:"room" gorm:"foreignKey:RoomID"`
	CheckInDate time.Time `json:"checkInDate"`
	// CheckOutDate é exclusiva: a diária termina antes dela.
	CheckOutDate time.Time `json:"checkOutDate"`
	// PricePerNight é congelado no momento da criação; mudanças
	// posteriores no preço do quarto não alteram reservas antigas.
	PricePerNight float64   `json:"pricePerNight"`
	Active        bool      `json:"active" gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// NewReservation valida o intervalo de datas e congela o preço da diária
func NewReservation(guest Guest, room Room, checkIn, checkOut time.Time) (*Reservation, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDateRange,
			"Data de check-out deve ser posterior ao check-in", nil)
	}
	return &Reservation{
		GuestID:       guest.ID,
		Guest:         guest,
		RoomID:        room.ID,
		Room:          room,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		PricePerNight: room.PricePerNight,
		Active:        true,
	}, nil
}

// TotalNights retorna o número de diárias, arredondando frações para cima
func (r *Reservation) TotalNights() int {
	diff := r.CheckOutDate.Sub(r.CheckInDate)
	if diff < 0 {
		diff = -diff
	}
	nights := int(math.Ceil(float64(diff) / float64(nightDuration)))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// TotalPrice retorna diárias x preço congelado na criação
func (r *Reservation) TotalPrice() float64 {
	return float64(r.TotalNights()) * r.PricePerNight
}

// Cancel desativa a reserva; chamadas repetidas são inofensivas
func (r *Reservation) Cancel() {
	r.Active = false
}
