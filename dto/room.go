package dto

// CreateRoomRequest é o corpo de criação de quarto
type CreateRoomRequest struct {
	Number       string  `json:"number" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Type         string  `json:"type" validate:"omitempty,oneof=STANDARD LUXURY"`
	Description  string  `json:"description"`
	HasJacuzzi   bool    `json:"hasJacuzzi"`
	HasOceanView bool    `json:"hasOceanView"`
}

// ReserveRoomRequest é o corpo de reserva de quarto
type ReserveRoomRequest struct {
	GuestID uint `json:"guestId" validate:"required"`
}

// RoomSummary é a visão de quarto devolvida nas listagens
type RoomSummary struct {
	ID          uint     `json:"id"`
	Number      string   `json:"number"`
	Price       float64  `json:"price"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	ReservedBy  *uint    `json:"reservedBy"`
	Photos      []string `json:"photos,omitempty"`
}
