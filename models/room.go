package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"hotel/constants"
	"hotel/errors"
)

// RoomStatus representa o estado do quarto no ciclo de vida
type RoomStatus string

const (
	StatusAvailable   RoomStatus = "AVAILABLE"
	StatusOccupied    RoomStatus = "OCCUPIED"
	StatusDirty       RoomStatus = "DIRTY"
	StatusReserved    RoomStatus = "RESERVED"
	StatusMaintenance RoomStatus = "MAINTENANCE"
)

// Valid verifica se o status é um dos cinco estados conhecidos
func (s RoomStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusDirty, StatusReserved, StatusMaintenance:
		return true
	}
	return false
}

type Room struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Number        string         `json:"number" gorm:"uniqueIndex"`
	PricePerNight float64        `json:"pricePerNight"`
	Status        RoomStatus     `json:"status" gorm:"type:varchar(16);default:AVAILABLE"`
	Type          string         `json:"type" gorm:"type:varchar(16);default:STANDARD"`
	HasJacuzzi    bool           `json:"hasJacuzzi"`
	HasOceanView  bool           `json:"hasOceanView"`
	Description   string         `json:"description"`
	Photos        pq.StringArray `json:"photos" gorm:"type:text[]"`
	// ReservedBy aponta para o hóspede com reserva pendente; só é
	// preenchido enquanto o status for RESERVED.
	ReservedBy *uint     `json:"reservedBy"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BaseName monta o nome do quarto de acordo com a variante
func (r *Room) BaseName() string {
	if r.Type == constants.RoomTypeLuxury {
		var extras []string
		if r.HasJacuzzi {
			extras = append(extras, "com Jacuzzi")
		}
		if r.HasOceanView {
			extras = append(extras, "e Vista para o Mar")
		}
		if len(extras) > 0 {
			return fmt.Sprintf("Suíte Luxo #%s %s", r.Number, strings.Join(extras, " "))
		}
		return fmt.Sprintf("Suíte Luxo #%s", r.Number)
	}
	return fmt.Sprintf("Quarto Standard #%s", r.Number)
}

// GetDescription concatena o nome base com a descrição livre
func (r *Room) GetDescription() string {
	if r.Description != "" {
		return fmt.Sprintf("%s - %s", r.BaseName(), r.Description)
	}
	return r.BaseName()
}

// Reserve coloca o quarto em RESERVED para o hóspede informado.
// Só é permitido a partir de AVAILABLE.
func (r *Room) Reserve(guestID uint) error {
	if r.Status != StatusAvailable {
		return errors.NewAppError(errors.ErrCodeInvalidStateTransition,
			fmt.Sprintf("O quarto %s não está disponível para reserva (status atual: %s)", r.Number, r.Status), nil)
	}
	r.Status = StatusReserved
	r.ReservedBy = &guestID
	return nil
}

// CheckIn coloca o quarto em OCCUPIED e limpa a reserva pendente.
// Permitido a partir de AVAILABLE ou RESERVED.
func (r *Room) CheckIn() error {
	if r.Status != StatusAvailable && r.Status != StatusReserved {
		return errors.NewAppError(errors.ErrCodeInvalidStateTransition,
			fmt.Sprintf("O quarto %s não está pronto para check-in (status atual: %s)", r.Number, r.Status), nil)
	}
	r.Status = StatusOccupied
	r.ReservedBy = nil
	return nil
}

// CheckOut coloca o quarto em DIRTY. Só é permitido a partir de OCCUPIED.
func (r *Room) CheckOut() error {
	if r.Status != StatusOccupied {
		return errors.NewAppError(errors.ErrCodeInvalidStateTransition,
			fmt.Sprintf("O quarto %s não está ocupado (status atual: %s)", r.Number, r.Status), nil)
	}
	r.Status = StatusDirty
	r.ReservedBy = nil
	return nil
}

// MarkAsClean devolve o quarto DIRTY para AVAILABLE.
func (r *Room) MarkAsClean() error {
	if r.Status != StatusDirty {
		return errors.NewAppError(errors.ErrCodeInvalidStateTransition,
			fmt.Sprintf("O quarto %s não precisa de limpeza (status atual: %s)", r.Number, r.Status), nil)
	}
	r.Status = StatusAvailable
	return nil
}
