package notification

import (
	"encoding/json"
	"fmt"

	"github.com/olahol/melody"
)

// Service publica eventos para os painéis da recepção
type Service interface {
	SendMessage(message string) error
}

// MelodyService implementa Service sobre o websocket
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// RoomEventBuilder monta a mensagem de mudança de estado de um quarto
type RoomEventBuilder struct {
	event  string
	roomID uint
	number string
	status string
}

func NewRoomEventBuilder(event string, roomID uint, number, status string) *RoomEventBuilder {
	return &RoomEventBuilder{
		event:  event,
		roomID: roomID,
		number: number,
		status: status,
	}
}

func (b *RoomEventBuilder) Build() string {
	payload, err := json.Marshal(map[string]interface{}{
		"event":  b.event,
		"roomId": b.roomID,
		"number": b.number,
		"status": b.status,
	})
	if err != nil {
		return fmt.Sprintf(`{"event":%q,"number":%q}`, b.event, b.number)
	}
	return string(payload)
}
