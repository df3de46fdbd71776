package models

import (
	"strings"
	"testing"

	"hotel/constants"
	"hotel/errors"
)

func TestRoomStatusValid(t *testing.T) {
	valid := []RoomStatus{StatusAvailable, StatusOccupied, StatusDirty, StatusReserved, StatusMaintenance}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	if RoomStatus("CLOSED").Valid() {
		t.Error(`Valid("CLOSED") = true, want false`)
	}
}

func TestRoomReserve(t *testing.T) {
	room := &Room{Number: "101", Status: StatusAvailable}

	if err := room.Reserve(5); err != nil {
		t.Fatalf("Reserve() error = %v, want nil", err)
	}
	if room.Status != StatusReserved {
		t.Errorf("Status = %v, want %v", room.Status, StatusReserved)
	}
	if room.ReservedBy == nil || *room.ReservedBy != 5 {
		t.Errorf("ReservedBy = %v, want 5", room.ReservedBy)
	}

	// Reservar de novo deve falhar
	err := room.Reserve(6)
	if !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
		t.Errorf("Reserve() em RESERVED: err = %v, want INVALID_STATE_TRANSITION", err)
	}
	if *room.ReservedBy != 5 {
		t.Errorf("ReservedBy alterado em transição inválida: %d", *room.ReservedBy)
	}
}

func TestRoomReserveFromInvalidStates(t *testing.T) {
	for _, status := range []RoomStatus{StatusOccupied, StatusDirty, StatusMaintenance} {
		room := &Room{Number: "101", Status: status}
		err := room.Reserve(1)
		if !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
			t.Errorf("Reserve() a partir de %s: err = %v, want INVALID_STATE_TRANSITION", status, err)
		}
		if room.Status != status {
			t.Errorf("Status mudou em transição inválida: %s -> %s", status, room.Status)
		}
	}
}

func TestRoomCheckIn(t *testing.T) {
	// A partir de AVAILABLE
	room := &Room{Number: "101", Status: StatusAvailable}
	if err := room.CheckIn(); err != nil {
		t.Fatalf("CheckIn() error = %v, want nil", err)
	}
	if room.Status != StatusOccupied {
		t.Errorf("Status = %v, want %v", room.Status, StatusOccupied)
	}

	// A partir de RESERVED, limpando ReservedBy
	guestID := uint(7)
	room = &Room{Number: "102", Status: StatusReserved, ReservedBy: &guestID}
	if err := room.CheckIn(); err != nil {
		t.Fatalf("CheckIn() error = %v, want nil", err)
	}
	if room.ReservedBy != nil {
		t.Errorf("ReservedBy = %v, want nil após check-in", room.ReservedBy)
	}

	// Estados inválidos
	for _, status := range []RoomStatus{StatusOccupied, StatusDirty, StatusMaintenance} {
		room := &Room{Number: "103", Status: status}
		err := room.CheckIn()
		if !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
			t.Errorf("CheckIn() a partir de %s: err = %v, want INVALID_STATE_TRANSITION", status, err)
		}
	}
}

func TestRoomCheckOut(t *testing.T) {
	room := &Room{Number: "101", Status: StatusOccupied}
	if err := room.CheckOut(); err != nil {
		t.Fatalf("CheckOut() error = %v, want nil", err)
	}
	if room.Status != StatusDirty {
		t.Errorf("Status = %v, want %v", room.Status, StatusDirty)
	}

	for _, status := range []RoomStatus{StatusAvailable, StatusDirty, StatusReserved, StatusMaintenance} {
		room := &Room{Number: "102", Status: status}
		err := room.CheckOut()
		if !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
			t.Errorf("CheckOut() a partir de %s: err = %v, want INVALID_STATE_TRANSITION", status, err)
		}
	}
}

func TestRoomMarkAsClean(t *testing.T) {
	room := &Room{Number: "101", Status: StatusDirty}
	if err := room.MarkAsClean(); err != nil {
		t.Fatalf("MarkAsClean() error = %v, want nil", err)
	}
	if room.Status != StatusAvailable {
		t.Errorf("Status = %v, want %v", room.Status, StatusAvailable)
	}

	for _, status := range []RoomStatus{StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance} {
		room := &Room{Number: "102", Status: status}
		err := room.MarkAsClean()
		if !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
			t.Errorf("MarkAsClean() a partir de %s: err = %v, want INVALID_STATE_TRANSITION", status, err)
		}
	}
}

func TestRoomLifecycle(t *testing.T) {
	room := &Room{Number: "201", Status: StatusAvailable}

	if err := room.Reserve(3); err != nil {
		t.Fatalf("Reserve() error = %v", err)
	}
	if err := room.CheckIn(); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if err := room.CheckOut(); err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}
	if err := room.MarkAsClean(); err != nil {
		t.Fatalf("MarkAsClean() error = %v", err)
	}
	if room.Status != StatusAvailable {
		t.Errorf("Status final = %v, want %v", room.Status, StatusAvailable)
	}
	if room.ReservedBy != nil {
		t.Errorf("ReservedBy = %v, want nil ao fim do ciclo", room.ReservedBy)
	}
}

func TestRoomBaseName(t *testing.T) {
	standard := &Room{Number: "101", Type: constants.RoomTypeStandard}
	if got := standard.BaseName(); got != "Quarto Standard #101" {
		t.Errorf("BaseName() = %q, want %q", got, "Quarto Standard #101")
	}

	luxury := &Room{Number: "201", Type: constants.RoomTypeLuxury, HasJacuzzi: true, HasOceanView: true}
	if got := luxury.BaseName(); got != "Suíte Luxo #201 com Jacuzzi e Vista para o Mar" {
		t.Errorf("BaseName() = %q, want suíte com jacuzzi e vista", got)
	}

	plainLuxury := &Room{Number: "202", Type: constants.RoomTypeLuxury}
	if got := plainLuxury.BaseName(); got != "Suíte Luxo #202" {
		t.Errorf("BaseName() = %q, want %q", got, "Suíte Luxo #202")
	}
}

func TestRoomGetDescription(t *testing.T) {
	room := &Room{Number: "101", Type: constants.RoomTypeStandard, Description: "vista para o jardim"}
	got := room.GetDescription()
	if !strings.Contains(got, "Quarto Standard #101") || !strings.Contains(got, "vista para o jardim") {
		t.Errorf("GetDescription() = %q, want nome base e descrição", got)
	}

	bare := &Room{Number: "102", Type: constants.RoomTypeStandard}
	if got := bare.GetDescription(); got != "Quarto Standard #102" {
		t.Errorf("GetDescription() sem descrição = %q, want nome base", got)
	}
}
