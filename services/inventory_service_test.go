package services

import (
	"strings"
	"sync"
	"testing"

	"hotel/constants"
	"hotel/dto"
	"hotel/errors"
	"hotel/models"
	"hotel/repositories"
)

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) SendMessage(message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
	return nil
}

func newTestService(t *testing.T) (*InventoryService, *repositories.MemoryStore, *fakeNotifier) {
	t.Helper()
	store := repositories.NewMemoryStore()
	notifier := &fakeNotifier{}
	svc := NewInventoryService(InventoryServiceOptions{
		Store:    store,
		Notifier: notifier,
	})
	return svc, store, notifier
}

func createGuest(t *testing.T, store models.Store, name string) *models.Guest {
	t.Helper()
	guest := &models.Guest{Name: name, Email: strings.ToLower(name) + "@exemplo.com", Document: name + "-doc"}
	if err := store.Guests().Save(guest); err != nil {
		t.Fatalf("Save(guest) error = %v", err)
	}
	return guest
}

func createRoom(t *testing.T, svc *InventoryService, number string, price float64) *models.Room {
	t.Helper()
	room, err := svc.CreateRoom(dto.CreateRoomRequest{Number: number, Price: price, Type: constants.RoomTypeStandard})
	if err != nil {
		t.Fatalf("CreateRoom(%s) error = %v", number, err)
	}
	return room
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	svc, _, _ := newTestService(t)
	createRoom(t, svc, "101", 100)

	_, err := svc.CreateRoom(dto.CreateRoomRequest{Number: "101", Price: 200, Type: constants.RoomTypeStandard})
	if !errors.HasCode(err, errors.ErrCodeConflict) {
		t.Errorf("CreateRoom com número repetido: err = %v, want CONFLICT", err)
	}
}

func TestCreateRoomIgnoresLuxuryFlagsForStandard(t *testing.T) {
	svc, _, _ := newTestService(t)
	room, err := svc.CreateRoom(dto.CreateRoomRequest{
		Number:       "105",
		Price:        100,
		Type:         constants.RoomTypeStandard,
		HasJacuzzi:   true,
		HasOceanView: true,
	})
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	if room.HasJacuzzi || room.HasOceanView {
		t.Errorf("quarto standard com extras de luxo: jacuzzi=%v, vista=%v", room.HasJacuzzi, room.HasOceanView)
	}
}

func TestPlaceReservation(t *testing.T) {
	svc, store, notifier := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	reserved, err := svc.PlaceReservation(room.ID, guest.ID)
	if err != nil {
		t.Fatalf("PlaceReservation() error = %v", err)
	}
	if reserved.Status != models.StatusReserved {
		t.Errorf("Status = %v, want %v", reserved.Status, models.StatusReserved)
	}
	if reserved.ReservedBy == nil || *reserved.ReservedBy != guest.ID {
		t.Errorf("ReservedBy = %v, want %d", reserved.ReservedBy, guest.ID)
	}

	if len(notifier.messages) != 1 || !strings.Contains(notifier.messages[0], "room.reserved") {
		t.Errorf("mensagens publicadas = %v, want evento room.reserved", notifier.messages)
	}
}

func TestPlaceReservationRoomNotFound(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")

	_, err := svc.PlaceReservation(99, guest.ID)
	if !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("PlaceReservation(quarto inexistente): err = %v, want NOT_FOUND", err)
	}
}

func TestPlaceReservationDuplicate(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	roomA := createRoom(t, svc, "101", 100)
	roomB := createRoom(t, svc, "102", 100)

	if _, err := svc.PlaceReservation(roomA.ID, guest.ID); err != nil {
		t.Fatalf("PlaceReservation(101) error = %v", err)
	}

	// Invariante: um hóspede não pode segurar reserva pendente em dois quartos
	_, err := svc.PlaceReservation(roomB.ID, guest.ID)
	if !errors.HasCode(err, errors.ErrCodeDuplicateReservation) {
		t.Fatalf("PlaceReservation(102) err = %v, want DUPLICATE_RESERVATION", err)
	}
	if appErr := errors.GetAppError(err); !strings.Contains(appErr.Message, "101") {
		t.Errorf("mensagem = %q, want menção ao quarto 101", appErr.Message)
	}

	// O segundo quarto permanece intocado
	rooms, _ := svc.ListRooms()
	for _, r := range rooms {
		if r.Number == "102" && r.Status != string(models.StatusAvailable) {
			t.Errorf("quarto 102 alterado: status = %s, want AVAILABLE", r.Status)
		}
	}
}

func TestPlaceReservationWhileOccupying(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	roomA := createRoom(t, svc, "101", 100)
	roomB := createRoom(t, svc, "102", 100)

	if _, err := svc.PerformCheckIn(guest.ID, roomA.ID, 2); err != nil {
		t.Fatalf("PerformCheckIn() error = %v", err)
	}

	_, err := svc.PlaceReservation(roomB.ID, guest.ID)
	if !errors.HasCode(err, errors.ErrCodeGuestAlreadyOccupying) {
		t.Errorf("PlaceReservation durante estadia: err = %v, want GUEST_ALREADY_OCCUPYING", err)
	}
}

func TestPerformCheckIn(t *testing.T) {
	svc, store, notifier := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	reservation, err := svc.PerformCheckIn(guest.ID, room.ID, 3)
	if err != nil {
		t.Fatalf("PerformCheckIn() error = %v", err)
	}
	if !reservation.Active {
		t.Error("Active = false, want true")
	}
	if got := reservation.TotalNights(); got != 3 {
		t.Errorf("TotalNights() = %d, want 3", got)
	}
	if got := reservation.TotalPrice(); got != 300 {
		t.Errorf("TotalPrice() = %.2f, want 300.00", got)
	}

	updated, _ := store.Rooms().FindByID(room.ID)
	if updated.Status != models.StatusOccupied {
		t.Errorf("Status do quarto = %v, want %v", updated.Status, models.StatusOccupied)
	}

	found := false
	for _, msg := range notifier.messages {
		if strings.Contains(msg, "room.checkin") {
			found = true
		}
	}
	if !found {
		t.Errorf("mensagens publicadas = %v, want evento room.checkin", notifier.messages)
	}
}

func TestPerformCheckInFromReservedRoom(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	if _, err := svc.PlaceReservation(room.ID, guest.ID); err != nil {
		t.Fatalf("PlaceReservation() error = %v", err)
	}

	// Check-in no próprio quarto reservado consome a reserva pendente
	if _, err := svc.PerformCheckIn(guest.ID, room.ID, 2); err != nil {
		t.Fatalf("PerformCheckIn() error = %v", err)
	}

	updated, _ := store.Rooms().FindByID(room.ID)
	if updated.Status != models.StatusOccupied {
		t.Errorf("Status = %v, want %v", updated.Status, models.StatusOccupied)
	}
	if updated.ReservedBy != nil {
		t.Errorf("ReservedBy = %v, want nil após o check-in", updated.ReservedBy)
	}
}

func TestPerformCheckInWithPendingReservationElsewhere(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	roomA := createRoom(t, svc, "101", 100)
	roomB := createRoom(t, svc, "102", 100)

	if _, err := svc.PlaceReservation(roomA.ID, guest.ID); err != nil {
		t.Fatalf("PlaceReservation() error = %v", err)
	}

	_, err := svc.PerformCheckIn(guest.ID, roomB.ID, 2)
	if !errors.HasCode(err, errors.ErrCodeConflictingReservation) {
		t.Fatalf("PerformCheckIn em outro quarto: err = %v, want CONFLICTING_RESERVATION", err)
	}
	if appErr := errors.GetAppError(err); !strings.Contains(appErr.Message, "101") {
		t.Errorf("mensagem = %q, want menção ao quarto 101", appErr.Message)
	}
}

func TestPerformCheckInWhileAlreadyOccupying(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	roomA := createRoom(t, svc, "101", 100)
	roomB := createRoom(t, svc, "102", 100)

	if _, err := svc.PerformCheckIn(guest.ID, roomA.ID, 2); err != nil {
		t.Fatalf("PerformCheckIn(101) error = %v", err)
	}

	_, err := svc.PerformCheckIn(guest.ID, roomB.ID, 2)
	if !errors.HasCode(err, errors.ErrCodeGuestAlreadyOccupying) {
		t.Fatalf("segundo check-in: err = %v, want GUEST_ALREADY_OCCUPYING", err)
	}
	if appErr := errors.GetAppError(err); !strings.Contains(appErr.Message, "101") {
		t.Errorf("mensagem = %q, want menção ao quarto 101", appErr.Message)
	}
}

func TestPerformCheckInValidation(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	for _, days := range []int{0, -3} {
		_, err := svc.PerformCheckIn(guest.ID, room.ID, days)
		if !errors.HasCode(err, errors.ErrCodeInvalidRequest) {
			t.Errorf("PerformCheckIn(days=%d): err = %v, want INVALID_REQUEST", days, err)
		}
	}

	if _, err := svc.PerformCheckIn(99, room.ID, 2); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("PerformCheckIn(hóspede inexistente): err = %v, want NOT_FOUND", err)
	}
	if _, err := svc.PerformCheckIn(guest.ID, 99, 2); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("PerformCheckIn(quarto inexistente): err = %v, want NOT_FOUND", err)
	}
}

func TestPerformCheckOut(t *testing.T) {
	svc, store, notifier := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	reservation, err := svc.PerformCheckIn(guest.ID, room.ID, 3)
	if err != nil {
		t.Fatalf("PerformCheckIn() error = %v", err)
	}

	summary, err := svc.PerformCheckOut(reservation.ID)
	if err != nil {
		t.Fatalf("PerformCheckOut() error = %v", err)
	}
	if summary.TotalPayable != 300 {
		t.Errorf("TotalPayable = %.2f, want 300.00", summary.TotalPayable)
	}
	if summary.RoomNumber != "101" {
		t.Errorf("RoomNumber = %q, want %q", summary.RoomNumber, "101")
	}
	if summary.RoomStatus != models.StatusDirty {
		t.Errorf("RoomStatus = %v, want %v", summary.RoomStatus, models.StatusDirty)
	}

	active, _ := store.Reservations().FindActive()
	if len(active) != 0 {
		t.Errorf("reservas ativas após check-out = %d, want 0", len(active))
	}

	// Check-out repetido da mesma reserva
	if _, err := svc.PerformCheckOut(reservation.ID); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("segundo check-out: err = %v, want NOT_FOUND", err)
	}

	found := false
	for _, msg := range notifier.messages {
		if strings.Contains(msg, "room.checkout") {
			found = true
		}
	}
	if !found {
		t.Errorf("mensagens publicadas = %v, want evento room.checkout", notifier.messages)
	}
}

func TestPerformCheckOutUnknownReservation(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.PerformCheckOut(42); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("PerformCheckOut(42): err = %v, want NOT_FOUND", err)
	}
}

func TestMarkRoomClean(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	reservation, err := svc.PerformCheckIn(guest.ID, room.ID, 1)
	if err != nil {
		t.Fatalf("PerformCheckIn() error = %v", err)
	}
	if _, err := svc.PerformCheckOut(reservation.ID); err != nil {
		t.Fatalf("PerformCheckOut() error = %v", err)
	}

	cleaned, err := svc.MarkRoomClean(room.ID)
	if err != nil {
		t.Fatalf("MarkRoomClean() error = %v", err)
	}
	if cleaned.Status != models.StatusAvailable {
		t.Errorf("Status = %v, want %v", cleaned.Status, models.StatusAvailable)
	}

	// Limpar um quarto que não está sujo
	if _, err := svc.MarkRoomClean(room.ID); !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
		t.Errorf("MarkRoomClean em AVAILABLE: err = %v, want INVALID_STATE_TRANSITION", err)
	}

	if _, err := svc.MarkRoomClean(99); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("MarkRoomClean(99): err = %v, want NOT_FOUND", err)
	}
}

func TestDeleteRoomCascades(t *testing.T) {
	svc, store, _ := newTestService(t)
	guest := createGuest(t, store, "Ana")
	room := createRoom(t, svc, "101", 100)

	reservation, err := svc.PerformCheckIn(guest.ID, room.ID, 2)
	if err != nil {
		t.Fatalf("PerformCheckIn() error = %v", err)
	}

	if err := svc.DeleteRoom(room.ID); err != nil {
		t.Fatalf("DeleteRoom() error = %v", err)
	}

	if got, _ := store.Rooms().FindByID(room.ID); got != nil {
		t.Errorf("quarto ainda existe após exclusão: %+v", got)
	}
	if got, _ := store.Reservations().FindActiveByID(reservation.ID); got != nil {
		t.Errorf("reserva sobreviveu à exclusão do quarto: %+v", got)
	}

	if err := svc.DeleteRoom(room.ID); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("DeleteRoom repetido: err = %v, want NOT_FOUND", err)
	}
}

func TestListActiveReservations(t *testing.T) {
	svc, store, _ := newTestService(t)
	ana := createGuest(t, store, "Ana")
	bia := createGuest(t, store, "Bia")
	roomA := createRoom(t, svc, "101", 100)
	roomB := createRoom(t, svc, "202", 250)

	if _, err := svc.PerformCheckIn(ana.ID, roomA.ID, 2); err != nil {
		t.Fatalf("PerformCheckIn(Ana) error = %v", err)
	}
	if _, err := svc.PerformCheckIn(bia.ID, roomB.ID, 4); err != nil {
		t.Fatalf("PerformCheckIn(Bia) error = %v", err)
	}

	summaries, err := svc.ListActiveReservations()
	if err != nil {
		t.Fatalf("ListActiveReservations() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].GuestName != "Ana" || summaries[0].RoomNumber != "101" || summaries[0].Total != 200 {
		t.Errorf("summaries[0] = %+v, want Ana no 101 com total 200", summaries[0])
	}
	if summaries[1].GuestName != "Bia" || summaries[1].RoomNumber != "202" || summaries[1].Total != 1000 {
		t.Errorf("summaries[1] = %+v, want Bia no 202 com total 1000", summaries[1])
	}
}

func TestSeedRoomsIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.SeedRooms(); err != nil {
		t.Fatalf("SeedRooms() error = %v", err)
	}
	if err := svc.SeedRooms(); err != nil {
		t.Fatalf("SeedRooms() repetido error = %v", err)
	}

	rooms, err := svc.ListRooms()
	if err != nil {
		t.Fatalf("ListRooms() error = %v", err)
	}
	if len(rooms) != 5 {
		t.Fatalf("len(rooms) = %d, want 5", len(rooms))
	}

	byNumber := make(map[string]dto.RoomSummary, len(rooms))
	for _, r := range rooms {
		byNumber[r.Number] = r
	}
	if r := byNumber["201"]; r.Price != 300 || r.Type != constants.RoomTypeLuxury {
		t.Errorf("quarto 201 = %+v, want suíte luxo a 300", r)
	}
	if r := byNumber["101"]; r.Price != 100 || r.Type != constants.RoomTypeStandard {
		t.Errorf("quarto 101 = %+v, want standard a 100", r)
	}
}

func TestAddRoomPhoto(t *testing.T) {
	svc, _, _ := newTestService(t)
	room := createRoom(t, svc, "101", 100)

	updated, err := svc.AddRoomPhoto(room.ID, "https://cdn.exemplo.com/quarto-101.jpg")
	if err != nil {
		t.Fatalf("AddRoomPhoto() error = %v", err)
	}
	if len(updated.Photos) != 1 || updated.Photos[0] != "https://cdn.exemplo.com/quarto-101.jpg" {
		t.Errorf("Photos = %v, want a URL anexada", updated.Photos)
	}

	if _, err := svc.AddRoomPhoto(99, "https://cdn.exemplo.com/x.jpg"); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Errorf("AddRoomPhoto(99): err = %v, want NOT_FOUND", err)
	}
}

func TestConcurrentReservationsSingleWinner(t *testing.T) {
	svc, store, _ := newTestService(t)
	room := createRoom(t, svc, "101", 100)

	const attempts = 8
	guests := make([]*models.Guest, attempts)
	for i := range guests {
		guests[i] = createGuest(t, store, "Guest"+string(rune('A'+i)))
	}

	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.PlaceReservation(room.ID, guests[i].ID)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else if !errors.HasCode(err, errors.ErrCodeInvalidStateTransition) {
			t.Errorf("erro inesperado na disputa: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("vencedores = %d, want exatamente 1", wins)
	}

	final, _ := store.Rooms().FindByID(room.ID)
	if final.Status != models.StatusReserved {
		t.Errorf("Status final = %v, want %v", final.Status, models.StatusReserved)
	}
}
