package services

import (
	"fmt"
	"time"

	"hotel/constants"
	"hotel/dto"
	"hotel/errors"
	"hotel/models"
	"hotel/services/logger"
	"hotel/services/notification"
)

// InventoryService é o coordenador do inventário: toda mutação passa por
// aqui para que as invariantes globais valham antes de qualquer transição
// de estado — um hóspede não pode ter reserva pendente em dois quartos
// (invariante A) nem duas reservas ativas (invariante B). As varreduras e
// o commit rodam dentro da mesma transação, sob os locks por hóspede e
// por quarto, fechando a janela de corrida entre validação e escrita.
type InventoryService struct {
	store    models.Store
	logger   logger.Logger
	locks    *entityLocks
	notifier notification.Service
}

type InventoryServiceOptions struct {
	Store    models.Store
	Logger   logger.Logger
	Notifier notification.Service
}

func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &InventoryService{
		store:    opts.Store,
		logger:   opts.Logger,
		locks:    newEntityLocks(),
		notifier: opts.Notifier,
	}
}

func (s *InventoryService) notifyRoom(event string, room *models.Room) {
	if s.notifier == nil {
		return
	}
	message := notification.NewRoomEventBuilder(event, room.ID, room.Number, string(room.Status)).Build()
	if err := s.notifier.SendMessage(message); err != nil {
		s.logger.Error("falha ao publicar evento %s do quarto %s: %v", event, room.Number, err)
	}
}

// PlaceReservation reserva o quarto para o hóspede sem iniciar a estadia
func (s *InventoryService) PlaceReservation(roomID, guestID uint) (*models.Room, error) {
	release := s.locks.Acquire(guestKey(guestID), roomKey(roomID))
	defer release()

	var reserved *models.Room
	err := s.store.WithTx(func(tx models.Store) error {
		rooms, err := tx.Rooms().FindAll()
		if err != nil {
			return err
		}
		for i := range rooms {
			r := &rooms[i]
			if r.ReservedBy != nil && *r.ReservedBy == guestID && r.ID != roomID {
				return errors.NewAppError(errors.ErrCodeDuplicateReservation,
					fmt.Sprintf("Cliente já reservou o quarto %s", r.Number), nil)
			}
		}

		active, err := tx.Reservations().FindActive()
		if err != nil {
			return err
		}
		for i := range active {
			if active[i].GuestID == guestID {
				return errors.NewAppError(errors.ErrCodeGuestAlreadyOccupying,
					fmt.Sprintf("Cliente já está hospedado no quarto %s", active[i].Room.Number), nil)
			}
		}

		room, err := tx.Rooms().FindByID(roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Quarto não encontrado", nil)
		}

		if err := room.Reserve(guestID); err != nil {
			return err
		}
		if err := tx.Rooms().Update(room); err != nil {
			return err
		}
		reserved = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("quarto %s reservado pelo hóspede %d", reserved.Number, guestID)
	s.notifyRoom("room.reserved", reserved)
	return reserved, nil
}

// PerformCheckIn inicia a estadia: transiciona o quarto para OCCUPIED e
// cria a reserva ativa, as duas escritas na mesma transação.
func (s *InventoryService) PerformCheckIn(guestID, roomID uint, daysToStay int) (*models.Reservation, error) {
	if daysToStay <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRequest,
			"Quantidade de diárias deve ser um inteiro positivo", nil)
	}

	release := s.locks.Acquire(guestKey(guestID), roomKey(roomID))
	defer release()

	var created *models.Reservation
	var checkedIn *models.Room
	err := s.store.WithTx(func(tx models.Store) error {
		active, err := tx.Reservations().FindActive()
		if err != nil {
			return err
		}
		for i := range active {
			if active[i].GuestID == guestID {
				return errors.NewAppError(errors.ErrCodeGuestAlreadyOccupying,
					fmt.Sprintf("Cliente já ocupa o quarto %s", active[i].Room.Number), nil)
			}
		}

		rooms, err := tx.Rooms().FindAll()
		if err != nil {
			return err
		}
		for i := range rooms {
			r := &rooms[i]
			if r.ReservedBy != nil && *r.ReservedBy == guestID && r.ID != roomID {
				return errors.NewAppError(errors.ErrCodeConflictingReservation,
					fmt.Sprintf("Cliente possui reserva pendente no quarto %s", r.Number), nil)
			}
		}

		guest, err := tx.Guests().FindByID(guestID)
		if err != nil {
			return err
		}
		room, err := tx.Rooms().FindByID(roomID)
		if err != nil {
			return err
		}
		if guest == nil || room == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Hóspede ou Quarto não encontrado", nil)
		}

		if err := room.CheckIn(); err != nil {
			return err
		}

		checkInDate := time.Now()
		checkOutDate := checkInDate.AddDate(0, 0, daysToStay)
		reservation, err := models.NewReservation(*guest, *room, checkInDate, checkOutDate)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Save(reservation); err != nil {
			return err
		}
		if err := tx.Rooms().Update(room); err != nil {
			return err
		}
		created = reservation
		checkedIn = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("check-in do hóspede %d no quarto %s por %d diárias", guestID, checkedIn.Number, daysToStay)
	s.notifyRoom("room.checkin", checkedIn)
	return created, nil
}

// CheckOutSummary é devolvido ao caller com o valor apurado na saída
type CheckOutSummary struct {
	RoomNumber   string
	RoomStatus   models.RoomStatus
	TotalPayable float64
}

// PerformCheckOut encerra a estadia: apura o total, desativa a reserva e
// transiciona o quarto para DIRTY.
func (s *InventoryService) PerformCheckOut(reservationID uint) (*CheckOutSummary, error) {
	// Primeira leitura fora do lock só para descobrir hóspede e quarto
	peek, err := s.store.Reservations().FindActiveByID(reservationID)
	if err != nil {
		return nil, err
	}
	if peek == nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Reserva não encontrada", nil)
	}

	release := s.locks.Acquire(guestKey(peek.GuestID), roomKey(peek.RoomID))
	defer release()

	var summary *CheckOutSummary
	var checkedOut *models.Room
	err = s.store.WithTx(func(tx models.Store) error {
		reservation, err := tx.Reservations().FindActiveByID(reservationID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Reserva não encontrada", nil)
		}

		// Total apurado antes de mexer no estado
		total := reservation.TotalPrice()

		room, err := tx.Rooms().FindByID(reservation.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Quarto não encontrado", nil)
		}

		if err := room.CheckOut(); err != nil {
			return err
		}
		reservation.Cancel()

		if err := tx.Reservations().Update(reservation); err != nil {
			return err
		}
		if err := tx.Rooms().Update(room); err != nil {
			return err
		}

		summary = &CheckOutSummary{
			RoomNumber:   room.Number,
			RoomStatus:   room.Status,
			TotalPayable: total,
		}
		checkedOut = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("check-out da reserva %d, quarto %s, total %.2f", reservationID, summary.RoomNumber, summary.TotalPayable)
	s.notifyRoom("room.checkout", checkedOut)
	return summary, nil
}

// MarkRoomClean devolve um quarto DIRTY para AVAILABLE
func (s *InventoryService) MarkRoomClean(roomID uint) (*models.Room, error) {
	release := s.locks.Acquire(roomKey(roomID))
	defer release()

	var cleaned *models.Room
	err := s.store.WithTx(func(tx models.Store) error {
		room, err := tx.Rooms().FindByID(roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Quarto não encontrado", nil)
		}
		if err := room.MarkAsClean(); err != nil {
			return err
		}
		if err := tx.Rooms().Update(room); err != nil {
			return err
		}
		cleaned = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyRoom("room.cleaned", cleaned)
	return cleaned, nil
}

// CreateRoom cadastra um quarto novo em AVAILABLE
func (s *InventoryService) CreateRoom(req dto.CreateRoomRequest) (*models.Room, error) {
	roomType := req.Type
	if roomType == "" {
		roomType = constants.RoomTypeStandard
	}

	var created *models.Room
	err := s.store.WithTx(func(tx models.Store) error {
		existing, err := tx.Rooms().FindByNumber(req.Number)
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.NewAppError(errors.ErrCodeConflict,
				fmt.Sprintf("Quarto %s já existe", req.Number), nil)
		}

		room := &models.Room{
			Number:        req.Number,
			PricePerNight: req.Price,
			Status:        models.StatusAvailable,
			Type:          roomType,
			Description:   req.Description,
		}
		if roomType == constants.RoomTypeLuxury {
			room.HasJacuzzi = req.HasJacuzzi
			room.HasOceanView = req.HasOceanView
		}

		if err := tx.Rooms().Save(room); err != nil {
			return err
		}
		created = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("quarto %s criado (%s, %.2f/diária)", created.Number, created.Type, created.PricePerNight)
	return created, nil
}

// DeleteRoom remove o quarto e, antes, todo o histórico de reservas dele
func (s *InventoryService) DeleteRoom(roomID uint) error {
	release := s.locks.Acquire(roomKey(roomID))
	defer release()

	err := s.store.WithTx(func(tx models.Store) error {
		room, err := tx.Rooms().FindByID(roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Quarto não encontrado", nil)
		}
		if err := tx.Reservations().DeleteByRoomID(roomID); err != nil {
			return err
		}
		return tx.Rooms().Delete(roomID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("quarto %d excluído com o histórico de reservas", roomID)
	return nil
}

// AddRoomPhoto anexa a URL de uma foto já hospedada ao quarto
func (s *InventoryService) AddRoomPhoto(roomID uint, url string) (*models.Room, error) {
	release := s.locks.Acquire(roomKey(roomID))
	defer release()

	var updated *models.Room
	err := s.store.WithTx(func(tx models.Store) error {
		room, err := tx.Rooms().FindByID(roomID)
		if err != nil {
			return err
		}
		if room == nil {
			return errors.NewAppError(errors.ErrCodeNotFound, "Quarto não encontrado", nil)
		}
		room.Photos = append(room.Photos, url)
		if err := tx.Rooms().Update(room); err != nil {
			return err
		}
		updated = room
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListRooms devolve os resumos de todos os quartos
func (s *InventoryService) ListRooms() ([]dto.RoomSummary, error) {
	rooms, err := s.store.Rooms().FindAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.RoomSummary, 0, len(rooms))
	for i := range rooms {
		summaries = append(summaries, roomSummary(&rooms[i]))
	}
	return summaries, nil
}

// ListActiveReservations devolve as estadias em andamento
func (s *InventoryService) ListActiveReservations() ([]dto.ReservationSummary, error) {
	reservations, err := s.store.Reservations().FindActive()
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.ReservationSummary, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		summaries = append(summaries, dto.ReservationSummary{
			ID:         r.ID,
			GuestName:  r.Guest.Name,
			RoomNumber: r.Room.Number,
			CheckIn:    r.CheckInDate,
			CheckOut:   r.CheckOutDate,
			Total:      r.TotalPrice(),
		})
	}
	return summaries, nil
}

// ListGuests devolve o diretório de hóspedes
func (s *InventoryService) ListGuests() ([]models.Guest, error) {
	return s.store.Guests().FindAll()
}

// SeedRooms cria o inventário inicial, pulando números já cadastrados
func (s *InventoryService) SeedRooms() error {
	seeds := []dto.CreateRoomRequest{
		{Number: "101", Price: 100, Type: constants.RoomTypeStandard},
		{Number: "102", Price: 100, Type: constants.RoomTypeStandard},
		{Number: "103", Price: 100, Type: constants.RoomTypeStandard},
		{Number: "201", Price: 300, Type: constants.RoomTypeLuxury, HasJacuzzi: true, HasOceanView: true},
		{Number: "202", Price: 250, Type: constants.RoomTypeLuxury, HasJacuzzi: true},
	}
	for _, seed := range seeds {
		if _, err := s.CreateRoom(seed); err != nil {
			if errors.HasCode(err, errors.ErrCodeConflict) {
				continue
			}
			return err
		}
	}
	return nil
}

func roomSummary(room *models.Room) dto.RoomSummary {
	return dto.RoomSummary{
		ID:          room.ID,
		Number:      room.Number,
		Price:       room.PricePerNight,
		Status:      string(room.Status),
		Description: room.GetDescription(),
		Type:        room.Type,
		ReservedBy:  room.ReservedBy,
		Photos:      room.Photos,
	}
}
