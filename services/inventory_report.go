package services

import (
	"context"
	"fmt"
	"time"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"

	"hotel/models"
)

// InventoryReportAdapter liga o coordenador ao job noturno: reconstrói o
// cache da listagem de quartos e publica o resumo de ocupação no websocket.
type InventoryReportAdapter struct {
	svc *InventoryService
	rdb *redis.Client
}

func NewInventoryReportAdapter(svc *InventoryService, rdb *redis.Client) *InventoryReportAdapter {
	return &InventoryReportAdapter{
		svc: svc,
		rdb: rdb,
	}
}

func (a *InventoryReportAdapter) RefreshAndReport(m *melody.Melody) error {
	summaries, err := a.svc.ListRooms()
	if err != nil {
		return err
	}

	if a.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := SetToRedis(ctx, a.rdb, RoomsCacheKey, summaries, time.Hour); err != nil {
			a.svc.logger.Error("falha ao reconstruir cache de quartos: %v", err)
		}
	}

	counts := map[string]int{}
	for _, room := range summaries {
		counts[room.Status]++
	}
	message := fmt.Sprintf("Ocupação: %d ocupados, %d reservados, %d disponíveis, %d aguardando limpeza",
		counts[string(models.StatusOccupied)],
		counts[string(models.StatusReserved)],
		counts[string(models.StatusAvailable)],
		counts[string(models.StatusDirty)])

	if m != nil {
		if err := m.Broadcast([]byte(message)); err != nil {
			return err
		}
	}
	a.svc.logger.Info("resumo diário publicado: %s", message)
	return nil
}
