package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InventoryReporter define o trabalho noturno sobre o inventário
type InventoryReporter interface {
	RefreshAndReport(m *melody.Melody) error
}

var inventoryReporter InventoryReporter

// SetInventoryReporter registra a implementação usada pelos jobs
func SetInventoryReporter(reporter InventoryReporter) {
	inventoryReporter = reporter
}

// InitCronJobs agenda os jobs e inicia o scheduler
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Resumo de ocupação e cache de quartos às 3h da manhã
	_, err := c.AddFunc("0 3 * * *", func() {
		if inventoryReporter == nil {
			log.Println("InventoryReporter não registrado, pulando job de ocupação")
			return
		}
		if err := inventoryReporter.RefreshAndReport(m); err != nil {
			log.Printf("Erro no job de ocupação: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
