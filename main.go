package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel/config"
	"hotel/jobs"
	"hotel/models"
	"hotel/repositories"
	"hotel/routes"
	"hotel/services"
	"hotel/services/logger"
	"hotel/services/notification"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(&models.Room{}, &models.Guest{}, &models.Reservation{}, &models.User{}); err != nil {
		panic("Falha ao migrar tabelas: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: não foi possível carregar o .env, usando variáveis do sistema: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Falha ao inicializar a aplicação: %v", err)
	}

	migrateTables()

	store := repositories.NewGormStore(config.DB)
	inventoryService := services.NewInventoryService(services.InventoryServiceOptions{
		Store:    store,
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})

	jobs.SetInventoryReporter(services.NewInventoryReportAdapter(inventoryService, config.RedisClient))

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Falha ao inicializar cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, store, config.RedisClient, config.Cloudinary, m, inventoryService)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Servidor iniciando na porta " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Falha ao iniciar o servidor: %v", err)
	}
}
