package config

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"hotel/jobs"
)

var RedisClient *redis.Client

// InitApp monta o router com CORS, conecta os componentes externos e
// devolve o websocket e o scheduler prontos para uso
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("falha ao inicializar componentes: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

func initComponents() error {
	if err := LoadEnv(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do sistema")
	}

	ConnectDB()

	if err := ConnectCloudinary(); err != nil {
		return fmt.Errorf("falha ao inicializar o Cloudinary: %v", err)
	}

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		return fmt.Errorf("falha ao conectar com o Redis: %v", err)
	}

	log.Println("Componentes inicializados")
	return nil
}

func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	if err := jobs.InitCronJobs(c, m); err != nil {
		return fmt.Errorf("falha ao agendar cron jobs: %v", err)
	}
	return nil
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket inicializado")
}
