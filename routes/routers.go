package routes

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"

	"hotel/constants"
	"hotel/controllers"
	middlewares "hotel/middleware"
	"hotel/models"
	"hotel/services"
)

// SetupRoutes registra as rotas da API sobre o store e os clientes já
// conectados. redisCli, cld e m podem ser nil em ambientes sem esses serviços.
func SetupRoutes(router *gin.Engine, store models.Store, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody, svc *services.InventoryService) {

	roomController := controllers.NewRoomController(svc, redisCli, cld)
	reservationController := controllers.NewReservationController(svc, redisCli)
	authController := controllers.NewAuthController(store)
	guestController := controllers.NewGuestController(svc)

	staff := middlewares.AuthMiddleware(constants.RoleStaff, constants.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/guest/register", authController.RegisterGuest)
	v1.POST("/auth/guest/login", authController.LoginGuest)
	v1.POST("/auth/google", authController.GoogleLogin)

	v1.GET("/rooms", roomController.GetAllRooms)
	v1.GET("/rooms/search", roomController.SearchRooms)
	v1.POST("/rooms/seed", roomController.SeedRooms)
	v1.POST("/rooms", staff, roomController.CreateRoom)
	v1.DELETE("/rooms/:id", staff, roomController.DeleteRoom)
	v1.PATCH("/rooms/:id/clean", staff, roomController.MarkRoomClean)
	v1.PATCH("/rooms/:id/reserve", staff, roomController.ReserveRoom)
	v1.POST("/rooms/:id/photo", staff, roomController.UploadRoomPhoto)

	v1.POST("/checkin", staff, reservationController.CheckIn)
	v1.POST("/checkout", staff, reservationController.CheckOut)
	v1.GET("/reservations", staff, reservationController.GetActiveReservations)

	v1.GET("/guests", staff, guestController.GetAllGuests)

	if m != nil {
		v1.GET("/ws", func(c *gin.Context) {
			m.HandleRequest(c.Writer, c.Request)
		})
	}
}
