package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotifyHub,
	orderSvc *services.OrderService, saleSvc *services.SaleService, bus *services.NotificationService,
) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories ฝั่งอ่านอย่างเดียว
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	orderCtrl := controllers.NewOrderController(orderSvc)
	saleCtrl := controllers.NewSaleController(saleSvc)
	menuCtrl := controllers.NewMenuController(menuRepo)
	tableCtrl := controllers.NewTableController(tableRepo)
	notifyCtrl := controllers.NewNotificationController(bus)

	secret := cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// ทุก role ที่ล็อกอินแล้ว อ่าน list ได้
	staff := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		staff.GET("/menu", menuCtrl.List)
		staff.GET("/tables", tableCtrl.List)
		staff.GET("/orders", orderCtrl.List)
		staff.GET("/orders/:id", orderCtrl.Detail)
		staff.GET("/orders/:id/receipt", orderCtrl.Receipt)
		staff.GET("/notifications", notifyCtrl.List)

		// เปลี่ยนสถานะ — permission matrix จริงอยู่ใน services/order_transitions.go
		staff.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// เปิด order บนโต๊ะ (waiter/cashier/admin)
	r.POST("/orders", middlewares.AuthMiddleware(secret,
		entity.RoleWaiter, entity.RoleCashier, entity.RoleAdmin), orderCtrl.Create)

	// แคชเชียร์
	cashier := r.Group("/", middlewares.AuthMiddleware(secret, entity.RoleCashier, entity.RoleAdmin))
	{
		cashier.POST("/orders/:id/payments", orderCtrl.CreatePayment)
		cashier.POST("/pos/sales", saleCtrl.Create)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		admin.POST("/menu", menuCtrl.Create)
		admin.PATCH("/menu/:id/stock", menuCtrl.PutStock)
		admin.PATCH("/tables/:id/status", tableCtrl.PutStatus)
		admin.DELETE("/notifications", notifyCtrl.Clear)
	}

	// WebSocket: notification delivery + refresh push ต่อ view
	r.GET("/ws/views", middlewares.WSAuthMiddleware(secret), hub.HandleWebSocket)
}
