package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/repository"
	"backend/routes"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedStaff(); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	notifyRepo := repository.NewNotificationRepository(db)

	// Notification Bus — ตัว server เองไม่ใช่ view ของ role ไหน เสียงเตือนไปดังฝั่ง view
	bus := services.NewNotificationService(notifyRepo, "", services.NopAlerter{}, nil)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, menuRepo, bus)
	stockSvc := services.NewStockService(menuRepo)
	saleSvc := services.NewSaleService(db, orderRepo, menuRepo, stockSvc)

	// WS hub กระจาย notification + refresh push ให้ทุก view ที่เปิดอยู่
	hub := ws.NewNotifyHub(orderSvc, bus)
	bus.SetSink(hub)
	go hub.Run()

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Register API routes
	routes.RegisterRoutes(r, db, cfg, hub, orderSvc, saleSvc, bus)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 POS server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
