package ws

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ฐานข้อมูล in-memory แยกต่อ test (cache=shared กัน pool แยก DB กันเอง)
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type countAlerter struct{ rings int }

func (a *countAlerter) Ring() { a.rings++ }

func TestAlertFor(t *testing.T) {
	readyForCashier := entity.Notification{
		Type: entity.NotifyOrderReady, TargetRole: entity.RoleCashier,
	}

	tests := []struct {
		role string
		want bool
	}{
		{entity.RoleCashier, true},
		{entity.RoleChef, false},
		{entity.RoleWaiter, false},
		{entity.RoleAdmin, false}, // admin เห็น event แต่ไม่ใช่เป้า ไม่ต้องดัง
		{"", false},
	}
	for _, tc := range tests {
		if got := alertFor(tc.role, readyForCashier); got != tc.want {
			t.Errorf("alertFor(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

// view ต่อเข้ามาหลัง event ผ่านไปแล้ว — ตอนต่อต้อง reconcile เก็บ entry
// ที่พลาด เตือนหนึ่งครั้ง แล้วส่ง backlog เป็นข้อความแรก
func TestHandleWebSocketReconcilesOnConnect(t *testing.T) {
	db := testDB(t)
	notifyRepo := repository.NewNotificationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// entry ลง log ก่อน bus ตัวนี้เกิด
	missed := entity.Notification{
		Type: entity.NotifyOrderReady, Message: "order ready", TargetRole: entity.RoleCashier,
	}
	if err := notifyRepo.Append(&missed); err != nil {
		t.Fatalf("append: %v", err)
	}

	alerter := &countAlerter{}
	bus := services.NewNotificationService(notifyRepo, entity.RoleCashier, alerter, nil)
	orders := services.NewOrderService(db, orderRepo, tableRepo, menuRepo, bus)

	hub := NewNotifyHub(orders, bus)
	bus.SetSink(hub)
	go hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/views", func(c *gin.Context) {
		c.Set("role", entity.RoleCashier)
		hub.HandleWebSocket(c)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/views?view=orders"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env Envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Kind != "backlog" {
		t.Fatalf("first message kind = %q, want backlog", env.Kind)
	}
	if list, ok := env.Data.([]any); !ok || len(list) != 1 {
		t.Errorf("backlog entries = %v, want 1", env.Data)
	}

	recent := bus.Recent()
	if len(recent) != 1 || recent[0].ID != missed.ID {
		t.Fatalf("recent after connect = %+v, want the missed entry", recent)
	}
	if alerter.rings != 1 {
		t.Errorf("rings = %d, want 1", alerter.rings)
	}
}
