package services

import (
	"fmt"
	"testing"

	"backend/entity"
	"backend/repository"

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

type testEnv struct {
	db     *gorm.DB
	orders *OrderService
	stock  *StockService
	sales  *SaleService
	bus    *NotificationService

	waiter  entity.User
	table   entity.Table
	padThai entity.MenuItem
	icedTea entity.MenuItem
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testDB(t)

	env := &testEnv{db: db}

	env.waiter = entity.User{Email: "waiter@test.local", Role: entity.RoleWaiter}
	if err := db.Create(&env.waiter).Error; err != nil {
		t.Fatalf("seed waiter: %v", err)
	}
	env.table = entity.Table{Number: 1, Status: entity.TableAvailable}
	if err := db.Create(&env.table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	env.padThai = entity.MenuItem{ItemName: "Pad Thai", Price: 100, Stock: 10}
	env.icedTea = entity.MenuItem{ItemName: "Thai Iced Tea", Price: 35, Stock: 5,
		Modifiers: []string{"Less Sweet"}}
	if err := db.Create(&env.padThai).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	if err := db.Create(&env.icedTea).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	tableRepo := repository.NewTableRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	notifyRepo := repository.NewNotificationRepository(db)

	env.bus = NewNotificationService(notifyRepo, "", nil, nil)
	env.orders = NewOrderService(db, orderRepo, tableRepo, menuRepo, env.bus)
	env.stock = NewStockService(menuRepo)
	env.sales = NewSaleService(db, orderRepo, menuRepo, env.stock)
	return env
}

func (env *testEnv) logOfType(t *testing.T, typ string) []entity.Notification {
	t.Helper()
	var out []entity.Notification
	if err := env.db.Where("type = ?", typ).Find(&out).Error; err != nil {
		t.Fatalf("read notification log: %v", err)
	}
	return out
}

func (env *testEnv) orderStatus(t *testing.T, id string) string {
	t.Helper()
	var o entity.Order
	if err := env.db.First(&o, "id = ?", id).Error; err != nil {
		t.Fatalf("load order %s: %v", id, err)
	}
	return o.Status
}

func (env *testEnv) stockOf(t *testing.T, id string) int {
	t.Helper()
	var m entity.MenuItem
	if err := env.db.First(&m, "id = ?", id).Error; err != nil {
		t.Fatalf("load menu item %s: %v", id, err)
	}
	return m.Stock
}
