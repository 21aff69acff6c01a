package services

import (
	"errors"
	"math"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// อัตราคงที่ระดับประเทศ
const (
	TaxRate           = 0.16
	ServiceChargeRate = 0.05
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Tables *repository.TableRepository
	Menus  *repository.MenuRepository
	Bus    *NotificationService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tables *repository.TableRepository,
	menus *repository.MenuRepository,
	bus *NotificationService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, Tables: tables, Menus: menus, Bus: bus}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID string   `json:"menuItemId"`
	Qty        int      `json:"qty"`
	Modifiers  []string `json:"modifiers"`
}

type CreateOrderReq struct {
	TableID  string        `json:"tableId"`
	Items    []OrderItemIn `json:"items"`
	Discount float64       `json:"discount"`
}

type CreateOrderRes struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Total         float64 `json:"total"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"serviceCharge"`
	Discount      float64 `json:"discount"`
	FinalTotal    float64 `json:"finalTotal"`
}

// ----- Create -----

// Create เปิด order บนโต๊ะ: คิดยอดเงิน, เขียน order + items ใน transaction เดียว,
// พลิกโต๊ะเป็น occupied แล้วแจ้งครัว
// หมายเหตุ: path นี้ไม่แตะ stock — เฉพาะหน้าขายด่วนเท่านั้นที่ตัด (ดู sale_service.go)
func (s *OrderService) Create(creatorID string, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Msg: "items is required"}
	}
	if req.Discount < 0 {
		return nil, &ValidationError{Msg: "discount must not be negative"}
	}

	table, err := s.Tables.FindByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "table", ID: req.TableID}
		}
		return nil, &PersistenceError{Op: "table load", Err: err}
	}
	if table.Status != entity.TableAvailable {
		return nil, &ValidationError{Msg: "table is not available"}
	}

	// snapshot ราคาและคิดยอดต่อบรรทัด
	type line struct {
		menuItemID string
		qty        int
		unitPrice  float64
		modifiers  []string
		totalPrice float64
	}
	lines := make([]line, 0, len(req.Items))
	var total float64
	for _, it := range req.Items {
		if it.Qty <= 0 {
			return nil, &ValidationError{Msg: "quantity must be positive"}
		}
		m, err := s.Menus.FindByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "menu item", ID: it.MenuItemID}
			}
			return nil, &PersistenceError{Op: "menu item load", Err: err}
		}
		lt := round2(m.Price * float64(it.Qty))
		total += lt
		lines = append(lines, line{
			menuItemID: m.ID, qty: it.Qty, unitPrice: m.Price,
			modifiers: it.Modifiers, totalPrice: lt,
		})
	}

	total = round2(total)
	tax := round2(total * TaxRate)
	serviceCharge := round2(total * ServiceChargeRate)
	// ยอดสุทธิคิดจากค่าก่อนปัด — ปัด tax/service แยกแล้วค่อยบวกจะหายทีละสตางค์
	finalTotal := round2(total*(1+TaxRate+ServiceChargeRate) - req.Discount)

	order := entity.Order{
		Status:        entity.OrderPending,
		Total:         total,
		Discount:      req.Discount,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		FinalTotal:    finalTotal,
		TableID:       &table.ID,
		CreatedByID:   creatorID,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.menuItemID,
				Qty:        l.qty,
				UnitPrice:  l.unitPrice,
				Modifiers:  l.modifiers,
				TotalPrice: l.totalPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		affected, err := s.Tables.UpdateStatusGuard(tx, table.ID, entity.TableAvailable, entity.TableOccupied)
		if err != nil {
			return err
		}
		if affected == 0 {
			// โต๊ะโดนเปิดไปก่อนแล้ว — rollback ทั้ง order
			return &ValidationError{Msg: "table is not available"}
		}
		return nil
	})
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		return nil, &PersistenceError{Op: "order create", Err: err}
	}

	// แจ้งครัวว่ามี order ใหม่
	_ = s.Bus.Publish(&entity.Notification{
		Type:       entity.NotifyOrderCreated,
		OrderID:    order.ID,
		Message:    "new order for table",
		TargetRole: entity.RoleChef,
	})

	return &CreateOrderRes{
		ID: order.ID, Status: order.Status,
		Total: total, Tax: tax, ServiceCharge: serviceCharge,
		Discount: req.Discount, FinalTotal: finalTotal,
	}, nil
}

// ----- Reads for the views -----

type OrderDetail struct {
	repository.BoardRow
	Discount      float64          `json:"discount"`
	Total         float64          `json:"total"`
	Tax           float64          `json:"tax"`
	ServiceCharge float64          `json:"serviceCharge"`
	Payments      []entity.Payment `json:"payments"`
}

func (s *OrderService) Detail(orderID string) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: orderID}
		}
		return nil, &PersistenceError{Op: "order load", Err: err}
	}

	lines, err := s.Repo.GetOrderLines(orderID)
	if err != nil {
		return nil, &PersistenceError{Op: "order lines load", Err: err}
	}
	pays, err := s.Repo.GetPayments(orderID)
	if err != nil {
		return nil, &PersistenceError{Op: "payments load", Err: err}
	}

	row := repository.BoardRow{
		ID: o.ID, Status: o.Status, FinalTotal: o.FinalTotal,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt, Lines: lines,
	}
	if o.TableID != nil {
		if t, err := s.Tables.FindByID(*o.TableID); err == nil {
			row.TableNumber = &t.Number
		}
	}
	return &OrderDetail{
		BoardRow: row,
		Discount: o.Discount, Total: o.Total, Tax: o.Tax, ServiceCharge: o.ServiceCharge,
		Payments: pays,
	}, nil
}

// Board โหลดรายการ order ทั้งก้อน (orders × tables × items) — หน้า list เรียกซ้ำทุกรอบ poll
// kitchen=true เอาเฉพาะคิวครัว (pending/in-progress)
func (s *OrderService) Board(kitchen bool) ([]repository.BoardRow, error) {
	var statuses []string
	if kitchen {
		statuses = []string{entity.OrderPending, entity.OrderInProgress}
	}
	rows, err := s.Repo.ListBoard(statuses)
	if err != nil {
		return nil, &PersistenceError{Op: "board load", Err: err}
	}
	return rows, nil
}

// ----- Payments -----

type PaymentReq struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
}

// RecordPayment บันทึกการจ่ายเงินของ order ที่เสิร์ฟแล้ว
func (s *OrderService) RecordPayment(orderID string, req *PaymentReq) (*entity.Payment, error) {
	if req.Method == "" {
		return nil, &ValidationError{Msg: "payment method is required"}
	}
	if req.Amount <= 0 {
		return nil, &ValidationError{Msg: "amount must be positive"}
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: orderID}
		}
		return nil, &PersistenceError{Op: "order load", Err: err}
	}
	if o.Status != entity.OrderServed {
		return nil, &ValidationError{Msg: "order is not served yet"}
	}

	now := nowUTC()
	p := entity.Payment{
		OrderID: o.ID,
		Method:  req.Method,
		Amount:  round2(req.Amount),
		PaidAt:  &now,
	}
	if err := s.Repo.CreatePayment(s.DB, &p); err != nil {
		return nil, &PersistenceError{Op: "payment create", Err: err}
	}
	return &p, nil
}
