package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

// SaleService = หน้าขายด่วนหน้าเคาน์เตอร์: ตัดสต็อกทันที จ่ายทันที ไม่มีโต๊ะ
// เป็นผู้เรียก Stock Ledger เพียงรายเดียว
type SaleService struct {
	DB    *gorm.DB
	Repo  *repository.OrderRepository
	Menus *repository.MenuRepository
	Stock *StockService
}

func NewSaleService(db *gorm.DB, repo *repository.OrderRepository, menus *repository.MenuRepository, stock *StockService) *SaleService {
	return &SaleService{DB: db, Repo: repo, Menus: menus, Stock: stock}
}

type SaleReq struct {
	Items    []OrderItemIn `json:"items"`
	Method   string        `json:"method"`
	Discount float64       `json:"discount"`
}

type SaleRes struct {
	OrderID    string  `json:"orderId"`
	PaymentID  string  `json:"paymentId"`
	Total      float64 `json:"total"`
	FinalTotal float64 `json:"finalTotal"`
}

// Sell ตัดสต็อกทีละบรรทัดก่อน แล้วค่อยเขียน order (served เลย) + payment
// บรรทัดที่ตัดไปแล้วก่อนเจอ error จะไม่คืน — best-effort ตามโมเดลเดิม
func (s *SaleService) Sell(cashierID string, req *SaleReq) (*SaleRes, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{Msg: "items is required"}
	}
	if req.Method == "" {
		return nil, &ValidationError{Msg: "payment method is required"}
	}
	if req.Discount < 0 {
		return nil, &ValidationError{Msg: "discount must not be negative"}
	}

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
		m, err := s.Menus.FindByID(it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "menu item", ID: it.MenuItemID}
			}
			return nil, &PersistenceError{Op: "menu item load", Err: err}
		}

		if _, err := s.Stock.ReserveAndDeduct(m.ID, it.Qty); err != nil {
			return nil, err
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
	// ปัดจากค่าดิบเหมือน path นั่งโต๊ะ ไม่ให้ยอดเพี้ยนทีละสตางค์
	finalTotal := round2(total*(1+TaxRate+ServiceChargeRate) - req.Discount)

	order := entity.Order{
		Status:        entity.OrderServed, // ขายหน้าเคาน์เตอร์จบในจังหวะเดียว
		Total:         total,
		Discount:      req.Discount,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		FinalTotal:    finalTotal,
		CreatedByID:   cashierID,
	}
	now := nowUTC()
	payment := entity.Payment{Method: req.Method, Amount: finalTotal, PaidAt: &now}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
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
		payment.OrderID = order.ID
		return s.Repo.CreatePayment(tx, &payment)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "sale create", Err: err}
	}

	return &SaleRes{
		OrderID: order.ID, PaymentID: payment.ID,
		Total: total, FinalTotal: finalTotal,
	}, nil
}
