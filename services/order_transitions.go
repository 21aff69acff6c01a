// services/order_transitions.go
package services

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

// เส้นทางเดินหน้าปกติ pending → in-progress → ready → served
// ทุกสถานะที่ยังไม่จบ ยกเลิกได้ (cancelled) — เดินหน้าอย่างเดียว ไม่ย้อน
var forwardEdge = map[string]string{
	entity.OrderPending:    entity.OrderInProgress,
	entity.OrderInProgress: entity.OrderReady,
	entity.OrderReady:      entity.OrderServed,
}

func isTerminal(status string) bool {
	return status == entity.OrderServed || status == entity.OrderCancelled
}

func validEdge(from, to string) bool {
	if isTerminal(from) {
		return false
	}
	if to == entity.OrderCancelled {
		return true
	}
	return forwardEdge[from] == to
}

type edge struct{ from, to string }

// permission matrix รวมไว้ที่เดียว — Transition() เป็นผู้ใช้คนเดียว
// admin ผ่านทุก edge ที่ valid, waiter ไม่มีสิทธิ์เปลี่ยนสถานะเลย
var rolePermit = map[string]map[edge]bool{
	entity.RoleChef: {
		{entity.OrderPending, entity.OrderInProgress}: true,
		{entity.OrderInProgress, entity.OrderReady}:   true,
	},
	entity.RoleCashier: {
		{entity.OrderReady, entity.OrderServed}: true,
	},
}

func transitionAllowed(role, from, to string) bool {
	if !validEdge(from, to) {
		return false
	}
	if role == entity.RoleAdmin {
		return true
	}
	return rolePermit[role][edge{from, to}]
}

// Transition ขยับสถานะ order ตาม state machine + สิทธิ์ของ role
// เรียกซ้ำด้วยสถานะที่ถึงแล้ว → InvalidTransitionError (guard update ไม่โดนแถว)
func (s *OrderService) Transition(orderID, newStatus, actorRole string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "order", ID: orderID}
		}
		return &PersistenceError{Op: "order load", Err: err}
	}

	if !transitionAllowed(actorRole, o.Status, newStatus) {
		return &InvalidTransitionError{From: o.Status, To: newStatus, Role: actorRole}
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, orderID, o.Status, newStatus)
	if err != nil {
		return &PersistenceError{Op: "order status update", Err: err}
	}
	if affected == 0 {
		// มีคนอื่นขยับไปก่อนแล้วระหว่างอ่านกับเขียน
		return &InvalidTransitionError{From: o.Status, To: newStatus, Role: actorRole}
	}

	if newStatus == entity.OrderReady {
		// อาหารเสร็จ → แจ้งแคชเชียร์ (มีเสียงเตือนฝั่ง view)
		_ = s.Bus.Publish(&entity.Notification{
			Type:       entity.NotifyOrderReady,
			OrderID:    orderID,
			Message:    "order is ready to serve",
			TargetRole: entity.RoleCashier,
		})
	}
	return nil
}
