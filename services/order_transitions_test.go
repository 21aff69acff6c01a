package services

import (
	"errors"
	"testing"

	"backend/entity"
)

func TestTransitionMatrix(t *testing.T) {
	tests := []struct {
		role, from, to string
		want           bool
	}{
		// chef ทำครัวอย่างเดียว
		{entity.RoleChef, entity.OrderPending, entity.OrderInProgress, true},
		{entity.RoleChef, entity.OrderInProgress, entity.OrderReady, true},
		{entity.RoleChef, entity.OrderReady, entity.OrderServed, false},
		{entity.RoleChef, entity.OrderPending, entity.OrderCancelled, false},
		// cashier เสิร์ฟอย่างเดียว
		{entity.RoleCashier, entity.OrderReady, entity.OrderServed, true},
		{entity.RoleCashier, entity.OrderPending, entity.OrderInProgress, false},
		// waiter ไม่มีสิทธิ์เลย
		{entity.RoleWaiter, entity.OrderPending, entity.OrderInProgress, false},
		{entity.RoleWaiter, entity.OrderReady, entity.OrderServed, false},
		// admin ผ่านทุก edge ที่ valid
		{entity.RoleAdmin, entity.OrderPending, entity.OrderInProgress, true},
		{entity.RoleAdmin, entity.OrderInProgress, entity.OrderCancelled, true},
		{entity.RoleAdmin, entity.OrderReady, entity.OrderCancelled, true},
		// ข้ามขั้นไม่ได้ แม้เป็น admin
		{entity.RoleAdmin, entity.OrderPending, entity.OrderReady, false},
		{entity.RoleAdmin, entity.OrderPending, entity.OrderServed, false},
		// ถอยหลังไม่ได้
		{entity.RoleAdmin, entity.OrderReady, entity.OrderInProgress, false},
		// terminal จบแล้วจบเลย
		{entity.RoleAdmin, entity.OrderServed, entity.OrderCancelled, false},
		{entity.RoleAdmin, entity.OrderCancelled, entity.OrderPending, false},
		{entity.RoleAdmin, entity.OrderServed, entity.OrderReady, false},
	}

	for _, tc := range tests {
		got := transitionAllowed(tc.role, tc.from, tc.to)
		if got != tc.want {
			t.Errorf("transitionAllowed(%s, %s→%s) = %v, want %v",
				tc.role, tc.from, tc.to, got, tc.want)
		}
	}
}

// chef เดิน pending→in-progress→ready แล้ว order_ready ต้องออก "ครั้งเดียว"
// และออกตอน call ที่สองเท่านั้น
func TestChefFlowPublishesReadyOnce(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.orders.Create(env.waiter.ID, &CreateOrderReq{
		TableID: env.table.ID,
		Items:   []OrderItemIn{{MenuItemID: env.padThai.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := env.orders.Transition(res.ID, entity.OrderInProgress, entity.RoleChef); err != nil {
		t.Fatalf("pending→in-progress: %v", err)
	}
	if ready := env.logOfType(t, entity.NotifyOrderReady); len(ready) != 0 {
		t.Fatalf("order_ready after first call = %d, want 0", len(ready))
	}

	if err := env.orders.Transition(res.ID, entity.OrderReady, entity.RoleChef); err != nil {
		t.Fatalf("in-progress→ready: %v", err)
	}
	ready := env.logOfType(t, entity.NotifyOrderReady)
	if len(ready) != 1 {
		t.Fatalf("order_ready events = %d, want 1", len(ready))
	}
	if ready[0].TargetRole != entity.RoleCashier {
		t.Errorf("targetRole = %q, want cashier", ready[0].TargetRole)
	}

	if err := env.orders.Transition(res.ID, entity.OrderServed, entity.RoleCashier); err != nil {
		t.Fatalf("ready→served: %v", err)
	}
	if got := env.orderStatus(t, res.ID); got != entity.OrderServed {
		t.Errorf("final status = %q, want served", got)
	}
}

func TestWaiterCannotTransition(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.orders.Create(env.waiter.ID, &CreateOrderReq{
		TableID: env.table.ID,
		Items:   []OrderItemIn{{MenuItemID: env.padThai.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	err = env.orders.Transition(res.ID, entity.OrderInProgress, entity.RoleWaiter)
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("error = %v, want InvalidTransitionError", err)
	}
	if got := env.orderStatus(t, res.ID); got != entity.OrderPending {
		t.Errorf("status = %q, want pending (unchanged)", got)
	}
}

func TestTransitionFromTerminalFails(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.orders.Create(env.waiter.ID, &CreateOrderReq{
		TableID: env.table.ID,
		Items:   []OrderItemIn{{MenuItemID: env.padThai.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := env.orders.Transition(res.ID, entity.OrderCancelled, entity.RoleAdmin); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	for _, to := range []string{entity.OrderPending, entity.OrderInProgress, entity.OrderServed, entity.OrderCancelled} {
		err := env.orders.Transition(res.ID, to, entity.RoleAdmin)
		var it *InvalidTransitionError
		if !errors.As(err, &it) {
			t.Errorf("cancelled→%s: error = %v, want InvalidTransitionError", to, err)
		}
	}
}

// เรียกซ้ำด้วยสถานะที่ถึงแล้ว → InvalidTransitionError เสมอ (เลือกทางนี้ทางเดียว)
func TestRepeatTransitionFails(t *testing.T) {
	env := newTestEnv(t)
	res, err := env.orders.Create(env.waiter.ID, &CreateOrderReq{
		TableID: env.table.ID,
		Items:   []OrderItemIn{{MenuItemID: env.padThai.ID, Qty: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := env.orders.Transition(res.ID, entity.OrderInProgress, entity.RoleChef); err != nil {
		t.Fatalf("first transition: %v", err)
	}

	var before entity.Order
	if err := env.db.First(&before, "id = ?", res.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}

	err = env.orders.Transition(res.ID, entity.OrderInProgress, entity.RoleChef)
	var it *InvalidTransitionError
	if !errors.As(err, &it) {
		t.Fatalf("repeat transition: error = %v, want InvalidTransitionError", err)
	}

	var after entity.Order
	if err := env.db.First(&after, "id = ?", res.ID).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if after.Status != entity.OrderInProgress {
		t.Errorf("status = %q, want in-progress", after.Status)
	}
	// call ที่โดนปัดต้องไม่แตะ record — updatedAt ห้ามขยับ
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("updatedAt bumped %v → %v on rejected transition", before.UpdatedAt, after.UpdatedAt)
	}
}

func TestTransitionUnknownOrder(t *testing.T) {
	env := newTestEnv(t)
	err := env.orders.Transition("missing", entity.OrderInProgress, entity.RoleAdmin)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}
