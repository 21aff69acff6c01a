package services

import (
	"sync"

	"backend/entity"
	"backend/repository"
)

// จำนวน notification ล่าสุดที่ view เก็บในหน่วยความจำ
const recentCap = 50

// Alerter ส่งเสียงเตือน — view จริงต่อเสียงเอง core แค่สั่ง
type Alerter interface {
	Ring()
}

// NopAlerter สำหรับ context ที่ไม่มีเสียง (เช่นตัว server เอง)
type NopAlerter struct{}

func (NopAlerter) Ring() {}

// Sink รับ event ที่ publish แล้วไปกระจายต่อ (ws hub implement ตัวนี้)
type Sink interface {
	Broadcast(n entity.Notification)
}

// NotificationService = bus ของ view หนึ่งตัว: เก็บ list ล่าสุดในหน่วยความจำ
// และเขียนลง log กลาง (ตาราง notifications) ให้ view อื่นเห็น
type NotificationService struct {
	Repo *repository.NotificationRepository

	viewerRole string
	alerter    Alerter
	sink       Sink

	mu     sync.Mutex
	recent []entity.Notification
	seen   map[string]bool // id ที่ reconcile ไปแล้ว — กันเตือนซ้ำ
}

func NewNotificationService(repo *repository.NotificationRepository, viewerRole string, alerter Alerter, sink Sink) *NotificationService {
	if alerter == nil {
		alerter = NopAlerter{}
	}
	return &NotificationService{
		Repo:       repo,
		viewerRole: viewerRole,
		alerter:    alerter,
		sink:       sink,
		seen:       make(map[string]bool),
	}
}

// SetSink ต่อ hub ทีหลัง — bus กับ hub สร้างไขว้กันตอน boot
func (s *NotificationService) SetSink(sink Sink) {
	s.sink = sink
}

// Publish ประทับเวลา (gorm ใส่ CreatedAt ให้ตอน Append), เติมหัว list,
// เขียนลง log กลาง แล้วกระจายให้ view อื่น
// ถ้า targetRole ตรงกับ role ของ view ที่ publish เอง → เตือนหนึ่งครั้ง
func (s *NotificationService) Publish(n *entity.Notification) error {
	if err := s.Repo.Append(n); err != nil {
		return &PersistenceError{Op: "notification append", Err: err}
	}

	s.mu.Lock()
	s.recent = append([]entity.Notification{*n}, s.recent...)
	if len(s.recent) > recentCap {
		s.recent = s.recent[:recentCap]
	}
	s.seen[n.ID] = true
	s.mu.Unlock()

	if n.TargetRole == s.viewerRole {
		s.alerter.Ring()
	}
	if s.sink != nil {
		s.sink.Broadcast(*n)
	}
	return nil
}

// Recent คืน list ในหน่วยความจำของ view นี้ (ใหม่สุดก่อน, ไม่เกิน 50)
func (s *NotificationService) Recent() []entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Notification, len(s.recent))
	copy(out, s.recent)
	return out
}

// ReadAll อ่าน log กลางทั้งก้อน
func (s *NotificationService) ReadAll() ([]entity.Notification, error) {
	list, err := s.Repo.ReadAll()
	if err != nil {
		return nil, &PersistenceError{Op: "notification read", Err: err}
	}
	return list, nil
}

// Reconcile เทียบ log กลางกับ list ในหน่วยความจำ — เรียกเมื่อ log ถูกแก้จาก
// view อื่น entry ใหม่ที่ target ตรง role เรา → เตือนครั้งเดียวต่อ entry
// (ส่ง at-least-once: ถ้า log เปลี่ยนรัว ๆ ใน tick เดียวกันอาจเตือนซ้ำได้ — ยอมรับ)
func (s *NotificationService) Reconcile() error {
	list, err := s.Repo.ReadAll()
	if err != nil {
		return &PersistenceError{Op: "notification reconcile", Err: err}
	}

	s.mu.Lock()
	var fresh []entity.Notification
	for _, n := range list {
		if !s.seen[n.ID] {
			s.seen[n.ID] = true
			fresh = append(fresh, n)
		}
	}
	if len(list) > recentCap {
		s.recent = append([]entity.Notification(nil), list[:recentCap]...)
	} else {
		s.recent = append([]entity.Notification(nil), list...)
	}
	s.mu.Unlock()

	for _, n := range fresh {
		if n.TargetRole == s.viewerRole {
			s.alerter.Ring()
		}
	}
	return nil
}

// Clear ล้างทั้ง log กลางและ list ในหน่วยความจำ
func (s *NotificationService) Clear() error {
	if err := s.Repo.Clear(); err != nil {
		return &PersistenceError{Op: "notification clear", Err: err}
	}
	s.mu.Lock()
	s.recent = nil
	s.seen = make(map[string]bool)
	s.mu.Unlock()
	return nil
}
