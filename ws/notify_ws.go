package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"backend/entity"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// รอบ refresh ของแต่ละ view — ครัวถี่กว่าเพราะคิวขยับเร็ว
const (
	KitchenRefresh = 5 * time.Second
	OrdersRefresh  = 10 * time.Second
)

// Envelope คือกรอบข้อความที่ส่งลง WebSocket ทุกแบบ
type Envelope struct {
	Kind  string `json:"kind"` // "notification" | "refresh" | "backlog"
	Data  any    `json:"data"`
	Alert bool   `json:"alert,omitempty"`
}

// client = view ที่เปิดค้างอยู่หนึ่งจอ (role เดียว, view เดียว)
type client struct {
	conn *websocket.Conn
	role string
	view string
	done chan struct{}

	mu sync.Mutex // กันเขียน conn ชนกันระหว่าง broadcast กับ refresh
}

func (cl *client) writeJSON(v any) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteJSON(v)
}

// view role ตรงกับ targetRole → ให้ view นั้นส่งเสียงเตือนหนึ่งครั้ง
func alertFor(viewerRole string, n entity.Notification) bool {
	return viewerRole == n.TargetRole
}

// NotifyHub คือศูนย์กลางกระจาย notification + refresh push ให้ทุก view ที่เปิดอยู่
type NotifyHub struct {
	clients    map[*client]bool
	broadcast  chan entity.Notification
	register   chan *client
	unregister chan *client
	mu         sync.Mutex
	orders     *services.OrderService
	bus        *services.NotificationService
}

func NewNotifyHub(orders *services.OrderService, bus *services.NotificationService) *NotifyHub {
	return &NotifyHub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan entity.Notification, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
		orders:     orders,
		bus:        bus,
	}
}

// Broadcast ให้ NotificationService เรียก (implement services.Sink)
func (h *NotifyHub) Broadcast(n entity.Notification) {
	h.broadcast <- n
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *NotifyHub) Run() {
	for {
		select {
		case cl := <-h.register:
			h.mu.Lock()
			h.clients[cl] = true
			h.mu.Unlock()

		case cl := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[cl]; ok {
				delete(h.clients, cl)
				close(cl.done)
				cl.conn.Close()
			}
			h.mu.Unlock()

		case n := <-h.broadcast:
			h.mu.Lock()
			for cl := range h.clients {
				env := Envelope{Kind: "notification", Data: n, Alert: alertFor(cl.role, n)}
				if err := cl.writeJSON(env); err != nil {
					log.Printf("ws write error: %v", err)
					delete(h.clients, cl)
					close(cl.done)
					cl.conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/views?view=kitchen|orders&token=...
func (h *NotifyHub) HandleWebSocket(c *gin.Context) {
	role := utils.CurrentRole(c)
	view := c.DefaultQuery("view", "orders")
	if view != "kitchen" && view != "orders" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown view"})
		return
	}

	// view เพิ่งต่อ (หรือต่อใหม่หลังหลุด) — เก็บ entry ที่เขียนลง log
	// ระหว่างที่ไม่ได้ต่ออยู่ก่อนเริ่ม push
	if err := h.bus.Reconcile(); err != nil {
		log.Printf("ws reconcile error: %v", err)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	cl := &client{conn: conn, role: role, view: view, done: make(chan struct{})}
	h.register <- cl

	if err := cl.writeJSON(Envelope{Kind: "backlog", Data: h.bus.Recent()}); err != nil {
		log.Printf("ws backlog write error: %v", err)
	}

	go h.refreshLoop(cl)
	go h.listen(cl)
}

// refreshLoop = Polling Refresh Loop ของ view นี้: โหลด board ทั้งก้อนใหม่ทุกรอบ
// แล้ว push ลงไป — timer หยุดเมื่อ view ปิด (done)
func (h *NotifyHub) refreshLoop(cl *client) {
	interval := OrdersRefresh
	kitchen := false
	if cl.view == "kitchen" {
		interval = KitchenRefresh
		kitchen = true
	}

	push := func() {
		rows, err := h.orders.Board(kitchen)
		if err != nil {
			log.Printf("board reload error: %v", err)
			return
		}
		if err := cl.writeJSON(Envelope{Kind: "refresh", Data: rows}); err != nil {
			log.Printf("ws refresh write error: %v", err)
		}
	}

	push() // snapshot แรกทันทีตอนต่อ

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			push()
		case <-cl.done:
			return
		}
	}
}

// listen = รอจน client ปิด connection (view นี้ไม่รับข้อความขาเข้า)
func (h *NotifyHub) listen(cl *client) {
	defer func() { h.unregister <- cl }()

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}
