package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/E-W-N-K/course-project/entity"
	"github.com/E-W-N-K/course-project/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub pushes order status changes to the owner's open websockets.
// A user may hold several connections (tabs); each status change goes to
// all of them.
type Hub struct {
	clients    map[uint]map[*websocket.Conn]bool // userID -> set of conns
	broadcast  chan StatusEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn   *websocket.Conn
	UserID uint
}

// StatusEvent is the wire payload sent to the order's owner.
type StatusEvent struct {
	UserID     uint               `json:"-"`
	OrderID    uint               `json:"orderId"`
	Status     entity.OrderStatus `json:"status"`
	UpdateTime time.Time          `json:"updateTime"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.UserID] == nil {
				h.clients[sub.UserID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.UserID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.UserID][sub.Conn]; ok {
				delete(h.clients[sub.UserID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.UserID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.UserID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderStatusChanged implements services.StatusNotifier. Non-blocking:
// if the buffer is full the event is dropped, clients refetch on reconnect.
func (h *Hub) OrderStatusChanged(userID, orderID uint, status entity.OrderStatus) {
	ev := StatusEvent{UserID: userID, OrderID: orderID, Status: status, UpdateTime: time.Now()}
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws: dropping status event for order %d", orderID)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/notifications
func (h *Hub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, UserID: userID}
	h.register <- sub

	go h.drain(sub)
}

// drain keeps reading until the peer goes away; inbound frames are ignored,
// this channel is push-only.
func (h *Hub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
