package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub хранит подключения клиентов, сгруппированные по месяцу календаря ("2025-07").
// Открытые календари подписываются на свой месяц и получают события об изменениях
// расписаний, не опрашивая сервер.
type Hub struct {
	// Для каждого месяца храним множество подключений.
	clients map[string]map[*Client]bool
	// Канал для регистрации нового клиента.
	register chan *Client
	// Канал для удаления клиента.
	unregister chan *Client
	// Канал для трансляции сообщений по конкретному месяцу.
	broadcast chan BroadcastMessage
	mu        sync.RWMutex
}

// BroadcastMessage представляет сообщение для рассылки подписчикам одного месяца.
type BroadcastMessage struct {
	Month   string
	Message []byte
}

// WSMessage — событие изменения календаря.
type WSMessage struct {
	EventType string                 `json:"event_type"` // schedule_created, schedule_updated, schedule_deleted
	Month     string                 `json:"month"`
	Data      map[string]interface{} `json:"data"`
}

// Глобальный экземпляр хаба.
var HubInstance = NewHub()

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan BroadcastMessage),
	}
}

// Run запускает цикл обработки каналов хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Month] == nil {
				h.clients[client.Month] = make(map[*Client]bool)
			}
			h.clients[client.Month][client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Month]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.clients, client.Month)
					}
				}
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.RLock()
			if clients, ok := h.clients[message.Month]; ok {
				for client := range clients {
					select {
					case client.Send <- message.Message:
					default:
						close(client.Send)
						delete(clients, client)
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastWSMessage сериализует событие и рассылает его подписчикам месяца.
func (h *Hub) BroadcastWSMessage(msg WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Println("Ошибка сериализации WS сообщения:", err)
		return
	}
	h.broadcast <- BroadcastMessage{Month: msg.Month, Message: payload}
}

// Client представляет одно подключение через WebSocket.
type Client struct {
	Hub   *Hub
	Conn  *websocket.Conn
	Send  chan []byte
	Month string
}

// readPump следит за разрывом соединения; входящие сообщения календарю не нужны.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

// writePump отправляет сообщения клиенту из канала Send.
func (c *Client) writePump() {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Канал закрыт.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			// Ping для поддержания соединения.
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// CalendarWebSocketHandler обновляет соединение до WebSocket и подписывает клиента
// на события месяца. URL-пример: /api/calendar/2025-07/ws
func CalendarWebSocketHandler(c *gin.Context) {
	month := c.Param("month")
	if !monthPattern.MatchString(month) {
		http.Error(c.Writer, "Некорректный месяц, ожидается YYYY-MM", http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.Error(c.Writer, "Ошибка обновления до WebSocket", http.StatusInternalServerError)
		return
	}
	client := &Client{
		Hub:   HubInstance,
		Conn:  conn,
		Send:  make(chan []byte, 256),
		Month: month,
	}
	HubInstance.register <- client

	go client.writePump()
	client.readPump()
}
