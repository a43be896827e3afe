package event

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/exp/slog"

	"github.com/jayarAsio/stl-gaming-system-sub001/internal/lib/logger/sl"
)

type Message struct {
	Channel string                 `json:"channel"`
	Event   string                 `json:"event"`
	Data    map[string]interface{} `json:"data"`
}

// Hub pushes draw events to connected teller displays. Clients subscribe
// to a channel on connect and only ever receive; the server is the sole
// publisher.
type Hub struct {
	mutex     sync.RWMutex
	channels  map[string]map[*websocket.Conn]bool
	broadcast chan Message
	log       *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		channels:  make(map[string]map[*websocket.Conn]bool),
		broadcast: make(chan Message),
		log:       log,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// TriggerEvent queues a message for every subscriber of its channel.
func (hub *Hub) TriggerEvent(message Message) error {
	hub.broadcast <- message

	return nil
}

func (hub *Hub) run() {
	for message := range hub.broadcast {
		data, err := json.Marshal(message)
		if err != nil {
			hub.log.Error("failed to marshal message", sl.Err(err))

			continue
		}

		hub.log.Info("broadcasting message",
			sl.String("channel", message.Channel),
			sl.String("event", message.Event))

		hub.mutex.RLock()
		receivers := make([]*websocket.Conn, 0, len(hub.channels[message.Channel]))
		for conn := range hub.channels[message.Channel] {
			receivers = append(receivers, conn)
		}
		hub.mutex.RUnlock()

		for _, conn := range receivers {
			if err = conn.WriteMessage(websocket.TextMessage, data); err != nil {
				hub.log.Error("failed to write message", sl.Err(err))

				hub.unsubscribe(conn)
			}
		}
	}
}

func (hub *Hub) subscribe(channel string, conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	if hub.channels[channel] == nil {
		hub.channels[channel] = make(map[*websocket.Conn]bool)
	}

	hub.channels[channel][conn] = true
}

func (hub *Hub) unsubscribe(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for _, conns := range hub.channels {
		delete(conns, conn)
	}
}

func (hub *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	channel := r.URL.Query().Get("channel")
	if channel == "" {
		channel = "draws"
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.log.Error("failed to upgrade connection", sl.Err(err))

		return
	}

	hub.subscribe(channel, ws)

	hub.log.Info("display subscribed", sl.String("channel", channel))

	defer func() {
		hub.unsubscribe(ws)

		if err = ws.Close(); err != nil {
			hub.log.Error("failed to close connection", sl.Err(err))
		}
	}()

	// Drain control frames until the client goes away.
	for {
		if _, _, err = ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (hub *Hub) RunServer() {
	go hub.run()
}
