package notifications

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// RoomHub fans chat messages out to every connection in a room. Rooms are
// created on first join and removed when their last connection leaves.
type RoomHub struct {
	mu sync.RWMutex

	// room name -> client ID -> client
	rooms map[string]map[string]*Client
}

// RoomEvent is the wire format for everything the hub broadcasts.
type RoomEvent struct {
	Type     string `json:"type"` // "message", "joined", "left"
	Room     string `json:"room"`
	Username string `json:"username,omitempty"`
	Body     string `json:"body,omitempty"`
	SentAt   string `json:"sent_at,omitempty"`
}

// NewRoomHub creates a new RoomHub instance
func NewRoomHub() *RoomHub {
	return &RoomHub{
		rooms: make(map[string]map[string]*Client),
	}
}

// Register joins a connection to a room and returns its client.
func (h *RoomHub) Register(conn *websocket.Conn, room, username string) *Client {
	client := NewClient(h, conn, room, username)

	h.mu.Lock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]*Client)
	}
	h.rooms[room][client.ID] = client
	h.mu.Unlock()

	h.Broadcast(room, RoomEvent{Type: "joined", Room: room, Username: username})
	return client
}

// Unregister removes a connection from its room.
func (h *RoomHub) Unregister(client *Client) {
	h.mu.Lock()
	clients, ok := h.rooms[client.Room]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, present := clients[client.ID]; !present {
		h.mu.Unlock()
		return
	}
	delete(clients, client.ID)
	if len(clients) == 0 {
		delete(h.rooms, client.Room)
	}
	close(client.Send)
	h.mu.Unlock()

	h.Broadcast(client.Room, RoomEvent{Type: "left", Room: client.Room, Username: client.Username})
}

// Broadcast sends an event to every connection in a room.
func (h *RoomHub) Broadcast(room string, event RoomEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("RoomHub: failed to marshal event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.rooms[room] {
		client.TrySend(payload)
	}
}

// RoomCount returns the number of connections in a room.
func (h *RoomHub) RoomCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Shutdown disconnects every client in every room.
func (h *RoomHub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, clients := range h.rooms {
		for _, client := range clients {
			close(client.Send)
		}
		delete(h.rooms, room)
	}
}
