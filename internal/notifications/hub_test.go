package notifications

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(c *Client) []RoomEvent {
	var events []RoomEvent
	for {
		select {
		case raw, ok := <-c.Send:
			if !ok {
				return events
			}
			var ev RoomEvent
			if err := json.Unmarshal(raw, &ev); err == nil {
				events = append(events, ev)
			}
		default:
			return events
		}
	}
}

func TestRoomHub_BroadcastReachesRoomOnly(t *testing.T) {
	hub := NewRoomHub()

	alice := hub.Register(nil, "general", "alice")
	bob := hub.Register(nil, "general", "bob")
	carol := hub.Register(nil, "random", "carol")

	// Clear the join events.
	drain(alice)
	drain(bob)
	drain(carol)

	hub.Broadcast("general", RoomEvent{Type: "message", Room: "general", Username: "alice", Body: "hi"})

	aliceEvents := drain(alice)
	require.Len(t, aliceEvents, 1)
	assert.Equal(t, "hi", aliceEvents[0].Body)

	bobEvents := drain(bob)
	require.Len(t, bobEvents, 1)

	assert.Empty(t, drain(carol), "other rooms must not receive the message")
}

func TestRoomHub_JoinAndLeaveEvents(t *testing.T) {
	hub := NewRoomHub()

	alice := hub.Register(nil, "general", "alice")
	joinEvents := drain(alice)
	require.Len(t, joinEvents, 1)
	assert.Equal(t, "joined", joinEvents[0].Type)
	assert.Equal(t, "alice", joinEvents[0].Username)

	bob := hub.Register(nil, "general", "bob")
	drain(bob)

	events := drain(alice)
	require.Len(t, events, 1)
	assert.Equal(t, "joined", events[0].Type)
	assert.Equal(t, "bob", events[0].Username)

	hub.Unregister(bob)
	events = drain(alice)
	require.Len(t, events, 1)
	assert.Equal(t, "left", events[0].Type)
	assert.Equal(t, "bob", events[0].Username)

	assert.Equal(t, 1, hub.RoomCount("general"))
}

func TestRoomHub_UnregisterTwiceIsSafe(t *testing.T) {
	hub := NewRoomHub()

	alice := hub.Register(nil, "general", "alice")
	hub.Unregister(alice)
	hub.Unregister(alice)

	assert.Equal(t, 0, hub.RoomCount("general"))
}

func TestRoomHub_EmptyRoomIsRemoved(t *testing.T) {
	hub := NewRoomHub()

	alice := hub.Register(nil, "solo", "alice")
	require.Equal(t, 1, hub.RoomCount("solo"))

	hub.Unregister(alice)
	assert.Equal(t, 0, hub.RoomCount("solo"))

	hub.mu.RLock()
	_, exists := hub.rooms["solo"]
	hub.mu.RUnlock()
	assert.False(t, exists)
}

func TestRoomHub_Shutdown(t *testing.T) {
	hub := NewRoomHub()

	alice := hub.Register(nil, "general", "alice")
	bob := hub.Register(nil, "random", "bob")

	hub.Shutdown()

	_, aliceOpen := <-alice.Send
	_, bobOpen := <-bob.Send
	// Channels may still hold queued join events; drain until closed.
	for aliceOpen {
		_, aliceOpen = <-alice.Send
	}
	for bobOpen {
		_, bobOpen = <-bob.Send
	}

	assert.Equal(t, 0, hub.RoomCount("general"))
	assert.Equal(t, 0, hub.RoomCount("random"))
}
