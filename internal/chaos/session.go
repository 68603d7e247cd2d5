package chaos

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session is the room-code-bearing handle into the realtime chaos layer.
// The protocol behind the room code is owned by the realtime service and is
// opaque to this backend.
type Session struct {
	EventID  uint   `json:"event_id"`
	RoomCode string `json:"room_code"`
}

// Manager allocates and looks up chaos sessions in redis. A session lives for
// one evening; the TTL cleans up rooms nobody closes.
type Manager struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewManager connects a session manager to redis.
func NewManager(addr, password string) *Manager {
	return &Manager{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		ttl: 12 * time.Hour,
	}
}

func sessionKey(eventID uint) string {
	return fmt.Sprintf("chaos:event:%d", eventID)
}

// Start returns the event's chaos session, creating one if none is live.
// SETNX makes concurrent starts converge on a single room code.
func (m *Manager) Start(ctx context.Context, eventID uint) (Session, error) {
	code := NewRoomCode()

	ok, err := m.rdb.SetNX(ctx, sessionKey(eventID), code, m.ttl).Result()
	if err != nil {
		return Session{}, fmt.Errorf("claim chaos session: %w", err)
	}
	if !ok {
		// Another request won the claim; return its code.
		existing, err := m.rdb.Get(ctx, sessionKey(eventID)).Result()
		if err != nil {
			return Session{}, fmt.Errorf("read chaos session: %w", err)
		}
		code = existing
	}

	return Session{EventID: eventID, RoomCode: code}, nil
}

// Get looks up the live session for an event, if any.
func (m *Manager) Get(ctx context.Context, eventID uint) (Session, bool, error) {
	code, err := m.rdb.Get(ctx, sessionKey(eventID)).Result()
	if err == redis.Nil {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("read chaos session: %w", err)
	}
	return Session{EventID: eventID, RoomCode: code}, true, nil
}

// roomCodeAlphabet omits easily confused characters (0/O, 1/I).
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewRoomCode generates a 6-character room code.
func NewRoomCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	for i, b := range buf {
		buf[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return string(buf)
}
