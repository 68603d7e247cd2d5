package chaos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoomCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := NewRoomCode()
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(roomCodeAlphabet, r), "unexpected character %q in room code", r)
		}
	}
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "chaos:event:42", sessionKey(42))
}
