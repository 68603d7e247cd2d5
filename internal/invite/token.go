package invite

import (
	"strings"

	"github.com/google/uuid"
)

// NewToken generates an opaque invite token. The token is the sole credential
// an anonymous guest holds, so it must be unguessable and unique across all
// events; a v4 UUID gives both. Dashes are stripped to keep invite links tidy.
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Link builds the public invite URL for a token.
func Link(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/invite/" + token
}
