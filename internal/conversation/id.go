package conversation

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// NewTurnID returns a fresh ULID. Turn ids double as idempotency keys: a
// client that retries a request with the same id cannot duplicate the turn.
func NewTurnID() (string, error) {
	id, err := ulid.New(ulid.Now(), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
