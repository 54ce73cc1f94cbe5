package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// newID returns an identifier in the form "<prefix>-XXXXXXXX" where the
// suffix is 8 hex characters drawn from crypto/rand.
func newID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s-%08x", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%08x", prefix, b)
}
