package service

import (
	"fmt"
	"math/rand"
	"time"
)

const attemptIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewAttemptID generates "attempt-<epoch millis>-<9 random base36 chars>".
// Uniqueness is still enforced by the store's index; the random suffix makes
// a same-millisecond collision astronomically unlikely.
func NewAttemptID() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = attemptIDAlphabet[rand.Intn(len(attemptIDAlphabet))]
	}
	return fmt.Sprintf("attempt-%d-%s", time.Now().UnixMilli(), suffix)
}
