package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

var (
	// Counter for fallback IDs
	idCounter uint64
)

// GenerateStudyID generates a study ID with a timestamp prefix
func GenerateStudyID() string {
	timestamp := time.Now().Format("20060102-150405")
	b := make([]byte, 4)
	_, err := rand.Read(b)
	if err != nil {
		count := atomic.AddUint64(&idCounter, 1)
		return fmt.Sprintf("study-%s-%x", timestamp, count)
	}
	return fmt.Sprintf("study-%s-%s", timestamp, hex.EncodeToString(b))
}
