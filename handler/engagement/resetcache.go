package engagement

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// pendingReset is a reset request awaiting confirmation by its requester.
type pendingReset struct {
	RequesterID string
	CreatedAt   time.Time
}

var (
	resetCache = make(map[string]pendingReset)
	resetMutex = &sync.Mutex{}
	resetTTL   = 2 * time.Minute
)

func init() {
	go startResetCacheJanitor()
}

// addPendingReset records a reset request and returns the confirmation
// token embedded in the confirm button's custom ID.
func addPendingReset(requesterID string) string {
	resetMutex.Lock()
	defer resetMutex.Unlock()

	token := uuid.New().String()
	resetCache[token] = pendingReset{RequesterID: requesterID, CreatedAt: time.Now()}
	return token
}

// takePendingReset removes and returns the pending request for the token.
// Expired or unknown tokens report false.
func takePendingReset(token string) (pendingReset, bool) {
	resetMutex.Lock()
	defer resetMutex.Unlock()

	entry, found := resetCache[token]
	if !found {
		return pendingReset{}, false
	}
	delete(resetCache, token)
	if time.Since(entry.CreatedAt) > resetTTL {
		return pendingReset{}, false
	}
	return entry, true
}

// startResetCacheJanitor drops confirmation tokens that were never used.
func startResetCacheJanitor() {
	ticker := time.NewTicker(resetTTL)
	defer ticker.Stop()

	for range ticker.C {
		resetMutex.Lock()
		for token, entry := range resetCache {
			if time.Since(entry.CreatedAt) > resetTTL {
				delete(resetCache, token)
			}
		}
		resetMutex.Unlock()
	}
}
