package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 7 * 24 * time.Hour

type session struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (s session) expired(now time.Time) bool {
	return now.Sub(s.CreatedAt) > sessionTTL
}

func newSession(now time.Time) session {
	return session{Token: "session_" + uuid.NewString(), CreatedAt: now}
}

// loadOrCreateSession reads the persisted session token, minting and
// persisting a fresh one when the file is missing, unreadable, or older
// than the session TTL.
func loadOrCreateSession(path string, now time.Time) (session, error) {
	body, err := os.ReadFile(path)
	if err == nil {
		s := session{}
		if err := json.Unmarshal(body, &s); err == nil && s.Token != "" && !s.expired(now) {
			return s, nil
		}
	}

	s := newSession(now)
	if err := saveSession(path, s); err != nil {
		return session{}, err
	}
	return s, nil
}

func saveSession(path string, s session) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed marshalling session with error=%w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed creating session directory with error=%w", err)
	}
	if err := os.WriteFile(path, body, 0o600); err != nil {
		return fmt.Errorf("failed writing session file with error=%w", err)
	}
	return nil
}
