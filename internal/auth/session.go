package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

var (
	ErrInvalidSessionToken = errors.New("session token is invalid")
	ErrExpiredSessionToken = errors.New("token is expired")
)

const defaultSessionTokenDuration = 5 * time.Minute

// SessionManagerInterface hands out the short-lived tokens that bridge the
// password step and the TOTP step of a two-factor login.
type SessionManagerInterface interface {
	GenerateSessionToken(userID string, duration time.Duration) (string, error)
	VerifySessionToken(sessionToken string) (string, error)
	DeleteSessionToken(sessionToken string)
	StartSessionTokenCleanup(interval time.Duration)
}

type loginSession struct {
	userID    string
	expiresAt time.Time
}

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]loginSession
}

func NewSessionManager() SessionManagerInterface {
	return &SessionManager{sessions: make(map[string]loginSession)}
}

func (sm *SessionManager) GenerateSessionToken(userID string, duration time.Duration) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", ErrInternalError
	}
	token := hex.EncodeToString(raw)

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.sessions[token] = loginSession{userID: userID, expiresAt: time.Now().Add(duration)}
	return token, nil
}

// VerifySessionToken evicts an expired session on sight instead of leaving it
// for the periodic sweep.
func (sm *SessionManager) VerifySessionToken(sessionToken string) (string, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, ok := sm.sessions[sessionToken]
	if !ok {
		return "", ErrInvalidSessionToken
	}
	if time.Now().After(session.expiresAt) {
		delete(sm.sessions, sessionToken)
		return "", ErrExpiredSessionToken
	}
	return session.userID, nil
}

func (sm *SessionManager) DeleteSessionToken(sessionToken string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, sessionToken)
}

func (sm *SessionManager) StartSessionTokenCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			sm.sweepExpired(time.Now())
		}
	}()
}

func (sm *SessionManager) sweepExpired(now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for token, session := range sm.sessions {
		if now.After(session.expiresAt) {
			delete(sm.sessions, token)
		}
	}
}
