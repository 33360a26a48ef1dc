// services/session.go
package services

import (
	"encoding/json"
	"log"
	"sync"

	"social-connect-platform/models"
)

// sessionStorageKey is the fixed local-storage key holding the serialized
// current-user snapshot.
const sessionStorageKey = "social_connect_user"

// SnapshotStore persists the serialized session snapshot across restarts.
type SnapshotStore interface {
	Load(key string) (value string, ok bool, err error)
	Save(key, value string) error
	Delete(key string) error
}

// SessionManager owns the single process-wide current-user snapshot.
// Trust is purely client-asserted: there is no token, no expiry, no
// signature. The snapshot is a cache of the store's user record and is
// allowed to drift; UpdateCurrentUser is the only invalidation path.
type SessionManager struct {
	mu    sync.RWMutex
	user  *models.User
	store SnapshotStore
}

// NewSessionManager restores any persisted snapshot; an absent or malformed
// snapshot means "logged out".
func NewSessionManager(store SnapshotStore) *SessionManager {
	m := &SessionManager{store: store}
	m.restore()
	return m
}

func (m *SessionManager) restore() {
	raw, ok, err := m.store.Load(sessionStorageKey)
	if err != nil {
		log.Printf("⚠️ failed to read session snapshot, starting logged out: %v", err)
		return
	}
	if !ok {
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("⚠️ discarding malformed session snapshot: %v", err)
		return
	}
	m.user = &u
}

// Current returns a copy of the logged-in user, or nil.
func (m *SessionManager) Current() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	u.Cards = append([]string(nil), m.user.Cards...)
	return &u
}

// Login replaces the in-memory state and persists the full snapshot.
func (m *SessionManager) Login(user models.User) {
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	m.persist(&user)
}

// Logout clears the in-memory state and deletes the persisted snapshot, so
// a fresh startup shows no authenticated user.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
	if err := m.store.Delete(sessionStorageKey); err != nil {
		log.Printf("⚠️ failed to delete session snapshot: %v", err)
	}
}

// UpdateCurrentUser shallow-merges the set fields of updates into the
// current snapshot and persists the result. It is a no-op when logged out.
// This is the only path by which card wins become visible without a
// re-fetch. Returns the merged user, or nil when logged out.
func (m *SessionManager) UpdateCurrentUser(updates models.UserUpdate) *models.User {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}
	if updates.Username != nil {
		m.user.Username = *updates.Username
	}
	if updates.Email != nil {
		m.user.Email = *updates.Email
	}
	if updates.Phone != nil {
		m.user.Phone = *updates.Phone
	}
	if updates.Cards != nil {
		m.user.Cards = append([]string(nil), (*updates.Cards)...)
	}
	if updates.Role != nil {
		m.user.Role = *updates.Role
	}
	if updates.AvatarURL != nil {
		m.user.AvatarURL = *updates.AvatarURL
	}
	merged := *m.user
	merged.Cards = append([]string(nil), m.user.Cards...)
	m.mu.Unlock()

	m.persist(&merged)
	return &merged
}

func (m *SessionManager) persist(user *models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		log.Printf("⚠️ failed to serialize session snapshot: %v", err)
		return
	}
	if err := m.store.Save(sessionStorageKey, string(raw)); err != nil {
		log.Printf("⚠️ failed to persist session snapshot: %v", err)
	}
}
