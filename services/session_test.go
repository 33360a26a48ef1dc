package services

import (
	"path/filepath"
	"testing"

	"social-connect-platform/models"
	"social-connect-platform/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSnapshotStore struct {
	data map[string]string
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{data: map[string]string{}}
}

func (s *memSnapshotStore) Load(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memSnapshotStore) Save(key, value string) error {
	s.data[key] = value
	return nil
}

func (s *memSnapshotStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func TestSessionStartsLoggedOut(t *testing.T) {
	session := NewSessionManager(newMemSnapshotStore())
	assert.Nil(t, session.Current())
}

func TestLoginPersistsAndRestores(t *testing.T) {
	store := newMemSnapshotStore()
	session := NewSessionManager(store)
	session.Login(models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Cards: []string{}})

	// A fresh manager over the same store models a process restart.
	restored := NewSessionManager(store)
	current := restored.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice", current.Username)
	assert.Equal(t, "u1", current.ID)
}

func TestLogoutClearsPersistedSnapshot(t *testing.T) {
	store := newMemSnapshotStore()
	session := NewSessionManager(store)
	session.Login(models.User{ID: "u1", Username: "alice"})
	session.Logout()

	assert.Nil(t, session.Current())

	restored := NewSessionManager(store)
	assert.Nil(t, restored.Current())
}

func TestMalformedSnapshotMeansLoggedOut(t *testing.T) {
	store := newMemSnapshotStore()
	store.data[sessionStorageKey] = "{not json"

	session := NewSessionManager(store)
	assert.Nil(t, session.Current())
}

func TestUpdateCurrentUserIsNoOpWhenLoggedOut(t *testing.T) {
	session := NewSessionManager(newMemSnapshotStore())
	username := "ghost"
	assert.Nil(t, session.UpdateCurrentUser(models.UserUpdate{Username: &username}))
}

func TestUpdateCurrentUserShallowMerges(t *testing.T) {
	store := newMemSnapshotStore()
	session := NewSessionManager(store)
	session.Login(models.User{ID: "u1", Username: "alice", Email: "alice@example.com", Phone: "111", Cards: []string{"Gold Card"}})

	cards := []string{"Gold Card", "Premium Card"}
	merged := session.UpdateCurrentUser(models.UserUpdate{Cards: &cards})

	require.NotNil(t, merged)
	assert.Equal(t, []string{"Gold Card", "Premium Card"}, merged.Cards)
	// Untouched fields survive the merge.
	assert.Equal(t, "alice", merged.Username)
	assert.Equal(t, "alice@example.com", merged.Email)
	assert.Equal(t, "111", merged.Phone)

	// And the merge is persisted, not just in memory.
	restored := NewSessionManager(store)
	assert.Equal(t, []string{"Gold Card", "Premium Card"}, restored.Current().Cards)
}

func TestSQLiteLocalStorageRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "local.db")
	db, err := utils.SetupLocalDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	storage := NewLocalStorage(db)

	_, ok, err := storage.Load("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, storage.Save("k", "v1"))
	require.NoError(t, storage.Save("k", "v2")) // overwrite

	v, ok, err := storage.Load("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, storage.Delete("k"))
	_, ok, err = storage.Load("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionOverSQLiteSurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "local.db")
	db, err := utils.SetupLocalDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	session := NewSessionManager(NewLocalStorage(db))
	session.Login(models.User{ID: "u1", Username: "alice", Cards: []string{"Platinum Card"}})

	restored := NewSessionManager(NewLocalStorage(db))
	current := restored.Current()
	require.NotNil(t, current)
	assert.Equal(t, []string{"Platinum Card"}, current.Cards)
}
