// services/gateway.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"social-connect-platform/models"

	"github.com/gosimple/slug"
)

const (
	usersCollection    = "users"
	videosCollection   = "videos"
	commentsCollection = "comments"
	contactCollection  = "contact_submissions"
)

// ErrEmptyComment rejects whitespace-only comment text before any store
// call is made.
var ErrEmptyComment = errors.New("comment text is empty")

// StoreGateway translates typed domain operations into collection-store
// calls, doing client-side filtering and decoration where the store's query
// model falls short. It is the only component that talks to the store.
//
// The store's iteration order is unspecified, so reads that scan a whole
// collection walk it in ascending key order — stable within and across
// calls, which is all the feeds need.
type StoreGateway struct {
	store *CollectionClient
	now   func() time.Time
}

func NewStoreGateway(store *CollectionClient) *StoreGateway {
	return &StoreGateway{store: store, now: time.Now}
}

// CheckUsernameExists reports whether any user already holds username.
// It fails open: a transport error counts as "not taken" so signup is never
// blocked on a flaky availability check. That choice can admit duplicate
// usernames; see also the signup race below.
func (g *StoreGateway) CheckUsernameExists(ctx context.Context, username string) bool {
	records, err := g.store.QueryEqual(ctx, usersCollection, "username", username)
	if err != nil {
		log.Printf("⚠️ username pre-check failed, allowing signup to proceed: %v", err)
		return false
	}
	return len(records) > 0
}

// Signup writes a new user record with an empty card list and returns it
// with the store-assigned key. There is deliberately no existence re-check
// at write time: two concurrent signups with the same username can both
// succeed.
func (g *StoreGateway) Signup(ctx context.Context, username, email, phone string) (*models.User, error) {
	user := models.User{
		Username: username,
		Email:    email,
		Phone:    phone,
		Cards:    []string{},
	}

	key, err := g.store.Push(ctx, usersCollection, user)
	if err != nil {
		return nil, fmt.Errorf("signup write failed: %w", err)
	}

	user.ID = key
	return &user, nil
}

// Login scans the whole users collection for the first record whose
// username, email, or phone equals identifier. There is no password
// verification in this design. A nil user with a nil error means
// "not found" — never an error.
func (g *StoreGateway) Login(ctx context.Context, identifier string) (*models.User, error) {
	records, err := g.store.GetCollection(ctx, usersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	for _, key := range sortedKeys(records) {
		var u models.User
		if err := json.Unmarshal(records[key], &u); err != nil {
			log.Printf("⚠️ skipping malformed user record %s: %v", key, err)
			continue
		}
		if u.Username == identifier || u.Email == identifier || u.Phone == identifier {
			u.ID = key
			return &u, nil
		}
	}
	return nil, nil
}

// ListVideos fetches the whole video catalog, attaches store keys and
// derived fields, and optionally filters to an exact category.
func (g *StoreGateway) ListVideos(ctx context.Context, category string) ([]models.Video, error) {
	records, err := g.store.GetCollection(ctx, videosCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch videos: %w", err)
	}

	videos := make([]models.Video, 0, len(records))
	for _, key := range sortedKeys(records) {
		var v models.Video
		if err := json.Unmarshal(records[key], &v); err != nil {
			log.Printf("⚠️ skipping malformed video record %s: %v", key, err)
			continue
		}
		v.ID = key
		if v.Thumbnail == "" {
			v.Thumbnail = fmt.Sprintf("https://picsum.photos/seed/%s/160/90", key)
		}
		v.Slug = slug.Make(v.Title)
		videos = append(videos, v)
	}
	return FilterByCategory(videos, category), nil
}

// ListComments fetches all comments and filters to the given video.
// The result is unordered; callers sort for display.
func (g *StoreGateway) ListComments(ctx context.Context, videoID string) ([]models.Comment, error) {
	records, err := g.store.GetCollection(ctx, commentsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	comments := make([]models.Comment, 0)
	for _, key := range sortedKeys(records) {
		var cm models.Comment
		if err := json.Unmarshal(records[key], &cm); err != nil {
			log.Printf("⚠️ skipping malformed comment record %s: %v", key, err)
			continue
		}
		if cm.VideoID != videoID {
			continue
		}
		cm.ID = key
		comments = append(comments, cm)
	}
	return comments, nil
}

// PostComment stamps the comment with the current wall clock and writes it.
// The timestamp is client-generated, so a wrong clock can produce
// out-of-order comments; that is accepted.
func (g *StoreGateway) PostComment(ctx context.Context, videoID, userID, username, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}

	comment := models.Comment{
		VideoID:   videoID,
		UserID:    userID,
		Username:  username,
		Text:      text,
		CreatedAt: g.now().UTC().Format(time.RFC3339),
	}

	key, err := g.store.Push(ctx, commentsCollection, comment)
	if err != nil {
		return nil, fmt.Errorf("comment write failed: %w", err)
	}

	comment.ID = key
	return &comment, nil
}

// UpdateUserProfile merge-writes the set fields of updates into the user's
// record. The merged record is not returned; callers merge locally.
func (g *StoreGateway) UpdateUserProfile(ctx context.Context, userID string, updates models.UserUpdate) error {
	if err := g.store.Patch(ctx, usersCollection, userID, updates); err != nil {
		return fmt.Errorf("profile update failed: %w", err)
	}
	return nil
}

// SendContactMessage is fire-and-forget: nothing beyond HTTP success is
// confirmed, and nothing here ever reads the submission back.
func (g *StoreGateway) SendContactMessage(ctx context.Context, name, email, message string) error {
	submission := models.ContactSubmission{Name: name, Email: email, Message: message}
	if _, err := g.store.Push(ctx, contactCollection, submission); err != nil {
		return fmt.Errorf("contact submission failed: %w", err)
	}
	return nil
}

// FilterByCategory returns the videos matching category, or all of them
// when category is empty.
func FilterByCategory(videos []models.Video, category string) []models.Video {
	if category == "" {
		return videos
	}
	filtered := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// SortCommentsNewestFirst orders comments for display, newest first.
// Timestamps that fail to parse sort by raw string as a fallback.
func SortCommentsNewestFirst(comments []models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		ti, errI := time.Parse(time.RFC3339, comments[i].CreatedAt)
		tj, errJ := time.Parse(time.RFC3339, comments[j].CreatedAt)
		if errI != nil || errJ != nil {
			return comments[i].CreatedAt > comments[j].CreatedAt
		}
		return ti.After(tj)
	})
}

func sortedKeys(records map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(records))
	for k := range records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
