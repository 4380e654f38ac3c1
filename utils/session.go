// File: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shiftflow/config"
	"shiftflow/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionPrefix = "sess:"
	lastURLPrefix = "lasturl:"
)

// Principal identifies the authenticated user bound to a session.
type Principal struct {
	UserID   string `json:"userId"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// SessionStore keeps server-side session state in Redis. The cookie only
// carries a signed session id; everything else (flash queue, undo action,
// form state, one-time credentials) lives under per-session keys here.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore returns a store backed by the session Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SessionTTL is the configured session lifetime, shared by the Redis
// records, the signed token, and the session cookie.
func SessionTTL() time.Duration {
	hours := config.AppConfig.SessionTTLHours
	if hours <= 0 {
		hours = 24 * 14
	}
	return time.Duration(hours) * time.Hour
}

func (s *SessionStore) ttl() time.Duration { return SessionTTL() }

func (s *SessionStore) key(sessionID, sub string) string {
	if sub == "" {
		return sessionPrefix + sessionID
	}
	return sessionPrefix + sessionID + ":" + sub
}

// Create opens a new session for the given principal and returns its id.
func (s *SessionStore) Create(ctx context.Context, principal Principal) (string, error) {
	sessionID := uuid.New().String()
	data, err := json.Marshal(principal)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session principal: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sessionID, ""), data, s.ttl()).Err(); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}
	return sessionID, nil
}

// Get retrieves the principal for a session id, or redis.Nil if the session
// is gone or expired.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*Principal, error) {
	data, err := s.client.Get(ctx, s.key(sessionID, "")).Result()
	if err != nil {
		return nil, err
	}
	var principal Principal
	if err := json.Unmarshal([]byte(data), &principal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session principal: %w", err)
	}
	return &principal, nil
}

// Destroy removes the session and all of its sub-state.
func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	keys := []string{
		s.key(sessionID, ""),
		s.key(sessionID, "flash"),
		s.key(sessionID, "action"),
		s.key(sessionID, "form"),
		s.key(sessionID, "credentials"),
	}
	return s.client.Del(ctx, keys...).Err()
}

// PushFlash appends a flash message to the session's queue.
func (s *SessionStore) PushFlash(ctx context.Context, sessionID string, flash models.Flash) error {
	data, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}
	key := s.key(sessionID, "flash")
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.ttl())
	_, err = pipe.Exec(ctx)
	return err
}

// DrainFlashes returns all queued flash messages and clears the queue.
// Reading consumes, matching one-shot display on the next page load.
func (s *SessionStore) DrainFlashes(ctx context.Context, sessionID string) ([]models.Flash, error) {
	key := s.key(sessionID, "flash")
	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}
	raw := items.Val()
	flashes := make([]models.Flash, 0, len(raw))
	for _, item := range raw {
		var flash models.Flash
		if err := json.Unmarshal([]byte(item), &flash); err != nil {
			continue
		}
		flashes = append(flashes, flash)
	}
	return flashes, nil
}

func (s *SessionStore) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal session value: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl()).Err()
}

// popJSON reads and deletes a one-shot value in a single round trip.
func (s *SessionStore) popJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal session value: %w", err)
	}
	return true, nil
}

// SetLastAction records the most recent undoable mutation. It replaces any
// previous record: only the latest action can be undone.
func (s *SessionStore) SetLastAction(ctx context.Context, sessionID string, action models.LastAction) error {
	return s.setJSON(ctx, s.key(sessionID, "action"), action)
}

// PopLastAction consumes the undoable action, if any.
func (s *SessionStore) PopLastAction(ctx context.Context, sessionID string) (*models.LastAction, error) {
	var action models.LastAction
	ok, err := s.popJSON(ctx, s.key(sessionID, "action"), &action)
	if err != nil || !ok {
		return nil, err
	}
	return &action, nil
}

// PeekLastAction reads the undoable action without consuming it, for the
// page-state can_undo flag.
func (s *SessionStore) PeekLastAction(ctx context.Context, sessionID string) (*models.LastAction, error) {
	data, err := s.client.Get(ctx, s.key(sessionID, "action")).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var action models.LastAction
	if err := json.Unmarshal([]byte(data), &action); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session value: %w", err)
	}
	return &action, nil
}

// ClearLastAction drops the undo record without consuming it.
func (s *SessionStore) ClearLastAction(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID, "action")).Err()
}

// SetFormState stashes rejected shift-form input so the next page load can
// re-open the form pre-filled.
func (s *SessionStore) SetFormState(ctx context.Context, sessionID string, state models.ShiftFormState) error {
	return s.setJSON(ctx, s.key(sessionID, "form"), state)
}

// PopFormState consumes stashed form state, if any.
func (s *SessionStore) PopFormState(ctx context.Context, sessionID string) (*models.ShiftFormState, error) {
	var state models.ShiftFormState
	ok, err := s.popJSON(ctx, s.key(sessionID, "form"), &state)
	if err != nil || !ok {
		return nil, err
	}
	return &state, nil
}

// SetOneTimeCredentials stashes a freshly generated employee password for a
// single display on the directory page.
func (s *SessionStore) SetOneTimeCredentials(ctx context.Context, sessionID string, creds models.OneTimeCredentials) error {
	return s.setJSON(ctx, s.key(sessionID, "credentials"), creds)
}

// PopOneTimeCredentials consumes the stashed credentials, if any.
func (s *SessionStore) PopOneTimeCredentials(ctx context.Context, sessionID string) (*models.OneTimeCredentials, error) {
	var creds models.OneTimeCredentials
	ok, err := s.popJSON(ctx, s.key(sessionID, "credentials"), &creds)
	if err != nil || !ok {
		return nil, err
	}
	return &creds, nil
}

// SetLastScheduleURL remembers the manager's most recent calendar URL, keyed
// by user so it survives re-login.
func (s *SessionStore) SetLastScheduleURL(ctx context.Context, userID, url string) error {
	return s.client.Set(ctx, lastURLPrefix+userID, url, s.ttl()).Err()
}

// LastScheduleURL returns the remembered calendar URL, or "" when none is set.
func (s *SessionStore) LastScheduleURL(ctx context.Context, userID string) (string, error) {
	url, err := s.client.Get(ctx, lastURLPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return url, nil
}
