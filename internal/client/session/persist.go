package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gamenews/internal/client/securestore"
)

// commitSession persists token and profile as one unit. With a Batch store
// this is a single transaction. Otherwise the token is written first and
// put back to its previous value if the profile write fails.
func (m *Manager) commitSession(ctx context.Context, token string, user *User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode profile: %w", ErrPersistence, err)
	}

	if b, ok := m.store.(securestore.Batch); ok {
		if err := b.SetMany(ctx, map[string]string{TokenKey: token, ProfileKey: string(raw)}); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		return nil
	}

	prevToken, hadToken, err := m.store.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := m.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err := m.store.Set(ctx, ProfileKey, string(raw)); err != nil {
		var rbErr error
		if hadToken {
			rbErr = m.store.Set(ctx, TokenKey, prevToken)
		} else {
			rbErr = m.store.Delete(ctx, TokenKey)
		}
		if rbErr != nil {
			m.log.Error(ctx, "failed to roll back session token", "error", rbErr)
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// clearSession removes both keys. Without a Batch store both deletes are
// attempted even if the first one fails.
func (m *Manager) clearSession(ctx context.Context) error {
	if b, ok := m.store.(securestore.Batch); ok {
		if err := b.DeleteMany(ctx, TokenKey, ProfileKey); err != nil {
			return fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		return nil
	}

	if err := errors.Join(
		m.store.Delete(ctx, TokenKey),
		m.store.Delete(ctx, ProfileKey),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

// loadSession reads the persisted pair. It returns nil for "no session",
// cleaning up a half-written pair or an unreadable profile.
func (m *Manager) loadSession(ctx context.Context) *User {
	token, hasToken, err := m.store.Get(ctx, TokenKey)
	if err != nil {
		m.log.Error(ctx, "failed to read session token", "error", err)
		return nil
	}
	raw, hasProfile, err := m.store.Get(ctx, ProfileKey)
	if err != nil {
		m.log.Error(ctx, "failed to read session profile", "error", err)
		return nil
	}

	if !hasToken && !hasProfile {
		return nil
	}

	var user User
	switch {
	case hasToken != hasProfile:
		m.log.Warn(ctx, "discarding partial session", "has_token", hasToken, "has_profile", hasProfile)
	case token == "":
		m.log.Warn(ctx, "discarding session with empty token")
	default:
		err := json.Unmarshal([]byte(raw), &user)
		if err == nil {
			err = user.validate()
		}
		if err == nil {
			return &user
		}
		m.log.Warn(ctx, "discarding unreadable session profile", "error", err)
	}

	if err := m.clearSession(ctx); err != nil {
		m.log.Error(ctx, "failed to clear partial session", "error", err)
	}
	return nil
}
