// Package session is the process-wide session controller. A logged-in
// administrator lives in exactly one of two slots: the durable slot
// (Redis) when the operator chose "remember me", the scoped in-memory
// slot otherwise. Save enforces that exclusivity by always clearing
// the other slot first.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"collections-backend/internal/models"
)

type Store struct {
	durable Slot
	scoped  Slot
	ttl     time.Duration
}

// NewStore builds the session controller. durable may be the scoped
// slot's type when Redis is down; exclusivity still holds because the
// two slots remain distinct instances.
func NewStore(durable, scoped Slot, ttl time.Duration) *Store {
	return &Store{durable: durable, scoped: scoped, ttl: ttl}
}

// Save stores the administrator under id in the slot selected by
// remember, clearing any copy in the other slot first.
func (s *Store) Save(ctx context.Context, id string, admin *models.Administrator, remember bool) error {
	payload, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if remember {
		if err := s.scoped.Delete(ctx, id); err != nil {
			return fmt.Errorf("session clear scoped: %w", err)
		}
		if err := s.durable.Put(ctx, id, payload, s.ttl); err != nil {
			return fmt.Errorf("session save durable: %w", err)
		}
		return nil
	}

	if err := s.durable.Delete(ctx, id); err != nil {
		return fmt.Errorf("session clear durable: %w", err)
	}
	if err := s.scoped.Put(ctx, id, payload, s.ttl); err != nil {
		return fmt.Errorf("session save scoped: %w", err)
	}
	return nil
}

// Load returns the administrator for id, checking the durable slot
// first, then the scoped slot.
func (s *Store) Load(ctx context.Context, id string) (*models.Administrator, bool, error) {
	for _, slot := range []Slot{s.durable, s.scoped} {
		payload, ok, err := slot.Get(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("session load: %w", err)
		}
		if !ok {
			continue
		}
		var admin models.Administrator
		if err := json.Unmarshal(payload, &admin); err != nil {
			return nil, false, fmt.Errorf("session decode: %w", err)
		}
		return &admin, true, nil
	}
	return nil, false, nil
}

// Refresh rewrites the administrator copy in whichever slot currently
// holds the session. Used after credential updates so the live session
// reflects the new username.
func (s *Store) Refresh(ctx context.Context, id string, admin *models.Administrator) error {
	payload, err := json.Marshal(admin)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	for _, slot := range []Slot{s.durable, s.scoped} {
		_, ok, err := slot.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("session refresh: %w", err)
		}
		if ok {
			return slot.Put(ctx, id, payload, s.ttl)
		}
	}
	return nil
}

// Clear removes the session from both slots.
func (s *Store) Clear(ctx context.Context, id string) error {
	if err := s.durable.Delete(ctx, id); err != nil {
		return fmt.Errorf("session clear durable: %w", err)
	}
	if err := s.scoped.Delete(ctx, id); err != nil {
		return fmt.Errorf("session clear scoped: %w", err)
	}
	return nil
}
