// Package memory contains an in-process subscription store for development and tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"danyowa/internal/domain/entity"
	"danyowa/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionStore)(nil)

// SubscriptionStore keeps records in a map keyed by user id.
// Records are copied on the way in and out so callers never share state with the store.
type SubscriptionStore struct {
	mu      sync.RWMutex
	records map[string]*entity.SubscriptionRecord
}

// NewSubscriptionStore creates an empty store.
func NewSubscriptionStore() *SubscriptionStore {
	return &SubscriptionStore{
		records: make(map[string]*entity.SubscriptionRecord),
	}
}

// ListSubscriptions returns a snapshot of every record ordered by user id.
func (s *SubscriptionStore) ListSubscriptions(_ context.Context) ([]*entity.SubscriptionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*entity.SubscriptionRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, cloneRecord(record))
	}
	slices.SortFunc(records, func(a, b *entity.SubscriptionRecord) int {
		return strings.Compare(a.UserID, b.UserID)
	})

	return records, nil
}

// SaveSubscription creates or replaces the record of record.UserID.
func (s *SubscriptionStore) SaveSubscription(_ context.Context, record *entity.SubscriptionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.UserID] = cloneRecord(record)

	return nil
}

// FindSubscription retrieves the record of a user.
func (s *SubscriptionStore) FindSubscription(_ context.Context, userID string) (*entity.SubscriptionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[userID]
	if !ok {
		return nil, repository.ErrSubscriptionNotFound
	}

	return cloneRecord(record), nil
}

// DeleteSubscription removes the record of a user.
func (s *SubscriptionStore) DeleteSubscription(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[userID]; !ok {
		return repository.ErrSubscriptionNotFound
	}
	delete(s.records, userID)

	return nil
}

// DeleteSubscriptionIfEndpoint removes the record of a user while it still holds endpoint.
func (s *SubscriptionStore) DeleteSubscriptionIfEndpoint(_ context.Context, userID, endpoint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[userID]
	if !ok || record.Subscription.Endpoint != endpoint {
		return repository.ErrSubscriptionNotFound
	}
	delete(s.records, userID)

	return nil
}

// Close is a no-op.
func (s *SubscriptionStore) Close() error {
	return nil
}

func cloneRecord(record *entity.SubscriptionRecord) *entity.SubscriptionRecord {
	cloned := *record
	cloned.Children = slices.Clone(record.Children)
	cloned.Schedules = slices.Clone(record.Schedules)
	cloned.BriefingSettings.Days = slices.Clone(record.BriefingSettings.Days)

	for idx := range cloned.Schedules {
		if minutes := cloned.Schedules[idx].PickupNotifyMinutesBefore; minutes != nil {
			value := *minutes
			cloned.Schedules[idx].PickupNotifyMinutesBefore = &value
		}
	}
	if expiry := record.Subscription.ExpirationTime; expiry != nil {
		value := *expiry
		cloned.Subscription.ExpirationTime = &value
	}

	return &cloned
}
