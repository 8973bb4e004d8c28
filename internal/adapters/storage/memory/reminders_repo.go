package memory

import (
	"context"
	"sync"

	"walnie-api/internal/domain/reminders"
)

type remindersRepo struct {
	mu     sync.RWMutex
	policy *reminders.Policy
}

func NewRemindersRepo() reminders.Repository {
	return &remindersRepo{}
}

func (r *remindersRepo) Get(ctx context.Context) (reminders.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.policy == nil {
		return reminders.Policy{}, reminders.ErrNotFound
	}
	return *r.policy, nil
}

func (r *remindersRepo) Set(ctx context.Context, p reminders.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.policy = &p
	return nil
}
