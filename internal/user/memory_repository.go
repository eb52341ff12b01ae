package user

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]User
	byName map[string]int64
}

// NewMemoryRepository builds an in-memory user store for tests and
// development mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		users:  make(map[int64]User),
		byName: make(map[string]int64),
	}
}

func (r *memoryRepository) Insert(_ context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[user.Name]; exists {
		return User{}, ErrNameTaken
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	r.byName[user.Name] = user.ID
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByName(_ context.Context, name string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.users[id], nil
}
