package users

import (
	"sort"
	"sync"
)

// InMemRepository keeps the registry in a map. It backs the service tests
// and small dev setups, the real deployment uses the bolt store.
type InMemRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		users: make(map[string]User),
	}
}

func (r *InMemRepository) Get(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}

	c := user
	c.Topics = append([]string(nil), user.Topics...)
	return &c, nil
}

func (r *InMemRepository) Upsert(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *user
	c.Topics = append([]string(nil), user.Topics...)
	r.users[user.Email] = c
	return nil
}

func (r *InMemRepository) List() ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emails := make([]string, 0, len(r.users))
	for email := range r.users {
		emails = append(emails, email)
	}
	// Same order as a bolt cursor
	sort.Strings(emails)

	users := make([]*User, len(emails))
	for i, email := range emails {
		user := r.users[email]
		user.Topics = append([]string(nil), user.Topics...)
		users[i] = &user
	}
	return users, nil
}
