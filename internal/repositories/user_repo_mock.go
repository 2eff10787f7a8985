package repositories

import (
	"slices"
	"sync"

	"storefront/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users            map[int]models.User
	nextUserID       int
	nextCredentialID int
	mu               sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:            make(map[int]models.User),
		nextUserID:       1,
		nextCredentialID: 1,
	}
}

func (r *MockUserRepository) FindAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		userList = append(userList, copyUser(u))
	}
	slices.SortFunc(userList, func(a, b models.User) int { return a.UserID - b.UserID })
	return userList, nil
}

func (r *MockUserRepository) FindByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	u := copyUser(user)
	return &u, nil
}

func (r *MockUserRepository) FindByCredentialUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Credential != nil && user.Credential.Username == username {
			u := copyUser(user)
			return &u, nil
		}
	}
	return nil, nil
}

// Save stores the user and its credential under a single lock, assigning
// IDs to either when missing.
func (r *MockUserRepository) Save(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyUser(*user)
	if stored.UserID == 0 {
		stored.UserID = r.nextUserID
	}
	if stored.UserID >= r.nextUserID {
		r.nextUserID = stored.UserID + 1
	}
	if c := stored.Credential; c != nil {
		if c.CredentialID == 0 {
			if prev, ok := r.users[stored.UserID]; ok && prev.Credential != nil {
				c.CredentialID = prev.Credential.CredentialID
			} else {
				c.CredentialID = r.nextCredentialID
			}
		}
		if c.CredentialID >= r.nextCredentialID {
			r.nextCredentialID = c.CredentialID + 1
		}
		c.UserID = stored.UserID
	}
	r.users[stored.UserID] = stored
	out := copyUser(stored)
	return &out, nil
}

func (r *MockUserRepository) DeleteByID(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

func (r *MockUserRepository) Delete(user *models.User) error {
	return r.DeleteByID(user.UserID)
}

func copyUser(u models.User) models.User {
	if u.Credential != nil {
		c := *u.Credential
		u.Credential = &c
	}
	return u
}
