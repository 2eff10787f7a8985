package repositories

import "storefront/internal/models"

// UserRepository defines the interface for user data access. A user is
// always stored and loaded together with its credential.
type UserRepository interface {
	FindAll() ([]models.User, error)
	FindByID(id int) (*models.User, error)
	FindByCredentialUsername(username string) (*models.User, error)
	Save(user *models.User) (*models.User, error)
	DeleteByID(id int) error
	Delete(user *models.User) error
}
