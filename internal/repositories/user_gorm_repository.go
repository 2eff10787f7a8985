package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// FindAll retrieves all users with their credentials.
func (r *GORMUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Preload("Credential").Order("user_id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}

// FindByID retrieves a user by ID from the database.
func (r *GORMUserRepository) FindByID(id int) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Credential").First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// FindByCredentialUsername retrieves the user owning the credential with the given username.
func (r *GORMUserRepository) FindByCredentialUsername(username string) (*models.User, error) {
	owner := r.db.Model(&models.Credential{}).Select("user_id").Where("username = ?", username)

	var user models.User
	if err := r.db.Preload("Credential").Where("user_id IN (?)", owner).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// Save creates or replaces the user and its credential in one transaction.
func (r *GORMUserRepository) Save(user *models.User) (*models.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if c := user.Credential; c != nil && c.CredentialID == 0 && user.UserID != 0 {
			// Keep the existing credential row instead of adding a second one for the same user.
			var existing models.Credential
			err := tx.Select("credential_id").First(&existing, "user_id = ?", user.UserID).Error
			switch {
			case err == nil:
				c.CredentialID = existing.CredentialID
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(user).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	saved, err := r.FindByID(user.UserID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, fmt.Errorf("user with ID %d vanished after save", user.UserID)
	}
	return saved, nil
}

// DeleteByID deletes a user and its credential. Deleting a missing user is a no-op.
func (r *GORMUserRepository) DeleteByID(id int) error {
	if err := r.db.Select("Credential").Delete(&models.User{UserID: id}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Delete deletes the given user and its credential.
func (r *GORMUserRepository) Delete(user *models.User) error {
	return r.DeleteByID(user.UserID)
}
