package services

import (
	"fmt"

	"storefront/internal/dto"
	"storefront/internal/mapping"
	"storefront/internal/models"
	"storefront/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic related to users and their credentials.
type UserService struct {
	repo     repositories.UserRepository
	events   EventPublisher
	hashCost int
}

// NewUserService creates a new UserService. events may be nil.
func NewUserService(repo repositories.UserRepository, events EventPublisher) *UserService {
	return &UserService{
		repo:     repo,
		events:   events,
		hashCost: bcrypt.DefaultCost,
	}
}

// WithHashCost sets the bcrypt cost used for new passwords.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

// FindAll retrieves all users with their credentials.
func (s *UserService) FindAll() ([]dto.UserDto, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return mapping.UsersToDtos(users), nil
}

// FindByID retrieves a single user by ID.
func (s *UserService) FindByID(id int) (*dto.UserDto, error) {
	user, err := findOrFail(DomainUser, id, s.repo.FindByID)
	if err != nil {
		return nil, err
	}
	return mapping.UserToDto(user), nil
}

// FindByUsername retrieves the user whose credential carries username.
func (s *UserService) FindByUsername(username string) (*dto.UserDto, error) {
	user, err := findOrFail(DomainUser, username, s.repo.FindByCredentialUsername)
	if err != nil {
		return nil, err
	}
	return mapping.UserToDto(user), nil
}

// Save creates or replaces a user together with its credential.
func (s *UserService) Save(d *dto.UserDto) (*dto.UserDto, error) {
	return s.save(d, "user.saved")
}

// Update replaces the user at the ID carried by d. When that user exists, its
// credential id and password are kept where the form leaves them empty.
func (s *UserService) Update(d *dto.UserDto) (*dto.UserDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	user, err := mapping.UserToEntity(d)
	if err != nil {
		return nil, err
	}
	if user.UserID != 0 {
		existing, err := s.repo.FindByID(user.UserID)
		if err != nil {
			return nil, err
		}
		mergeCredential(existing, user)
	}
	return s.persist(user, "user.updated")
}

// UpdateByID replaces the user stored under id, which must exist. The
// stored credential id and password are kept when the form leaves them empty.
func (s *UserService) UpdateByID(id int, d *dto.UserDto) (*dto.UserDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	existing, err := findOrFail(DomainUser, id, s.repo.FindByID)
	if err != nil {
		return nil, err
	}
	user, err := mapping.UserToEntity(d)
	if err != nil {
		return nil, err
	}
	user.UserID = id
	user.Credential.UserID = id
	mergeCredential(existing, user)
	return s.persist(user, "user.updated")
}

// mergeCredential fills the credential id and password of user from the
// stored credential of existing when the incoming form left them empty.
func mergeCredential(existing, user *models.User) {
	if existing == nil || existing.Credential == nil || user.Credential == nil {
		return
	}
	prev := existing.Credential
	if user.Credential.CredentialID == 0 {
		user.Credential.CredentialID = prev.CredentialID
	}
	if user.Credential.Password == "" {
		user.Credential.Password = prev.Password
	}
}

func (s *UserService) save(d *dto.UserDto, eventType string) (*dto.UserDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	user, err := mapping.UserToEntity(d)
	if err != nil {
		return nil, err
	}
	return s.persist(user, eventType)
}

func (s *UserService) persist(user *models.User, eventType string) (*dto.UserDto, error) {
	if err := s.hashPassword(user.Credential); err != nil {
		return nil, err
	}
	saved, err := s.repo.Save(user)
	if err != nil {
		return nil, err
	}
	publish(s.events, eventType, map[string]any{"userId": saved.UserID})
	return mapping.UserToDto(saved), nil
}

// hashPassword replaces a plain-text password with its bcrypt hash. Values
// that already are bcrypt hashes are kept as they are.
func (s *UserService) hashPassword(c *models.Credential) error {
	if c == nil || c.Password == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(c.Password)); err == nil {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(c.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	c.Password = string(hashed)
	return nil
}

// DeleteByID removes a user and, with it, the credential it owns.
func (s *UserService) DeleteByID(id int) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	publish(s.events, "user.deleted", map[string]any{"userId": id})
	return nil
}
