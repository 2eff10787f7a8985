package mapping

import (
	"errors"

	"storefront/internal/dto"
	"storefront/internal/models"
)

// ErrMissingCredential is returned when a user form arrives without the
// credential it must own.
var ErrMissingCredential = errors.New("user must carry a credential")

// UserToDto maps a user and, when present, its credential.
func UserToDto(u *models.User) *dto.UserDto {
	if u == nil {
		return nil
	}
	out := &dto.UserDto{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	if c := u.Credential; c != nil {
		out.Credential = &dto.CredentialDto{
			CredentialID:            c.CredentialID,
			Username:                c.Username,
			Password:                c.Password,
			RoleBasedAuthority:      string(c.RoleBasedAuthority),
			IsEnabled:               c.IsEnabled,
			IsAccountNonExpired:     c.IsAccountNonExpired,
			IsAccountNonLocked:      c.IsAccountNonLocked,
			IsCredentialsNonExpired: c.IsCredentialsNonExpired,
		}
	}
	return out
}

// UserToEntity builds the user, then its credential, then points the
// credential back at the user by id. A nil form maps to nil.
func UserToEntity(d *dto.UserDto) (*models.User, error) {
	if d == nil {
		return nil, nil
	}
	if d.Credential == nil {
		return nil, ErrMissingCredential
	}
	u := &models.User{
		UserID:    d.UserID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		ImageURL:  d.ImageURL,
		Email:     d.Email,
		Phone:     d.Phone,
	}
	c := d.Credential
	u.Credential = &models.Credential{
		CredentialID:            c.CredentialID,
		Username:                c.Username,
		Password:                c.Password,
		RoleBasedAuthority:      models.RoleBasedAuthority(c.RoleBasedAuthority),
		IsEnabled:               c.IsEnabled,
		IsAccountNonExpired:     c.IsAccountNonExpired,
		IsAccountNonLocked:      c.IsAccountNonLocked,
		IsCredentialsNonExpired: c.IsCredentialsNonExpired,
		UserID:                  u.UserID,
	}
	return u, nil
}

func UsersToDtos(users []models.User) []dto.UserDto {
	out := make([]dto.UserDto, 0, len(users))
	for i := range users {
		out = append(out, *UserToDto(&users[i]))
	}
	return out
}
