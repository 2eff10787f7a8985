package dto

// CredentialDto is the transfer form of a user's credential.
type CredentialDto struct {
	CredentialID            int    `json:"credentialId"`
	Username                string `json:"username" validate:"required,max=255"`
	Password                string `json:"password,omitempty"`
	RoleBasedAuthority      string `json:"roleBasedAuthority" validate:"omitempty,oneof=ROLE_USER ROLE_ADMIN"`
	IsEnabled               bool   `json:"isEnabled"`
	IsAccountNonExpired     bool   `json:"isAccountNonExpired"`
	IsAccountNonLocked      bool   `json:"isAccountNonLocked"`
	IsCredentialsNonExpired bool   `json:"isCredentialsNonExpired"`
}

// UserDto is the transfer form of a user. A user is always sent and received
// together with its credential.
type UserDto struct {
	UserID     int            `json:"userId"`
	FirstName  string         `json:"firstName" validate:"omitempty,max=255"`
	LastName   string         `json:"lastName" validate:"omitempty,max=255"`
	ImageURL   string         `json:"imageUrl" validate:"omitempty,max=255"`
	Email      string         `json:"email" validate:"omitempty,email"`
	Phone      string         `json:"phone" validate:"omitempty,max=255"`
	Credential *CredentialDto `json:"credential,omitempty" validate:"required"`
}

// Collection wraps list responses the way the gateway clients expect.
type Collection[T any] struct {
	Collection []T `json:"collection"`
}
