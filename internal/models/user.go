package models

// RoleBasedAuthority is the role granted by a credential.
type RoleBasedAuthority string

const (
	RoleUser  RoleBasedAuthority = "ROLE_USER"
	RoleAdmin RoleBasedAuthority = "ROLE_ADMIN"
)

// User represents a customer account. It owns exactly one Credential.
type User struct {
	UserID     int         `gorm:"primaryKey;column:user_id"`
	FirstName  string      `gorm:"type:varchar(255)"`
	LastName   string      `gorm:"type:varchar(255)"`
	ImageURL   string      `gorm:"type:varchar(255)"`
	Email      string      `gorm:"type:varchar(255)"`
	Phone      string      `gorm:"type:varchar(255)"`
	Credential *Credential `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// Credential holds the login data of a user. UserID is the back-reference to
// the owning user: an identity only, never a handle on the User itself.
type Credential struct {
	CredentialID            int                `gorm:"primaryKey;column:credential_id"`
	Username                string             `gorm:"uniqueIndex;type:varchar(255)"`
	Password                string             `gorm:"type:varchar(255)"`
	RoleBasedAuthority      RoleBasedAuthority `gorm:"type:varchar(32)"`
	IsEnabled               bool
	IsAccountNonExpired     bool
	IsAccountNonLocked      bool
	IsCredentialsNonExpired bool
	UserID                  int `gorm:"column:user_id;uniqueIndex"`
}

// OwnedBy reports whether the credential's back-reference points at user.
func (c *Credential) OwnedBy(user *User) bool {
	return c != nil && user != nil && c.UserID == user.UserID
}
