package user

import (
	"fmt"
	"time"
)

// User is an account holder. Users exclusively own their subscriptions and
// bookmarks; deleting a user cascades to both.
type User struct {
	id             uint
	username       string
	email          string
	passwordHash   string
	displayName    string
	isAdmin        bool
	socialProvider string
	socialID       string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates a local account with an already-hashed password.
func NewUser(username, email, passwordHash, displayName string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username too long (max 50 characters)")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if displayName == "" {
		displayName = username
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewSocialUser creates an account backed by an external identity provider.
// Social accounts carry no usable local password.
func NewSocialUser(username, email, displayName, provider, socialID string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if provider == "" || socialID == "" {
		return nil, fmt.Errorf("social provider and ID are required")
	}
	if displayName == "" {
		displayName = username
	}

	now := time.Now()
	return &User{
		username:       username,
		email:          email,
		displayName:    displayName,
		socialProvider: provider,
		socialID:       socialID,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, username, email, passwordHash, displayName string,
	isAdmin bool, socialProvider, socialID string, createdAt, updatedAt time.Time) (*User, error) {

	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:             id,
		username:       username,
		email:          email,
		passwordHash:   passwordHash,
		displayName:    displayName,
		isAdmin:        isAdmin,
		socialProvider: socialProvider,
		socialID:       socialID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) SocialProvider() string {
	return u.socialProvider
}

func (u *User) SocialID() string {
	return u.socialID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// HasUsablePassword reports whether the account can log in locally.
func (u *User) HasUsablePassword() bool {
	return u.passwordHash != ""
}
