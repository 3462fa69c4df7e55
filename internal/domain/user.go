package domain

import (
	"context"
	"time"
)

// User represents a registered learner.
type User struct {
	ID                  int64
	Username            string
	PasswordHash        string
	FirstName           string
	LastName            string
	Email               string
	AvatarURL           string
	OnboardingCompleted bool
	PreferredLanguage   string
	CreatedAt           time.Time
}

// NewUser creates a new User instance. The ID is assigned by the store.
func NewUser(username, passwordHash, firstName, lastName, email string) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		CreatedAt:    time.Now(),
	}
}

// Validate validates the user
func (u *User) Validate() error {
	var errs ValidationErrors
	if u.Username == "" {
		errs = append(errs, NewMissingFieldError("username"))
	}
	if u.PasswordHash == "" {
		errs = append(errs, NewMissingFieldError("password"))
	}
	if u.Email == "" {
		errs = append(errs, NewMissingFieldError("email"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
// Lookups by username/email are case-sensitive exact matches; a missing
// record is reported as (nil, nil).
type UserRepository interface {
	// CreateUser assigns the next user ID and persists the record. It fails
	// with a CONFLICT DomainError when the username or email is taken.
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
