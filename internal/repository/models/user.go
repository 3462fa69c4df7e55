package models

import (
	"database/sql"
	"time"

	"edutech/internal/domain"
	"edutech/internal/util"
)

// User is the users table row.
type User struct {
	ID                  int64          `db:"id"`
	Username            string         `db:"username"`
	PasswordHash        string         `db:"password_hash"`
	FirstName           string         `db:"first_name"`
	LastName            string         `db:"last_name"`
	Email               string         `db:"email"`
	AvatarURL           sql.NullString `db:"avatar_url"`
	OnboardingCompleted bool           `db:"onboarding_completed"`
	PreferredLanguage   sql.NullString `db:"preferred_language"`
	CreatedAt           time.Time      `db:"created_at"`
}

// FromDomainUser maps a domain user onto its row shape.
func FromDomainUser(u *domain.User) *User {
	return &User{
		ID:                  u.ID,
		Username:            u.Username,
		PasswordHash:        u.PasswordHash,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Email:               u.Email,
		AvatarURL:           util.StringToNullString(u.AvatarURL),
		OnboardingCompleted: u.OnboardingCompleted,
		PreferredLanguage:   util.StringToNullString(u.PreferredLanguage),
		CreatedAt:           u.CreatedAt,
	}
}

// ToDomain maps a row back into the domain shape.
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:                  u.ID,
		Username:            u.Username,
		PasswordHash:        u.PasswordHash,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Email:               u.Email,
		AvatarURL:           u.AvatarURL.String,
		OnboardingCompleted: u.OnboardingCompleted,
		PreferredLanguage:   u.PreferredLanguage.String,
		CreatedAt:           u.CreatedAt,
	}
}
