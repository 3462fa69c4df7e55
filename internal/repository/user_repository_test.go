package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"edutech/internal/domain"
	"edutech/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupUserTestDB creates a new sqlx.DB instance and sqlmock for user repository testing.
func setupUserTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

// --- Tests for Converter Functions ---

func TestUserModelRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	domainUser := &domain.User{
		ID:                  7,
		Username:            "alex",
		PasswordHash:        "hashed",
		FirstName:           "Alex",
		LastName:            "Johnson",
		Email:               "alex@example.com",
		AvatarURL:           "https://example.com/avatar.png",
		OnboardingCompleted: true,
		PreferredLanguage:   "English",
		CreatedAt:           now,
	}

	row := models.FromDomainUser(domainUser)
	assert.Equal(t, domainUser.Username, row.Username)
	assert.True(t, row.AvatarURL.Valid)
	assert.True(t, row.PreferredLanguage.Valid)

	back := row.ToDomain()
	assert.Equal(t, domainUser, back)

	// Empty optional fields map to invalid NullStrings.
	domainUser.AvatarURL = ""
	domainUser.PreferredLanguage = ""
	row = models.FromDomainUser(domainUser)
	assert.False(t, row.AvatarURL.Valid)
	assert.False(t, row.PreferredLanguage.Valid)
}

// --- Tests for Repository Methods ---

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password_hash", "first_name", "last_name", "email", "avatar_url", "onboarding_completed", "preferred_language", "created_at"}).
		AddRow(u.ID, u.Username, u.PasswordHash, u.FirstName, u.LastName, u.Email, u.AvatarURL, u.OnboardingCompleted, u.PreferredLanguage, u.CreatedAt)
}

func TestSQLXUserRepository_GetUserByID_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	now := time.Now()
	expected := models.User{
		ID:           3,
		Username:     "alex",
		PasswordHash: "hashed",
		FirstName:    "Alex",
		LastName:     "Johnson",
		Email:        "alex@example.com",
		CreatedAt:    now,
	}

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(userRows(expected))

	user, err := repo.GetUserByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, expected.ID, user.ID)
	assert.Equal(t, expected.Email, user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByID_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM users WHERE id = \?`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(context.Background(), 404)

	// Missing rows surface as (nil, nil), not as an error.
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_GetUserByUsername_CaseSensitive(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM users WHERE username = \? COLLATE BINARY`).
		WithArgs("Alex").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByUsername(context.Background(), "Alex")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	domainUser := domain.NewUser("alex", "hashed", "Alex", "Johnson", "alex@example.com")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (username, password_hash, first_name, last_name, email, avatar_url, onboarding_completed, preferred_language, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateUser(context.Background(), domainUser)

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_CreateUser_Conflict(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	domainUser := domain.NewUser("alex", "hashed", "Alex", "Johnson", "alex@example.com")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(errors.New("UNIQUE constraint failed: users.email"))

	created, err := repo.CreateUser(context.Background(), domainUser)

	assert.Nil(t, created)
	assert.Error(t, err)
	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeConflict, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXUserRepository_UpdateUser_NotFound(t *testing.T) {
	db, mock := setupUserTestDB(t)
	repo := NewSQLXUserRepository(db)
	defer db.Close()

	user := &domain.User{ID: 99, Username: "ghost"}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUser(context.Background(), user)

	assert.Error(t, err)
	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
