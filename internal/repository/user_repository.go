package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"edutech/internal/domain"
	"edutech/internal/repository/models"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	// Fallback for drivers that do not expose typed constraint errors.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateUser inserts a new user and assigns its row id. Duplicate username
// or email surfaces as a CONFLICT domain error.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := models.FromDomainUser(user)
	query := `INSERT INTO users (username, password_hash, first_name, last_name, email, avatar_url, onboarding_completed, preferred_language, created_at)
	          VALUES (:username, :password_hash, :first_name, :last_name, :email, :avatar_url, :onboarding_completed, :preferred_language, :created_at)`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("username or email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created user id: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	var row models.User
	query := `SELECT * FROM users WHERE id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Return nil, nil for not found
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return row.ToDomain(), nil
}

// GetUserByUsername retrieves a user by exact username. The comparison is
// case-sensitive: COLLATE BINARY keeps SQLite from applying NOCASE.
func (r *sqlxUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row models.User
	query := `SELECT * FROM users WHERE username = ? COLLATE BINARY`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return row.ToDomain(), nil
}

// GetUserByEmail retrieves a user by exact email.
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row models.User
	query := `SELECT * FROM users WHERE email = ? COLLATE BINARY`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return row.ToDomain(), nil
}

// UpdateUser updates the mutable profile fields of an existing user.
func (r *sqlxUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	row := models.FromDomainUser(user)
	query := `UPDATE users SET
	            avatar_url = :avatar_url,
	            onboarding_completed = :onboarding_completed,
	            preferred_language = :preferred_language
	          WHERE id = :id`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("user not found: %d", user.ID))
	}

	return nil
}
