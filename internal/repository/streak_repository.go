package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"edutech/internal/domain"
	"edutech/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxStreakRepository implements domain.StreakRepository using sqlx.
type sqlxStreakRepository struct {
	db *sqlx.DB
}

// NewSQLXStreakRepository creates a new instance of sqlxStreakRepository.
func NewSQLXStreakRepository(db *sqlx.DB) domain.StreakRepository {
	return &sqlxStreakRepository{db: db}
}

// CreateStreak inserts the single streak record for a user. UNIQUE(user_id)
// on the table guards the one-record-per-user invariant.
func (r *sqlxStreakRepository) CreateStreak(ctx context.Context, streak *domain.LearningStreak) (*domain.LearningStreak, error) {
	row := models.FromDomainStreak(streak)
	query := `INSERT INTO learning_streaks (user_id, current_streak, longest_streak, last_activity)
	          VALUES (:user_id, :current_streak, :longest_streak, :last_activity)`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError(fmt.Sprintf("streak already exists for user %d", streak.UserID))
		}
		return nil, fmt.Errorf("failed to create streak: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created streak id: %w", err)
	}

	created := *streak
	created.ID = id
	return &created, nil
}

// GetStreakByUser retrieves the streak record for a user.
func (r *sqlxStreakRepository) GetStreakByUser(ctx context.Context, userID int64) (*domain.LearningStreak, error) {
	var row models.LearningStreak
	query := `SELECT * FROM learning_streaks WHERE user_id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get streak by user: %w", err)
	}
	return row.ToDomain(), nil
}

// UpdateStreak persists an advanced or reset streak.
func (r *sqlxStreakRepository) UpdateStreak(ctx context.Context, streak *domain.LearningStreak) error {
	row := models.FromDomainStreak(streak)
	query := `UPDATE learning_streaks SET
	            current_streak = :current_streak,
	            longest_streak = :longest_streak,
	            last_activity = :last_activity
	          WHERE id = :id`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to update streak: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("streak not found: %d", streak.ID))
	}

	return nil
}
