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

// sqlxAchievementRepository implements domain.AchievementRepository using sqlx.
type sqlxAchievementRepository struct {
	db *sqlx.DB
}

// NewSQLXAchievementRepository creates a new instance of sqlxAchievementRepository.
func NewSQLXAchievementRepository(db *sqlx.DB) domain.AchievementRepository {
	return &sqlxAchievementRepository{db: db}
}

// CreateAchievement inserts a badge definition. Only the seeder writes here.
func (r *sqlxAchievementRepository) CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	row := models.FromDomainAchievement(achievement)
	query := `INSERT INTO achievements (title, description, icon, category)
	          VALUES (:title, :description, :icon, :category)`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created achievement id: %w", err)
	}

	created := *achievement
	created.ID = id
	return &created, nil
}

// GetAchievementByID retrieves a badge definition by id.
func (r *sqlxAchievementRepository) GetAchievementByID(ctx context.Context, id int64) (*domain.Achievement, error) {
	var row models.Achievement
	query := `SELECT * FROM achievements WHERE id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get achievement by id: %w", err)
	}
	return row.ToDomain(), nil
}

// ListAchievements returns all badge definitions in insertion order.
func (r *sqlxAchievementRepository) ListAchievements(ctx context.Context) ([]*domain.Achievement, error) {
	var rows []models.Achievement
	query := `SELECT * FROM achievements ORDER BY id`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}

	out := make([]*domain.Achievement, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// sqlxUserAchievementRepository implements domain.UserAchievementRepository
// using sqlx.
type sqlxUserAchievementRepository struct {
	db *sqlx.DB
}

// NewSQLXUserAchievementRepository creates a new instance of sqlxUserAchievementRepository.
func NewSQLXUserAchievementRepository(db *sqlx.DB) domain.UserAchievementRepository {
	return &sqlxUserAchievementRepository{db: db}
}

// CreateUserAchievement records an award. Repeated awards of the same badge
// are intentional and produce distinct rows.
func (r *sqlxUserAchievementRepository) CreateUserAchievement(ctx context.Context, award *domain.UserAchievement) (*domain.UserAchievement, error) {
	row := models.FromDomainUserAchievement(award)
	query := `INSERT INTO user_achievements (user_id, achievement_id, awarded_at)
	          VALUES (:user_id, :achievement_id, :awarded_at)`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create user achievement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created user achievement id: %w", err)
	}

	created := *award
	created.ID = id
	return &created, nil
}

// ListUserAchievementsByUser returns a user's awards in award order.
func (r *sqlxUserAchievementRepository) ListUserAchievementsByUser(ctx context.Context, userID int64) ([]*domain.UserAchievement, error) {
	var rows []models.UserAchievement
	query := `SELECT * FROM user_achievements WHERE user_id = ? ORDER BY id`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list user achievements: %w", err)
	}

	out := make([]*domain.UserAchievement, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}
