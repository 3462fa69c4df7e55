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

// sqlxEnrollmentRepository implements domain.EnrollmentRepository using sqlx.
type sqlxEnrollmentRepository struct {
	db *sqlx.DB
}

// NewSQLXEnrollmentRepository creates a new instance of sqlxEnrollmentRepository.
func NewSQLXEnrollmentRepository(db *sqlx.DB) domain.EnrollmentRepository {
	return &sqlxEnrollmentRepository{db: db}
}

// CreateEnrollment inserts an enrollment record. The schema deliberately has
// no UNIQUE(user_id, course_id): repeat enrollments create distinct rows.
func (r *sqlxEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	row := models.FromDomainEnrollment(enrollment)
	query := `INSERT INTO user_courses (user_id, course_id, progress, is_completed)
	          VALUES (:user_id, :course_id, :progress, :is_completed)`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created enrollment id: %w", err)
	}

	created := *enrollment
	created.ID = id
	return &created, nil
}

// GetEnrollmentByID retrieves an enrollment by id.
func (r *sqlxEnrollmentRepository) GetEnrollmentByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	var row models.Enrollment
	query := `SELECT * FROM user_courses WHERE id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get enrollment by id: %w", err)
	}
	return row.ToDomain(), nil
}

// ListEnrollmentsByUser returns a user's enrollments in creation order.
func (r *sqlxEnrollmentRepository) ListEnrollmentsByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error) {
	var rows []models.Enrollment
	query := `SELECT * FROM user_courses WHERE user_id = ? ORDER BY id`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list enrollments by user: %w", err)
	}

	out := make([]*domain.Enrollment, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// UpdateEnrollment persists progress and the derived completion flag.
func (r *sqlxEnrollmentRepository) UpdateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	row := models.FromDomainEnrollment(enrollment)
	query := `UPDATE user_courses SET progress = :progress, is_completed = :is_completed WHERE id = :id`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("enrollment not found: %d", enrollment.ID))
	}

	return nil
}
