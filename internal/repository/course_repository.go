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

// sqlxCourseRepository implements domain.CourseRepository using sqlx.
type sqlxCourseRepository struct {
	db *sqlx.DB
}

// NewSQLXCourseRepository creates a new instance of sqlxCourseRepository.
func NewSQLXCourseRepository(db *sqlx.DB) domain.CourseRepository {
	return &sqlxCourseRepository{db: db}
}

// CreateCourse inserts a catalog entry. Courses are only written by the
// seeder; the API exposes no course mutations.
func (r *sqlxCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	row := models.FromDomainCourse(course)
	query := `INSERT INTO courses (title, description, category, image_url, rating, review_count, difficulty)
	          VALUES (:title, :description, :category, :image_url, :rating, :review_count, :difficulty)`

	result, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get created course id: %w", err)
	}

	created := *course
	created.ID = id
	return &created, nil
}

// GetCourseByID retrieves a course by id.
func (r *sqlxCourseRepository) GetCourseByID(ctx context.Context, id int64) (*domain.Course, error) {
	var row models.Course
	query := `SELECT * FROM courses WHERE id = ?`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by id: %w", err)
	}
	return row.ToDomain(), nil
}

// ListCourses returns the catalog in insertion order.
func (r *sqlxCourseRepository) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	var rows []models.Course
	query := `SELECT * FROM courses ORDER BY id`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return coursesToDomain(rows), nil
}

// ListCoursesByCategory returns catalog entries with an exact category
// match, in insertion order.
func (r *sqlxCourseRepository) ListCoursesByCategory(ctx context.Context, category string) ([]*domain.Course, error) {
	var rows []models.Course
	query := `SELECT * FROM courses WHERE category = ? COLLATE BINARY ORDER BY id`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, category); err != nil {
		return nil, fmt.Errorf("failed to list courses by category: %w", err)
	}
	return coursesToDomain(rows), nil
}

func coursesToDomain(rows []models.Course) []*domain.Course {
	out := make([]*domain.Course, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out
}
