package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edutech/internal/cache"
	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/logger"

	"go.uber.org/zap"
)

// CourseService defines the interface for catalog reads.
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error)
	GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error)
	GetCoursesByCategory(ctx context.Context, category string) ([]dto.CourseResponse, error)
}

type courseServiceImpl struct {
	courseRepo domain.CourseRepository
	cache      domain.Cache
	cacheTTL   time.Duration
}

// NewCourseService creates a new instance of CourseService. cacheClient may
// be nil, in which case every read goes to the repository.
func NewCourseService(courseRepo domain.CourseRepository, cacheClient domain.Cache, cacheTTL time.Duration) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		cache:      cacheClient,
		cacheTTL:   cacheTTL,
	}
}

// GetAllCourses returns the catalog in insertion order, serving from the
// cache when possible. Cache failures degrade to repository reads.
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	key := cache.GenerateCacheKey("course", "catalog", "all")
	if cached, ok := s.getCachedList(ctx, key); ok {
		return cached, nil
	}

	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	resp := dto.NewCourseListResponse(courses)
	s.setCachedList(ctx, key, resp)
	return resp, nil
}

// GetCourse returns a single catalog entry.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("course not found: %d", id))
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// GetCoursesByCategory returns catalog entries with an exact category match.
// An unknown category yields an empty list, not an error.
func (s *courseServiceImpl) GetCoursesByCategory(ctx context.Context, category string) ([]dto.CourseResponse, error) {
	key := cache.GenerateCacheKey("course", "catalog", "category", category)
	if cached, ok := s.getCachedList(ctx, key); ok {
		return cached, nil
	}

	courses, err := s.courseRepo.ListCoursesByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses by category: %w", err)
	}

	resp := dto.NewCourseListResponse(courses)
	s.setCachedList(ctx, key, resp)
	return resp, nil
}

func (s *courseServiceImpl) getCachedList(ctx context.Context, key string) ([]dto.CourseResponse, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Course cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var out []dto.CourseResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Get().Warn("Course cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return out, true
}

func (s *courseServiceImpl) setCachedList(ctx context.Context, key string, list []dto.CourseResponse) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		logger.Get().Warn("Course cache write failed", zap.String("key", key), zap.Error(err))
	}
}
