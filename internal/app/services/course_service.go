package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/app/repositories"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) (*models.Course, error)
	CountCourses(ctx context.Context) (int, error)
}

// IDGenerator returns a new course identifier
type IDGenerator func() string

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo repositories.CourseRepository
	newID      IDGenerator
	logger     zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.CourseRepository, logger zerolog.Logger) CourseService {
	return NewCourseServiceWithIDGenerator(courseRepo, uuid.NewString, logger)
}

// NewCourseServiceWithIDGenerator creates a course service that takes IDs from newID
func NewCourseServiceWithIDGenerator(courseRepo repositories.CourseRepository, newID IDGenerator, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courseRepo: courseRepo,
		newID:      newID,
		logger:     logger.With().Str("component", "course_service").Logger(),
	}
}

// validateCourse validates course data before it reaches the store.
// Name and level are free-form and any duration is accepted; field presence
// is enforced where the request is decoded.
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewFieldError("body", "course is required")
	}
	return nil
}

// ListCourses retrieves all courses in creation order
func (s *courseServiceImpl) ListCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves a course by ID
func (s *courseServiceImpl) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// CreateCourse assigns a fresh ID to the course and stores it.
// Any ID supplied by the caller is discarded.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	course.ID = s.newID()
	if err := s.courseRepo.Create(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			s.logger.Error().Str("courseID", course.ID).Msg("Generated course ID collided with a live course")
			return nil, apperrors.ErrCourseAlreadyExists
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseID", course.ID).Str("name", course.Name).Msg("Course created")
	return course, nil
}

// UpdateCourse replaces every field of an existing course except its ID
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, course *models.Course) (*models.Course, error) {
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	// The stored ID always wins over whatever the caller sent
	course.ID = id

	if err := s.courseRepo.Update(ctx, course); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	s.logger.Info().Str("courseID", id).Msg("Course updated")
	return course, nil
}

// DeleteCourse removes a course and returns the removed record
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error deleting course: %w", err)
	}

	s.logger.Info().Str("courseID", id).Msg("Course deleted")
	return course, nil
}

// CountCourses returns the number of live courses
func (s *courseServiceImpl) CountCourses(ctx context.Context) (int, error) {
	count, err := s.courseRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}
