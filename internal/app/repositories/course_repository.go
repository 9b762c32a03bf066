package repositories

import (
	"context"
	"sync"

	"github.com/yigit/coursecatalog/internal/app/models"
	"github.com/yigit/coursecatalog/internal/pkg/apperrors"
)

// Course error types
var (
	// ErrCourseNotFound is returned when no live course has the requested ID.
	ErrCourseNotFound = apperrors.ErrCourseNotFound
	// ErrCourseAlreadyExists is returned when a course with the same ID is already stored.
	ErrCourseAlreadyExists = apperrors.ErrCourseAlreadyExists
)

// CourseRepository is the storage contract used by the course service.
type CourseRepository interface {
	List(ctx context.Context) ([]*models.Course, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) (*models.Course, error)
	Count(ctx context.Context) (int, error)
}

// MemoryCourseRepository keeps courses in memory, ordered by insertion.
type MemoryCourseRepository struct {
	mu      sync.RWMutex
	courses map[string]*models.Course
	order   []string
}

// NewMemoryCourseRepository creates an empty in-memory course repository
func NewMemoryCourseRepository() *MemoryCourseRepository {
	return &MemoryCourseRepository{
		courses: make(map[string]*models.Course),
	}
}

// List returns every course in insertion order
func (r *MemoryCourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]*models.Course, 0, len(r.order))
	for _, id := range r.order {
		courses = append(courses, cloneCourse(r.courses[id]))
	}
	return courses, nil
}

// Get retrieves a course by ID
func (r *MemoryCourseRepository) Get(ctx context.Context, id string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, ErrCourseNotFound
	}
	return cloneCourse(course), nil
}

// Create appends a course whose ID has already been assigned
func (r *MemoryCourseRepository) Create(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[course.ID]; exists {
		return ErrCourseAlreadyExists
	}
	r.courses[course.ID] = cloneCourse(course)
	r.order = append(r.order, course.ID)
	return nil
}

// Update replaces the stored course with the same ID, keeping its position
func (r *MemoryCourseRepository) Update(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[course.ID]; !exists {
		return ErrCourseNotFound
	}
	r.courses[course.ID] = cloneCourse(course)
	return nil
}

// Delete removes a course and returns it
func (r *MemoryCourseRepository) Delete(ctx context.Context, id string) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[id]
	if !ok {
		return nil, ErrCourseNotFound
	}
	delete(r.courses, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return course, nil
}

// Count returns the number of live courses
func (r *MemoryCourseRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}

// cloneCourse copies a course so callers never alias stored state.
func cloneCourse(course *models.Course) *models.Course {
	clone := *course
	if course.Description != nil {
		description := *course.Description
		clone.Description = &description
	}
	return &clone
}
