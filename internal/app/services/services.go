package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/coursecatalog/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	CourseService CourseService
}

// NewServices initializes all services on top of the given repositories
func NewServices(repos *repositories.Repositories, logger zerolog.Logger) *Services {
	return &Services{
		CourseService: NewCourseService(repos.CourseRepository, logger),
	}
}
