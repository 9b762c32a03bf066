package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/coursecatalog/internal/app/models"
	appServices "github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/config"
)

// CreateDefaultData loads the configured demo courses into an empty catalog.
// A catalog that already holds courses is left untouched. Every course is
// attempted; failures are joined into the returned error.
func CreateDefaultData(ctx context.Context, courseService appServices.CourseService, courses []config.SeedCourse, lgr zerolog.Logger) (int, error) {
	count, err := courseService.CountCourses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count courses before seeding: %w", err)
	}
	if count > 0 {
		lgr.Info().Int("existing", count).Msg("Catalog already populated, skipping seed data")
		return 0, nil
	}

	lgr.Info().Int("courses", len(courses)).Msg("Creating default courses...")
	var finalErr error
	created := 0
	for _, seedCourse := range courses {
		course := &appModels.Course{
			Name:        seedCourse.Name,
			Description: seedCourse.Description,
			Level:       seedCourse.Level,
			Duration:    seedCourse.Duration,
		}
		if _, err := courseService.CreateCourse(ctx, course); err != nil {
			lgr.Error().Err(err).Str("name", seedCourse.Name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		created++
	}

	lgr.Info().Int("created", created).Msg("Default courses created")
	return created, finalErr
}
