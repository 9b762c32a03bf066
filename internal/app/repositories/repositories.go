package repositories

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		CourseRepository: NewMemoryCourseRepository(),
	}
}
