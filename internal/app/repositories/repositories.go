package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by every repository when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository *CourseRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository: NewCourseRepository(db),
	}
}
