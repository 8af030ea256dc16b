package postgres

import (
	"context"

	"github.com/aithreya/learning-service/internal/repositories"
	"gorm.io/gorm"
)

// Repository is the GORM-backed implementation of repositories.Repository.
type Repository struct {
	db *gorm.DB

	user      repositories.UserRepository
	content   repositories.ContentRepository
	caseStudy repositories.CaseStudyRepository
	progress  repositories.ProgressRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:        db,
		user:      NewUserPostgreSQL(db),
		content:   NewContentPostgreSQL(db),
		caseStudy: NewCaseStudyPostgreSQL(db),
		progress:  NewProgressPostgreSQL(db),
	}
}

func (r *Repository) User() repositories.UserRepository           { return r.user }
func (r *Repository) Content() repositories.ContentRepository     { return r.content }
func (r *Repository) CaseStudy() repositories.CaseStudyRepository { return r.caseStudy }
func (r *Repository) Progress() repositories.ProgressRepository   { return r.progress }

// WithTransaction runs fn against a Repository bound to one transaction.
// A nil return commits, any error rolls back.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
