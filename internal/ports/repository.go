package ports

import (
	"context"

	"github.com/Pranav99t/polytask/internal/domain"
)

type OrganizationRepository interface {
	Create(ctx context.Context, o *domain.Organization) error
	Get(ctx context.Context, id int64) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	Update(ctx context.Context, o *domain.Organization) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	Get(ctx context.Context, id int64) (*domain.Project, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}

type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	Get(ctx context.Context, id int64) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type TranslationRepository interface {
	// Upsert inserts or fully replaces the record keyed by
	// (entity kind, entity id, locale).
	Upsert(ctx context.Context, t *domain.Translation) error
	Get(ctx context.Context, kind domain.Kind, entityID int64, locale domain.Locale) (*domain.Translation, error)
	// ListByEntities fetches all records for the given ids and one locale in a
	// single query.
	ListByEntities(ctx context.Context, kind domain.Kind, entityIDs []int64, locale domain.Locale) ([]*domain.Translation, error)
	DeleteByEntity(ctx context.Context, kind domain.Kind, entityID int64) error
}
