package app

import (
	"context"
	"strings"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
	"github.com/Pranav99t/polytask/internal/ports"
	"github.com/Pranav99t/polytask/internal/usecase/localizer"
)

type ProjectAPI struct {
	repo   ports.ProjectRepository
	loc    *localizer.Service
	events *notify.Hub
}

func NewProjectAPI(repo ports.ProjectRepository, loc *localizer.Service, events *notify.Hub) *ProjectAPI {
	return &ProjectAPI{repo: repo, loc: loc, events: events}
}

type CreateProjectRequest struct {
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Locale         string `json:"locale,omitempty"`
}

func (a *ProjectAPI) Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyFields
	}
	p := &domain.Project{OrganizationID: req.OrganizationID, Name: req.Name, Description: req.Description}
	if err := a.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	a.events.Publish(notify.Event{Type: notify.EventCreated, Table: domain.KindProject, Row: p})
	localizeAsync(a.loc, domain.KindProject, p.ID, p.TranslatableFields(), sourceLocale(req.Locale, p.TranslatableFields()))
	return p, nil
}

func (a *ProjectAPI) List(ctx context.Context, orgID int64, locale domain.Locale) ([]*localizer.LocalizedProject, error) {
	projects, err := a.repo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return a.loc.Projects(ctx, projects, locale)
}

func (a *ProjectAPI) Update(ctx context.Context, id int64, name, description, locale string) (*domain.Project, error) {
	p, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	p.Description = description
	if err := a.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	a.events.Publish(notify.Event{Type: notify.EventUpdated, Table: domain.KindProject, Row: p})
	localizeAsync(a.loc, domain.KindProject, p.ID, p.TranslatableFields(), sourceLocale(locale, p.TranslatableFields()))
	return p, nil
}

func (a *ProjectAPI) Delete(ctx context.Context, id int64) error {
	p, err := a.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.events.Publish(notify.Event{Type: notify.EventDeleted, Table: domain.KindProject, Row: p})
	a.loc.Forget(ctx, domain.KindProject, id)
	return nil
}
