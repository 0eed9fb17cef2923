package app

import (
	"context"
	"strings"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
	"github.com/Pranav99t/polytask/internal/ports"
	"github.com/Pranav99t/polytask/internal/usecase/localizer"
)

type OrganizationAPI struct {
	repo   ports.OrganizationRepository
	loc    *localizer.Service
	events *notify.Hub
}

func NewOrganizationAPI(repo ports.OrganizationRepository, loc *localizer.Service, events *notify.Hub) *OrganizationAPI {
	return &OrganizationAPI{repo: repo, loc: loc, events: events}
}

type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Locale      string `json:"locale,omitempty"`
}

func (a *OrganizationAPI) Create(ctx context.Context, req CreateOrganizationRequest) (*domain.Organization, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyFields
	}
	o := &domain.Organization{Name: req.Name, Description: req.Description}
	if err := a.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	a.events.Publish(notify.Event{Type: notify.EventCreated, Table: domain.KindOrganization, Row: o})
	localizeAsync(a.loc, domain.KindOrganization, o.ID, o.TranslatableFields(), sourceLocale(req.Locale, o.TranslatableFields()))
	return o, nil
}

func (a *OrganizationAPI) List(ctx context.Context, locale domain.Locale) ([]*localizer.LocalizedOrganization, error) {
	orgs, err := a.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return a.loc.Organizations(ctx, orgs, locale)
}

func (a *OrganizationAPI) Delete(ctx context.Context, id int64) error {
	o, err := a.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.events.Publish(notify.Event{Type: notify.EventDeleted, Table: domain.KindOrganization, Row: o})
	a.loc.Forget(ctx, domain.KindOrganization, id)
	return nil
}
