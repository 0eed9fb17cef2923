package app

import (
	"context"
	"strings"

	"github.com/Pranav99t/polytask/internal/domain"
	"github.com/Pranav99t/polytask/internal/notify"
	"github.com/Pranav99t/polytask/internal/ports"
	"github.com/Pranav99t/polytask/internal/usecase/localizer"
)

type TaskAPI struct {
	repo   ports.TaskRepository
	loc    *localizer.Service
	events *notify.Hub
}

func NewTaskAPI(repo ports.TaskRepository, loc *localizer.Service, events *notify.Hub) *TaskAPI {
	return &TaskAPI{repo: repo, loc: loc, events: events}
}

type CreateTaskRequest struct {
	ProjectID   int64  `json:"project_id"`
	AuthorID    int64  `json:"author_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	StatusLabel string `json:"status_label,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

func (a *TaskAPI) Create(ctx context.Context, req CreateTaskRequest) (*domain.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyFields
	}
	status := req.Status
	if status == "" {
		status = "open"
	}
	t := &domain.Task{
		ProjectID:   req.ProjectID,
		AuthorID:    req.AuthorID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		StatusLabel: req.StatusLabel,
	}
	t.SourceLang = sourceLocale(req.Locale, t.TranslatableFields())
	if err := a.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	a.events.Publish(notify.Event{Type: notify.EventCreated, Table: domain.KindTask, Row: t})
	localizeAsync(a.loc, domain.KindTask, t.ID, t.TranslatableFields(), t.SourceLang)
	return t, nil
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	StatusLabel *string `json:"status_label,omitempty"`
	Locale      string  `json:"locale,omitempty"`
}

// Update applies a partial edit and re-runs the fan-out so stale per-locale
// rows are replaced.
func (a *TaskAPI) Update(ctx context.Context, id int64, req UpdateTaskRequest) (*domain.Task, error) {
	t, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.StatusLabel != nil {
		t.StatusLabel = *req.StatusLabel
	}
	t.SourceLang = sourceLocale(req.Locale, t.TranslatableFields())
	if err := a.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	a.events.Publish(notify.Event{Type: notify.EventUpdated, Table: domain.KindTask, Row: t})
	localizeAsync(a.loc, domain.KindTask, t.ID, t.TranslatableFields(), t.SourceLang)
	return t, nil
}

// Get returns one task merged for locale.
func (a *TaskAPI) Get(ctx context.Context, id int64, locale domain.Locale) (*localizer.LocalizedTask, error) {
	t, err := a.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.loc.Task(ctx, t, locale)
}

// List returns the project's tasks merged for locale.
func (a *TaskAPI) List(ctx context.Context, projectID int64, locale domain.Locale) ([]*localizer.LocalizedTask, error) {
	tasks, err := a.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return a.loc.Tasks(ctx, tasks, locale)
}

func (a *TaskAPI) Delete(ctx context.Context, id int64) error {
	t, err := a.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := a.repo.Delete(ctx, id); err != nil {
		return err
	}
	a.events.Publish(notify.Event{Type: notify.EventDeleted, Table: domain.KindTask, Row: t})
	a.loc.Forget(ctx, domain.KindTask, id)
	return nil
}
