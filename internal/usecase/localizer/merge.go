package localizer

import (
	"context"

	"github.com/Pranav99t/polytask/internal/domain"
)

// Localized views carry the translated text in the entity's own fields and
// the untouched source text under original_* keys, so a client can always
// offer "show original".

type LocalizedTask struct {
	domain.Task
	OriginalTitle       string `json:"original_title"`
	OriginalDescription string `json:"original_description"`
	OriginalStatusLabel string `json:"original_status_label"`
}

type LocalizedComment struct {
	domain.Comment
	OriginalContent string `json:"original_content"`
}

type LocalizedProject struct {
	domain.Project
	OriginalName        string `json:"original_name"`
	OriginalDescription string `json:"original_description"`
}

type LocalizedOrganization struct {
	domain.Organization
	OriginalName        string `json:"original_name"`
	OriginalDescription string `json:"original_description"`
}

// mergeFields substitutes non-empty translated values into orig. A nil record
// or an empty field keeps the original text, so the merge is total for any
// entity and any locale.
func mergeFields(orig domain.Fields, t *domain.Translation) domain.Fields {
	merged := orig.Clone()
	if t == nil {
		return merged
	}
	for name, v := range t.Fields {
		if v == "" {
			continue
		}
		if _, ok := merged[name]; ok {
			merged[name] = v
		}
	}
	return merged
}

// translationsByID batch-fetches all records for ids in one query and indexes
// them by entity id.
func (s *Service) translationsByID(ctx context.Context, kind domain.Kind, ids []int64, locale domain.Locale) (map[int64]*domain.Translation, error) {
	rows, err := s.d.Translations.ListByEntities(ctx, kind, ids, locale)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*domain.Translation, len(rows))
	for _, t := range rows {
		byID[t.EntityID] = t
	}
	return byID, nil
}

func localizeTask(t *domain.Task, tr *domain.Translation) *LocalizedTask {
	out := &LocalizedTask{
		Task:                *t,
		OriginalTitle:       t.Title,
		OriginalDescription: t.Description,
		OriginalStatusLabel: t.StatusLabel,
	}
	m := mergeFields(t.TranslatableFields(), tr)
	out.Title = m[domain.FieldTitle]
	out.Description = m[domain.FieldDescription]
	out.StatusLabel = m[domain.FieldStatusLabel]
	return out
}

func localizeComment(c *domain.Comment, tr *domain.Translation) *LocalizedComment {
	out := &LocalizedComment{Comment: *c, OriginalContent: c.Content}
	out.Content = mergeFields(c.TranslatableFields(), tr)[domain.FieldContent]
	return out
}

func localizeProject(p *domain.Project, tr *domain.Translation) *LocalizedProject {
	out := &LocalizedProject{Project: *p, OriginalName: p.Name, OriginalDescription: p.Description}
	m := mergeFields(p.TranslatableFields(), tr)
	out.Name = m[domain.FieldName]
	out.Description = m[domain.FieldDescription]
	return out
}

func localizeOrganization(o *domain.Organization, tr *domain.Translation) *LocalizedOrganization {
	out := &LocalizedOrganization{Organization: *o, OriginalName: o.Name, OriginalDescription: o.Description}
	m := mergeFields(o.TranslatableFields(), tr)
	out.Name = m[domain.FieldName]
	out.Description = m[domain.FieldDescription]
	return out
}

// Task returns the locale-merged view of one task.
func (s *Service) Task(ctx context.Context, t *domain.Task, locale domain.Locale) (*LocalizedTask, error) {
	tr, err := s.d.Translations.Get(ctx, domain.KindTask, t.ID, locale)
	if err != nil {
		return nil, err
	}
	return localizeTask(t, tr), nil
}

// Tasks merges a list with a single batched translation lookup.
func (s *Service) Tasks(ctx context.Context, tasks []*domain.Task, locale domain.Locale) ([]*LocalizedTask, error) {
	ids := make([]int64, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	byID, err := s.translationsByID(ctx, domain.KindTask, ids, locale)
	if err != nil {
		return nil, err
	}
	out := make([]*LocalizedTask, len(tasks))
	for i, t := range tasks {
		out[i] = localizeTask(t, byID[t.ID])
	}
	return out, nil
}

func (s *Service) Comment(ctx context.Context, c *domain.Comment, locale domain.Locale) (*LocalizedComment, error) {
	tr, err := s.d.Translations.Get(ctx, domain.KindComment, c.ID, locale)
	if err != nil {
		return nil, err
	}
	return localizeComment(c, tr), nil
}

func (s *Service) Comments(ctx context.Context, comments []*domain.Comment, locale domain.Locale) ([]*LocalizedComment, error) {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	byID, err := s.translationsByID(ctx, domain.KindComment, ids, locale)
	if err != nil {
		return nil, err
	}
	out := make([]*LocalizedComment, len(comments))
	for i, c := range comments {
		out[i] = localizeComment(c, byID[c.ID])
	}
	return out, nil
}

func (s *Service) Projects(ctx context.Context, projects []*domain.Project, locale domain.Locale) ([]*LocalizedProject, error) {
	ids := make([]int64, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	byID, err := s.translationsByID(ctx, domain.KindProject, ids, locale)
	if err != nil {
		return nil, err
	}
	out := make([]*LocalizedProject, len(projects))
	for i, p := range projects {
		out[i] = localizeProject(p, byID[p.ID])
	}
	return out, nil
}

func (s *Service) Organizations(ctx context.Context, orgs []*domain.Organization, locale domain.Locale) ([]*LocalizedOrganization, error) {
	ids := make([]int64, len(orgs))
	for i, o := range orgs {
		ids[i] = o.ID
	}
	byID, err := s.translationsByID(ctx, domain.KindOrganization, ids, locale)
	if err != nil {
		return nil, err
	}
	out := make([]*LocalizedOrganization, len(orgs))
	for i, o := range orgs {
		out[i] = localizeOrganization(o, byID[o.ID])
	}
	return out, nil
}
