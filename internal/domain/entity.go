package domain

import "time"

// Kind discriminates entity types in the shared translations table.
type Kind string

const (
	KindOrganization Kind = "organization"
	KindProject      Kind = "project"
	KindTask         Kind = "task"
	KindComment      Kind = "comment"
)

// Translatable field names. These are the only entity fields the fan-out
// translator touches; everything else is copied through untouched.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldName        = "name"
	FieldStatusLabel = "status_label"
)

// Fields maps a translatable field name to its text.
type Fields map[string]string

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// NonEmpty returns the subset of f with non-blank values.
func (f Fields) NonEmpty() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

type Organization struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (o *Organization) TranslatableFields() Fields {
	return Fields{FieldName: o.Name, FieldDescription: o.Description}
}

type Project struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (p *Project) TranslatableFields() Fields {
	return Fields{FieldName: p.Name, FieldDescription: p.Description}
}

type Task struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	AuthorID    int64     `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // machine key, e.g. "in_progress"
	StatusLabel string    `json:"status_label"`
	SourceLang  Locale    `json:"source_lang"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Task) TranslatableFields() Fields {
	return Fields{FieldTitle: t.Title, FieldDescription: t.Description, FieldStatusLabel: t.StatusLabel}
}

type Comment struct {
	ID         int64     `json:"id"`
	TaskID     int64     `json:"task_id"`
	AuthorID   int64     `json:"author_id"`
	Content    string    `json:"content"`
	SourceLang Locale    `json:"source_lang"`
	CreatedAt  time.Time `json:"created_at"`
}

func (c *Comment) TranslatableFields() Fields {
	return Fields{FieldContent: c.Content}
}
