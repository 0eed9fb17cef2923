package domain

import "time"

// Translation holds the translated text of one entity in one locale. At most
// one record exists per (entity kind, entity id, locale); writes replace. The
// entity's own source locale always has a record holding a verbatim copy of
// the original fields, so readers never special-case the source locale.
type Translation struct {
	ID         int64     `json:"id"`
	EntityKind Kind      `json:"entity_kind"`
	EntityID   int64     `json:"entity_id"`
	Locale     Locale    `json:"locale"`
	Fields     Fields    `json:"fields"`
	UpdatedAt  time.Time `json:"updated_at"`
}
