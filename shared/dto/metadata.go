package dto

import (
	"hotel/shared/constant"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

// Metadata is the audit block shared by every entity response.
// Modification fields stay empty until the row is changed after insert.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(meta model.Metadata) {
	m.CreatedAt = timezone.Format(meta.CreatedAt, constant.DateFormat)
	m.CreatedBy = meta.CreatedBy

	if meta.ModifiedAt.IsZero() || meta.ModifiedAt.Equal(meta.CreatedAt) {
		return
	}

	m.ModifiedAt = timezone.Format(meta.ModifiedAt, constant.DateFormat)
	m.ModifiedBy = meta.ModifiedBy
}
