package mapper

import (
	"encoding/json"
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Session{
		Id:                 s.Id,
		BusinessId:         s.BusinessId,
		CustomerId:         s.CustomerId,
		Channel:            s.Channel,
		Mode:               s.Mode,
		Step:               s.Step,
		Draft:              m.ParseDraft(s.DraftPayload),
		Locked:             s.Locked,
		AssignedEmployeeId: s.AssignedEmployeeId,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Session{
		Id:                 s.Id,
		BusinessId:         s.BusinessId,
		CustomerId:         s.CustomerId,
		Channel:            s.Channel,
		Mode:               s.Mode,
		Step:               s.Step,
		DraftPayload:       m.SerializeDraft(s.Draft),
		Locked:             s.Locked,
		AssignedEmployeeId: s.AssignedEmployeeId,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          updatedAt,
		DeletedAt:          gorm.DeletedAt{},
	}
}

// ParseDraft decodes the JSONB payload into the tagged union. An unreadable
// or corrupt payload defaults to an empty draft rather than failing the read.
func (m *SessionMapper) ParseDraft(raw datatypes.JSON) entity.DraftPayload {
	if len(raw) == 0 {
		return entity.DraftPayload{}
	}
	var payload entity.DraftPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return entity.DraftPayload{}
	}
	return payload
}

// SerializeDraft encodes the tagged union back to JSONB. An empty payload
// stores as "{}" so the column is never null.
func (m *SessionMapper) SerializeDraft(payload entity.DraftPayload) datatypes.JSON {
	raw, err := json.Marshal(payload)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}
