package mapper

import (
	"encoding/json"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/model"

	"gorm.io/datatypes"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) ToEntity(a *model.AuditLog) *entity.AuditLog {
	if a == nil {
		return nil
	}

	var payload map[string]interface{}
	if len(a.Payload) > 0 {
		_ = json.Unmarshal(a.Payload, &payload)
	}

	return &entity.AuditLog{
		Id:         a.Id,
		BusinessId: a.BusinessId,
		SessionId:  a.SessionId,
		Action:     a.Action,
		Payload:    payload,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AuditMapper) ToModel(a *entity.AuditLog) *model.AuditLog {
	if a == nil {
		return nil
	}

	raw, err := json.Marshal(a.Payload)
	if err != nil {
		raw = []byte("{}")
	}

	return &model.AuditLog{
		Id:         a.Id,
		BusinessId: a.BusinessId,
		SessionId:  a.SessionId,
		Action:     a.Action,
		Payload:    datatypes.JSON(raw),
		CreatedAt:  a.CreatedAt,
	}
}
