package mapper

import (
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/model"
)

// CatalogMapper converts the read-only catalog models (items, businesses).
type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ItemToEntity(i *model.Item) *entity.Item {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Item{
		Id:                    i.Id,
		BusinessId:            i.BusinessId,
		Name:                  i.Name,
		Price:                 i.Price,
		Available:             i.Available,
		IsSchedulable:         i.IsSchedulable,
		MinScheduleHours:      i.MinScheduleHours,
		CancelableBeforeHours: i.CancelableBeforeHours,
		Position:              i.Position,
		CreatedAt:             i.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *CatalogMapper) ItemToModel(i *entity.Item) *model.Item {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Item{
		Id:                    i.Id,
		BusinessId:            i.BusinessId,
		Name:                  i.Name,
		Price:                 i.Price,
		Available:             i.Available,
		IsSchedulable:         i.IsSchedulable,
		MinScheduleHours:      i.MinScheduleHours,
		CancelableBeforeHours: i.CancelableBeforeHours,
		Position:              i.Position,
		CreatedAt:             i.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *CatalogMapper) BusinessToEntity(b *model.Business) *entity.Business {
	if b == nil {
		return nil
	}

	var location *entity.GeoPoint
	if b.Latitude != nil && b.Longitude != nil {
		location = &entity.GeoPoint{Latitude: *b.Latitude, Longitude: *b.Longitude}
	}

	hours := make([]entity.OpeningHour, 0, len(b.OpeningHours))
	for _, h := range b.OpeningHours {
		hours = append(hours, entity.OpeningHour{
			Weekday: time.Weekday(h.Weekday),
			Closed:  h.Closed,
			Open:    h.Open,
			Close:   h.Close,
		})
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.Business{
		Id:                           b.Id,
		Name:                         b.Name,
		Timezone:                     b.Timezone,
		Location:                     location,
		DeliveryRadiusKm:             b.DeliveryRadiusKm,
		DeliveryFee:                  b.DeliveryFee,
		DefaultCancelableBeforeHours: b.DefaultCancelableBeforeHours,
		NotificationEmail:            b.NotificationEmail,
		OpeningHours:                 hours,
		CreatedAt:                    b.CreatedAt,
		UpdatedAt:                    updatedAt,
	}
}

func (m *CatalogMapper) BusinessToModel(b *entity.Business) *model.Business {
	if b == nil {
		return nil
	}

	var lat, lon *float64
	if b.Location != nil {
		la, lo := b.Location.Latitude, b.Location.Longitude
		lat, lon = &la, &lo
	}

	hours := make([]model.BusinessOpeningHour, 0, len(b.OpeningHours))
	for _, h := range b.OpeningHours {
		hours = append(hours, model.BusinessOpeningHour{
			BusinessId: b.Id,
			Weekday:    int(h.Weekday),
			Closed:     h.Closed,
			Open:       h.Open,
			Close:      h.Close,
		})
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.Business{
		Id:                           b.Id,
		Name:                         b.Name,
		Timezone:                     b.Timezone,
		Latitude:                     lat,
		Longitude:                    lon,
		DeliveryRadiusKm:             b.DeliveryRadiusKm,
		DeliveryFee:                  b.DeliveryFee,
		DefaultCancelableBeforeHours: b.DefaultCancelableBeforeHours,
		NotificationEmail:            b.NotificationEmail,
		CreatedAt:                    b.CreatedAt,
		UpdatedAt:                    updatedAt,
		OpeningHours:                 hours,
	}
}

func (m *CatalogMapper) EmployeeToEntity(e *model.Employee) *entity.Employee {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.Employee{
		Id:           e.Id,
		BusinessId:   e.BusinessId,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Name:         e.Name,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *CatalogMapper) EmployeeToModel(e *entity.Employee) *model.Employee {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Employee{
		Id:           e.Id,
		BusinessId:   e.BusinessId,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Name:         e.Name,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
