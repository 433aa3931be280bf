package mapper

import (
	"encoding/json"
	"time"

	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/model"

	"gorm.io/datatypes"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var lines []entity.OrderLine
	if len(o.Lines) > 0 {
		// Corrupt snapshots surface as an empty line list; the totals
		// columns still carry the committed amounts.
		_ = json.Unmarshal(o.Lines, &lines)
	}

	var geo *entity.GeoPoint
	if o.GeoLatitude != nil && o.GeoLongitude != nil {
		geo = &entity.GeoPoint{
			Latitude:  *o.GeoLatitude,
			Longitude: *o.GeoLongitude,
			Label:     o.GeoLabel,
		}
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Order{
		Id:           o.Id,
		BusinessId:   o.BusinessId,
		CustomerId:   o.CustomerId,
		SessionId:    o.SessionId,
		Lines:        lines,
		Subtotal:     o.Subtotal,
		DeliveryFee:  o.DeliveryFee,
		Total:        o.Total,
		DeliveryType: o.DeliveryType,
		Address:      o.Address,
		Geo:          geo,
		ScheduledFor: o.ScheduledFor,
		Notes:        o.Notes,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}

	raw, err := json.Marshal(o.Lines)
	if err != nil {
		raw = []byte("[]")
	}

	var lat, lon *float64
	var label string
	if o.Geo != nil {
		la, lo := o.Geo.Latitude, o.Geo.Longitude
		lat, lon = &la, &lo
		label = o.Geo.Label
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	return &model.Order{
		Id:           o.Id,
		BusinessId:   o.BusinessId,
		CustomerId:   o.CustomerId,
		SessionId:    o.SessionId,
		Lines:        datatypes.JSON(raw),
		Subtotal:     o.Subtotal,
		DeliveryFee:  o.DeliveryFee,
		Total:        o.Total,
		DeliveryType: o.DeliveryType,
		Address:      o.Address,
		GeoLatitude:  lat,
		GeoLongitude: lon,
		GeoLabel:     label,
		ScheduledFor: o.ScheduledFor,
		Notes:        o.Notes,
		Status:       o.Status,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *OrderMapper) HistoryToEntity(h *model.OrderStatusHistory) *entity.OrderStatusHistory {
	if h == nil {
		return nil
	}
	return &entity.OrderStatusHistory{
		Id:        h.Id,
		OrderId:   h.OrderId,
		Status:    h.Status,
		ChangedBy: h.ChangedBy,
		ChangedAt: h.ChangedAt,
	}
}

func (m *OrderMapper) HistoryToModel(h *entity.OrderStatusHistory) *model.OrderStatusHistory {
	if h == nil {
		return nil
	}
	return &model.OrderStatusHistory{
		Id:        h.Id,
		OrderId:   h.OrderId,
		Status:    h.Status,
		ChangedBy: h.ChangedBy,
		ChangedAt: h.ChangedAt,
	}
}
