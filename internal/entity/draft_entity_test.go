package entity

import (
	"testing"
	"time"

	"ai-ordering-be/internal/constant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleDraft() DraftPayload {
	scheduled := time.Now().Add(24 * time.Hour)
	return DraftPayload{
		Order: &OrderDraft{
			Cart: []CartLine{
				{ItemId: uuid.New(), Name: "Trio", UnitPrice: 12, Quantity: 3},
			},
			DeliveryType: constant.DeliveryTypeDelivery,
			Address:      "Jl. Sudirman 1",
			DeliveryFee:  2.5,
			ScheduledFor: &scheduled,
			Notes:        "extra napkins",
		},
	}
}

func TestFilterForModeSupportDropsEverything(t *testing.T) {
	filtered := sampleDraft().FilterForMode(constant.ModeSupport)
	assert.True(t, filtered.Empty())
}

func TestFilterForModeOrderKeepsOnlyCart(t *testing.T) {
	filtered := sampleDraft().FilterForMode(constant.ModeTakeaway)

	assert.NotNil(t, filtered.Order)
	assert.Len(t, filtered.Order.Cart, 1)
	assert.Equal(t, "Trio", filtered.Order.Cart[0].Name)

	// Everything but the cart is dropped.
	assert.Empty(t, filtered.Order.DeliveryType)
	assert.Empty(t, filtered.Order.Address)
	assert.Zero(t, filtered.Order.DeliveryFee)
	assert.Nil(t, filtered.Order.ScheduledFor)
	assert.Empty(t, filtered.Order.Notes)
}

func TestFilterForModeEmptyCartStaysEmpty(t *testing.T) {
	// Once support dropped the cart, switching back restores nothing.
	empty := DraftPayload{}
	assert.True(t, empty.FilterForMode(constant.ModeTakeaway).Empty())

	noLines := DraftPayload{Order: &OrderDraft{Notes: "x"}}
	assert.True(t, noLines.FilterForMode(constant.ModeDelivery).Empty())
}

func TestFilterForModeCopiesCart(t *testing.T) {
	original := sampleDraft()
	filtered := original.FilterForMode(constant.ModeDineIn)

	filtered.Order.Cart[0].Quantity = 99
	assert.Equal(t, 3, original.Order.Cart[0].Quantity)
}

func TestOrderDraftTotals(t *testing.T) {
	d := &OrderDraft{
		Cart: []CartLine{
			{Name: "Trio", UnitPrice: 12, Quantity: 3},
			{Name: "Cola", UnitPrice: 2, Quantity: 2},
		},
		DeliveryFee: 1.5,
	}
	assert.Equal(t, 40.0, d.Subtotal())
	assert.Equal(t, 41.5, d.Total())
}

func TestHasAddress(t *testing.T) {
	assert.False(t, (&OrderDraft{}).HasAddress())
	assert.True(t, (&OrderDraft{Address: "somewhere"}).HasAddress())
	assert.True(t, (&OrderDraft{Geo: &GeoPoint{Latitude: 1, Longitude: 1}}).HasAddress())
}
