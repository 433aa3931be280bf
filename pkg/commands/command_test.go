package commands

import (
	"encoding/json"
	"testing"

	"ai-ordering-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		args     string
		wantKind Kind
		check    func(t *testing.T, cmd *Command)
	}{
		{
			name:     "switch mode",
			action:   "switch_mode",
			args:     `{"mode":"delivery","reason":"customer wants delivery"}`,
			wantKind: KindSwitchMode,
			check: func(t *testing.T, cmd *Command) {
				assert.Equal(t, "delivery", cmd.SwitchMode.Mode)
				assert.Equal(t, "customer wants delivery", cmd.SwitchMode.Reason)
			},
		},
		{
			name:     "add item with quantity",
			action:   "add_item",
			args:     `{"name":"Trio","quantity":3}`,
			wantKind: KindAddItem,
			check: func(t *testing.T, cmd *Command) {
				assert.Equal(t, "Trio", cmd.AddItem.Name)
				assert.Equal(t, 3, cmd.AddItem.Quantity)
			},
		},
		{
			name:     "set location",
			action:   "set_location",
			args:     `{"latitude":-6.2,"longitude":106.8,"label":"home"}`,
			wantKind: KindSetLocation,
			check: func(t *testing.T, cmd *Command) {
				assert.Equal(t, -6.2, cmd.SetLocation.Latitude)
				assert.Equal(t, "home", cmd.SetLocation.Label)
			},
		},
		{
			name:     "confirm takes no arguments",
			action:   "confirm_order",
			args:     "",
			wantKind: KindConfirmOrder,
		},
		{
			name:     "cancel without target order",
			action:   "cancel_order",
			args:     `{}`,
			wantKind: KindCancelOrder,
			check: func(t *testing.T, cmd *Command) {
				assert.Empty(t, cmd.CancelOrder.OrderId)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.action, json.RawMessage(tt.args))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantKind, cmd.Kind)
			if tt.check != nil {
				tt.check(t, cmd)
			}
		})
	}
}

func TestParseUnknownAction(t *testing.T) {
	cmd, err := Parse("order_pizza_for_me", json.RawMessage(`{}`))
	assert.Nil(t, cmd)

	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.CodeUnknownAction, appErr.Code)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestParseMalformedArguments(t *testing.T) {
	_, err := Parse("add_item", json.RawMessage(`{"name":]`))
	appErr := apperror.From(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestParseRejectsMissingRequiredArgs(t *testing.T) {
	tests := []struct {
		name   string
		action string
		args   string
	}{
		{"add item without name", "add_item", `{"quantity":2}`},
		{"switch mode without mode", "switch_mode", `{}`},
		{"remove item without name", "remove_item", `{}`},
		{"schedule without instant", "set_schedule", `{}`},
		{"resume with non-uuid session", "resume_session", `{"session_id":"not-a-uuid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.action, json.RawMessage(tt.args))
			appErr := apperror.From(err)
			assert.NotNil(t, appErr)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Equal(t, apperror.CodeMissingField, appErr.Code)
		})
	}
}
