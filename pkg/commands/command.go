package commands

import (
	"encoding/json"
	"strings"

	"ai-ordering-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Kind is the closed set of actions the model layer may invoke. Adding an
// action means adding a constant, an args struct, a Parse case and a
// dispatch case; the compiler flags any switch left incomplete.
type Kind string

const (
	KindSwitchMode      Kind = "switch_mode"
	KindResumeSession   Kind = "resume_session"
	KindAddItem         Kind = "add_item"
	KindRemoveItem      Kind = "remove_item"
	KindUpdateQuantity  Kind = "update_quantity"
	KindSetDeliveryType Kind = "set_delivery_type"
	KindSetAddress      Kind = "set_address"
	KindSetLocation     Kind = "set_location"
	KindSetSchedule     Kind = "set_schedule"
	KindSetNotes        Kind = "set_notes"
	KindGetDraft        Kind = "get_draft"
	KindConfirmOrder    Kind = "confirm_order"
	KindCancelOrder     Kind = "cancel_order"
)

type SwitchModeArgs struct {
	Mode   string `json:"mode" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

type ResumeSessionArgs struct {
	SessionId string `json:"session_id" validate:"required,uuid"`
}

type AddItemArgs struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity,omitempty"`
}

type RemoveItemArgs struct {
	Name string `json:"name" validate:"required"`
}

type UpdateQuantityArgs struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity"`
}

type SetDeliveryTypeArgs struct {
	DeliveryType string `json:"delivery_type" validate:"required"`
}

type SetAddressArgs struct {
	Address string `json:"address" validate:"required"`
}

type SetLocationArgs struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label,omitempty"`
}

type SetScheduleArgs struct {
	// ScheduledFor is the already-parsed instant (RFC3339) or, as a
	// fallback, text the schedule parser can interpret.
	ScheduledFor string `json:"scheduled_for" validate:"required"`
}

type SetNotesArgs struct {
	Notes string `json:"notes"`
}

type CancelOrderArgs struct {
	OrderId string `json:"order_id,omitempty"`
}

// Command is a tagged union: Kind selects which args pointer is set.
type Command struct {
	Kind Kind

	SwitchMode      *SwitchModeArgs
	ResumeSession   *ResumeSessionArgs
	AddItem         *AddItemArgs
	RemoveItem      *RemoveItemArgs
	UpdateQuantity  *UpdateQuantityArgs
	SetDeliveryType *SetDeliveryTypeArgs
	SetAddress      *SetAddressArgs
	SetLocation     *SetLocationArgs
	SetSchedule     *SetScheduleArgs
	SetNotes        *SetNotesArgs
	CancelOrder     *CancelOrderArgs
}

// Parse turns a (name, arguments) pair from the model invocation layer into
// a typed command. Unknown names are a Validation error, never a panic or a
// string-keyed fallthrough.
func Parse(name string, raw json.RawMessage) (*Command, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	decode := func(v interface{}) error {
		if err := json.Unmarshal(raw, v); err != nil {
			return apperror.Validation(apperror.CodeMissingField, "malformed arguments: "+err.Error())
		}
		if err := validate.Struct(v); err != nil {
			var fields []string
			for _, fe := range err.(validator.ValidationErrors) {
				fields = append(fields, fe.Field()+" failed on "+fe.Tag())
			}
			return apperror.Validation(apperror.CodeMissingField, "invalid arguments: "+strings.Join(fields, ", "))
		}
		return nil
	}

	cmd := &Command{Kind: Kind(name)}
	switch cmd.Kind {
	case KindSwitchMode:
		cmd.SwitchMode = &SwitchModeArgs{}
		return cmd, decode(cmd.SwitchMode)
	case KindResumeSession:
		cmd.ResumeSession = &ResumeSessionArgs{}
		return cmd, decode(cmd.ResumeSession)
	case KindAddItem:
		cmd.AddItem = &AddItemArgs{}
		return cmd, decode(cmd.AddItem)
	case KindRemoveItem:
		cmd.RemoveItem = &RemoveItemArgs{}
		return cmd, decode(cmd.RemoveItem)
	case KindUpdateQuantity:
		cmd.UpdateQuantity = &UpdateQuantityArgs{}
		return cmd, decode(cmd.UpdateQuantity)
	case KindSetDeliveryType:
		cmd.SetDeliveryType = &SetDeliveryTypeArgs{}
		return cmd, decode(cmd.SetDeliveryType)
	case KindSetAddress:
		cmd.SetAddress = &SetAddressArgs{}
		return cmd, decode(cmd.SetAddress)
	case KindSetLocation:
		cmd.SetLocation = &SetLocationArgs{}
		return cmd, decode(cmd.SetLocation)
	case KindSetSchedule:
		cmd.SetSchedule = &SetScheduleArgs{}
		return cmd, decode(cmd.SetSchedule)
	case KindSetNotes:
		cmd.SetNotes = &SetNotesArgs{}
		return cmd, decode(cmd.SetNotes)
	case KindGetDraft, KindConfirmOrder:
		return cmd, nil
	case KindCancelOrder:
		cmd.CancelOrder = &CancelOrderArgs{}
		return cmd, decode(cmd.CancelOrder)
	default:
		return nil, apperror.Validation(apperror.CodeUnknownAction, "unknown action: "+name)
	}
}
