package service

import (
	"context"
	"fmt"

	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/pkg/commands"

	"github.com/google/uuid"
)

type IAssistantService interface {
	// Execute runs one function call from the model layer. A business
	// failure comes back as success=false with a relayable message; only
	// transient store faults surface as an error.
	Execute(ctx context.Context, req *dto.CommandRequest) (*dto.CommandResult, error)
}

type assistantService struct {
	sessionService ISessionService
	cartService    ICartService
	orderService   IOrderService
}

func NewAssistantService(
	sessionService ISessionService,
	cartService ICartService,
	orderService IOrderService,
) IAssistantService {
	return &assistantService{
		sessionService: sessionService,
		cartService:    cartService,
		orderService:   orderService,
	}
}

func (s *assistantService) Execute(ctx context.Context, req *dto.CommandRequest) (*dto.CommandResult, error) {
	cmd, err := commands.Parse(req.Action, req.Arguments)
	if err != nil {
		return toResult(err)
	}

	// resume_session addresses a session by id, not by conversation key.
	if cmd.Kind == commands.KindResumeSession {
		sessionId, parseErr := uuid.Parse(cmd.ResumeSession.SessionId)
		if parseErr != nil {
			return toResult(apperror.Validation(apperror.CodeItemInvalid, "session_id is not a valid id"))
		}
		data, resumeErr := s.sessionService.Resume(ctx, req.BusinessId, sessionId)
		if resumeErr != nil {
			return toResult(resumeErr)
		}
		return dto.ResultOk("session resumed", data), nil
	}

	session, err := s.sessionService.GetOrCreate(ctx, req.BusinessId, req.CustomerId, req.Channel, "")
	if err != nil {
		return toResult(err)
	}

	return s.dispatch(ctx, session, cmd)
}

// dispatch is the one exhaustive switch over the command set. A new command
// that is not handled here fails to compile the commands package checklist,
// not silently at runtime.
func (s *assistantService) dispatch(ctx context.Context, session *entity.Session, cmd *commands.Command) (*dto.CommandResult, error) {
	switch cmd.Kind {
	case commands.KindSwitchMode:
		data, err := s.sessionService.SwitchMode(ctx, session, cmd.SwitchMode.Mode, cmd.SwitchMode.Reason)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk(fmt.Sprintf("switched to %s", data.NewMode), data), nil

	case commands.KindAddItem:
		data, err := s.cartService.AddItem(ctx, session, cmd.AddItem.Name, cmd.AddItem.Quantity)
		if err != nil {
			return toResult(err)
		}
		msg := fmt.Sprintf("added %dx %s", data.Quantity, data.Name)
		if data.RequiresScheduling {
			msg += ", this item must be ordered in advance, please pick a time"
		}
		return dto.ResultOk(msg, data), nil

	case commands.KindRemoveItem:
		data, err := s.cartService.RemoveItem(ctx, session, cmd.RemoveItem.Name)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("item removed", data), nil

	case commands.KindUpdateQuantity:
		data, err := s.cartService.UpdateQuantity(ctx, session, cmd.UpdateQuantity.Name, cmd.UpdateQuantity.Quantity)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("quantity updated", data), nil

	case commands.KindSetDeliveryType:
		data, err := s.cartService.SetDeliveryType(ctx, session, cmd.SetDeliveryType.DeliveryType)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("delivery type set", data), nil

	case commands.KindSetAddress:
		data, err := s.cartService.SetAddress(ctx, session, cmd.SetAddress.Address)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("address saved", data), nil

	case commands.KindSetLocation:
		data, err := s.cartService.SetLocation(ctx, session,
			cmd.SetLocation.Latitude, cmd.SetLocation.Longitude, cmd.SetLocation.Label)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("location saved", data), nil

	case commands.KindSetSchedule:
		data, err := s.cartService.SetSchedule(ctx, session, cmd.SetSchedule.ScheduledFor)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("schedule set", data), nil

	case commands.KindSetNotes:
		data, err := s.cartService.SetNotes(ctx, session, cmd.SetNotes.Notes)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("notes saved", data), nil

	case commands.KindGetDraft:
		data, err := s.cartService.GetDraft(ctx, session)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("current order", data), nil

	case commands.KindConfirmOrder:
		data, err := s.orderService.Confirm(ctx, session)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("order confirmed", data), nil

	case commands.KindCancelOrder:
		return s.cancelOrder(ctx, session, cmd.CancelOrder)

	case commands.KindResumeSession:
		// Handled before dispatch; kept so the switch stays exhaustive.
		return toResult(apperror.Validation(apperror.CodeUnknownAction, "resume_session cannot be dispatched"))

	default:
		return toResult(apperror.Validation(apperror.CodeUnknownAction, fmt.Sprintf("unknown action: %s", cmd.Kind)))
	}
}

// cancelOrder resolves the target order: an explicit id is cancelled
// directly, a single candidate is cancelled implicitly, several candidates
// are returned so the workflow can ask which one.
func (s *assistantService) cancelOrder(ctx context.Context, session *entity.Session, args *commands.CancelOrderArgs) (*dto.CommandResult, error) {
	if args.OrderId != "" {
		orderId, err := uuid.Parse(args.OrderId)
		if err != nil {
			return toResult(apperror.Validation(apperror.CodeItemInvalid, "order_id is not a valid id"))
		}
		data, err := s.orderService.Cancel(ctx, session.BusinessId, session.CustomerId, orderId)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("order cancelled", data), nil
	}

	candidates, err := s.orderService.CancelableOrders(ctx, session.BusinessId, session.CustomerId)
	if err != nil {
		return toResult(err)
	}

	switch len(candidates) {
	case 0:
		return toResult(apperror.NotFound(apperror.CodeOrderNotFound, "you have no upcoming orders to cancel"))
	case 1:
		data, err := s.orderService.Cancel(ctx, session.BusinessId, session.CustomerId, candidates[0].Id)
		if err != nil {
			return toResult(err)
		}
		return dto.ResultOk("order cancelled", data), nil
	default:
		return dto.ResultOk("you have several upcoming orders, which one should I cancel?",
			&dto.CancelableOrdersData{Orders: candidates}), nil
	}
}

// toResult converts business errors into the uniform envelope. Transient
// store faults and unclassified errors propagate so the transport layer can
// answer with a 5xx.
func toResult(err error) (*dto.CommandResult, error) {
	appErr := apperror.From(err)
	if appErr == nil || appErr.Kind == apperror.KindTransientStore {
		return nil, err
	}
	return dto.ResultFail(appErr.Code, appErr.Message, appErr.Details), nil
}
