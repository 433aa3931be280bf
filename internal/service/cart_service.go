package service

import (
	"context"
	"fmt"
	"time"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/internal/repository/unitofwork"
	"ai-ordering-be/pkg/ordering/geo"
	"ai-ordering-be/pkg/ordering/match"
	"ai-ordering-be/pkg/ordering/schedule"
)

type ICartService interface {
	AddItem(ctx context.Context, session *entity.Session, name string, quantity int) (*dto.AddItemData, error)
	RemoveItem(ctx context.Context, session *entity.Session, name string) (*dto.DraftSummary, error)
	UpdateQuantity(ctx context.Context, session *entity.Session, name string, quantity int) (*dto.DraftSummary, error)
	SetDeliveryType(ctx context.Context, session *entity.Session, deliveryType string) (*dto.DraftSummary, error)
	SetAddress(ctx context.Context, session *entity.Session, address string) (*dto.DraftSummary, error)
	SetLocation(ctx context.Context, session *entity.Session, latitude, longitude float64, label string) (*dto.DraftSummary, error)
	SetSchedule(ctx context.Context, session *entity.Session, scheduledFor string) (*dto.DraftSummary, error)
	SetNotes(ctx context.Context, session *entity.Session, notes string) (*dto.DraftSummary, error)
	GetDraft(ctx context.Context, session *entity.Session) (*dto.DraftSummary, error)
}

type cartService struct {
	uowFactory       unitofwork.RepositoryFactory
	catalogService   ICatalogService
	publisherService IPublisherService
	matcher          *match.Matcher
	scheduleParser   schedule.Parser
	validator        *schedule.Validator
}

func NewCartService(
	uowFactory unitofwork.RepositoryFactory,
	catalogService ICatalogService,
	publisherService IPublisherService,
	scheduleParser schedule.Parser,
) ICartService {
	return &cartService{
		uowFactory:       uowFactory,
		catalogService:   catalogService,
		publisherService: publisherService,
		matcher:          match.NewMatcher(),
		scheduleParser:   scheduleParser,
		validator:        schedule.NewValidator(),
	}
}

// AddItem resolves the requested name against the available catalog and adds
// (or merges into) a draft line. Schedulable items still add; the result
// flags that a time must be collected before confirmation.
func (s *cartService) AddItem(ctx context.Context, session *entity.Session, name string, quantity int) (*dto.AddItemData, error) {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.catalogService.AvailableItems(ctx, session.BusinessId)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	idx, score := s.matcher.BestIndex(name, names)
	if score == match.ScoreNone {
		return nil, apperror.NotFound(apperror.CodeItemNotFound,
			fmt.Sprintf("I couldn't find %q on the menu", name))
	}
	item := items[idx]

	draft := session.Draft.EnsureOrder()
	merged := false
	for i := range draft.Cart {
		if draft.Cart[i].ItemId == item.Id {
			draft.Cart[i].Quantity += quantity
			quantity = draft.Cart[i].Quantity
			merged = true
			break
		}
	}
	if !merged {
		draft.Cart = append(draft.Cart, entity.CartLine{
			ItemId:    item.Id,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  quantity,
		})
	}

	if err := s.persist(ctx, session, "add_item", map[string]interface{}{
		"item_id":  item.Id.String(),
		"name":     item.Name,
		"quantity": quantity,
	}); err != nil {
		return nil, err
	}

	return &dto.AddItemData{
		ItemId:             item.Id,
		Name:               item.Name,
		Quantity:           quantity,
		RequiresScheduling: item.IsSchedulable,
		MinScheduleHours:   item.MinScheduleHours,
	}, nil
}

// RemoveItem drops an entire line, resolved against the current draft.
func (s *cartService) RemoveItem(ctx context.Context, session *entity.Session, name string) (*dto.DraftSummary, error) {
	draft := session.Draft.EnsureOrder()
	idx, err := s.matchLine(draft, name)
	if err != nil {
		return nil, err
	}

	removed := draft.Cart[idx]
	draft.Cart = append(draft.Cart[:idx], draft.Cart[idx+1:]...)

	if err := s.persist(ctx, session, "remove_item", map[string]interface{}{
		"item_id": removed.ItemId.String(),
		"name":    removed.Name,
	}); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, session *entity.Session, name string, quantity int) (*dto.DraftSummary, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, session, name)
	}

	draft := session.Draft.EnsureOrder()
	idx, err := s.matchLine(draft, name)
	if err != nil {
		return nil, err
	}
	draft.Cart[idx].Quantity = quantity

	if err := s.persist(ctx, session, "update_quantity", map[string]interface{}{
		"item_id":  draft.Cart[idx].ItemId.String(),
		"name":     draft.Cart[idx].Name,
		"quantity": quantity,
	}); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

func (s *cartService) SetDeliveryType(ctx context.Context, session *entity.Session, deliveryType string) (*dto.DraftSummary, error) {
	if !constant.IsKnownDeliveryType(deliveryType) {
		return nil, apperror.Validation(apperror.CodeItemInvalid,
			fmt.Sprintf("unknown delivery type: %s", deliveryType))
	}

	draft := session.Draft.EnsureOrder()
	draft.DeliveryType = deliveryType

	// The fee applies only while the draft is a delivery; the address is
	// kept either way so switching back does not re-ask for it.
	if deliveryType == constant.DeliveryTypeDelivery {
		business, err := s.catalogService.Business(ctx, session.BusinessId)
		if err != nil {
			return nil, err
		}
		draft.DeliveryFee = business.DeliveryFee
	} else {
		draft.DeliveryFee = 0
	}

	if err := s.persist(ctx, session, "set_delivery_type", map[string]interface{}{
		"delivery_type": deliveryType,
	}); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

// SetAddress stores the text verbatim. No geocoding, no interpretation.
func (s *cartService) SetAddress(ctx context.Context, session *entity.Session, address string) (*dto.DraftSummary, error) {
	draft := session.Draft.EnsureOrder()
	draft.Address = address

	if err := s.persist(ctx, session, "set_address", nil); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

// SetLocation validates the coordinates, checks the delivery radius when the
// business publishes one, and stores the point. Nothing is written when the
// point is outside the radius.
func (s *cartService) SetLocation(ctx context.Context, session *entity.Session, latitude, longitude float64, label string) (*dto.DraftSummary, error) {
	if !geo.ValidateCoordinates(latitude, longitude) {
		return nil, apperror.Validation(apperror.CodeItemInvalid, "invalid GPS coordinates")
	}

	point := entity.GeoPoint{Latitude: latitude, Longitude: longitude, Label: label}

	business, err := s.catalogService.Business(ctx, session.BusinessId)
	if err != nil {
		return nil, err
	}
	if business.Location != nil && business.DeliveryRadiusKm != nil {
		check := geo.CheckRadius(point, *business.Location, *business.DeliveryRadiusKm)
		if !check.WithinRadius {
			return nil, apperror.PolicyDenied(apperror.CodeOutOfDeliveryRadius,
				fmt.Sprintf("sorry, that location is %.1f km away and we only deliver within %.0f km",
					check.DistanceKm, *business.DeliveryRadiusKm)).
				WithDetails(map[string]interface{}{
					"distance_km": check.DistanceKm,
					"radius_km":   *business.DeliveryRadiusKm,
				})
		}
	}

	draft := session.Draft.EnsureOrder()
	draft.Geo = &point

	if err := s.persist(ctx, session, "set_location", map[string]interface{}{
		"latitude":  latitude,
		"longitude": longitude,
	}); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

// SetSchedule parses the requested instant and runs it through the
// scheduling rules; scheduled_for is written only when both pass.
func (s *cartService) SetSchedule(ctx context.Context, session *entity.Session, scheduledFor string) (*dto.DraftSummary, error) {
	business, err := s.catalogService.Business(ctx, session.BusinessId)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if business.Timezone != "" {
		if parsed, err := time.LoadLocation(business.Timezone); err == nil {
			loc = parsed
		}
	}

	instant := s.scheduleParser.Parse(scheduledFor, loc)
	if instant == nil {
		return nil, apperror.Validation(apperror.CodeItemInvalid,
			"I couldn't understand the requested time, please give a date and time")
	}

	draft := session.Draft.EnsureOrder()

	items, err := s.catalogService.AllItems(ctx, session.BusinessId)
	if err != nil {
		return nil, err
	}
	required := schedule.RequiredLeadHours(draft.Cart, ItemsById(items))

	if err := s.validator.Validate(*instant, business, required); err != nil {
		return nil, err
	}

	draft.ScheduledFor = instant

	if err := s.persist(ctx, session, "set_schedule", map[string]interface{}{
		"scheduled_for": instant.Format(time.RFC3339),
	}); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

func (s *cartService) SetNotes(ctx context.Context, session *entity.Session, notes string) (*dto.DraftSummary, error) {
	draft := session.Draft.EnsureOrder()
	draft.Notes = notes

	if err := s.persist(ctx, session, "set_notes", nil); err != nil {
		return nil, err
	}
	return dto.NewDraftSummary(draft), nil
}

func (s *cartService) GetDraft(ctx context.Context, session *entity.Session) (*dto.DraftSummary, error) {
	return dto.NewDraftSummary(session.Draft.Order), nil
}

// matchLine resolves a name against the current draft lines only.
func (s *cartService) matchLine(draft *entity.OrderDraft, name string) (int, error) {
	names := make([]string, len(draft.Cart))
	for i, line := range draft.Cart {
		names[i] = line.Name
	}
	idx, score := s.matcher.BestIndex(name, names)
	if score == match.ScoreNone {
		return 0, apperror.NotFound(apperror.CodeLineNotFound,
			fmt.Sprintf("there is no %q in your order", name))
	}
	return idx, nil
}

// persist writes the session back and emits one draft_mutated audit entry.
func (s *cartService) persist(ctx context.Context, session *entity.Session, op string, detail map[string]interface{}) error {
	now := time.Now()
	session.UpdatedAt = &now

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return apperror.TransientStore(err)
	}

	payload := map[string]interface{}{"op": op}
	for k, v := range detail {
		payload[k] = v
	}
	s.publisherService.PublishAudit(ctx, dto.AuditMessage{
		BusinessId: session.BusinessId,
		SessionId:  auditSessionId(session.Id),
		Action:     constant.AuditDraftMutated,
		Payload:    payload,
	})
	return nil
}
