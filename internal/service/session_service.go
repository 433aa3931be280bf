package service

import (
	"context"
	"fmt"
	"time"

	"ai-ordering-be/internal/constant"
	"ai-ordering-be/internal/dto"
	"ai-ordering-be/internal/entity"
	"ai-ordering-be/internal/pkg/apperror"
	"ai-ordering-be/internal/repository/specification"
	"ai-ordering-be/internal/repository/unitofwork"
	"ai-ordering-be/pkg/events"
	pktNats "ai-ordering-be/pkg/nats"

	"github.com/google/uuid"
)

type ISessionService interface {
	GetOrCreate(ctx context.Context, businessId uuid.UUID, customerId, channel, initialMode string) (*entity.Session, error)
	SwitchMode(ctx context.Context, session *entity.Session, newMode, reason string) (*dto.SwitchModeData, error)
	Resume(ctx context.Context, businessId, sessionId uuid.UUID) (*dto.ResumeData, error)
	Lock(ctx context.Context, businessId, sessionId uuid.UUID) (*dto.SessionDTO, error)
	Unlock(ctx context.Context, businessId, sessionId uuid.UUID) (*dto.SessionDTO, error)
	AssignEmployee(ctx context.Context, businessId, sessionId, employeeId uuid.UUID) (*dto.SessionDTO, error)
	List(ctx context.Context, businessId uuid.UUID) ([]*dto.SessionDTO, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

// GetOrCreate returns the single eligible session for the key, creating one
// when none exists. A locked or assigned session is invisible to the bot; a
// fresh turn from that customer starts a new conversation. An empty
// initialMode means "whatever the session is in", defaulting to support on
// creation; a different non-empty mode triggers a switch.
func (s *sessionService) GetOrCreate(ctx context.Context, businessId uuid.UUID, customerId, channel, initialMode string) (*entity.Session, error) {
	if initialMode != "" && !constant.IsKnownMode(initialMode) {
		return nil, apperror.Validation(apperror.CodeUnknownMode, fmt.Sprintf("unknown mode: %s", initialMode))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByBusinessID{BusinessID: businessId},
		specification.ByCustomer{CustomerID: customerId},
		specification.ByChannel{Channel: channel},
		specification.EligibleForBot{},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}

	if session != nil {
		if initialMode != "" && session.Mode != initialMode {
			return session, s.switchModeLocked(ctx, uow, session, initialMode, "session reopened in different mode")
		}
		return session, nil
	}

	mode := initialMode
	if mode == "" {
		mode = constant.ModeSupport
	}

	session = &entity.Session{
		Id:         uuid.New(),
		BusinessId: businessId,
		CustomerId: customerId,
		Channel:    channel,
		Mode:       mode,
		Step:       constant.StepStart,
		Draft:      entity.DraftPayload{},
		Locked:     false,
		CreatedAt:  time.Now(),
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.TransientStore(err)
	}
	return session, nil
}

// SwitchMode applies the mode transition and reports it. Switching to the
// current mode is a no-op; unknown modes fail before any mutation.
func (s *sessionService) SwitchMode(ctx context.Context, session *entity.Session, newMode, reason string) (*dto.SwitchModeData, error) {
	oldMode := session.Mode

	if newMode != oldMode {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		if err := s.switchModeLocked(ctx, uow, session, newMode, reason); err != nil {
			return nil, err
		}
	}

	return &dto.SwitchModeData{
		SessionId: session.Id,
		OldMode:   oldMode,
		NewMode:   session.Mode,
		Step:      session.Step,
	}, nil
}

// switchModeLocked mutates and persists the transition. Draft data that does
// not survive the target mode is dropped; cart lines survive between order
// modes.
func (s *sessionService) switchModeLocked(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.Session, newMode, reason string) error {
	if !constant.IsKnownMode(newMode) {
		return apperror.Validation(apperror.CodeUnknownMode, fmt.Sprintf("unknown mode: %s", newMode))
	}

	oldMode := session.Mode
	now := time.Now()

	session.Draft = session.Draft.FilterForMode(newMode)
	session.Mode = newMode
	session.Step = constant.StepStart
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return apperror.TransientStore(err)
	}

	s.publisherService.PublishAudit(ctx, dto.AuditMessage{
		BusinessId: session.BusinessId,
		SessionId:  auditSessionId(session.Id),
		Action:     constant.AuditModeSwitched,
		Payload: map[string]interface{}{
			"old_mode": oldMode,
			"new_mode": newMode,
			"reason":   reason,
		},
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeModeSwitched,
			Data: map[string]interface{}{
				"business_id": session.BusinessId,
				"session_id":  session.Id,
				"old_mode":    oldMode,
				"new_mode":    newMode,
			},
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeModeSwitched, err)
		}
	}

	return nil
}

// Resume rehydrates conversational state after a restart. Sessions written
// by older versions may miss mode or step; both default rather than fail.
func (s *sessionService) Resume(ctx context.Context, businessId, sessionId uuid.UUID) (*dto.ResumeData, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByBusinessID{BusinessID: businessId},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if session == nil {
		return nil, apperror.NotFound(apperror.CodeSessionNotFound, "session not found")
	}
	if session.Locked {
		return nil, apperror.PolicyDenied(apperror.CodeSessionLocked, "a staff member is handling this conversation")
	}

	mode := session.Mode
	if mode == "" {
		mode = constant.ModeSupport
	}
	step := session.Step
	if step == "" {
		step = constant.StepStart
	}

	data := &dto.ResumeData{
		SessionId: session.Id,
		Mode:      mode,
		Step:      step,
	}
	if session.Draft.Order != nil {
		data.Draft = dto.NewDraftSummary(session.Draft.Order)
	}
	return data, nil
}

func (s *sessionService) Lock(ctx context.Context, businessId, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	return s.setLock(ctx, businessId, sessionId, true, nil)
}

func (s *sessionService) Unlock(ctx context.Context, businessId, sessionId uuid.UUID) (*dto.SessionDTO, error) {
	return s.setLock(ctx, businessId, sessionId, false, nil)
}

// AssignEmployee hands the conversation to a human; assignment always locks.
func (s *sessionService) AssignEmployee(ctx context.Context, businessId, sessionId, employeeId uuid.UUID) (*dto.SessionDTO, error) {
	return s.setLock(ctx, businessId, sessionId, true, &employeeId)
}

func (s *sessionService) setLock(ctx context.Context, businessId, sessionId uuid.UUID, locked bool, employeeId *uuid.UUID) (*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByBusinessID{BusinessID: businessId},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}
	if session == nil {
		return nil, apperror.NotFound(apperror.CodeSessionNotFound, "session not found")
	}

	now := time.Now()
	session.Locked = locked
	if employeeId != nil {
		session.AssignedEmployeeId = employeeId
	} else if !locked {
		session.AssignedEmployeeId = nil
	}
	session.UpdatedAt = &now

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.TransientStore(err)
	}

	if locked {
		payload := map[string]interface{}{"locked": true}
		if employeeId != nil {
			payload["employee_id"] = employeeId.String()
		}
		s.publisherService.PublishAudit(ctx, dto.AuditMessage{
			BusinessId: session.BusinessId,
			SessionId:  auditSessionId(session.Id),
			Action:     constant.AuditSessionLocked,
			Payload:    payload,
		})

		if s.eventPublisher != nil {
			evt := events.BaseEvent{
				Type: events.TypeSessionLocked,
				Data: map[string]interface{}{
					"business_id": session.BusinessId,
					"session_id":  session.Id,
				},
				OccurredAt: now,
			}
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish %s event: %v\n", events.TypeSessionLocked, err)
			}
		}
	}

	res := newSessionDTO(session)
	return &res, nil
}

func (s *sessionService) List(ctx context.Context, businessId uuid.UUID) ([]*dto.SessionDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.ByBusinessID{BusinessID: businessId},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.TransientStore(err)
	}

	res := make([]*dto.SessionDTO, 0, len(sessions))
	for _, session := range sessions {
		d := newSessionDTO(session)
		res = append(res, &d)
	}
	return res, nil
}

func newSessionDTO(session *entity.Session) dto.SessionDTO {
	return dto.SessionDTO{
		Id:                 session.Id,
		BusinessId:         session.BusinessId,
		CustomerId:         session.CustomerId,
		Channel:            session.Channel,
		Mode:               session.Mode,
		Step:               session.Step,
		Locked:             session.Locked,
		AssignedEmployeeId: session.AssignedEmployeeId,
		UpdatedAt:          session.UpdatedAt,
	}
}
