// api/service/event_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/model"
)

type IEventService interface {
	CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, error)
	UpdateEvent(ctx context.Context, id string, input model.EventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	ListEvents(ctx context.Context, filter model.EventFilter, limit, offset int) ([]*model.Event, int64, error)
}

type EventService struct {
	eventDAO *dao.EventDAO
}

func NewEventService(eventDAO *dao.EventDAO) *EventService {
	return &EventService{eventDAO: eventDAO}
}

// applyInput copies validated input onto an event. The validation gate has
// already guaranteed startsAt parses as RFC 3339.
func applyInput(event *model.Event, input model.EventInput) {
	event.Title = input.Title
	event.Venue = input.Venue
	event.City = input.City
	event.Description = input.Description
	event.CoverImage = input.CoverImage
	event.TicketURL = input.TicketURL
	event.Published = input.Published
	if startsAt, err := time.Parse(time.RFC3339, input.StartsAt); err == nil {
		event.StartsAt = startsAt
	}
	if input.EndsAt != "" {
		if endsAt, err := time.Parse(time.RFC3339, input.EndsAt); err == nil {
			event.EndsAt = &endsAt
		}
	} else {
		event.EndsAt = nil
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, error) {
	now := time.Now()
	event := &model.Event{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(event, input)

	if err := s.eventDAO.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input model.EventInput) (*model.Event, error) {
	event, err := s.eventDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyInput(event, input)

	if err := s.eventDAO.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.eventDAO.Delete(ctx, id)
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	return s.eventDAO.GetByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, filter model.EventFilter, limit, offset int) ([]*model.Event, int64, error) {
	events, err := s.eventDAO.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.eventDAO.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
