// api/service/newsletter_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pulsecollective/pulse/api/dao"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/util"
)

type INewsletterService interface {
	Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context, limit, offset int) ([]*model.Subscriber, int64, error)
}

// NewsletterService stores subscribers locally and syncs the external list
// provider through the event bus. Provider failures never fail the request.
type NewsletterService struct {
	newsletterDAO *dao.NewsletterDAO
	mailingList   util.MailingList
	mailer        util.Mailer
	eventBus      *util.EventBus
}

func NewNewsletterService(newsletterDAO *dao.NewsletterDAO, mailingList util.MailingList, mailer util.Mailer, eventBus *util.EventBus) *NewsletterService {
	service := &NewsletterService{
		newsletterDAO: newsletterDAO,
		mailingList:   mailingList,
		mailer:        mailer,
		eventBus:      eventBus,
	}

	eventBus.Subscribe(util.EventNewsletterSubscribed, service.handleSubscribed)

	return service
}

func (s *NewsletterService) handleSubscribed(ctx context.Context, event util.Event) error {
	subscriber, ok := event.Payload.(model.Subscriber)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	if err := s.mailingList.AddSubscriber(ctx, subscriber.Email, subscriber.Name); err != nil {
		logger.Warn("Mailing list sync failed", zap.Error(err), zap.String("subscriberID", subscriber.ID))
	}

	html := fmt.Sprintf("<p>Hey %s,</p><p>Welcome to the Pulse Collective newsletter.</p>", subscriber.Name)
	if err := s.mailer.Send(ctx, subscriber.Email, "Welcome to Pulse Collective", html); err != nil {
		logger.Warn("Welcome email failed", zap.Error(err), zap.String("subscriberID", subscriber.ID))
	}
	return nil
}

func (s *NewsletterService) Subscribe(ctx context.Context, req model.SubscribeRequest) (*model.Subscriber, error) {
	subscriber := &model.Subscriber{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		SubscribedAt: time.Now(),
	}
	if err := s.newsletterDAO.Insert(ctx, subscriber); err != nil {
		return nil, err
	}

	logger.Info("Newsletter subscription", zap.String("subscriberID", subscriber.ID))
	s.eventBus.Publish(ctx, util.EventNewsletterSubscribed, *subscriber)
	return subscriber, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	if err := s.newsletterDAO.DeleteByEmail(ctx, email); err != nil {
		return err
	}
	if err := s.mailingList.RemoveSubscriber(ctx, email); err != nil {
		logger.Warn("Mailing list removal failed", zap.Error(err))
	}
	return nil
}

func (s *NewsletterService) ListSubscribers(ctx context.Context, limit, offset int) ([]*model.Subscriber, int64, error) {
	subscribers, err := s.newsletterDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.newsletterDAO.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return subscribers, total, nil
}
