// api/service/submission_service.go
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

type ISubmissionService interface {
	CreateSubmission(ctx context.Context, input model.SubmissionInput) (*model.Submission, error)
	ListSubmissions(ctx context.Context, status string, limit, offset int) ([]*model.Submission, int64, error)
	UpdateSubmissionStatus(ctx context.Context, id, status string) (*model.Submission, error)
}

type SubmissionService struct {
	submissionDAO *dao.SubmissionDAO
	mailer        util.Mailer
	editorial     string
	eventBus      *util.EventBus
}

func NewSubmissionService(submissionDAO *dao.SubmissionDAO, mailer util.Mailer, editorialAddress string, eventBus *util.EventBus) *SubmissionService {
	service := &SubmissionService{
		submissionDAO: submissionDAO,
		mailer:        mailer,
		editorial:     editorialAddress,
		eventBus:      eventBus,
	}

	eventBus.Subscribe(util.EventSubmissionReceived, service.handleReceived)

	return service
}

func (s *SubmissionService) handleReceived(ctx context.Context, event util.Event) error {
	submission, ok := event.Payload.(model.Submission)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}

	html := fmt.Sprintf("<p>New %s submission from %s: %s</p><p>%s</p>",
		submission.Type, submission.Name, submission.Title, submission.Message)
	if err := s.mailer.Send(ctx, s.editorial, "New submission: "+submission.Title, html); err != nil {
		logger.Warn("Editorial notification failed", zap.Error(err), zap.String("submissionID", submission.ID))
	}
	return nil
}

func (s *SubmissionService) CreateSubmission(ctx context.Context, input model.SubmissionInput) (*model.Submission, error) {
	now := time.Now()
	submission := &model.Submission{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Link:      input.Link,
		Status:    model.SubmissionPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.submissionDAO.Insert(ctx, submission); err != nil {
		return nil, err
	}

	logger.Info("Submission received",
		zap.String("submissionID", submission.ID),
		zap.String("type", submission.Type))
	s.eventBus.Publish(ctx, util.EventSubmissionReceived, *submission)
	return submission, nil
}

func (s *SubmissionService) ListSubmissions(ctx context.Context, status string, limit, offset int) ([]*model.Submission, int64, error) {
	submissions, err := s.submissionDAO.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.submissionDAO.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return submissions, total, nil
}

func (s *SubmissionService) UpdateSubmissionStatus(ctx context.Context, id, status string) (*model.Submission, error) {
	if err := s.submissionDAO.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.submissionDAO.GetByID(ctx, id)
}
