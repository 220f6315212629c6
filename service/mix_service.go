// api/service/mix_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pulsecollective/pulse/api/dao"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
)

type IMixService interface {
	CreateMix(ctx context.Context, input model.MixInput) (*model.Mix, error)
	UpdateMix(ctx context.Context, id string, input model.MixInput) (*model.Mix, error)
	DeleteMix(ctx context.Context, id string) error
	GetMix(ctx context.Context, id string) (*model.Mix, error)
	ListMixes(ctx context.Context, limit, offset int) ([]*model.Mix, int64, error)
	RecordPlay(ctx context.Context, id string) (int64, error)
}

type MixService struct {
	mixDAO *dao.MixDAO
}

func NewMixService(mixDAO *dao.MixDAO) *MixService {
	return &MixService{mixDAO: mixDAO}
}

func (s *MixService) CreateMix(ctx context.Context, input model.MixInput) (*model.Mix, error) {
	now := time.Now()
	mix := &model.Mix{
		ID:              uuid.NewString(),
		Title:           input.Title,
		DJ:              input.DJ,
		Description:     input.Description,
		AudioURL:        input.AudioURL,
		CoverImage:      input.CoverImage,
		DurationSeconds: input.DurationSeconds,
		PublishedAt:     &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.mixDAO.Create(ctx, mix); err != nil {
		return nil, err
	}
	logger.Info("Mix published", zap.String("mixID", mix.ID), zap.String("dj", mix.DJ))
	return mix, nil
}

func (s *MixService) UpdateMix(ctx context.Context, id string, input model.MixInput) (*model.Mix, error) {
	mix, err := s.mixDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mix.Title = input.Title
	mix.DJ = input.DJ
	mix.Description = input.Description
	mix.AudioURL = input.AudioURL
	mix.CoverImage = input.CoverImage
	mix.DurationSeconds = input.DurationSeconds

	if err := s.mixDAO.Update(ctx, mix); err != nil {
		return nil, err
	}
	return mix, nil
}

func (s *MixService) DeleteMix(ctx context.Context, id string) error {
	return s.mixDAO.Delete(ctx, id)
}

func (s *MixService) GetMix(ctx context.Context, id string) (*model.Mix, error) {
	return s.mixDAO.GetByID(ctx, id)
}

func (s *MixService) ListMixes(ctx context.Context, limit, offset int) ([]*model.Mix, int64, error) {
	mixes, err := s.mixDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.mixDAO.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return mixes, total, nil
}

func (s *MixService) RecordPlay(ctx context.Context, id string) (int64, error) {
	return s.mixDAO.IncrementPlayCount(ctx, id)
}
