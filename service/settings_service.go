// api/service/settings_service.go
package service

import (
	"context"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/model"
)

type ISettingsService interface {
	GetSettings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, values map[string]string) (model.Settings, error)
}

type SettingsService struct {
	settingsDAO *dao.SettingsDAO
}

func NewSettingsService(settingsDAO *dao.SettingsDAO) *SettingsService {
	return &SettingsService{settingsDAO: settingsDAO}
}

func (s *SettingsService) GetSettings(ctx context.Context) (model.Settings, error) {
	return s.settingsDAO.GetAll(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, values map[string]string) (model.Settings, error) {
	if err := s.settingsDAO.Upsert(ctx, values); err != nil {
		return nil, err
	}
	return s.settingsDAO.GetAll(ctx)
}
