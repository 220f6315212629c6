// api/service/playlist_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/model"
)

type IPlaylistService interface {
	CreatePlaylist(ctx context.Context, input model.PlaylistInput) (*model.Playlist, error)
	UpdatePlaylist(ctx context.Context, id string, input model.PlaylistInput) (*model.Playlist, error)
	DeletePlaylist(ctx context.Context, id string) error
	GetPlaylist(ctx context.Context, id string) (*model.Playlist, error)
	ListPlaylists(ctx context.Context, limit, offset int) ([]*model.Playlist, int64, error)
}

type PlaylistService struct {
	playlistDAO *dao.PlaylistDAO
}

func NewPlaylistService(playlistDAO *dao.PlaylistDAO) *PlaylistService {
	return &PlaylistService{playlistDAO: playlistDAO}
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, input model.PlaylistInput) (*model.Playlist, error) {
	now := time.Now()
	playlist := &model.Playlist{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		TrackCount:  input.TrackCount,
		SpotifyURL:  input.SpotifyURL,
		Curator:     input.Curator,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.playlistDAO.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) UpdatePlaylist(ctx context.Context, id string, input model.PlaylistInput) (*model.Playlist, error) {
	playlist, err := s.playlistDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	playlist.Title = input.Title
	playlist.Description = input.Description
	playlist.CoverImage = input.CoverImage
	playlist.TrackCount = input.TrackCount
	playlist.SpotifyURL = input.SpotifyURL
	playlist.Curator = input.Curator

	if err := s.playlistDAO.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, id string) error {
	return s.playlistDAO.Delete(ctx, id)
}

func (s *PlaylistService) GetPlaylist(ctx context.Context, id string) (*model.Playlist, error) {
	return s.playlistDAO.GetByID(ctx, id)
}

func (s *PlaylistService) ListPlaylists(ctx context.Context, limit, offset int) ([]*model.Playlist, int64, error) {
	playlists, err := s.playlistDAO.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.playlistDAO.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return playlists, total, nil
}
