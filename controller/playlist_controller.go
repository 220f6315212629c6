// api/controller/playlist_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

type PlaylistController struct {
	playlistService service.IPlaylistService
}

func NewPlaylistController(playlistService service.IPlaylistService) *PlaylistController {
	return &PlaylistController{
		playlistService: playlistService,
	}
}

func playlistBodyRules() []middleware.Rule {
	return []middleware.Rule{
		{Field: "title", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 200},
		{Field: "description", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 1000},
		{Field: "coverImage", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		{Field: "trackCount", In: middleware.InBody, Type: middleware.TypeInt, Min: floatPtr(0)},
		{Field: "spotifyUrl", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		{Field: "curator", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 120},
	}
}

func floatPtr(v float64) *float64 { return &v }

// RegisterRoutes registers the playlist routes
func (pc *PlaylistController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	invalidate := gates.Invalidate("/api/v1/playlists*")

	playlists := r.Group("/playlists")
	{
		playlists.GET("", gates.Cache(0), pc.ListPlaylists)
		playlists.GET("/:id", gates.Cache(0), pc.GetPlaylist)
		playlists.POST("", gates.Authenticate, gates.Staff,
			middleware.Validate(playlistBodyRules()...), invalidate, pc.CreatePlaylist)
		playlists.PUT("/:id", gates.Authenticate, gates.Staff,
			middleware.Validate(playlistBodyRules()...), invalidate, pc.UpdatePlaylist)
		playlists.DELETE("/:id", gates.Authenticate, gates.Staff, invalidate, pc.DeletePlaylist)
	}
}

// CreatePlaylist endpoint
func (pc *PlaylistController) CreatePlaylist(c *gin.Context) {
	var input model.PlaylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid playlist data", err)
		return
	}

	playlist, err := pc.playlistService.CreatePlaylist(c, input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to create playlist")
		return
	}

	util.RespondCreated(c, "Playlist created", playlist)
}

// UpdatePlaylist endpoint
func (pc *PlaylistController) UpdatePlaylist(c *gin.Context) {
	var input model.PlaylistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid playlist data", err)
		return
	}

	playlist, err := pc.playlistService.UpdatePlaylist(c, c.Param("id"), input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update playlist")
		return
	}

	util.RespondOK(c, "Playlist updated", playlist)
}

// DeletePlaylist endpoint
func (pc *PlaylistController) DeletePlaylist(c *gin.Context) {
	if err := pc.playlistService.DeletePlaylist(c, c.Param("id")); err != nil {
		util.RespondServiceError(c, err, "Failed to delete playlist")
		return
	}

	util.RespondOK(c, "Playlist deleted", nil)
}

// GetPlaylist endpoint
func (pc *PlaylistController) GetPlaylist(c *gin.Context) {
	playlist, err := pc.playlistService.GetPlaylist(c, c.Param("id"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load playlist")
		return
	}

	util.RespondOK(c, "Playlist", playlist)
}

// ListPlaylists endpoint
func (pc *PlaylistController) ListPlaylists(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)

	playlists, total, err := pc.playlistService.ListPlaylists(c, limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list playlists")
		return
	}

	util.RespondPaginated(c, "Playlists", playlists, util.NewMeta(total, page, limit))
}
