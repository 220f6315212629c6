// api/controller/controllers.go
package controller

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

// Gates bundles the request-pipeline middleware each controller declares per
// route: authentication, role checks, rate-limit groups, response caching and
// cache invalidation. The router builds one Gates from the shared stores.
type Gates struct {
	Authenticate gin.HandlerFunc
	// OptionalAuth attaches an identity when a valid token is present but
	// never rejects; carts use it to fall back to the user id as session.
	OptionalAuth gin.HandlerFunc
	Staff        gin.HandlerFunc // editor or admin
	Admin        gin.HandlerFunc
	// Cache wraps idempotent GET routes; zero ttl means the process default.
	Cache func(ttl time.Duration) gin.HandlerFunc
	// Invalidate purges the given key patterns after a successful write.
	Invalidate func(patterns ...string) gin.HandlerFunc
	// Limit returns the limiter for a named route group.
	Limit func(group string) gin.HandlerFunc
}

// staffRequest reports whether the request carries an editor or admin
// identity. Public reads use it to decide whether draft and inactive
// content may be surfaced.
func staffRequest(c *gin.Context) bool {
	identity, ok := util.GetIdentityFromContext(c)
	if !ok {
		return false
	}
	return identity.Role == model.RoleEditor || identity.Role == model.RoleAdmin
}

type Controllers struct {
	Auth       *AuthController
	Article    *ArticleController
	Playlist   *PlaylistController
	Mix        *MixController
	Event      *EventController
	Product    *ProductController
	Cart       *CartController
	Newsletter *NewsletterController
	Submission *SubmissionController
	Upload     *UploadController
	Homepage   *HomepageController
	Settings   *SettingsController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services.Auth),
		Article:    NewArticleController(services.Article),
		Playlist:   NewPlaylistController(services.Playlist),
		Mix:        NewMixController(services.Mix),
		Event:      NewEventController(services.Event),
		Product:    NewProductController(services.Product),
		Cart:       NewCartController(services.Cart),
		Newsletter: NewNewsletterController(services.Newsletter),
		Submission: NewSubmissionController(services.Submission),
		Upload:     NewUploadController(services.Upload),
		Homepage:   NewHomepageController(services.Homepage),
		Settings:   NewSettingsController(services.Settings),
	}
}
