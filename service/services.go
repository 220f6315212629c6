// api/service/services.go
package service

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/util"
)

type Services struct {
	Auth       IAuthService
	Article    IArticleService
	Playlist   IPlaylistService
	Mix        IMixService
	Event      IEventService
	Product    IProductService
	Cart       ICartService
	Newsletter INewsletterService
	Submission ISubmissionService
	Upload     IUploadService
	Homepage   IHomepageService
	Settings   ISettingsService
}

func InitializeServices(
	pool *pgxpool.Pool,
	tokens *util.TokenService,
	mailer util.Mailer,
	mailingList util.MailingList,
	storage util.ObjectStorage,
	editorialAddress string,
	eventBus *util.EventBus,
) *Services {
	userDAO := dao.NewUserDAO(pool)
	articleDAO := dao.NewArticleDAO(pool)
	playlistDAO := dao.NewPlaylistDAO(pool)
	mixDAO := dao.NewMixDAO(pool)
	eventDAO := dao.NewEventDAO(pool)
	productDAO := dao.NewProductDAO(pool)
	cartDAO := dao.NewCartDAO(pool)
	newsletterDAO := dao.NewNewsletterDAO(pool)
	submissionDAO := dao.NewSubmissionDAO(pool)
	settingsDAO := dao.NewSettingsDAO(pool)

	return &Services{
		Auth:       NewAuthService(userDAO, tokens),
		Article:    NewArticleService(articleDAO),
		Playlist:   NewPlaylistService(playlistDAO),
		Mix:        NewMixService(mixDAO),
		Event:      NewEventService(eventDAO),
		Product:    NewProductService(productDAO),
		Cart:       NewCartService(cartDAO),
		Newsletter: NewNewsletterService(newsletterDAO, mailingList, mailer, eventBus),
		Submission: NewSubmissionService(submissionDAO, mailer, editorialAddress, eventBus),
		Upload:     NewUploadService(storage),
		Homepage:   NewHomepageService(articleDAO, eventDAO, mixDAO, productDAO),
		Settings:   NewSettingsService(settingsDAO),
	}
}
