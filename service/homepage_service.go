// api/service/homepage_service.go
package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/model"
)

const (
	homeArticleCount = 4
	homeEventCount   = 3
	homeMixCount     = 4
	homeProductCount = 4
)

type IHomepageService interface {
	GetHomepage(ctx context.Context) (*model.Homepage, error)
}

// HomepageService aggregates the landing-page sections. The four reads are
// independent, so they run concurrently.
type HomepageService struct {
	articleDAO *dao.ArticleDAO
	eventDAO   *dao.EventDAO
	mixDAO     *dao.MixDAO
	productDAO *dao.ProductDAO
}

func NewHomepageService(articleDAO *dao.ArticleDAO, eventDAO *dao.EventDAO, mixDAO *dao.MixDAO, productDAO *dao.ProductDAO) *HomepageService {
	return &HomepageService{
		articleDAO: articleDAO,
		eventDAO:   eventDAO,
		mixDAO:     mixDAO,
		productDAO: productDAO,
	}
}

func (s *HomepageService) GetHomepage(ctx context.Context) (*model.Homepage, error) {
	home := &model.Homepage{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		articles, err := s.articleDAO.ListLatest(ctx, homeArticleCount)
		home.Articles = articles
		return err
	})
	g.Go(func() error {
		events, err := s.eventDAO.ListUpcoming(ctx, homeEventCount)
		home.Events = events
		return err
	})
	g.Go(func() error {
		mixes, err := s.mixDAO.ListLatest(ctx, homeMixCount)
		home.Mixes = mixes
		return err
	})
	g.Go(func() error {
		products, err := s.productDAO.ListFeatured(ctx, homeProductCount)
		home.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return home, nil
}
