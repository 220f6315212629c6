// api/service/article_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pulsecollective/pulse/api/dao"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/model"
	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

type IArticleService interface {
	CreateArticle(ctx context.Context, input model.ArticleInput) (*model.Article, error)
	UpdateArticle(ctx context.Context, id string, input model.ArticleInput) (*model.Article, error)
	DeleteArticle(ctx context.Context, id string) error
	GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error)
	ListArticles(ctx context.Context, filter model.ArticleFilter, limit, offset int) ([]*model.Article, int64, error)
}

type ArticleService struct {
	articleDAO *dao.ArticleDAO
}

func NewArticleService(articleDAO *dao.ArticleDAO) *ArticleService {
	return &ArticleService{articleDAO: articleDAO}
}

func (s *ArticleService) CreateArticle(ctx context.Context, input model.ArticleInput) (*model.Article, error) {
	now := time.Now()
	article := &model.Article{
		ID:         uuid.NewString(),
		Title:      input.Title,
		Slug:       helper_util.Slugify(input.Title),
		Excerpt:    input.Excerpt,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		Tags:       input.Tags,
		Author:     input.Author,
		Published:  input.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	if input.Published {
		article.PublishedAt = &now
	}

	if err := s.articleDAO.Create(ctx, article); err != nil {
		return nil, err
	}
	logger.Info("Article created", zap.String("articleID", article.ID), zap.String("slug", article.Slug))
	return article, nil
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, input model.ArticleInput) (*model.Article, error) {
	article, err := s.articleDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = input.Title
	article.Slug = helper_util.Slugify(input.Title)
	article.Excerpt = input.Excerpt
	article.Body = input.Body
	article.CoverImage = input.CoverImage
	article.Author = input.Author
	if input.Tags != nil {
		article.Tags = input.Tags
	}
	if input.Published && !article.Published {
		now := time.Now()
		article.PublishedAt = &now
	}
	article.Published = input.Published

	if err := s.articleDAO.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.articleDAO.Delete(ctx, id)
}

func (s *ArticleService) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return s.articleDAO.GetBySlug(ctx, slug)
}

func (s *ArticleService) ListArticles(ctx context.Context, filter model.ArticleFilter, limit, offset int) ([]*model.Article, int64, error) {
	articles, err := s.articleDAO.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.articleDAO.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
