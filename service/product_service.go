// api/service/product_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/model"
	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

type IProductService interface {
	CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProductBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Product, int64, error)
}

type ProductService struct {
	productDAO *dao.ProductDAO
}

func NewProductService(productDAO *dao.ProductDAO) *ProductService {
	return &ProductService{productDAO: productDAO}
}

func (s *ProductService) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	now := time.Now()
	product := &model.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Slug:          helper_util.Slugify(input.Name),
		Description:   input.Description,
		PriceCents:    input.PriceCents,
		Currency:      input.Currency,
		Images:        input.Images,
		StockQuantity: input.StockQuantity,
		Featured:      input.Featured,
		Active:        input.Active,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Currency == "" {
		product.Currency = "EUR"
	}

	if err := s.productDAO.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	product, err := s.productDAO.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Slug = helper_util.Slugify(input.Name)
	product.Description = input.Description
	product.PriceCents = input.PriceCents
	if input.Currency != "" {
		product.Currency = input.Currency
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	product.StockQuantity = input.StockQuantity
	product.Featured = input.Featured
	product.Active = input.Active

	if err := s.productDAO.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.productDAO.Delete(ctx, id)
}

func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.productDAO.GetBySlug(ctx, slug)
}

func (s *ProductService) ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Product, int64, error) {
	products, err := s.productDAO.List(ctx, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productDAO.Count(ctx, activeOnly)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
