// api/service/cart_service.go
package service

import (
	"context"

	"github.com/pulsecollective/pulse/api/dao"
	"github.com/pulsecollective/pulse/api/model"
)

type ICartService interface {
	GetCart(ctx context.Context, sessionID string) (*model.Cart, error)
	AddItem(ctx context.Context, sessionID string, req model.AddCartItemRequest) (*model.Cart, error)
	SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*model.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// CartService wraps the cart DAO's transactional operations and always
// returns the refreshed cart so the storefront can re-render in one call.
type CartService struct {
	cartDAO *dao.CartDAO
}

func NewCartService(cartDAO *dao.CartDAO) *CartService {
	return &CartService{cartDAO: cartDAO}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	return s.cartDAO.Get(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, req model.AddCartItemRequest) (*model.Cart, error) {
	if err := s.cartDAO.AddItem(ctx, sessionID, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}
	return s.cartDAO.Get(ctx, sessionID)
}

func (s *CartService) SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.Cart, error) {
	if err := s.cartDAO.SetItemQuantity(ctx, sessionID, productID, quantity); err != nil {
		return nil, err
	}
	return s.cartDAO.Get(ctx, sessionID)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	if err := s.cartDAO.RemoveItem(ctx, sessionID, productID); err != nil {
		return nil, err
	}
	return s.cartDAO.Get(ctx, sessionID)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.cartDAO.Clear(ctx, sessionID)
}
