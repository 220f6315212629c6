// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pulsecollective/pulse/api/model"
)

// MockAuthService is a mock implementation of service.IAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthPayload, error) {
	args := m.Called(ctx, req)
	if payload := args.Get(0); payload != nil {
		return payload.(*model.AuthPayload), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthPayload, error) {
	args := m.Called(ctx, req)
	if payload := args.Get(0); payload != nil {
		return payload.(*model.AuthPayload), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*model.AuthPayload, error) {
	args := m.Called(ctx, refreshToken)
	if payload := args.Get(0); payload != nil {
		return payload.(*model.AuthPayload), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	args := m.Called(ctx, userID, req)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockArticleService is a mock implementation of service.IArticleService
type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) CreateArticle(ctx context.Context, input model.ArticleInput) (*model.Article, error) {
	args := m.Called(ctx, input)
	if article := args.Get(0); article != nil {
		return article.(*model.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, id string, input model.ArticleInput) (*model.Article, error) {
	args := m.Called(ctx, id, input)
	if article := args.Get(0); article != nil {
		return article.(*model.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleService) DeleteArticle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleService) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	args := m.Called(ctx, slug)
	if article := args.Get(0); article != nil {
		return article.(*model.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArticleService) ListArticles(ctx context.Context, filter model.ArticleFilter, limit, offset int) ([]*model.Article, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var articles []*model.Article
	if v := args.Get(0); v != nil {
		articles = v.([]*model.Article)
	}
	return articles, args.Get(1).(int64), args.Error(2)
}

// MockMixService is a mock implementation of service.IMixService
type MockMixService struct {
	mock.Mock
}

func (m *MockMixService) CreateMix(ctx context.Context, input model.MixInput) (*model.Mix, error) {
	args := m.Called(ctx, input)
	if mix := args.Get(0); mix != nil {
		return mix.(*model.Mix), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMixService) UpdateMix(ctx context.Context, id string, input model.MixInput) (*model.Mix, error) {
	args := m.Called(ctx, id, input)
	if mix := args.Get(0); mix != nil {
		return mix.(*model.Mix), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMixService) DeleteMix(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMixService) GetMix(ctx context.Context, id string) (*model.Mix, error) {
	args := m.Called(ctx, id)
	if mix := args.Get(0); mix != nil {
		return mix.(*model.Mix), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMixService) ListMixes(ctx context.Context, limit, offset int) ([]*model.Mix, int64, error) {
	args := m.Called(ctx, limit, offset)
	var mixes []*model.Mix
	if v := args.Get(0); v != nil {
		mixes = v.([]*model.Mix)
	}
	return mixes, args.Get(1).(int64), args.Error(2)
}

func (m *MockMixService) RecordPlay(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventService is a mock implementation of service.IEventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, error) {
	args := m.Called(ctx, input)
	if event := args.Get(0); event != nil {
		return event.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, id string, input model.EventInput) (*model.Event, error) {
	args := m.Called(ctx, id, input)
	if event := args.Get(0); event != nil {
		return event.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if event := args.Get(0); event != nil {
		return event.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventService) ListEvents(ctx context.Context, filter model.EventFilter, limit, offset int) ([]*model.Event, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	var events []*model.Event
	if v := args.Get(0); v != nil {
		events = v.([]*model.Event)
	}
	return events, args.Get(1).(int64), args.Error(2)
}

// MockProductService is a mock implementation of service.IProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if product := args.Get(0); product != nil {
		return product.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if product := args.Get(0); product != nil {
		return product.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) GetProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	args := m.Called(ctx, slug)
	if product := args.Get(0); product != nil {
		return product.(*model.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Product, int64, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	var products []*model.Product
	if v := args.Get(0); v != nil {
		products = v.([]*model.Product)
	}
	return products, args.Get(1).(int64), args.Error(2)
}

// MockSubmissionService is a mock implementation of service.ISubmissionService
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) CreateSubmission(ctx context.Context, input model.SubmissionInput) (*model.Submission, error) {
	args := m.Called(ctx, input)
	if submission := args.Get(0); submission != nil {
		return submission.(*model.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSubmissionService) ListSubmissions(ctx context.Context, status string, limit, offset int) ([]*model.Submission, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var submissions []*model.Submission
	if v := args.Get(0); v != nil {
		submissions = v.([]*model.Submission)
	}
	return submissions, args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionService) UpdateSubmissionStatus(ctx context.Context, id, status string) (*model.Submission, error) {
	args := m.Called(ctx, id, status)
	if submission := args.Get(0); submission != nil {
		return submission.(*model.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCartService is a mock implementation of service.ICartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (*model.Cart, error) {
	args := m.Called(ctx, sessionID)
	if cart := args.Get(0); cart != nil {
		return cart.(*model.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, req model.AddCartItemRequest) (*model.Cart, error) {
	args := m.Called(ctx, sessionID, req)
	if cart := args.Get(0); cart != nil {
		return cart.(*model.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int) (*model.Cart, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	if cart := args.Get(0); cart != nil {
		return cart.(*model.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, productID string) (*model.Cart, error) {
	args := m.Called(ctx, sessionID, productID)
	if cart := args.Get(0); cart != nil {
		return cart.(*model.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
