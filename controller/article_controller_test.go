// api/controller/article_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/pulsecollective/pulse/api/controller"
	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/test/mock"
	"github.com/pulsecollective/pulse/api/util"
)

func setupArticleRouter(svc *mock.MockArticleService, tokens *util.TokenService) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/v1")
	controller.NewArticleController(svc).RegisterRoutes(api, testGates(tokens))
	return r
}

func editorToken(t *testing.T, tokens *util.TokenService) string {
	t.Helper()
	access, _, err := tokens.IssuePair(&model.User{ID: "e1", Email: "editor@pulse.net", Role: model.RoleEditor})
	assert.NoError(t, err)
	return access
}

const validArticleBody = `{"title":"Berlin After Dark","body":"Long read about the scene.","published":true}`

func TestCreateArticle_Success(t *testing.T) {
	tokens := tokensForTest()
	svc := new(mock.MockArticleService)
	svc.On("CreateArticle", tmock.Anything, tmock.Anything).
		Return(&model.Article{ID: "a1", Slug: "berlin-after-dark", Title: "Berlin After Dark"}, nil)

	r := setupArticleRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/articles", strings.NewReader(validArticleBody))
	req.Header.Set("Authorization", "Bearer "+editorToken(t, tokens))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "berlin-after-dark")
	svc.AssertExpectations(t)
}

func TestCreateArticle_RequiresStaffRole(t *testing.T) {
	tokens := tokensForTest()
	access, _, err := tokens.IssuePair(&model.User{ID: "u1", Email: "fan@pulse.net", Role: model.RoleUser})
	assert.NoError(t, err)

	svc := new(mock.MockArticleService)
	r := setupArticleRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/articles", strings.NewReader(validArticleBody))
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "CreateArticle")
}

func TestCreateArticle_SlugConflict(t *testing.T) {
	tokens := tokensForTest()
	svc := new(mock.MockArticleService)
	svc.On("CreateArticle", tmock.Anything, tmock.Anything).
		Return(nil, pulse_errors.ErrSlugTaken)

	r := setupArticleRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/articles", strings.NewReader(validArticleBody))
	req.Header.Set("Authorization", "Bearer "+editorToken(t, tokens))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticle_NotFound(t *testing.T) {
	svc := new(mock.MockArticleService)
	svc.On("GetArticleBySlug", tmock.Anything, "missing").
		Return(nil, pulse_errors.ErrArticleNotFound)

	r := setupArticleRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListArticles_PaginationMeta(t *testing.T) {
	svc := new(mock.MockArticleService)
	svc.On("ListArticles", tmock.Anything, tmock.Anything, 10, 10).
		Return([]*model.Article{{ID: "a1"}}, int64(21), nil)

	r := setupArticleRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles?page=2&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp util.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, int64(21), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.Limit)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	svc.AssertExpectations(t)
}

func TestListArticles_TagFilter(t *testing.T) {
	svc := new(mock.MockArticleService)
	svc.On("ListArticles", tmock.Anything, tmock.MatchedBy(func(f model.ArticleFilter) bool {
		return f.Tag == "techno" && f.PublishedOnly
	}), 10, 0).Return([]*model.Article{}, int64(0), nil)

	r := setupArticleRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles?tag=techno", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListArticles_AnonymousDraftFilterIgnored(t *testing.T) {
	svc := new(mock.MockArticleService)
	svc.On("ListArticles", tmock.Anything, tmock.MatchedBy(func(f model.ArticleFilter) bool {
		return f.PublishedOnly
	}), 10, 0).Return([]*model.Article{}, int64(0), nil)

	r := setupArticleRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles?published=false", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestListArticles_EditorCanListDrafts(t *testing.T) {
	tokens := tokensForTest()
	svc := new(mock.MockArticleService)
	svc.On("ListArticles", tmock.Anything, tmock.MatchedBy(func(f model.ArticleFilter) bool {
		return !f.PublishedOnly
	}), 10, 0).Return([]*model.Article{}, int64(0), nil)

	r := setupArticleRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles?published=false", nil)
	req.Header.Set("Authorization", "Bearer "+editorToken(t, tokens))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestGetArticle_DraftHiddenFromAnonymous(t *testing.T) {
	svc := new(mock.MockArticleService)
	svc.On("GetArticleBySlug", tmock.Anything, "unreleased-mix-report").
		Return(&model.Article{ID: "a2", Slug: "unreleased-mix-report", Published: false}, nil)

	r := setupArticleRouter(svc, tokensForTest())
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles/unreleased-mix-report", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticle_DraftVisibleToEditor(t *testing.T) {
	tokens := tokensForTest()
	svc := new(mock.MockArticleService)
	svc.On("GetArticleBySlug", tmock.Anything, "unreleased-mix-report").
		Return(&model.Article{ID: "a2", Slug: "unreleased-mix-report", Published: false}, nil)

	r := setupArticleRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/articles/unreleased-mix-report", nil)
	req.Header.Set("Authorization", "Bearer "+editorToken(t, tokens))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteArticle_Success(t *testing.T) {
	tokens := tokensForTest()
	svc := new(mock.MockArticleService)
	svc.On("DeleteArticle", tmock.Anything, "a1").Return(nil)

	r := setupArticleRouter(svc, tokens)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/articles/a1", nil)
	req.Header.Set("Authorization", "Bearer "+editorToken(t, tokens))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
