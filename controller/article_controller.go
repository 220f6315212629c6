// api/controller/article_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
	helper_util "github.com/pulsecollective/pulse/api/util/helper"
)

type ArticleController struct {
	articleService service.IArticleService
}

func NewArticleController(articleService service.IArticleService) *ArticleController {
	return &ArticleController{
		articleService: articleService,
	}
}

func articleBodyRules() []middleware.Rule {
	return []middleware.Rule{
		{Field: "title", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 3, MaxLen: 200},
		{Field: "excerpt", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 500},
		{Field: "body", In: middleware.InBody, Type: middleware.TypeString, Required: true},
		{Field: "coverImage", In: middleware.InBody, Type: middleware.TypeString, Format: "url"},
		{Field: "tags", In: middleware.InBody, Type: middleware.TypeArray},
		{Field: "author", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 120},
		{Field: "published", In: middleware.InBody, Type: middleware.TypeBool},
	}
}

// RegisterRoutes registers the article routes. Public reads are cached;
// staff writes purge the article and homepage entries.
func (ac *ArticleController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	invalidate := gates.Invalidate("/api/v1/articles*", "/api/v1/homepage*")

	articles := r.Group("/articles")
	{
		articles.GET("", gates.OptionalAuth, gates.Cache(0), ac.ListArticles)
		articles.GET("/:slug", gates.OptionalAuth, gates.Cache(0), ac.GetArticle)
		articles.POST("", gates.Authenticate, gates.Staff,
			middleware.Validate(articleBodyRules()...), invalidate, ac.CreateArticle)
		articles.PUT("/:id", gates.Authenticate, gates.Staff,
			middleware.Validate(articleBodyRules()...), invalidate, ac.UpdateArticle)
		articles.DELETE("/:id", gates.Authenticate, gates.Staff, invalidate, ac.DeleteArticle)
	}
}

// CreateArticle endpoint
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var input model.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid article data", err)
		return
	}

	article, err := ac.articleService.CreateArticle(c, input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to create article")
		return
	}

	util.RespondCreated(c, "Article created", article)
}

// UpdateArticle endpoint
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	var input model.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid article data", err)
		return
	}

	article, err := ac.articleService.UpdateArticle(c, c.Param("id"), input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update article")
		return
	}

	util.RespondOK(c, "Article updated", article)
}

// DeleteArticle endpoint
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	if err := ac.articleService.DeleteArticle(c, c.Param("id")); err != nil {
		util.RespondServiceError(c, err, "Failed to delete article")
		return
	}

	util.RespondOK(c, "Article deleted", nil)
}

// GetArticle endpoint
func (ac *ArticleController) GetArticle(c *gin.Context) {
	article, err := ac.articleService.GetArticleBySlug(c, c.Param("slug"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load article")
		return
	}
	// Drafts exist only for staff.
	if !article.Published && !staffRequest(c) {
		util.RespondServiceError(c, pulse_errors.ErrArticleNotFound, "Failed to load article")
		return
	}

	util.RespondOK(c, "Article", article)
}

// ListArticles endpoint
func (ac *ArticleController) ListArticles(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)
	filter := model.ArticleFilter{
		Tag:           c.Query("tag"),
		PublishedOnly: !(staffRequest(c) && c.Query("published") == "false"),
	}

	articles, total, err := ac.articleService.ListArticles(c, filter, limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list articles")
		return
	}

	util.RespondPaginated(c, "Articles", articles, util.NewMeta(total, page, limit))
}
