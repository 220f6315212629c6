// api/controller/product_controller.go
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

type ProductController struct {
	productService service.IProductService
}

func NewProductController(productService service.IProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

func productBodyRules() []middleware.Rule {
	return []middleware.Rule{
		{Field: "name", In: middleware.InBody, Type: middleware.TypeString, Required: true, Trim: true, MinLen: 2, MaxLen: 200},
		{Field: "description", In: middleware.InBody, Type: middleware.TypeString, Trim: true, MaxLen: 2000},
		{Field: "priceCents", In: middleware.InBody, Type: middleware.TypeInt, Required: true, Min: floatPtr(0)},
		{Field: "currency", In: middleware.InBody, Type: middleware.TypeString, Enum: []string{"EUR", "USD", "GBP"}},
		{Field: "images", In: middleware.InBody, Type: middleware.TypeArray},
		{Field: "stockQuantity", In: middleware.InBody, Type: middleware.TypeInt, Min: floatPtr(0)},
		{Field: "featured", In: middleware.InBody, Type: middleware.TypeBool},
		{Field: "active", In: middleware.InBody, Type: middleware.TypeBool},
	}
}

// RegisterRoutes registers the product routes
func (pc *ProductController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	invalidate := gates.Invalidate("/api/v1/products*", "/api/v1/homepage*")

	products := r.Group("/products")
	{
		products.GET("", gates.OptionalAuth, gates.Cache(0), pc.ListProducts)
		products.GET("/:slug", gates.OptionalAuth, gates.Cache(0), pc.GetProduct)
		products.POST("", gates.Authenticate, gates.Admin,
			middleware.Validate(productBodyRules()...), invalidate, pc.CreateProduct)
		products.PUT("/:id", gates.Authenticate, gates.Admin,
			middleware.Validate(productBodyRules()...), invalidate, pc.UpdateProduct)
		products.DELETE("/:id", gates.Authenticate, gates.Admin, invalidate, pc.DeleteProduct)
	}
}

// CreateProduct endpoint
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var input model.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	product, err := pc.productService.CreateProduct(c, input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to create product")
		return
	}

	util.RespondCreated(c, "Product created", product)
}

// UpdateProduct endpoint
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var input model.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	product, err := pc.productService.UpdateProduct(c, c.Param("id"), input)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update product")
		return
	}

	util.RespondOK(c, "Product updated", product)
}

// DeleteProduct endpoint
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c, c.Param("id")); err != nil {
		util.RespondServiceError(c, err, "Failed to delete product")
		return
	}

	util.RespondOK(c, "Product deleted", nil)
}

// GetProduct endpoint
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetProductBySlug(c, c.Param("slug"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load product")
		return
	}
	if !product.Active && !staffRequest(c) {
		util.RespondServiceError(c, pulse_errors.ErrProductNotFound, "Failed to load product")
		return
	}

	util.RespondOK(c, "Product", product)
}

// ListProducts endpoint
func (pc *ProductController) ListProducts(c *gin.Context) {
	page, limit, offset := helper_util.GetPaginationParams(c)
	activeOnly := !(staffRequest(c) && c.Query("active") == "false")

	products, total, err := pc.productService.ListProducts(c, activeOnly, limit, offset)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to list products")
		return
	}

	util.RespondPaginated(c, "Products", products, util.NewMeta(total, page, limit))
}
