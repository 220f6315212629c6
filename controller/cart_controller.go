// api/controller/cart_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/middleware"
	"github.com/pulsecollective/pulse/api/model"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

// Carts work for guests and members alike: a guest supplies X-Session-ID,
// a logged-in caller falls back to their user id.
const sessionHeader = "X-Session-ID"

type CartController struct {
	cartService service.ICartService
}

func NewCartController(cartService service.ICartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// RegisterRoutes registers the cart routes. Cart state is per session, so
// responses are never cached.
func (cc *CartController) RegisterRoutes(r *gin.RouterGroup, gates *Gates) {
	cart := r.Group("/cart", gates.OptionalAuth)
	{
		cart.GET("", cc.GetCart)
		cart.POST("/items",
			middleware.Validate(
				middleware.Rule{Field: "productId", In: middleware.InBody, Type: middleware.TypeString, Required: true, Format: "uuid"},
				middleware.Rule{Field: "quantity", In: middleware.InBody, Type: middleware.TypeInt, Required: true, Min: floatPtr(1), Max: floatPtr(99)},
			), cc.AddItem)
		cart.PUT("/items/:productId",
			middleware.Validate(
				middleware.Rule{Field: "quantity", In: middleware.InBody, Type: middleware.TypeInt, Required: true, Min: floatPtr(0), Max: floatPtr(99)},
			), cc.UpdateItem)
		cart.DELETE("/items/:productId", cc.RemoveItem)
		cart.DELETE("", cc.ClearCart)
	}
}

func (cc *CartController) sessionID(c *gin.Context) (string, bool) {
	if sid := c.GetHeader(sessionHeader); sid != "" {
		return sid, true
	}
	if identity, ok := util.GetIdentityFromContext(c); ok {
		return identity.ID, true
	}
	util.RespondWithError(c, http.StatusBadRequest, "Missing cart session", pulse_errors.ErrMissingSession)
	return "", false
}

// GetCart endpoint
func (cc *CartController) GetCart(c *gin.Context) {
	sid, ok := cc.sessionID(c)
	if !ok {
		return
	}

	cart, err := cc.cartService.GetCart(c, sid)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to load cart")
		return
	}

	util.RespondOK(c, "Cart", cart)
}

// AddItem endpoint
func (cc *CartController) AddItem(c *gin.Context) {
	sid, ok := cc.sessionID(c)
	if !ok {
		return
	}

	var req model.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid cart item data", err)
		return
	}

	cart, err := cc.cartService.AddItem(c, sid, req)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to add cart item")
		return
	}

	util.RespondOK(c, "Item added", cart)
}

// UpdateItem endpoint
func (cc *CartController) UpdateItem(c *gin.Context) {
	sid, ok := cc.sessionID(c)
	if !ok {
		return
	}

	var req model.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid cart item data", err)
		return
	}

	cart, err := cc.cartService.SetItemQuantity(c, sid, c.Param("productId"), req.Quantity)
	if err != nil {
		util.RespondServiceError(c, err, "Failed to update cart item")
		return
	}

	util.RespondOK(c, "Item updated", cart)
}

// RemoveItem endpoint
func (cc *CartController) RemoveItem(c *gin.Context) {
	sid, ok := cc.sessionID(c)
	if !ok {
		return
	}

	cart, err := cc.cartService.RemoveItem(c, sid, c.Param("productId"))
	if err != nil {
		util.RespondServiceError(c, err, "Failed to remove cart item")
		return
	}

	util.RespondOK(c, "Item removed", cart)
}

// ClearCart endpoint
func (cc *CartController) ClearCart(c *gin.Context) {
	sid, ok := cc.sessionID(c)
	if !ok {
		return
	}

	if err := cc.cartService.ClearCart(c, sid); err != nil {
		util.RespondServiceError(c, err, "Failed to clear cart")
		return
	}

	util.RespondOK(c, "Cart cleared", nil)
}
