package api

import (
	"errors"
	"net/http"

	"stitchcart/internal/domain/cart"
	reqdto "stitchcart/internal/handler/dto/request"
	resdto "stitchcart/internal/handler/dto/response"
	"stitchcart/internal/handler/middleware"
	"stitchcart/internal/infra/cartstore"
	"stitchcart/internal/pkg/config"
	"stitchcart/internal/usecase/commands"
	"stitchcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
	cookieCfg    config.CookieConfig
	cartCfg      config.CartConfig
}

func NewCartHandler(
	cartCommands commands.CartCommands,
	cartQueries queries.CartQueries,
	cookieCfg config.CookieConfig,
	cartCfg config.CartConfig,
) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
		cookieCfg:    cookieCfg,
		cartCfg:      cartCfg,
	}
}

// store builds the request-scoped cookie store the commands persist through.
func (h *CartHandler) store(c *gin.Context) *cartstore.CookieStore {
	return cartstore.NewCookieStore(c, h.cookieCfg, h.cartCfg.CookieTTL)
}

// @Summary Get cart
// @Description Get the cart slot for the given type ("main" or "sample")
// @Tags carts
// @Produce json
// @Param kind path string true "Cart type" Enums(main, sample)
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /carts/{kind} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	kind, err := cart.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown cart type",
		})
		return
	}

	view, err := h.cartQueries.Get(c.Request.Context(), h.store(c), kind, middleware.CurrentOwnerID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCartView(c, http.StatusOK, view)
}

// @Summary Add cart item
// @Description Add a product to the cart, merging with an existing line when product and customizations match
// @Tags carts
// @Accept json
// @Produce json
// @Param kind path string true "Cart type" Enums(main, sample)
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{kind}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	kind, err := cart.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown cart type",
		})
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snapshot, err := h.cartCommands.AddItem(c.Request.Context(), h.store(c), req, kind, middleware.CurrentOwnerID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCartView(c, http.StatusOK, queries.NewCartView(snapshot))
}

// @Summary Update cart item quantity
// @Description Set the quantity of an existing cart line
// @Tags carts
// @Accept json
// @Produce json
// @Param kind path string true "Cart type" Enums(main, sample)
// @Param itemId path string true "Cart item ID"
// @Param request body reqdto.UpdateCartItemQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{kind}/items/{itemId} [patch]
func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	kind, itemID, ok := h.kindAndItemID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCartItemQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	snapshot, err := h.cartCommands.SetItemQuantity(c.Request.Context(), h.store(c), kind, itemID, req.Quantity, middleware.CurrentOwnerID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCartView(c, http.StatusOK, queries.NewCartView(snapshot))
}

// @Summary Remove cart item
// @Description Remove one line from the cart
// @Tags carts
// @Produce json
// @Param kind path string true "Cart type" Enums(main, sample)
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{kind}/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	kind, itemID, ok := h.kindAndItemID(c)
	if !ok {
		return
	}

	snapshot, err := h.cartCommands.RemoveItem(c.Request.Context(), h.store(c), kind, itemID, middleware.CurrentOwnerID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCartView(c, http.StatusOK, queries.NewCartView(snapshot))
}

// @Summary Clear cart
// @Description Remove every line from the cart slot
// @Tags carts
// @Produce json
// @Param kind path string true "Cart type" Enums(main, sample)
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /carts/{kind} [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	kind, err := cart.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown cart type",
		})
		return
	}

	snapshot, err := h.cartCommands.Clear(c.Request.Context(), h.store(c), kind, middleware.CurrentOwnerID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.renderCartView(c, http.StatusOK, queries.NewCartView(snapshot))
}

func (h *CartHandler) kindAndItemID(c *gin.Context) (cart.Kind, uuid.UUID, bool) {
	kind, err := cart.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown cart type",
		})
		return "", uuid.Nil, false
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart item ID format",
		})
		return "", uuid.Nil, false
	}

	return kind, itemID, true
}

func (h *CartHandler) renderCartView(c *gin.Context, status int, view *queries.CartView) {
	resp, err := resdto.FromCartView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(status, resp)
}

func (h *CartHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart item not found",
		})
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be greater than zero",
		})
	case errors.Is(err, cart.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown cart type",
		})
	case errors.Is(err, cart.ErrCurrencyMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Product currency does not match the cart",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
