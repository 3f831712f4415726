package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbonfim/DeliveryApp/pkg/resp"
	"github.com/wbonfim/DeliveryApp/services"
	"github.com/wbonfim/DeliveryApp/utils"
)

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart?restaurant_id=
func (h *CartController) Get(c *gin.Context) {
	restID, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil || restID <= 0 {
		resp.BadRequest(c, "restaurant_id is required")
		return
	}

	cart, err := h.Svc.Get(utils.CurrentUserID(c), uint(restID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", gin.H{"cart": cart})
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AddItem(utils.CurrentUserID(c), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "item added to cart", nil)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:id
func (h *CartController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateItem(utils.CurrentUserID(c), uint(id), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "cart item updated", nil)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "cart item removed", nil)
}

// DELETE /cart?restaurant_id=
func (h *CartController) Clear(c *gin.Context) {
	restID, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil || restID <= 0 {
		resp.BadRequest(c, "restaurant_id is required")
		return
	}

	if err := h.Svc.Clear(utils.CurrentUserID(c), uint(restID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "cart cleared", nil)
}
