package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbonfim/DeliveryApp/pkg/resp"
	"github.com/wbonfim/DeliveryApp/services"
	"github.com/wbonfim/DeliveryApp/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /orders
func (h *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.PlaceOrder(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "order placed", gin.H{"order": order})
}

// GET /orders
func (h *OrderController) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	items, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", gin.H{"orders": items})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", gin.H{"order": order})
}

// GET /restaurants/:id/orders?status=&page=&limit=
func (h *OrderController) ListForRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("id"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := h.Svc.ListForRestaurant(
		utils.CurrentUserID(c), utils.CurrentRole(c),
		uint(restID), c.Query("status"), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Svc.AdvanceStatus(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "order status updated", nil)
}

type updatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// PATCH /orders/:id/payment
func (h *OrderController) UpdatePayment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Svc.RecordPayment(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id), req.PaymentStatus)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "payment status updated", nil)
}
