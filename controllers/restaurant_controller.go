package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbonfim/DeliveryApp/pkg/resp"
	"github.com/wbonfim/DeliveryApp/repository"
	"github.com/wbonfim/DeliveryApp/services"
	"github.com/wbonfim/DeliveryApp/utils"
)

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /categories
func (h *RestaurantController) Categories(c *gin.Context) {
	items, err := h.Svc.ListCategories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", gin.H{"categories": items})
}

// GET /restaurants?category_id=&online=
func (h *RestaurantController) List(c *gin.Context) {
	var f repository.RestaurantFilter
	if v, err := strconv.Atoi(c.Query("category_id")); err == nil {
		f.CategoryID = uint(v)
	}
	f.OnlineOnly = c.Query("online") == "true"

	items, err := h.Svc.List(f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", gin.H{"restaurants": items})
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	out, err := h.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", out)
}

// POST /restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "restaurant created", gin.H{"restaurant": rest})
}

// PUT /restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.Update(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurant updated", gin.H{"restaurant": rest})
}

type onlineRequest struct {
	IsOnline *bool `json:"isOnline" binding:"required"`
}

// PATCH /restaurants/:id/online
func (h *RestaurantController) SetOnline(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req onlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetOnline(utils.CurrentUserID(c), uint(id), *req.IsOnline); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurant updated", nil)
}

type activeRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// PATCH /admin/restaurants/:id/active
func (h *RestaurantController) SetActive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req activeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetActive(uint(id), *req.IsActive); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "restaurant updated", nil)
}

// POST /restaurants/:id/products
func (h *RestaurantController) CreateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.CreateProduct(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "product created", gin.H{"product": p})
}

// PUT /restaurants/:id/products/:productId
func (h *RestaurantController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	productID, _ := strconv.Atoi(c.Param("productId"))

	var req services.ProductIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.UpdateProduct(utils.CurrentUserID(c), uint(id), uint(productID), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "product updated", gin.H{"product": p})
}

// DELETE /restaurants/:id/products/:productId
func (h *RestaurantController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	productID, _ := strconv.Atoi(c.Param("productId"))

	if err := h.Svc.DeleteProduct(utils.CurrentUserID(c), uint(id), uint(productID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "product deleted", nil)
}

// POST /restaurants/:id/product-categories
func (h *RestaurantController) CreateProductCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.ProductCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pc, err := h.Svc.CreateProductCategory(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "product category created", gin.H{"productCategory": pc})
}
