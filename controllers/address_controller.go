package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wbonfim/DeliveryApp/entity"
	"github.com/wbonfim/DeliveryApp/pkg/resp"
	"github.com/wbonfim/DeliveryApp/repository"
	"github.com/wbonfim/DeliveryApp/utils"
)

type AddressController struct {
	Repo *repository.UserRepository
}

func NewAddressController(repo *repository.UserRepository) *AddressController {
	return &AddressController{Repo: repo}
}

type addressRequest struct {
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	IsDefault    bool   `json:"isDefault"`
}

// GET /addresses
func (a *AddressController) List(c *gin.Context) {
	items, err := a.Repo.ListAddresses(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "ok", gin.H{"addresses": items})
}

// POST /addresses
func (a *AddressController) Create(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr := entity.Address{
		UserID:       utils.CurrentUserID(c),
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		IsDefault:    req.IsDefault,
	}
	if err := a.Repo.CreateAddress(&addr); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, "address created", gin.H{"address": addr})
}

// PUT /addresses/:id
func (a *AddressController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr, err := a.Repo.GetAddress(utils.CurrentUserID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.Error(c, err)
		return
	}

	addr.Street = req.Street
	addr.Number = req.Number
	addr.Complement = req.Complement
	addr.Neighborhood = req.Neighborhood
	addr.City = req.City
	addr.State = req.State
	addr.ZipCode = req.ZipCode
	addr.IsDefault = req.IsDefault

	if err := a.Repo.SaveAddress(addr); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "address updated", gin.H{"address": addr})
}

// DELETE /addresses/:id
func (a *AddressController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := a.Repo.DeleteAddress(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, "address deleted", nil)
}
