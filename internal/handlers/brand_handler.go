package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/services"
)

type BrandHandler struct {
	brandService services.BrandService
}

func NewBrandHandler(brandService services.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// @Summary      List brands
// @Tags         Brands
// @Produce      json
// @Success      200  {array}  models.Brand
// @Router       /brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	brands, err := h.brandService.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list brands"})
		return
	}
	c.JSON(http.StatusOK, brands)
}

// @Summary      Get brand
// @Tags         Brands
// @Produce      json
// @Param        id   path      int  true  "Brand ID"
// @Success      200  {object}  models.Brand
// @Failure      404  {object}  map[string]string
// @Router       /brands/{id} [get]
func (h *BrandHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}
	brand, err := h.brandService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrBrandNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get brand"})
		return
	}
	c.JSON(http.StatusOK, brand)
}

// @Summary      Create brand
// @Tags         Admin/Brands
// @Accept       json
// @Produce      json
// @Param        brand  body      models.Brand  true  "Brand"
// @Success      201    {object}  models.Brand
// @Router       /admin/brands [post]
func (h *BrandHandler) Create(c *gin.Context) {
	var brand models.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.brandService.Create(&brand); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// @Summary      Update brand
// @Tags         Admin/Brands
// @Accept       json
// @Produce      json
// @Param        id     path      int           true  "Brand ID"
// @Param        brand  body      models.Brand  true  "Fields to update"
// @Success      200    {object}  models.Brand
// @Failure      404    {object}  map[string]string
// @Router       /admin/brands/{id} [put]
func (h *BrandHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}
	existing, err := h.brandService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrBrandNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get brand"})
		return
	}

	if err := c.ShouldBindJSON(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.ID = id
	if err := h.brandService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Delete brand
// @Tags         Admin/Brands
// @Produce      json
// @Param        id   path      int  true  "Brand ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/brands/{id} [delete]
func (h *BrandHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand ID"})
		return
	}
	err = h.brandService.Delete(id)
	switch {
	case errors.Is(err, services.ErrBrandNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
}
