package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/services"
)

type VariantHandler struct {
	variantService *services.VariantService
}

func NewVariantHandler(variantService *services.VariantService) *VariantHandler {
	return &VariantHandler{variantService: variantService}
}

// @Summary      Create product variant
// @Tags         Admin/Variants
// @Accept       json
// @Produce      json
// @Param        variant  body      models.ProductVariant  true  "Variant"
// @Success      201      {object}  models.ProductVariant
// @Failure      404      {object}  map[string]string
// @Router       /admin/variants [post]
func (h *VariantHandler) Create(c *gin.Context) {
	var variant models.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.variantService.Create(&variant)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variant"})
		return
	}
	c.JSON(http.StatusCreated, variant)
}

// @Summary      List variants of a product
// @Tags         Admin/Variants
// @Produce      json
// @Param        product_id  query    int  true  "Product ID"
// @Success      200         {array}  models.ProductVariant
// @Router       /admin/variants [get]
func (h *VariantHandler) List(c *gin.Context) {
	productID, err := strconv.Atoi(c.Query("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}
	variants, err := h.variantService.ListByProduct(productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list variants"})
		return
	}
	c.JSON(http.StatusOK, variants)
}

// @Summary      Get product variant
// @Tags         Admin/Variants
// @Produce      json
// @Param        id   path      int  true  "Variant ID"
// @Success      200  {object}  models.ProductVariant
// @Failure      404  {object}  map[string]string
// @Router       /admin/variants/{id} [get]
func (h *VariantHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant ID"})
		return
	}
	variant, err := h.variantService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get variant"})
		return
	}
	c.JSON(http.StatusOK, variant)
}

// @Summary      Update product variant
// @Tags         Admin/Variants
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Variant ID"
// @Param        variant  body      models.ProductVariant  true  "Fields to update"
// @Success      200      {object}  models.ProductVariant
// @Failure      404      {object}  map[string]string
// @Router       /admin/variants/{id} [put]
func (h *VariantHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant ID"})
		return
	}
	var variant models.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	variant.ID = id
	err = h.variantService.Update(&variant)
	switch {
	case errors.Is(err, services.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update variant"})
		return
	}
	c.JSON(http.StatusOK, variant)
}

// @Summary      Delete product variant
// @Description  Soft delete
// @Tags         Admin/Variants
// @Produce      json
// @Param        id   path      int  true  "Variant ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/variants/{id} [delete]
func (h *VariantHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant ID"})
		return
	}
	err = h.variantService.Delete(id)
	switch {
	case errors.Is(err, services.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Variant not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete variant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Variant deleted"})
}
