package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/services"
)

type AttributeHandler struct {
	attributeService *services.AttributeService
}

func NewAttributeHandler(attributeService *services.AttributeService) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// @Summary      Create product attribute
// @Tags         Admin/Attributes
// @Accept       json
// @Produce      json
// @Param        attribute  body      models.ProductAttribute  true  "Attribute"
// @Success      201        {object}  models.ProductAttribute
// @Failure      404        {object}  map[string]string
// @Router       /admin/attributes [post]
func (h *AttributeHandler) Create(c *gin.Context) {
	var attr models.ProductAttribute
	if err := c.ShouldBindJSON(&attr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.attributeService.Create(&attr)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case errors.Is(err, services.ErrBadAttributeType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown attribute type"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attribute"})
		return
	}
	c.JSON(http.StatusCreated, attr)
}

// @Summary      List product attributes
// @Tags         Admin/Attributes
// @Produce      json
// @Success      200  {array}  models.ProductAttribute
// @Router       /admin/attributes [get]
func (h *AttributeHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	attrs, err := h.attributeService.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list attributes"})
		return
	}
	c.JSON(http.StatusOK, attrs)
}

// @Summary      Get product attribute
// @Tags         Admin/Attributes
// @Produce      json
// @Param        id   path      int  true  "Attribute ID"
// @Success      200  {object}  models.ProductAttribute
// @Failure      404  {object}  map[string]string
// @Router       /admin/attributes/{id} [get]
func (h *AttributeHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attribute ID"})
		return
	}
	attr, err := h.attributeService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrAttributeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get attribute"})
		return
	}
	c.JSON(http.StatusOK, attr)
}

// @Summary      Update product attribute
// @Tags         Admin/Attributes
// @Accept       json
// @Produce      json
// @Param        id         path      int                      true  "Attribute ID"
// @Param        attribute  body      models.ProductAttribute  true  "Fields to update"
// @Success      200        {object}  models.ProductAttribute
// @Failure      404        {object}  map[string]string
// @Router       /admin/attributes/{id} [put]
func (h *AttributeHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attribute ID"})
		return
	}
	var attr models.ProductAttribute
	if err := c.ShouldBindJSON(&attr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	attr.ID = id
	err = h.attributeService.Update(&attr)
	switch {
	case errors.Is(err, services.ErrAttributeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
		return
	case errors.Is(err, services.ErrBadAttributeType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown attribute type"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attribute"})
		return
	}
	c.JSON(http.StatusOK, attr)
}

// @Summary      Delete product attribute
// @Tags         Admin/Attributes
// @Produce      json
// @Param        id   path      int  true  "Attribute ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/attributes/{id} [delete]
func (h *AttributeHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attribute ID"})
		return
	}
	err = h.attributeService.Delete(id)
	switch {
	case errors.Is(err, services.ErrAttributeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attribute"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attribute deleted"})
}
