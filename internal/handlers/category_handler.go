package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	productService  services.ProductService
}

func NewCategoryHandler(categoryService services.CategoryService, productService services.ProductService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, productService: productService}
}

// @Summary      List categories
// @Tags         Categories
// @Produce      json
// @Success      200  {array}  models.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	limit, offset := parseLimitOffset(c)
	categories, err := h.categoryService.List(limit, offset)
	if err != nil {
		log.Printf("[categories][list] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// @Summary      Get category
// @Tags         Categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	category, err := h.categoryService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary      Products in a category
// @Tags         Categories
// @Produce      json
// @Param        id    path      int  true   "Category ID"
// @Param        page  query     int  false  "Page"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  services.PagedProducts
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id}/products [get]
func (h *CategoryHandler) Products(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	page, size := parsePage(c)
	result, err := h.productService.ListByCategory(id, parseProductFilter(c), page, size)
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	case err != nil:
		log.Printf("[categories][products] failed category_id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Create category
// @Tags         Admin/Categories
// @Accept       json
// @Produce      json
// @Param        category  body      models.Category  true  "Category"
// @Success      201       {object}  models.Category
// @Router       /admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.categoryService.Create(&category); err != nil {
		log.Printf("[categories][create] failed slug=%q err=%v", category.Slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary      Update category
// @Tags         Admin/Categories
// @Accept       json
// @Produce      json
// @Param        id        path      int              true  "Category ID"
// @Param        category  body      models.Category  true  "Fields to update"
// @Success      200       {object}  models.Category
// @Failure      404       {object}  map[string]string
// @Router       /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	existing, err := h.categoryService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get category"})
		return
	}

	if err := c.ShouldBindJSON(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.ID = id
	if err := h.categoryService.Update(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Delete category
// @Tags         Admin/Categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	err = h.categoryService.Delete(id)
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
