package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func parseProductFilter(c *gin.Context) repositories.ProductFilter {
	var f repositories.ProductFilter
	f.CategoryID, _ = strconv.Atoi(c.Query("category_id"))
	f.BrandID, _ = strconv.Atoi(c.Query("brand_id"))
	f.Search = c.Query("search")
	if v := c.Query("is_active"); v != "" {
		active := v == "true" || v == "1"
		f.IsActive = &active
	}
	f.Sort = c.Query("sort")
	f.Desc = c.Query("order") == "desc"
	return f
}

// @Summary      List products
// @Tags         Products
// @Produce      json
// @Param        page         query     int     false  "Page"
// @Param        size         query     int     false  "Page size"
// @Param        category_id  query     int     false  "Category filter"
// @Param        brand_id     query     int     false  "Brand filter"
// @Param        search       query     string  false  "Name search"
// @Param        sort         query     string  false  "price, name or created_at"
// @Param        order        query     string  false  "asc or desc"
// @Success      200          {object}  services.PagedProducts
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page, size := parsePage(c)
	result, err := h.productService.List(parseProductFilter(c), page, size)
	if err != nil {
		log.Printf("[products][list] failed: err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Get product
// @Tags         Products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  models.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	product, err := h.productService.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary      Get product by slug
// @Tags         Products
// @Produce      json
// @Param        slug  path      string  true  "Product slug"
// @Success      200   {object}  models.Product
// @Failure      404   {object}  map[string]string
// @Router       /products/slug/{slug} [get]
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Param("slug"))
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary      Create product
// @Tags         Admin/Products
// @Accept       json
// @Produce      json
// @Param        product  body      models.Product  true  "Product"
// @Success      201      {object}  models.Product
// @Failure      409      {object}  map[string]string
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := h.productService.Create(&product)
	switch {
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	case err != nil:
		log.Printf("[products][create] failed slug=%q err=%v", product.Slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// @Summary      Update product
// @Tags         Admin/Products
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Product ID"
// @Param        product  body      models.Product  true  "Fields to update"
// @Success      200      {object}  models.Product
// @Failure      404      {object}  map[string]string
// @Router       /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	existing, err := h.productService.GetByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get product"})
		return
	}

	if err := c.ShouldBindJSON(existing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing.ID = id
	err = h.productService.Update(c.Request.Context(), existing)
	switch {
	case errors.Is(err, services.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already in use"})
		return
	case err != nil:
		log.Printf("[products][update] failed product_id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

// @Summary      Delete product
// @Description  Soft delete: the row is kept with deleted_at set
// @Tags         Admin/Products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	err = h.productService.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
