package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/services"
)

// uploads above this size are rejected before decode
const maxImageBytes = 10 << 20

type ImageHandler struct {
	imageService *services.ImageService
}

func NewImageHandler(imageService *services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// @Summary      Upload product image
// @Description  Multipart upload; stores the file and records dimensions
// @Tags         Admin/Images
// @Accept       multipart/form-data
// @Produce      json
// @Param        product_id  formData  int     true   "Product ID"
// @Param        file        formData  file    true   "Image file"
// @Param        alt_text    formData  string  false  "Alt text"
// @Param        main_image  formData  bool    false  "Set as main image"
// @Param        sort_order  formData  int     false  "Sort order"
// @Success      201         {object}  models.ProductImage
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Router       /admin/images/upload [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	productID, err := strconv.Atoi(c.PostForm("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	mainImage := c.PostForm("main_image") == "true"
	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))

	img, err := h.imageService.Upload(services.ImageUpload{
		ProductID:   productID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		AltText:     c.PostForm("alt_text"),
		MainImage:   mainImage,
		SortOrder:   sortOrder,
	})
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case errors.Is(err, services.ErrNotAnImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be an image"})
		return
	case err != nil:
		log.Printf("[images][upload] failed product_id=%d err=%v", productID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	c.JSON(http.StatusCreated, img)
}

// @Summary      List images
// @Tags         Admin/Images
// @Produce      json
// @Param        product_id  query    int  false  "Filter by product"
// @Success      200         {array}  models.ProductImage
// @Router       /admin/images [get]
func (h *ImageHandler) List(c *gin.Context) {
	if v := c.Query("product_id"); v != "" {
		productID, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}
		images, err := h.imageService.ListByProduct(productID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list images"})
			return
		}
		c.JSON(http.StatusOK, images)
		return
	}

	limit, offset := parseLimitOffset(c)
	images, err := h.imageService.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

// @Summary      Get image
// @Tags         Admin/Images
// @Produce      json
// @Param        id   path      int  true  "Image ID"
// @Success      200  {object}  models.ProductImage
// @Failure      404  {object}  map[string]string
// @Router       /admin/images/{id} [get]
func (h *ImageHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}
	img, err := h.imageService.GetByID(id)
	switch {
	case errors.Is(err, services.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get image"})
		return
	}
	c.JSON(http.StatusOK, img)
}

// @Summary      Update image
// @Description  Updates row fields (alt text, main flag, sort order)
// @Tags         Admin/Images
// @Accept       json
// @Produce      json
// @Param        id     path      int                  true  "Image ID"
// @Param        image  body      models.ProductImage  true  "Fields to update"
// @Success      200    {object}  models.ProductImage
// @Failure      404    {object}  map[string]string
// @Router       /admin/images/{id} [put]
func (h *ImageHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}
	var img models.ProductImage
	if err := c.ShouldBindJSON(&img); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	img.ID = id
	err = h.imageService.Update(&img)
	switch {
	case errors.Is(err, services.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
		return
	}
	c.JSON(http.StatusOK, img)
}

// @Summary      Delete image
// @Description  Removes the stored file, then the row
// @Tags         Admin/Images
// @Produce      json
// @Param        id   path      int  true  "Image ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/images/{id} [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}
	err = h.imageService.Delete(id)
	switch {
	case errors.Is(err, services.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
