package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/pdf"
	"storefront/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
	userService  services.UserService
	invoices     pdf.Generator
	filesDir     string
}

func NewOrderHandler(orderService services.OrderService, userService services.UserService, invoices pdf.Generator, filesDir string) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		userService:  userService,
		invoices:     invoices,
		filesDir:     filesDir,
	}
}

type updateOrderRequest struct {
	Status            *string `json:"status"`
	PaymentStatus     *string `json:"payment_status"`
	PaymentMethod     *string `json:"payment_method"`
	ShippingAddressID *int    `json:"shipping_address_id"`
	BillingAddressID  *int    `json:"billing_address_id"`
}

// @Summary      Create order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        order  body      services.OrderInput  true  "Order"
// @Success      201    {object}  models.Order
// @Failure      400    {object}  map[string]string
// @Security     BearerAuth
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var in services.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.Create(userID, in)
	switch {
	case errors.Is(err, services.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must contain at least one item"})
		return
	case err != nil:
		log.Printf("[orders][create] failed user_id=%d err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// @Summary      List own orders
// @Tags         Orders
// @Produce      json
// @Param        limit   query    int  false  "Limit"
// @Param        offset  query    int  false  "Offset"
// @Success      200     {array}  models.Order
// @Security     BearerAuth
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	limit, offset := parseLimitOffset(c)
	orders, err := h.orderService.ListForUser(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary      Get own order
// @Tags         Orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  models.Order
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	order, err := h.orderService.GetForUser(id, userID)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// @Summary      Update own order
// @Description  Status, payment and address fields only
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Order ID"
// @Param        order  body      updateOrderRequest  true  "Fields to update"
// @Success      200    {object}  models.Order
// @Failure      404    {object}  map[string]string
// @Security     BearerAuth
// @Router       /orders/{id} [patch]
func (h *OrderHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	order, err := h.orderService.GetForUser(id, userID)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.PaymentStatus != nil {
		order.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentMethod != nil {
		order.PaymentMethod = *req.PaymentMethod
	}
	if req.ShippingAddressID != nil {
		order.ShippingAddressID = req.ShippingAddressID
	}
	if req.BillingAddressID != nil {
		order.BillingAddressID = req.BillingAddressID
	}

	if err := h.orderService.Update(order); err != nil {
		log.Printf("[orders][update] failed order_id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// @Summary      Delete own order
// @Description  Soft delete
// @Tags         Orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	err = h.orderService.Delete(id, userID)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// @Summary      Order invoice PDF
// @Tags         Orders
// @Produce      application/pdf
// @Param        id   path  int  true  "Order ID"
// @Success      200  {file}  file
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /orders/{id}/invoice [get]
func (h *OrderHandler) Invoice(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	order, err := h.orderService.GetForUser(id, userID)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get order"})
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil || user == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	rel, err := h.invoices.GenerateInvoice(order, user.Email)
	if err != nil {
		log.Printf("[orders][invoice] generation failed order_id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}
	name := filepath.Base(rel)
	c.FileAttachment(filepath.Join(h.filesDir, name), name)
}
