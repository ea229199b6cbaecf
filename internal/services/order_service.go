package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/notify"
	"storefront/internal/repositories"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order must contain at least one item")
)

// OrderItemInput is one line of a new order. Price is the unit price the
// caller saw; name/sku are denormalized into the item row.
type OrderItemInput struct {
	ProductID   int     `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	ProductSKU  string  `json:"product_sku"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

type OrderInput struct {
	ShippingFee       float64          `json:"shipping_fee" binding:"gte=0"`
	PaymentMethod     string           `json:"payment_method"`
	ShippingAddressID *int             `json:"shipping_address_id"`
	BillingAddressID  *int             `json:"billing_address_id"`
	Items             []OrderItemInput `json:"items" binding:"required,dive"`
}

type OrderService interface {
	Create(userID int, in OrderInput) (*models.Order, error)
	GetForUser(orderID, userID int) (*models.Order, error)
	Update(order *models.Order) error
	Delete(orderID, userID int) error
	ListForUser(userID, limit, offset int) ([]*models.Order, error)
}

type orderService struct {
	repo     repositories.OrderRepository
	notifier *notify.TelegramNotifier
}

func NewOrderService(repo repositories.OrderRepository, notifier *notify.TelegramNotifier) OrderService {
	return &orderService{repo: repo, notifier: notifier}
}

// generateOrderNumber returns "ORD-" plus 8 uppercase hex characters.
func generateOrderNumber() string {
	u := uuid.New()
	return fmt.Sprintf("ORD-%X", u[:4])
}

func (s *orderService) Create(userID int, in OrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &models.Order{
		UserID:            userID,
		OrderNumber:       generateOrderNumber(),
		ShippingFee:       in.ShippingFee,
		Status:            models.OrderPending,
		PaymentStatus:     models.PaymentPending,
		PaymentMethod:     in.PaymentMethod,
		ShippingAddressID: in.ShippingAddressID,
		BillingAddressID:  in.BillingAddressID,
		IsActive:          true,
	}

	var total float64
	for _, item := range in.Items {
		lineTotal := item.Price * float64(item.Quantity)
		total += lineTotal
		order.Items = append(order.Items, &models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TotalPrice:  lineTotal,
			IsActive:    true,
		})
	}
	order.TotalAmount = total + in.ShippingFee

	if err := s.repo.Create(order); err != nil {
		return nil, err
	}
	log.Printf("[orders][create] ok user_id=%d order=%s total=%.2f items=%d",
		userID, order.OrderNumber, order.TotalAmount, len(order.Items))

	// best-effort admin ping; nil notifier is a no-op
	s.notifier.NotifyNewOrder(order)

	return order, nil
}

func (s *orderService) GetForUser(orderID, userID int) (*models.Order, error) {
	order, err := s.repo.GetByIDForUser(orderID, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) Update(order *models.Order) error {
	existing, err := s.repo.GetByIDForUser(order.ID, order.UserID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrOrderNotFound
	}
	return s.repo.Update(order)
}

func (s *orderService) Delete(orderID, userID int) error {
	existing, err := s.repo.GetByIDForUser(orderID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrOrderNotFound
	}
	return s.repo.SoftDelete(orderID, userID)
}

func (s *orderService) ListForUser(userID, limit, offset int) ([]*models.Order, error) {
	return s.repo.ListByUser(userID, limit, offset)
}
