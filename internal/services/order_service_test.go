package services

import (
	"errors"
	"strings"
	"testing"

	"storefront/internal/models"
)

type orderRepoMock struct {
	orders  map[int]*models.Order
	nextID  int
	deleted []int
}

func newOrderRepoMock() *orderRepoMock {
	return &orderRepoMock{orders: make(map[int]*models.Order), nextID: 1}
}

func (m *orderRepoMock) Create(order *models.Order) error {
	order.ID = m.nextID
	m.nextID++
	m.orders[order.ID] = order
	return nil
}

func (m *orderRepoMock) GetByIDForUser(id, userID int) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok || order.UserID != userID || !order.IsActive {
		return nil, nil
	}
	return order, nil
}

func (m *orderRepoMock) Update(order *models.Order) error {
	m.orders[order.ID] = order
	return nil
}

func (m *orderRepoMock) SoftDelete(id, userID int) error {
	if order, ok := m.orders[id]; ok && order.UserID == userID {
		order.IsActive = false
		m.deleted = append(m.deleted, id)
	}
	return nil
}

func (m *orderRepoMock) ListByUser(userID, limit, offset int) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range m.orders {
		if o.UserID == userID && o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func testOrderInput() OrderInput {
	return OrderInput{
		ShippingFee: 5.50,
		Items: []OrderItemInput{
			{ProductID: 1, ProductName: "Widget", ProductSKU: "W-1", Quantity: 2, Price: 10.00},
			{ProductID: 2, ProductName: "Gadget", ProductSKU: "G-1", Quantity: 1, Price: 25.00},
		},
	}
}

func TestOrderCreate_Totals(t *testing.T) {
	svc := NewOrderService(newOrderRepoMock(), nil)

	order, err := svc.Create(7, testOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2*10 + 1*25 + 5.50 shipping
	if order.TotalAmount != 50.50 {
		t.Errorf("total = %.2f, want 50.50", order.TotalAmount)
	}
	if order.Items[0].TotalPrice != 20.00 {
		t.Errorf("line total = %.2f, want 20.00", order.Items[0].TotalPrice)
	}
	if order.Status != models.OrderPending || order.PaymentStatus != models.PaymentPending {
		t.Errorf("new order should be pending, got %s/%s", order.Status, order.PaymentStatus)
	}
	if order.UserID != 7 {
		t.Errorf("user_id = %d, want 7", order.UserID)
	}
}

func TestOrderCreate_NumberShape(t *testing.T) {
	svc := NewOrderService(newOrderRepoMock(), nil)

	order, err := svc.Create(1, testOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(order.OrderNumber, "ORD-") {
		t.Fatalf("order number %q missing ORD- prefix", order.OrderNumber)
	}
	suffix := strings.TrimPrefix(order.OrderNumber, "ORD-")
	if len(suffix) != 8 {
		t.Fatalf("order number suffix %q is not 8 characters", suffix)
	}
	for _, r := range suffix {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			t.Errorf("order number suffix %q is not uppercase hex", suffix)
		}
	}
}

func TestOrderCreate_Empty(t *testing.T) {
	svc := NewOrderService(newOrderRepoMock(), nil)
	_, err := svc.Create(1, OrderInput{})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderGet_Ownership(t *testing.T) {
	repo := newOrderRepoMock()
	svc := NewOrderService(repo, nil)

	order, err := svc.Create(1, testOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.GetForUser(order.ID, 1); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := svc.GetForUser(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound for a stranger, got %v", err)
	}
}

func TestOrderDelete_Soft(t *testing.T) {
	repo := newOrderRepoMock()
	svc := NewOrderService(repo, nil)

	order, _ := svc.Create(1, testOrderInput())
	if err := svc.Delete(order.ID, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Errorf("soft delete not recorded")
	}
	if _, err := svc.GetForUser(order.ID, 1); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("deleted order should be gone, got %v", err)
	}
	// double delete reports not found
	if err := svc.Delete(order.ID, 1); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound on second delete, got %v", err)
	}
}
