package models

import "time"

// Order statuses.
const (
	OrderPending   = "Pending"
	OrderPaid      = "Paid"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

// Payment statuses.
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
	PaymentFailed  = "Failed"
)

// Payment methods.
const (
	PaymentCreditCard   = "Credit Card"
	PaymentPayPal       = "PayPal"
	PaymentBankTransfer = "Bank Transfer"
)

type Order struct {
	ID                int          `json:"id"`
	UserID            int          `json:"user_id"`
	OrderNumber       string       `json:"order_number"`
	TotalAmount       float64      `json:"total_amount"`
	ShippingFee       float64      `json:"shipping_fee"`
	Status            string       `json:"status"`
	PaymentStatus     string       `json:"payment_status"`
	PaymentMethod     string       `json:"payment_method,omitempty"`
	ShippingAddressID *int         `json:"shipping_address_id,omitempty"`
	BillingAddressID  *int         `json:"billing_address_id,omitempty"`
	IsActive          bool         `json:"is_active"`
	Items             []*OrderItem `json:"items,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type OrderItem struct {
	ID          int       `json:"id"`
	OrderID     int       `json:"order_id"`
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	TotalPrice  float64   `json:"total_price"` // quantity * price
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
