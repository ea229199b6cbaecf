package repositories

import (
	"database/sql"
	"fmt"

	"storefront/internal/models"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByIDForUser(id, userID int) (*models.Order, error)
	Update(order *models.Order) error
	SoftDelete(id, userID int) error
	ListByUser(userID, limit, offset int) ([]*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderColumns = `
	id, user_id, order_number, total_amount, shipping_fee,
	status, payment_status, payment_method,
	shipping_address_id, billing_address_id, is_active, created_at, updated_at
`

// Create inserts the order and its items in one transaction.
func (r *orderRepository) Create(order *models.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback()

	const q = `
		INSERT INTO orders (
			user_id, order_number, total_amount, shipping_fee,
			status, payment_status, payment_method,
			shipping_address_id, billing_address_id, is_active, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,TRUE,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(q,
		order.UserID, order.OrderNumber, order.TotalAmount, order.ShippingFee,
		order.Status, order.PaymentStatus, order.PaymentMethod,
		order.ShippingAddressID, order.BillingAddressID,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	const qi = `
		INSERT INTO order_items (
			order_id, product_id, product_name, product_sku,
			quantity, price, total_price, is_active, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,TRUE,NOW(),NOW())
		RETURNING id
	`
	for _, item := range order.Items {
		item.OrderID = order.ID
		if err := tx.QueryRow(qi,
			order.ID, item.ProductID, item.ProductName, item.ProductSKU,
			item.Quantity, item.Price, item.TotalPrice,
		).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	o := &models.Order{}
	var (
		method   sql.NullString
		shipAddr sql.NullInt64
		billAddr sql.NullInt64
	)
	err := scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.TotalAmount, &o.ShippingFee,
		&o.Status, &o.PaymentStatus, &method,
		&shipAddr, &billAddr, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if method.Valid {
		o.PaymentMethod = method.String
	}
	if shipAddr.Valid {
		v := int(shipAddr.Int64)
		o.ShippingAddressID = &v
	}
	if billAddr.Valid {
		v := int(billAddr.Int64)
		o.BillingAddressID = &v
	}
	return o, nil
}

func (r *orderRepository) GetByIDForUser(id, userID int) (*models.Order, error) {
	row := r.DB.QueryRow(`
		SELECT `+orderColumns+` FROM orders
		WHERE id = $1 AND user_id = $2 AND is_active = TRUE
	`, id, userID)
	o, err := scanOrder(row.Scan)
	if err != nil || o == nil {
		return o, err
	}

	rows, err := r.DB.Query(`
		SELECT id, order_id, product_id, product_name, product_sku,
			quantity, price, total_price, is_active, created_at, updated_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item := &models.OrderItem{}
		var sku sql.NullString
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &sku,
			&item.Quantity, &item.Price, &item.TotalPrice, &item.IsActive,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if sku.Valid {
			item.ProductSKU = sku.String
		}
		o.Items = append(o.Items, item)
	}
	return o, rows.Err()
}

func (r *orderRepository) Update(order *models.Order) error {
	const q = `
		UPDATE orders
		SET status=$1, payment_status=$2, payment_method=$3,
			shipping_address_id=$4, billing_address_id=$5, updated_at=NOW()
		WHERE id=$6 AND user_id=$7
	`
	_, err := r.DB.Exec(q,
		order.Status, order.PaymentStatus, order.PaymentMethod,
		order.ShippingAddressID, order.BillingAddressID,
		order.ID, order.UserID,
	)
	return err
}

func (r *orderRepository) SoftDelete(id, userID int) error {
	_, err := r.DB.Exec(`
		UPDATE orders SET is_active=FALSE, updated_at=NOW()
		WHERE id=$1 AND user_id=$2
	`, id, userID)
	return err
}

func (r *orderRepository) ListByUser(userID, limit, offset int) ([]*models.Order, error) {
	rows, err := r.DB.Query(`
		SELECT `+orderColumns+` FROM orders
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, o)
	}
	return res, rows.Err()
}
