package repositories

import (
	"database/sql"
	"fmt"

	"storefront/internal/models"
)

type ProductVariantRepository struct {
	DB *sql.DB
}

func NewProductVariantRepository(db *sql.DB) *ProductVariantRepository {
	return &ProductVariantRepository{DB: db}
}

const variantColumns = `
	id, product_id, name, sku, price, stock, barcode, currency, weight,
	is_active, created_at, updated_at, deleted_at
`

func (r *ProductVariantRepository) Create(v *models.ProductVariant) error {
	const q = `
		INSERT INTO product_variants (
			product_id, name, sku, price, stock, barcode, currency, weight,
			is_active, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	if v.Currency == "" {
		v.Currency = "USD"
	}
	if err := r.DB.QueryRow(q,
		v.ProductID, v.Name, v.SKU, v.Price, v.Stock, v.Barcode, v.Currency, v.Weight,
		v.IsActive,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return fmt.Errorf("create product variant: %w", err)
	}
	return nil
}

func scanVariant(scan func(dest ...any) error) (*models.ProductVariant, error) {
	v := &models.ProductVariant{}
	var deletedAt sql.NullTime
	err := scan(
		&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price, &v.Stock, &v.Barcode, &v.Currency, &v.Weight,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt, &deletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		v.DeletedAt = &t
	}
	return v, nil
}

func (r *ProductVariantRepository) GetByID(id int) (*models.ProductVariant, error) {
	row := r.DB.QueryRow(`SELECT `+variantColumns+` FROM product_variants WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanVariant(row.Scan)
}

func (r *ProductVariantRepository) Update(v *models.ProductVariant) error {
	const q = `
		UPDATE product_variants
		SET product_id=$1, name=$2, sku=$3, price=$4, stock=$5, barcode=$6,
			currency=$7, weight=$8, is_active=$9, updated_at=NOW()
		WHERE id=$10 AND deleted_at IS NULL
	`
	if _, err := r.DB.Exec(q,
		v.ProductID, v.Name, v.SKU, v.Price, v.Stock, v.Barcode,
		v.Currency, v.Weight, v.IsActive, v.ID,
	); err != nil {
		return fmt.Errorf("update product variant: %w", err)
	}
	return nil
}

func (r *ProductVariantRepository) SoftDelete(id int) error {
	if _, err := r.DB.Exec(`
		UPDATE product_variants SET deleted_at=NOW(), is_active=FALSE, updated_at=NOW()
		WHERE id=$1 AND deleted_at IS NULL
	`, id); err != nil {
		return fmt.Errorf("delete product variant: %w", err)
	}
	return nil
}

func (r *ProductVariantRepository) ListByProductID(productID int) ([]*models.ProductVariant, error) {
	rows, err := r.DB.Query(`
		SELECT `+variantColumns+` FROM product_variants
		WHERE product_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants by product: %w", err)
	}
	defer rows.Close()

	var res []*models.ProductVariant
	for rows.Next() {
		v, err := scanVariant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product variant: %w", err)
		}
		res = append(res, v)
	}
	return res, rows.Err()
}
