package repositories

import (
	"database/sql"
	"fmt"

	"storefront/internal/models"
)

type ProductAttributeRepository struct {
	DB *sql.DB
}

func NewProductAttributeRepository(db *sql.DB) *ProductAttributeRepository {
	return &ProductAttributeRepository{DB: db}
}

const attributeColumns = `
	id, product_id, name, value, description, attribute_type,
	is_active, sort_order, created_at, updated_at
`

func (r *ProductAttributeRepository) Create(a *models.ProductAttribute) error {
	const q = `
		INSERT INTO product_attributes (
			product_id, name, value, description, attribute_type,
			is_active, sort_order, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	if a.AttributeType == "" {
		a.AttributeType = models.AttributeText
	}
	if err := r.DB.QueryRow(q,
		a.ProductID, a.Name, a.Value, a.Description, a.AttributeType,
		a.IsActive, a.SortOrder,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("create product attribute: %w", err)
	}
	return nil
}

func (r *ProductAttributeRepository) GetByID(id int) (*models.ProductAttribute, error) {
	a := &models.ProductAttribute{}
	err := r.DB.QueryRow(`SELECT `+attributeColumns+` FROM product_attributes WHERE id = $1`, id).Scan(
		&a.ID, &a.ProductID, &a.Name, &a.Value, &a.Description, &a.AttributeType,
		&a.IsActive, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get product attribute: %w", err)
	}
	return a, nil
}

func (r *ProductAttributeRepository) Update(a *models.ProductAttribute) error {
	const q = `
		UPDATE product_attributes
		SET product_id=$1, name=$2, value=$3, description=$4, attribute_type=$5,
			is_active=$6, sort_order=$7, updated_at=NOW()
		WHERE id=$8
	`
	if _, err := r.DB.Exec(q,
		a.ProductID, a.Name, a.Value, a.Description, a.AttributeType,
		a.IsActive, a.SortOrder, a.ID,
	); err != nil {
		return fmt.Errorf("update product attribute: %w", err)
	}
	return nil
}

func (r *ProductAttributeRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM product_attributes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product attribute: %w", err)
	}
	return nil
}

func (r *ProductAttributeRepository) List(limit, offset int) ([]*models.ProductAttribute, error) {
	rows, err := r.DB.Query(`
		SELECT `+attributeColumns+` FROM product_attributes
		ORDER BY product_id, sort_order, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product attributes: %w", err)
	}
	defer rows.Close()

	var res []*models.ProductAttribute
	for rows.Next() {
		a := &models.ProductAttribute{}
		if err := rows.Scan(
			&a.ID, &a.ProductID, &a.Name, &a.Value, &a.Description, &a.AttributeType,
			&a.IsActive, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product attribute: %w", err)
		}
		res = append(res, a)
	}
	return res, rows.Err()
}
