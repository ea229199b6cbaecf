package repositories

import (
	"database/sql"
	"fmt"

	"storefront/internal/models"
)

type ProductImageRepository struct {
	DB *sql.DB
}

func NewProductImageRepository(db *sql.DB) *ProductImageRepository {
	return &ProductImageRepository{DB: db}
}

const imageColumns = `
	id, product_id, image_url, alt_text, main_image, is_active, sort_order,
	image_size, width, height, created_at, updated_at
`

func (r *ProductImageRepository) Create(img *models.ProductImage) error {
	const q = `
		INSERT INTO product_images (
			product_id, image_url, alt_text, main_image, is_active, sort_order,
			image_size, width, height, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	if err := r.DB.QueryRow(q,
		img.ProductID, img.ImageURL, img.AltText, img.MainImage, img.IsActive, img.SortOrder,
		img.ImageSize, img.Width, img.Height,
	).Scan(&img.ID, &img.CreatedAt, &img.UpdatedAt); err != nil {
		return fmt.Errorf("create product image: %w", err)
	}
	return nil
}

func (r *ProductImageRepository) GetByID(id int) (*models.ProductImage, error) {
	img := &models.ProductImage{}
	err := r.DB.QueryRow(`SELECT `+imageColumns+` FROM product_images WHERE id = $1`, id).Scan(
		&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.MainImage, &img.IsActive, &img.SortOrder,
		&img.ImageSize, &img.Width, &img.Height, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get product image: %w", err)
	}
	return img, nil
}

func (r *ProductImageRepository) Update(img *models.ProductImage) error {
	const q = `
		UPDATE product_images
		SET product_id=$1, image_url=$2, alt_text=$3, main_image=$4, is_active=$5, sort_order=$6, updated_at=NOW()
		WHERE id=$7
	`
	if _, err := r.DB.Exec(q,
		img.ProductID, img.ImageURL, img.AltText, img.MainImage, img.IsActive, img.SortOrder, img.ID,
	); err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

func (r *ProductImageRepository) Delete(id int) error {
	if _, err := r.DB.Exec(`DELETE FROM product_images WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product image: %w", err)
	}
	return nil
}

func (r *ProductImageRepository) List(limit, offset int) ([]*models.ProductImage, error) {
	rows, err := r.DB.Query(`
		SELECT `+imageColumns+` FROM product_images
		ORDER BY product_id, sort_order, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	var res []*models.ProductImage
	for rows.Next() {
		img := &models.ProductImage{}
		if err := rows.Scan(
			&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.MainImage, &img.IsActive, &img.SortOrder,
			&img.ImageSize, &img.Width, &img.Height, &img.CreatedAt, &img.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		res = append(res, img)
	}
	return res, rows.Err()
}

func (r *ProductImageRepository) ListByProductID(productID int) ([]*models.ProductImage, error) {
	rows, err := r.DB.Query(`
		SELECT `+imageColumns+` FROM product_images
		WHERE product_id = $1
		ORDER BY sort_order, id
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("list images by product: %w", err)
	}
	defer rows.Close()

	var res []*models.ProductImage
	for rows.Next() {
		img := &models.ProductImage{}
		if err := rows.Scan(
			&img.ID, &img.ProductID, &img.ImageURL, &img.AltText, &img.MainImage, &img.IsActive, &img.SortOrder,
			&img.ImageSize, &img.Width, &img.Height, &img.CreatedAt, &img.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product image: %w", err)
		}
		res = append(res, img)
	}
	return res, rows.Err()
}

// ClearMainImage drops the main flag from every image of a product.
// Used before inserting a new main image.
func (r *ProductImageRepository) ClearMainImage(productID int) error {
	if _, err := r.DB.Exec(`
		UPDATE product_images SET main_image=FALSE, updated_at=NOW() WHERE product_id=$1
	`, productID); err != nil {
		return fmt.Errorf("clear main image: %w", err)
	}
	return nil
}
