package repositories

import (
	"database/sql"

	"storefront/internal/models"
)

type BrandRepository interface {
	Create(b *models.Brand) error
	GetByID(id int) (*models.Brand, error)
	Update(b *models.Brand) error
	Delete(id int) error
	List(limit, offset int) ([]*models.Brand, error)
}

type brandRepository struct {
	DB *sql.DB
}

func NewBrandRepository(db *sql.DB) BrandRepository {
	return &brandRepository{DB: db}
}

const brandColumns = `
	id, name, slug, description, seo_title, seo_description, seo_keywords,
	is_active, created_at, updated_at
`

func (r *brandRepository) Create(b *models.Brand) error {
	const q = `
		INSERT INTO brands (
			name, slug, description, seo_title, seo_description, seo_keywords,
			is_active, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		b.Name, b.Slug, b.Description, b.SEOTitle, b.SEODescription, b.SEOKeywords,
		b.IsActive,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *brandRepository) GetByID(id int) (*models.Brand, error) {
	b := &models.Brand{}
	err := r.DB.QueryRow(`SELECT `+brandColumns+` FROM brands WHERE id = $1`, id).Scan(
		&b.ID, &b.Name, &b.Slug, &b.Description, &b.SEOTitle, &b.SEODescription, &b.SEOKeywords,
		&b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *brandRepository) Update(b *models.Brand) error {
	const q = `
		UPDATE brands
		SET
			name=$1, slug=$2, description=$3,
			seo_title=$4, seo_description=$5, seo_keywords=$6,
			is_active=$7, updated_at=NOW()
		WHERE id=$8
	`
	_, err := r.DB.Exec(q,
		b.Name, b.Slug, b.Description,
		b.SEOTitle, b.SEODescription, b.SEOKeywords,
		b.IsActive, b.ID,
	)
	return err
}

func (r *brandRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM brands WHERE id=$1`, id)
	return err
}

func (r *brandRepository) List(limit, offset int) ([]*models.Brand, error) {
	rows, err := r.DB.Query(`SELECT `+brandColumns+` FROM brands ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Brand
	for rows.Next() {
		b := &models.Brand{}
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Slug, &b.Description, &b.SEOTitle, &b.SEODescription, &b.SEOKeywords,
			&b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
