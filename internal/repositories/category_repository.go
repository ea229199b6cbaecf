package repositories

import (
	"database/sql"

	"storefront/internal/models"
)

type CategoryRepository interface {
	Create(c *models.Category) error
	GetByID(id int) (*models.Category, error)
	GetActiveByID(id int) (*models.Category, error)
	Update(c *models.Category) error
	Delete(id int) error
	List(limit, offset int) ([]*models.Category, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

const categoryColumns = `
	id, slug, name, description, seo_title, seo_description, seo_keywords,
	parent_id, is_active, sort_order, created_at, updated_at
`

func (r *categoryRepository) Create(c *models.Category) error {
	const q = `
		INSERT INTO categories (
			slug, name, description, seo_title, seo_description, seo_keywords,
			parent_id, is_active, sort_order, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	return r.DB.QueryRow(q,
		c.Slug, c.Name, c.Description, c.SEOTitle, c.SEODescription, c.SEOKeywords,
		c.ParentID, c.IsActive, c.SortOrder,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func scanCategory(scan func(dest ...any) error) (*models.Category, error) {
	c := &models.Category{}
	var parent sql.NullInt64
	err := scan(
		&c.ID, &c.Slug, &c.Name, &c.Description, &c.SEOTitle, &c.SEODescription, &c.SEOKeywords,
		&parent, &c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if parent.Valid {
		v := int(parent.Int64)
		c.ParentID = &v
	}
	return c, nil
}

func (r *categoryRepository) GetByID(id int) (*models.Category, error) {
	row := r.DB.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	return scanCategory(row.Scan)
}

func (r *categoryRepository) GetActiveByID(id int) (*models.Category, error) {
	row := r.DB.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1 AND is_active = TRUE`, id)
	return scanCategory(row.Scan)
}

func (r *categoryRepository) Update(c *models.Category) error {
	const q = `
		UPDATE categories
		SET
			slug=$1, name=$2, description=$3,
			seo_title=$4, seo_description=$5, seo_keywords=$6,
			parent_id=$7, is_active=$8, sort_order=$9, updated_at=NOW()
		WHERE id=$10
	`
	_, err := r.DB.Exec(q,
		c.Slug, c.Name, c.Description,
		c.SEOTitle, c.SEODescription, c.SEOKeywords,
		c.ParentID, c.IsActive, c.SortOrder, c.ID,
	)
	return err
}

func (r *categoryRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM categories WHERE id=$1`, id)
	return err
}

func (r *categoryRepository) List(limit, offset int) ([]*models.Category, error) {
	rows, err := r.DB.Query(`
		SELECT `+categoryColumns+` FROM categories
		ORDER BY sort_order, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
