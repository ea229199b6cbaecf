package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"storefront/internal/models"
)

// ProductFilter narrows List/Count queries. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID int
	BrandID    int
	Search     string // matched against name, ILIKE
	IsActive   *bool
	Sort       string // "price", "name" or "created_at"
	Desc       bool
}

type ProductRepository interface {
	Create(p *models.Product) error
	GetByID(id int) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Update(p *models.Product) error
	SoftDelete(id int) error
	List(f ProductFilter, limit, offset int) ([]*models.Product, error)
	Count(f ProductFilter) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `
	id, name, slug, description, short_description,
	seo_title, seo_description, seo_keywords,
	sku, price, stock, weight, width, height, depth,
	discount_price, currency, is_featured, is_active,
	category_id, brand_id, created_at, updated_at, deleted_at
`

func (r *productRepository) Create(p *models.Product) error {
	const q = `
		INSERT INTO products (
			name, slug, description, short_description,
			seo_title, seo_description, seo_keywords,
			sku, price, stock, weight, width, height, depth,
			discount_price, currency, is_featured, is_active,
			category_id, brand_id, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,NOW(),NOW())
		RETURNING id, created_at, updated_at
	`
	if p.Currency == "" {
		p.Currency = "USD"
	}
	return r.DB.QueryRow(q,
		p.Name, p.Slug, p.Description, p.ShortDescription,
		p.SEOTitle, p.SEODescription, p.SEOKeywords,
		p.SKU, p.Price, p.Stock, p.Weight, p.Width, p.Height, p.Depth,
		p.DiscountPrice, p.Currency, p.IsFeatured, p.IsActive,
		p.CategoryID, p.BrandID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func scanProduct(scan func(dest ...any) error) (*models.Product, error) {
	p := &models.Product{}
	var (
		discount  sql.NullFloat64
		deletedAt sql.NullTime
	)
	err := scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.SEOTitle, &p.SEODescription, &p.SEOKeywords,
		&p.SKU, &p.Price, &p.Stock, &p.Weight, &p.Width, &p.Height, &p.Depth,
		&discount, &p.Currency, &p.IsFeatured, &p.IsActive,
		&p.CategoryID, &p.BrandID, &p.CreatedAt, &p.UpdatedAt, &deletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if discount.Valid {
		v := discount.Float64
		p.DiscountPrice = &v
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		p.DeletedAt = &t
	}
	return p, nil
}

func (r *productRepository) GetByID(id int) (*models.Product, error) {
	row := r.DB.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1 AND deleted_at IS NULL`, id)
	return scanProduct(row.Scan)
}

func (r *productRepository) GetBySlug(slug string) (*models.Product, error) {
	row := r.DB.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = $1 AND deleted_at IS NULL`, slug)
	return scanProduct(row.Scan)
}

func (r *productRepository) Update(p *models.Product) error {
	const q = `
		UPDATE products
		SET
			name=$1, slug=$2, description=$3, short_description=$4,
			seo_title=$5, seo_description=$6, seo_keywords=$7,
			sku=$8, price=$9, stock=$10, weight=$11, width=$12, height=$13, depth=$14,
			discount_price=$15, currency=$16, is_featured=$17, is_active=$18,
			category_id=$19, brand_id=$20, updated_at=NOW()
		WHERE id=$21 AND deleted_at IS NULL
	`
	_, err := r.DB.Exec(q,
		p.Name, p.Slug, p.Description, p.ShortDescription,
		p.SEOTitle, p.SEODescription, p.SEOKeywords,
		p.SKU, p.Price, p.Stock, p.Weight, p.Width, p.Height, p.Depth,
		p.DiscountPrice, p.Currency, p.IsFeatured, p.IsActive,
		p.CategoryID, p.BrandID, p.ID,
	)
	return err
}

func (r *productRepository) SoftDelete(id int) error {
	_, err := r.DB.Exec(`
		UPDATE products SET deleted_at=NOW(), is_active=FALSE, updated_at=NOW()
		WHERE id=$1 AND deleted_at IS NULL
	`, id)
	return err
}

// buildWhere turns a filter into a WHERE clause with positional args.
func buildWhere(f ProductFilter) (string, []any) {
	conds := []string{"deleted_at IS NULL"}
	var args []any
	if f.CategoryID > 0 {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.BrandID > 0 {
		args = append(args, f.BrandID)
		conds = append(conds, fmt.Sprintf("brand_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.IsActive != nil {
		args = append(args, *f.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderBy whitelists sortable columns; anything else falls back to id.
func orderBy(f ProductFilter) string {
	col := "id"
	switch f.Sort {
	case "price", "name", "created_at":
		col = f.Sort
	}
	if f.Desc {
		return "ORDER BY " + col + " DESC"
	}
	return "ORDER BY " + col + " ASC"
}

func (r *productRepository) List(f ProductFilter, limit, offset int) ([]*models.Product, error) {
	where, args := buildWhere(f)
	args = append(args, limit, offset)
	q := fmt.Sprintf(`SELECT %s FROM products %s %s LIMIT $%d OFFSET $%d`,
		productColumns, where, orderBy(f), len(args)-1, len(args))

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *productRepository) Count(f ProductFilter) (int, error) {
	where, args := buildWhere(f)
	var c int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM products `+where, args...).Scan(&c)
	return c, err
}
