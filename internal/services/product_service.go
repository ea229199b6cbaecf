package services

import (
	"context"
	"errors"
	"math"

	"storefront/internal/cache"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("slug already in use")
)

// PagedProducts is the pagination envelope for product listings.
type PagedProducts struct {
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Pages int               `json:"pages"`
	Items []*models.Product `json:"items"`
}

type ProductService interface {
	Create(p *models.Product) error
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int) error
	List(f repositories.ProductFilter, page, size int) (*PagedProducts, error)
	ListByCategory(categoryID int, f repositories.ProductFilter, page, size int) (*PagedProducts, error)
}

type productService struct {
	repo       repositories.ProductRepository
	categories repositories.CategoryRepository
	cache      *cache.ProductCache
}

func NewProductService(repo repositories.ProductRepository, categories repositories.CategoryRepository, c *cache.ProductCache) ProductService {
	return &productService{repo: repo, categories: categories, cache: c}
}

func (s *productService) Create(p *models.Product) error {
	if existing, err := s.repo.GetBySlug(p.Slug); err != nil {
		return err
	} else if existing != nil {
		return ErrSlugTaken
	}
	return s.repo.Create(p)
}

func (s *productService) GetByID(ctx context.Context, id int) (*models.Product, error) {
	if p, ok := s.cache.Get(ctx, id); ok {
		return p, nil
	}
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	s.cache.Set(ctx, p)
	return p, nil
}

func (s *productService) GetBySlug(slug string) (*models.Product, error) {
	p, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, p *models.Product) error {
	existing, err := s.repo.GetByID(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if p.Slug != existing.Slug {
		if other, err := s.repo.GetBySlug(p.Slug); err != nil {
			return err
		} else if other != nil {
			return ErrSlugTaken
		}
	}
	if err := s.repo.Update(p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, p.ID)
	return nil
}

func (s *productService) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProductNotFound
	}
	if err := s.repo.SoftDelete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// page/size are normalized and the page clamped to the last one, the way the
// category listing behaves.
func (s *productService) paginate(f repositories.ProductFilter, page, size int) (*PagedProducts, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	total, err := s.repo.Count(f)
	if err != nil {
		return nil, err
	}
	pages := int(math.Ceil(float64(total) / float64(size)))
	if page > pages && pages > 0 {
		page = pages
	}
	items, err := s.repo.List(f, size, (page-1)*size)
	if err != nil {
		return nil, err
	}
	return &PagedProducts{
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
		Items: items,
	}, nil
}

func (s *productService) List(f repositories.ProductFilter, page, size int) (*PagedProducts, error) {
	return s.paginate(f, page, size)
}

func (s *productService) ListByCategory(categoryID int, f repositories.ProductFilter, page, size int) (*PagedProducts, error) {
	cat, err := s.categories.GetActiveByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	f.CategoryID = categoryID
	return s.paginate(f, page, size)
}
