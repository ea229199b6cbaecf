package services

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

type productRepoMock struct {
	products map[int]*models.Product
	listLen  int
	lastOff  int
}

func newProductRepoMock(products ...*models.Product) *productRepoMock {
	m := &productRepoMock{products: make(map[int]*models.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *productRepoMock) Create(p *models.Product) error {
	p.ID = len(m.products) + 1
	m.products[p.ID] = p
	return nil
}

func (m *productRepoMock) GetByID(id int) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (m *productRepoMock) GetBySlug(slug string) (*models.Product, error) {
	for _, p := range m.products {
		if p.Slug == slug && p.DeletedAt == nil {
			return p, nil
		}
	}
	return nil, nil
}

func (m *productRepoMock) Update(p *models.Product) error { m.products[p.ID] = p; return nil }

func (m *productRepoMock) SoftDelete(id int) error {
	if p, ok := m.products[id]; ok {
		now := testBase
		p.DeletedAt = &now
		p.IsActive = false
	}
	return nil
}

func (m *productRepoMock) List(f repositories.ProductFilter, limit, offset int) ([]*models.Product, error) {
	m.lastOff = offset
	var out []*models.Product
	for _, p := range m.products {
		if p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	m.listLen = len(out)
	return out, nil
}

func (m *productRepoMock) Count(f repositories.ProductFilter) (int, error) {
	n := 0
	for _, p := range m.products {
		if p.DeletedAt == nil {
			n++
		}
	}
	return n, nil
}

type categoryRepoMock struct {
	categories map[int]*models.Category
}

func (m *categoryRepoMock) Create(c *models.Category) error { return nil }
func (m *categoryRepoMock) GetByID(id int) (*models.Category, error) {
	return m.categories[id], nil
}
func (m *categoryRepoMock) GetActiveByID(id int) (*models.Category, error) {
	c := m.categories[id]
	if c == nil || !c.IsActive {
		return nil, nil
	}
	return c, nil
}
func (m *categoryRepoMock) Update(c *models.Category) error { return nil }
func (m *categoryRepoMock) Delete(id int) error             { return nil }
func (m *categoryRepoMock) List(limit, offset int) ([]*models.Category, error) {
	return nil, nil
}

func testProducts(n int) []*models.Product {
	out := make([]*models.Product, n)
	for i := 0; i < n; i++ {
		out[i] = &models.Product{ID: i + 1, Name: "p", Slug: "p", IsActive: true}
	}
	return out
}

// nil cache must behave as a pass-through
func newTestProductService(repo *productRepoMock, cats *categoryRepoMock) ProductService {
	if cats == nil {
		cats = &categoryRepoMock{categories: map[int]*models.Category{}}
	}
	return NewProductService(repo, cats, nil)
}

func TestProductList_PageClamp(t *testing.T) {
	repo := newProductRepoMock(testProducts(25)...)
	svc := newTestProductService(repo, nil)

	result, err := svc.List(repositories.ProductFilter{}, 99, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Pages != 3 {
		t.Errorf("pages = %d, want 3", result.Pages)
	}
	if result.Page != 3 {
		t.Errorf("page = %d, want clamp to 3", result.Page)
	}
	if result.Total != 25 {
		t.Errorf("total = %d, want 25", result.Total)
	}
	if len(result.Items) != 5 {
		t.Errorf("items on last page = %d, want 5", len(result.Items))
	}
}

func TestProductList_Empty(t *testing.T) {
	svc := newTestProductService(newProductRepoMock(), nil)
	result, err := svc.List(repositories.ProductFilter{}, 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 || result.Pages != 0 || result.Page != 1 {
		t.Errorf("empty listing envelope wrong: %+v", result)
	}
}

func TestProductGetByID_NotFoundAndSoftDeleted(t *testing.T) {
	p := &models.Product{ID: 1, Slug: "widget"}
	repo := newProductRepoMock(p)
	svc := newTestProductService(repo, nil)

	if _, err := svc.GetByID(context.Background(), 999); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound for missing id, got %v", err)
	}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("soft-deleted product should be invisible, got %v", err)
	}
}

func TestProductCreate_SlugTaken(t *testing.T) {
	repo := newProductRepoMock(&models.Product{ID: 1, Slug: "widget"})
	svc := newTestProductService(repo, nil)

	err := svc.Create(&models.Product{Slug: "widget"})
	if !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestProductGetBySlug(t *testing.T) {
	repo := newProductRepoMock(&models.Product{ID: 1, Slug: "widget"})
	svc := newTestProductService(repo, nil)

	p, err := svc.GetBySlug("widget")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("wrong product: %+v", p)
	}
	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListByCategory_InactiveCategory(t *testing.T) {
	repo := newProductRepoMock(testProducts(3)...)
	cats := &categoryRepoMock{categories: map[int]*models.Category{
		1: {ID: 1, IsActive: true},
		2: {ID: 2, IsActive: false},
	}}
	svc := newTestProductService(repo, cats)

	if _, err := svc.ListByCategory(1, repositories.ProductFilter{}, 1, 10); err != nil {
		t.Errorf("active category listing failed: %v", err)
	}
	if _, err := svc.ListByCategory(2, repositories.ProductFilter{}, 1, 10); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("inactive category should 404, got %v", err)
	}
	if _, err := svc.ListByCategory(9, repositories.ProductFilter{}, 1, 10); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("missing category should 404, got %v", err)
	}
}
