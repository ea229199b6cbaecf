package services

import (
	"errors"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var ErrVariantNotFound = errors.New("variant not found")

type VariantService struct {
	repo     *repositories.ProductVariantRepository
	products repositories.ProductRepository
}

func NewVariantService(repo *repositories.ProductVariantRepository, products repositories.ProductRepository) *VariantService {
	return &VariantService{repo: repo, products: products}
}

func (s *VariantService) Create(v *models.ProductVariant) error {
	product, err := s.products.GetByID(v.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if v.Currency == "" {
		v.Currency = product.Currency
	}
	return s.repo.Create(v)
}

func (s *VariantService) GetByID(id int) (*models.ProductVariant, error) {
	v, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrVariantNotFound
	}
	return v, nil
}

func (s *VariantService) Update(v *models.ProductVariant) error {
	existing, err := s.repo.GetByID(v.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrVariantNotFound
	}
	return s.repo.Update(v)
}

// Delete is soft: the row keeps its history, listings filter it out.
func (s *VariantService) Delete(id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrVariantNotFound
	}
	return s.repo.SoftDelete(id)
}

func (s *VariantService) ListByProduct(productID int) ([]*models.ProductVariant, error) {
	return s.repo.ListByProductID(productID)
}
