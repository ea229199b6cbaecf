package services

import (
	"errors"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var ErrAttributeNotFound = errors.New("attribute not found")

// valid attribute types
var attributeTypes = map[string]bool{
	models.AttributeText:    true,
	models.AttributeNumber:  true,
	models.AttributeColor:   true,
	models.AttributeSize:    true,
	models.AttributeBoolean: true,
}

var ErrBadAttributeType = errors.New("unknown attribute type")

type AttributeService struct {
	repo     *repositories.ProductAttributeRepository
	products repositories.ProductRepository
}

func NewAttributeService(repo *repositories.ProductAttributeRepository, products repositories.ProductRepository) *AttributeService {
	return &AttributeService{repo: repo, products: products}
}

func (s *AttributeService) Create(a *models.ProductAttribute) error {
	if a.AttributeType == "" {
		a.AttributeType = models.AttributeText
	}
	if !attributeTypes[a.AttributeType] {
		return ErrBadAttributeType
	}
	product, err := s.products.GetByID(a.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Create(a)
}

func (s *AttributeService) GetByID(id int) (*models.ProductAttribute, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAttributeNotFound
	}
	return a, nil
}

func (s *AttributeService) Update(a *models.ProductAttribute) error {
	if a.AttributeType != "" && !attributeTypes[a.AttributeType] {
		return ErrBadAttributeType
	}
	existing, err := s.repo.GetByID(a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAttributeNotFound
	}
	return s.repo.Update(a)
}

func (s *AttributeService) Delete(id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrAttributeNotFound
	}
	return s.repo.Delete(id)
}

func (s *AttributeService) List(limit, offset int) ([]*models.ProductAttribute, error) {
	return s.repo.List(limit, offset)
}
