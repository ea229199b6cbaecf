package services

import (
	"errors"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

var ErrBrandNotFound = errors.New("brand not found")

type BrandService interface {
	Create(b *models.Brand) error
	GetByID(id int) (*models.Brand, error)
	Update(b *models.Brand) error
	Delete(id int) error
	List(limit, offset int) ([]*models.Brand, error)
}

type brandService struct {
	repo repositories.BrandRepository
}

func NewBrandService(repo repositories.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) Create(b *models.Brand) error {
	return s.repo.Create(b)
}

func (s *brandService) GetByID(id int) (*models.Brand, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBrandNotFound
	}
	return b, nil
}

func (s *brandService) Update(b *models.Brand) error {
	existing, err := s.repo.GetByID(b.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBrandNotFound
	}
	return s.repo.Update(b)
}

func (s *brandService) Delete(id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrBrandNotFound
	}
	return s.repo.Delete(id)
}

func (s *brandService) List(limit, offset int) ([]*models.Brand, error) {
	return s.repo.List(limit, offset)
}
