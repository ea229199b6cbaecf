package services

import (
	"storefront/internal/models"
	"storefront/internal/repositories"
)

type CategoryService interface {
	Create(c *models.Category) error
	GetByID(id int) (*models.Category, error)
	Update(c *models.Category) error
	Delete(id int) error
	List(limit, offset int) ([]*models.Category, error)
}

type categoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(c *models.Category) error {
	return s.repo.Create(c)
}

func (s *categoryService) GetByID(id int) (*models.Category, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}
	return cat, nil
}

func (s *categoryService) Update(c *models.Category) error {
	existing, err := s.repo.GetByID(c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}
	return s.repo.Update(c)
}

func (s *categoryService) Delete(id int) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCategoryNotFound
	}
	return s.repo.Delete(id)
}

func (s *categoryService) List(limit, offset int) ([]*models.Category, error) {
	return s.repo.List(limit, offset)
}
