package services

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/storage"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrNotAnImage    = errors.New("file must be an image")
)

// ImageUpload carries one multipart upload through the service.
type ImageUpload struct {
	ProductID   int
	Filename    string
	ContentType string
	Data        []byte
	AltText     string
	MainImage   bool
	SortOrder   int
}

type ImageService struct {
	repo     *repositories.ProductImageRepository
	products repositories.ProductRepository
	backend  storage.Backend
}

func NewImageService(repo *repositories.ProductImageRepository, products repositories.ProductRepository, backend storage.Backend) *ImageService {
	return &ImageService{repo: repo, products: products, backend: backend}
}

// Upload stores the file in the backend and records the image row.
func (s *ImageService) Upload(up ImageUpload) (*models.ProductImage, error) {
	product, err := s.products.GetByID(up.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !strings.HasPrefix(up.ContentType, "image/") {
		return nil, ErrNotAnImage
	}

	width, height, err := storage.ImageDimensions(bytes.NewReader(up.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	ext := filepath.Ext(up.Filename)
	filename := uuid.NewString() + ext

	fileURL, err := s.backend.Upload(filename, up.Data, up.ContentType)
	if err != nil {
		return nil, err
	}

	if up.MainImage {
		if err := s.repo.ClearMainImage(up.ProductID); err != nil {
			return nil, err
		}
	}

	img := &models.ProductImage{
		ProductID: up.ProductID,
		ImageURL:  fileURL,
		AltText:   up.AltText,
		MainImage: up.MainImage,
		IsActive:  true,
		SortOrder: up.SortOrder,
		ImageSize: len(up.Data),
		Width:     width,
		Height:    height,
	}
	if err := s.repo.Create(img); err != nil {
		// the row failed, don't leave the file behind
		if delErr := s.backend.Delete(fileURL); delErr != nil {
			log.Printf("[images][upload] orphan file cleanup failed url=%s err=%v", fileURL, delErr)
		}
		return nil, err
	}

	log.Printf("[images][upload] ok product_id=%d image_id=%d %dx%d size=%d", up.ProductID, img.ID, width, height, len(up.Data))
	return img, nil
}

// Delete removes the backend file first, then the row.
func (s *ImageService) Delete(id int) error {
	img, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if img == nil {
		return ErrImageNotFound
	}
	if err := s.backend.Delete(img.ImageURL); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *ImageService) GetByID(id int) (*models.ProductImage, error) {
	img, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrImageNotFound
	}
	return img, nil
}

func (s *ImageService) Update(img *models.ProductImage) error {
	existing, err := s.repo.GetByID(img.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrImageNotFound
	}
	if img.MainImage && !existing.MainImage {
		if err := s.repo.ClearMainImage(img.ProductID); err != nil {
			return err
		}
	}
	return s.repo.Update(img)
}

func (s *ImageService) List(limit, offset int) ([]*models.ProductImage, error) {
	return s.repo.List(limit, offset)
}

func (s *ImageService) ListByProduct(productID int) ([]*models.ProductImage, error) {
	return s.repo.ListByProductID(productID)
}
