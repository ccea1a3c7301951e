// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog data access. The cart/order core consumes only
// the read side (ListProducts, GetProduct, ListCategories); the mutating
// methods belong to the admin collaborator boundary.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductFilter represents browse query parameters
type ProductFilter struct {
	Category string `form:"category"`
	Search   string `form:"search"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name          string `form:"name" binding:"required"`
	Price         int64  `form:"price" binding:"required"`
	OriginalPrice int64  `form:"original_price"`
	Description   string `form:"description" binding:"required"`
	Category      string `form:"category" binding:"required"`
	Image         string `form:"-"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name          string `form:"name" binding:"required"`
	Price         int64  `form:"price" binding:"required"`
	OriginalPrice int64  `form:"original_price"`
	Description   string `form:"description" binding:"required"`
	Category      string `form:"category" binding:"required"`
	Image         string `form:"-"` // empty keeps the current primary image
}

// ListProducts retrieves products, optionally narrowed by category label
// and a case-insensitive name search.
func (s *Service) ListProducts(filter *ProductFilter) ([]Product, error) {
	var products []Product

	query := s.db.Model(&Product{}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("id ASC")

	if filter != nil {
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		if filter.Search != "" {
			search := "%" + strings.ToLower(filter.Search) + "%"
			query = query.Where("LOWER(name) LIKE ?", search)
		}
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return products, nil
}

// GetProduct retrieves a single product by ID. A missing product returns
// (nil, nil) so callers can degrade gracefully instead of failing.
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("id = ?", id).
		First(&product)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// ProductForOrder satisfies the order assembler's lookup interface.
func (s *Service) ProductForOrder(id uint) (*Product, error) {
	return s.GetProduct(id)
}

// CreateProduct creates a new product with its gallery images.
func (s *Service) CreateProduct(req *ProductCreateRequest, galleryPaths []string) (*Product, error) {
	product := Product{
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Description:   req.Description,
		Category:      req.Category,
		Image:         req.Image,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		for i, path := range galleryPaths {
			image := ProductImage{
				ProductID: product.ID,
				Path:      path,
				SortOrder: i,
			}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
			product.Images = append(product.Images, image)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &product, nil
}

// UpdateProduct updates an existing product and appends any new gallery
// images. An empty Image in the request keeps the current primary image.
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest, galleryPaths []string) (*Product, error) {
	var product Product
	result := s.db.Where("id = ?", id).First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", result.Error)
	}

	updates := map[string]interface{}{
		"name":           req.Name,
		"price":          req.Price,
		"original_price": req.OriginalPrice,
		"description":    req.Description,
		"category":       req.Category,
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}

		var maxOrder int
		if err := tx.Model(&ProductImage{}).Where("product_id = ?", id).
			Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder).Error; err != nil {
			return fmt.Errorf("failed to read gallery order: %w", err)
		}

		for i, path := range galleryPaths {
			image := ProductImage{
				ProductID: id,
				Path:      path,
				SortOrder: maxOrder + 1 + i,
			}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&product, product.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}
	return &product, nil
}

// DeleteProduct deletes a product and cascades to its gallery images in the
// same transaction. The product exclusively owns its images, so none may
// survive the delete.
func (s *Service) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&Product{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product not found")
		}
		return nil
	})
}

// DeleteImage removes a single gallery image and reports the owning product
// so the admin flow can redirect back to the edit page. found is false when
// the image does not exist.
func (s *Service) DeleteImage(imageID uint) (productID uint, found bool, err error) {
	var image ProductImage
	result := s.db.Where("id = ?", imageID).First(&image)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to find image: %w", result.Error)
	}

	if err := s.db.Delete(&image).Error; err != nil {
		return 0, false, fmt.Errorf("failed to delete image: %w", err)
	}

	return image.ProductID, true, nil
}
