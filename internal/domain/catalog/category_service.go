// internal/domain/catalog/category_service.go
package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ListCategories retrieves all categories ordered by name.
func (s *Service) ListCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category with the given name. Creating a name
// that already exists is a no-op returning the existing row.
func (s *Service) CreateCategory(name string) (*Category, error) {
	var existing Category
	result := s.db.Where("name = ?", name).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category: %w", result.Error)
	}

	category := Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// DeleteCategory removes a category row. Products carry the category as a
// free-text label, so their rows are left untouched; a deleted category may
// leave products with a dangling label, which is the intended behavior.
// Returns false when the category does not exist.
func (s *Service) DeleteCategory(id uint) (bool, error) {
	result := s.db.Where("id = ?", id).Delete(&Category{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete category: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
