// internal/interfaces/http/handlers/admin_catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/storage"
	"gorm.io/gorm"
)

// AdminCatalogHandler handles catalog administration
type AdminCatalogHandler struct {
	catalogService *catalog.Service
	imageStore     *storage.LocalStore
	config         *config.Config
}

// NewAdminCatalogHandler creates a new admin catalog handler
func NewAdminCatalogHandler(db *gorm.DB, cfg *config.Config) *AdminCatalogHandler {
	return &AdminCatalogHandler{
		catalogService: catalog.NewService(db, cfg),
		imageStore:     storage.NewLocalStore(cfg),
		config:         cfg,
	}
}

// saveImages stores the primary image and gallery files from a multipart
// form. The primary path is empty when no file was submitted.
func (h *AdminCatalogHandler) saveImages(c *gin.Context) (primary string, gallery []string, err error) {
	form, err := c.MultipartForm()
	if err != nil {
		// Plain form posts without files are fine.
		return "", nil, nil
	}

	if files := form.File["image"]; len(files) > 0 && files[0].Filename != "" {
		primary, err = h.imageStore.SaveUpload(files[0])
		if err != nil {
			return "", nil, err
		}
	}

	gallery, err = h.imageStore.SaveUploads(form.File["gallery_images"])
	if err != nil {
		return "", nil, err
	}

	return primary, gallery, nil
}

// CreateProduct handles POST /admin/products
func (h *AdminCatalogHandler) CreateProduct(c *gin.Context) {
	var req catalog.ProductCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product form",
			"details": err.Error(),
		})
		return
	}

	primary, gallery, err := h.saveImages(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store product images",
		})
		return
	}
	req.Image = primary

	if _, err := h.catalogService.CreateProduct(&req, gallery); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create product",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// UpdateProduct handles POST /admin/products/:id
func (h *AdminCatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req catalog.ProductUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product form",
			"details": err.Error(),
		})
		return
	}

	primary, gallery, err := h.saveImages(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store product images",
		})
		return
	}
	req.Image = primary

	if _, err := h.catalogService.UpdateProduct(uint(id), &req, gallery); err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update product",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteProduct handles GET /admin/products/:id/delete. Existing orders
// keep their snapshot of the product; only the live catalog row goes away.
func (h *AdminCatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if err := h.catalogService.DeleteProduct(uint(id)); err != nil {
		if err.Error() == "product not found" {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete product",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteImage handles GET /admin/images/:id/delete. The admin lands back on
// the edit page of the product that owned the image.
func (h *AdminCatalogHandler) DeleteImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid image ID",
		})
		return
	}

	productID, found, err := h.catalogService.DeleteImage(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete image",
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Image not found",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/products/"+strconv.FormatUint(uint64(productID), 10)+"/edit")
}

// CategoryCreateRequest represents the category creation form
type CategoryCreateRequest struct {
	Name string `form:"name" binding:"required"`
}

// CreateCategory handles POST /admin/categories. Creating an existing name
// is a silent no-op so the admin form can be resubmitted safely.
func (h *AdminCatalogHandler) CreateCategory(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Category name is required",
		})
		return
	}

	if _, err := h.catalogService.CreateCategory(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create category",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteCategory handles GET /admin/categories/:id/delete. Products keep
// their label even when the category row disappears.
func (h *AdminCatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID",
		})
		return
	}

	found, err := h.catalogService.DeleteCategory(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete category",
		})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// GetProduct handles GET /admin/products/:id/edit
func (h *AdminCatalogHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalogService.GetProduct(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}
