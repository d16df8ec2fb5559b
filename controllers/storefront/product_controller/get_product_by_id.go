package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/models"
)

// GetProductByID godoc
// @Summary Get single product details
// @Description Product details plus up to four related products picked by the tiered similarity ranker.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id := models.ProductID(c.Param("id"))

	product, err := store.ByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	similar := catalog.FindSimilar(product, store.Products())

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", gin.H{
		"product":  product,
		"similar":  similar,
		"favorite": favStore.IsFavorite(product.ID),
	}))
}
