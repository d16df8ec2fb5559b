package product_controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/models"
)

// ImportProducts godoc
// @Summary Bulk import products
// @Description Validates each record independently and appends the survivors to the catalog. Malformed records are dropped silently; only the accepted count is reported. Existing ids are not de-duplicated, so re-importing a record produces a duplicate entry (accepted behavior).
// @Tags Storefront - Products
// @Accept json
// @Produce json
// @Param products body []models.Product true "Product records"
// @Success 200 {object} models.ApiResponse "Products imported"
// @Failure 400 {object} models.ApiResponse "Body is not a JSON array"
// @Router /store/products/import [post]
func ImportProducts(c *gin.Context) {
	var records []json.RawMessage
	if err := c.ShouldBindJSON(&records); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Request body must be a JSON array of products"))
		return
	}

	accepted := catalog.NormalizeBatch(records)
	store.Append(accepted)

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		fmt.Sprintf("Imported %d products", len(accepted)),
		gin.H{"accepted": len(accepted), "total": store.Len()},
	))
}
