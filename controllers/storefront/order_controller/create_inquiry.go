package order_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/models"
	"github.com/24vasilekk/dolce/services"
)

var store *catalog.Store

// Init wires the controller to the catalog store.
func Init(s *catalog.Store) {
	store = s
}

// CreateInquiry godoc
// @Summary Compose a purchase inquiry
// @Description Formats a human-readable order summary for the product and size at its effective price, plus the Telegram deep link to send it through. No order state is stored.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param inquiry body models.InquiryRequest true "Product and size"
// @Success 200 {object} models.ApiResponse "Inquiry composed"
// @Failure 400 {object} models.ApiResponse "Invalid request or unavailable size"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/orders/inquiry [post]
func CreateInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "product_id and size are required"))
		return
	}

	product, err := store.ByID(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	inquiry, err := services.ComposeInquiry(product, req.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inquiry composed", inquiry))
}
