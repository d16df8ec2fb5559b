package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/models"
	"github.com/24vasilekk/dolce/taxonomy"
)

// GetCategories godoc
// @Summary Get the category taxonomy
// @Description The static gender → category → subcategory tree the storefront navigates by. Pass gender to get a single section.
// @Tags Storefront - Categories
// @Produce json
// @Param gender query string false "Gender (men | women | kids)"
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 400 {object} models.ApiResponse "Unknown gender"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if g := c.Query("gender"); g != "" {
		section, ok := taxonomy.ForGender(models.Gender(g))
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown gender"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", section))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", taxonomy.All()))
}
