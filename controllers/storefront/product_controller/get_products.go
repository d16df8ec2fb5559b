package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/models"
)

// GetProducts godoc
// @Summary List storefront products
// @Description Filter, sort and paginate the catalog. Filters within one dimension are ORed, dimensions are ANDed. Pagination reveals a growing prefix of the result.
// @Tags Storefront - Products
// @Produce json
// @Param gender query string false "Gender (men | women | kids)"
// @Param category query string false "Category slug (all | sale | brands | shoes | ...)"
// @Param subcategory query string false "Subcategory label"
// @Param q query string false "Search query (name, brand or description)"
// @Param brand query []string false "Brands (repeatable)"
// @Param color query []string false "Colors (repeatable)"
// @Param size query []string false "Sizes (repeatable)"
// @Param material query []string false "Materials (repeatable)"
// @Param onSale query bool false "Only discounted items"
// @Param sort query string false "Sort key (price-asc | price-desc | name | brand)" default(name)
// @Param page query int false "Pages revealed so far" default(1)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 400 {object} models.ApiResponse "Invalid filter parameters"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	nav, err := parseNavigation(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	session := catalog.NewSession(store.Products())
	session.Nav = nav
	session.Criteria = parseCriteria(c)
	session.SortKey = models.SortKey(c.DefaultQuery("sort", string(models.SortName)))
	session.Page = parsePage(c)

	results := session.Results()

	totalPages := (results.Total + session.PageSize - 1) / session.PageSize

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		results.Visible,
		&models.Pagination{
			Page:       session.Page,
			Limit:      session.PageSize,
			Total:      results.Total,
			TotalPages: totalPages,
			HasMore:    results.HasMore,
		},
	))
}
