package favorites_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/models"
)

// GetFavorites godoc
// @Summary List favorited products
// @Description The favorited products currently present in the catalog, in catalog order. Favorited ids with no catalog entry are kept in the set but omitted here.
// @Tags Storefront - Favorites
// @Produce json
// @Success 200 {object} models.ApiResponse "Favorites fetched successfully"
// @Router /store/favorites [get]
func GetFavorites(c *gin.Context) {
	favorited := make([]models.Product, 0)
	for _, p := range store.Products() {
		if favStore.IsFavorite(p.ID) {
			favorited = append(favorited, p)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully", favorited))
}
