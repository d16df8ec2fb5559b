package favorites_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/24vasilekk/dolce/catalog"
	"github.com/24vasilekk/dolce/favorites"
	"github.com/24vasilekk/dolce/models"
)

var (
	store    *catalog.Store
	favStore *favorites.Store
)

// Init wires the controllers to the catalog and favorites stores.
func Init(s *catalog.Store, f *favorites.Store) {
	store = s
	favStore = f
}

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Flips membership of the product id in the favorites set and reports the new state. Favorites are kept by id, independent of the catalog, and never expire.
// @Tags Storefront - Favorites
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Favorite toggled"
// @Router /store/favorites/{id}/toggle [post]
func ToggleFavorite(c *gin.Context) {
	id := models.ProductID(c.Param("id"))
	favorite := favStore.Toggle(c.Request.Context(), id)

	message := "Removed from favorites"
	if favorite {
		message = "Added to favorites"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, gin.H{
		"id":       id,
		"favorite": favorite,
	}))
}
