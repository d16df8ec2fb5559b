package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24vasilekk/dolce/models"
)

func TestEveryGenderSectionStartsWithPseudoCategories(t *testing.T) {
	for gender, section := range All() {
		require.GreaterOrEqual(t, len(section.Categories), 3, gender)
		assert.Equal(t, models.SlugAll, section.Categories[0].Slug)
		assert.Equal(t, models.SlugSale, section.Categories[1].Slug)
		assert.Equal(t, models.SlugBrands, section.Categories[2].Slug)
		for _, c := range section.Categories[:3] {
			assert.True(t, c.Pseudo(), "%s/%s", gender, c.Slug)
		}
	}
}

func TestRealCategoriesLeadWithAllItemsSentinel(t *testing.T) {
	for gender, section := range All() {
		for _, c := range section.Categories[3:] {
			require.NotEmpty(t, c.Subcategories, "%s/%s", gender, c.Slug)
			assert.Equal(t, models.SubcategoryAll, c.Subcategories[0], "%s/%s", gender, c.Slug)
		}
	}
}

func TestForGender(t *testing.T) {
	section, ok := ForGender(models.GenderWomen)
	require.True(t, ok)
	assert.Equal(t, "Women", section.Title)

	_, ok = ForGender(models.Gender("unisex"))
	assert.False(t, ok)
}

func TestFindCategory(t *testing.T) {
	c, ok := FindCategory(models.GenderMen, "shoes")
	require.True(t, ok)
	assert.Equal(t, "Shoes", c.Name)
	assert.Contains(t, c.Subcategories, "Sneakers")

	_, ok = FindCategory(models.GenderMen, "no-such-slug")
	assert.False(t, ok)

	_, ok = FindCategory(models.Gender("unisex"), "shoes")
	assert.False(t, ok)
}

func TestKidsTreeDiffersFromAdults(t *testing.T) {
	kids, ok := FindCategory(models.GenderKids, "bags")
	require.True(t, ok)
	men, ok := FindCategory(models.GenderMen, "bags")
	require.True(t, ok)

	assert.Contains(t, kids.Subcategories, "Kids Bags")
	assert.NotContains(t, men.Subcategories, "Kids Bags")
}
