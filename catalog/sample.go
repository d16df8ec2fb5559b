package catalog

import "github.com/24vasilekk/dolce/models"

// SampleProducts is the built-in catalog used when every other source
// fails, so the storefront is never left with nothing to show.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Кроссовки Air Max 270", Brand: "Nike",
			Price: 12990, Gender: models.GenderMen,
			Category: "shoes", Subcategory: "Кроссовки и кеды",
			Colors: []string{"black", "white"},
			Sizes:  []string{"40", "41", "42", "43", "44"},
			Materials: []string{"Синтетика"},
			Image:     "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop",
			Description: "Удобные кроссовки для повседневной носки",
		},
		{
			ID: "2", Name: "Платье миди с принтом", Brand: "Gucci",
			Price: 89990, OnSale: true, SalePrice: 67490,
			Gender: models.GenderWomen,
			Category: "clothing", Subcategory: "Платья",
			Colors: []string{"red", "green"},
			Sizes:  []string{"S", "M", "L"},
			Materials: []string{"Шелк"},
			Image:     "https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=400&h=400&fit=crop",
			Description: "Элегантное платье с фирменным принтом",
		},
		{
			ID: "3", Name: "Рубашка поло", Brand: "Prada",
			Price: 34990, Gender: models.GenderMen,
			Category: "clothing", Subcategory: "Рубашки",
			Colors: []string{"blue", "white"},
			Sizes:  []string{"M", "L", "XL"},
			Materials: []string{"Хлопок"},
			Image:     "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=400&h=400&fit=crop",
			Description: "Классическая рубашка поло",
		},
		{
			ID: "4", Name: "Сумка Birkin", Brand: "Hermès",
			Price: 1250000, Gender: models.GenderWomen,
			Category: "bags", Subcategory: "Сумки тоут",
			Colors: []string{"brown", "black"},
			Sizes:  []string{"One Size"},
			Materials: []string{"Кожа"},
			Image:     "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=400&fit=crop",
			Description: "Легендарная сумка Birkin",
		},
		{
			ID: "5", Name: "Детские кроссовки", Brand: "Adidas",
			Price: 7990, OnSale: true, SalePrice: 5990,
			Gender: models.GenderKids,
			Category: "shoes", Subcategory: "Кроссовки и кеды",
			Colors: []string{"white", "black"},
			Sizes:  []string{"28", "29", "30", "31", "32"},
			Materials: []string{"Синтетика"},
			Image:     "https://images.unsplash.com/photo-1544966503-7cc5ac882d24?w=400&h=400&fit=crop",
			Description: "Удобные детские кроссовки",
		},
		{
			ID: "6", Name: "Часы Submariner", Brand: "Rolex",
			Price: 890000, Gender: models.GenderMen,
			Category: "accessories", Subcategory: "Часы",
			Colors: []string{"silver", "black"},
			Sizes:  []string{"One Size"},
			Materials: []string{"Металл"},
			Image:     "https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=400&h=400&fit=crop",
			Description: "Швейцарские часы премиум класса",
		},
		{
			ID: "7", Name: "Шарф кашемировый", Brand: "Burberry",
			Price: 45990, Gender: models.GenderWomen,
			Category: "accessories", Subcategory: "Шарфы и палантины",
			Colors: []string{"beige", "brown"},
			Sizes:  []string{"One Size"},
			Materials: []string{"Кашемир"},
			Image:     "https://images.unsplash.com/photo-1601924994987-69e26d50dc26?w=400&h=400&fit=crop",
			Description: "Мягкий кашемировый шарф",
		},
		{
			ID: "8", Name: "Детское платье", Brand: "Dolce & Gabbana",
			Price: 24990, OnSale: true, SalePrice: 17490,
			Gender: models.GenderKids,
			Category: "clothing", Subcategory: "Платья",
			Colors: []string{"pink", "white"},
			Sizes:  []string{"4", "6", "8", "10"},
			Materials: []string{"Хлопок"},
			Image:     "https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=400&h=400&fit=crop",
			Description: "Нарядное детское платье",
		},
	}
}
