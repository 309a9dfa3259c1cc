package catalog

import (
	"github.com/crumbandco/bakeshop/app/models"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var defaultCategories = []models.Category{
	{ID: "cakes", Name: "Cakes"},
	{ID: "pastries", Name: "Pastries"},
	{ID: "cupcakes", Name: "Cupcakes"},
	{ID: "cookies", Name: "Cookies"},
	{ID: "hampers", Name: "Gift Hampers"},
}

var defaultOccasions = []models.Occasion{
	{ID: "birthday", Name: "Birthday"},
	{ID: "anniversary", Name: "Anniversary"},
	{ID: "wedding", Name: "Wedding"},
	{ID: "valentine", Name: "Valentine's Day"},
	{ID: "corporate", Name: "Corporate"},
	{ID: "baby-shower", Name: "Baby Shower"},
}

func rupees(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func defaultProducts() []models.Product {
	products := []models.Product{
		{
			ID:            "1",
			Name:          "Alpine Chocolate Truffle",
			Price:         rupees(899),
			OriginalPrice: rupees(1099),
			Image:         "/images/products/alpine-truffle.jpg",
			Category:      "cakes",
			Occasions:     []string{"birthday", "anniversary"},
			IsEggless:     true,
			IsBestSeller:  true,
			Rating:        4.8,
			Reviews:       234,
			Weights:       []string{"500g", "1kg", "1.5kg", "2kg"},
			Flavors:       []string{"Chocolate", "Dark Chocolate"},
			Description:   "Layers of rich chocolate sponge, velvety truffle cream and a glossy ganache finish.",
			DeliveryIn24h: true,
		},
		{
			ID:           "2",
			Name:         "Pink Velvet Dream",
			Price:        rupees(1299),
			Image:        "/images/products/pink-velvet.jpg",
			Category:     "cakes",
			Occasions:    []string{"birthday", "valentine"},
			IsEggless:    true,
			IsBestSeller: true,
			Rating:       4.9,
			Reviews:      189,
			Weights:      []string{"500g", "1kg", "1.5kg"},
			Flavors:      []string{"Vanilla", "Strawberry"},
			Description:  "Pink velvet sponge with cream cheese frosting, rose petals and edible pearls.",
		},
		{
			ID:            "3",
			Name:          "Black Forest Classic",
			Price:         rupees(749),
			OriginalPrice: rupees(899),
			Image:         "/images/products/black-forest.jpg",
			Category:      "cakes",
			Occasions:     []string{"birthday", "corporate"},
			IsBestSeller:  true,
			Rating:        4.7,
			Reviews:       456,
			Weights:       []string{"500g", "1kg", "1.5kg", "2kg"},
			Flavors:       []string{"Chocolate Cherry"},
			Description:   "Chocolate sponge, whipped cream, cherries and chocolate shavings.",
			DeliveryIn24h: true,
		},
		{
			ID:          "4",
			Name:        "Heart-Shaped Love Cake",
			Price:       rupees(1499),
			Image:       "/images/products/heart-love.jpg",
			Category:    "cakes",
			Occasions:   []string{"valentine", "anniversary"},
			IsEggless:   true,
			Rating:      4.9,
			Reviews:     123,
			Weights:     []string{"1kg", "1.5kg"},
			Flavors:     []string{"Red Velvet", "Strawberry"},
			Description: "A heart-shaped centrepiece decorated with roses and romantic touches.",
		},
		{
			ID:            "5",
			Name:          "Butterscotch Crunch",
			Price:         rupees(699),
			Image:         "/images/products/butterscotch.jpg",
			Category:      "cakes",
			Occasions:     []string{"birthday", "corporate"},
			IsEggless:     true,
			Rating:        4.6,
			Reviews:       312,
			Weights:       []string{"500g", "1kg", "1.5kg"},
			Flavors:       []string{"Butterscotch"},
			Description:   "Creamy butterscotch cake topped with caramelised praline and crunchy chips.",
			DeliveryIn24h: true,
		},
		{
			ID:          "6",
			Name:        "Alphonso Mango Mousse",
			Price:       rupees(999),
			Image:       "/images/products/mango-mousse.jpg",
			Category:    "cakes",
			Occasions:   []string{"birthday"},
			IsEggless:   true,
			IsNew:       true,
			Rating:      4.8,
			Reviews:     87,
			Weights:     []string{"500g", "1kg", "1.5kg"},
			Flavors:     []string{"Mango"},
			Description: "Fresh Alphonso mango cake layered with mango mousse and real fruit chunks.",
		},
		{
			ID:          "7",
			Name:        "Wedding Elegance Tier",
			Price:       rupees(5999),
			Image:       "/images/products/wedding-tier.jpg",
			Category:    "cakes",
			Occasions:   []string{"wedding", "anniversary"},
			IsEggless:   true,
			Rating:      5.0,
			Reviews:     45,
			Weights:     []string{"3kg", "5kg"},
			Flavors:     []string{"Vanilla", "Red Velvet", "Chocolate"},
			Description: "Three-tier fondant cake with handcrafted sugar flowers, made to order.",
		},
		{
			ID:            "8",
			Name:          "Choco Chip Cookie Box",
			Price:         rupees(349),
			Image:         "/images/products/cookie-box.jpg",
			Category:      "cookies",
			Occasions:     []string{"corporate", "birthday"},
			IsEggless:     true,
			Rating:        4.5,
			Reviews:       521,
			Weights:       []string{"250g", "500g"},
			Flavors:       []string{"Chocolate Chip"},
			Description:   "A dozen buttery cookies loaded with dark chocolate chips.",
			DeliveryIn24h: true,
		},
		{
			ID:          "9",
			Name:        "Vegan Carrot Delight",
			Price:       rupees(1099),
			Image:       "/images/products/vegan-carrot.jpg",
			Category:    "cakes",
			Occasions:   []string{"birthday"},
			IsEggless:   true,
			IsVegan:     true,
			IsNew:       true,
			Rating:      4.4,
			Reviews:     38,
			Weights:     []string{"500g", "1kg"},
			Flavors:     []string{"Carrot Walnut"},
			Description: "Plant-based carrot cake with cashew frosting and toasted walnuts.",
		},
		{
			ID:            "10",
			Name:          "Assorted Pastry Hamper",
			Price:         rupees(799),
			OriginalPrice: rupees(949),
			Image:         "/images/products/pastry-hamper.jpg",
			Category:      "hampers",
			Occasions:     []string{"corporate", "baby-shower"},
			IsEggless:     false,
			IsBestSeller:  true,
			Rating:        4.7,
			Reviews:       203,
			Weights:       []string{"6 pieces", "12 pieces"},
			Flavors:       []string{"Assorted"},
			Description:   "A curated box of our six most loved pastries, packed for gifting.",
			DeliveryIn24h: true,
		},
	}

	for i := range products {
		products[i].Slug = slug.Make(products[i].Name)
	}
	return products
}
