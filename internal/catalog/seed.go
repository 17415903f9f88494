package catalog

import (
	"github.com/pizzadelight/storefront/pkg/models"
	"github.com/pizzadelight/storefront/pkg/types"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// SeedMenu returns the demo menu used by the bootstrap binary and tests.
func SeedMenu() ([]models.Pizza, []models.Topping, []models.Drink) {
	pizzas := []models.Pizza{
		{
			ID:                "1",
			Name:              "Margherita",
			Description:       "Classic pizza with tomato sauce, mozzarella, and basil",
			Image:             "/placeholder.svg",
			Price:             types.SizePrices{Small: 8.99, Medium: 10.99, Large: 12.99},
			AvailableToppings: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			Tags:              []string{"classic"},
			Vegetarian:        boolPtr(true),
		},
		{
			ID:                "2",
			Name:              "Pepperoni",
			Description:       "Pizza topped with tomato sauce, mozzarella, and pepperoni slices",
			Image:             "/placeholder.svg",
			Price:             types.SizePrices{Small: 9.99, Medium: 11.99, Large: 13.99},
			AvailableToppings: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			ID:                "3",
			Name:              "Vegetarian",
			Description:       "Pizza with tomato sauce, mozzarella, bell peppers, mushrooms, and olives",
			Image:             "/placeholder.svg",
			Price:             types.SizePrices{Small: 9.99, Medium: 11.99, Large: 13.99},
			AvailableToppings: []string{"1", "2", "3", "5", "7", "8"},
			Tags:              []string{"veggie"},
			Vegetarian:        boolPtr(true),
		},
		{
			ID:                "4",
			Name:              "Hawaiian",
			Description:       "Pizza with tomato sauce, mozzarella, ham, and pineapple",
			Image:             "/placeholder.svg",
			Price:             types.SizePrices{Small: 10.99, Medium: 12.99, Large: 14.99},
			AvailableToppings: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			ID:                "5",
			Name:              "Supreme",
			Description:       "Pizza with tomato sauce, mozzarella, pepperoni, sausage, bell peppers, onions, and mushrooms",
			Image:             "/placeholder.svg",
			Price:             types.SizePrices{Small: 11.99, Medium: 13.99, Large: 15.99},
			AvailableToppings: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			ID:                "6",
			Name:              "BBQ Chicken",
			Description:       "Pizza with BBQ sauce, mozzarella, grilled chicken, red onions, and cilantro",
			Image:             "/placeholder.svg",
			Price:             types.SizePrices{Small: 11.99, Medium: 13.99, Large: 15.99},
			AvailableToppings: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			SpiceLevel:        intPtr(1),
		},
	}

	toppings := []models.Topping{
		{ID: "1", Name: "Extra Cheese", Price: types.SizePrices{Small: 1.00, Medium: 1.50, Large: 2.00}, Available: true},
		{ID: "2", Name: "Mushrooms", Price: types.SizePrices{Small: 0.75, Medium: 1.00, Large: 1.50}, Available: true},
		{ID: "3", Name: "Olives", Price: types.SizePrices{Small: 0.75, Medium: 1.00, Large: 1.50}, Available: true},
		{ID: "4", Name: "Pepperoni", Price: types.SizePrices{Small: 1.00, Medium: 1.50, Large: 2.00}, Available: true},
		{ID: "5", Name: "Bell Peppers", Price: types.SizePrices{Small: 0.75, Medium: 1.00, Large: 1.50}, Available: true},
		{ID: "6", Name: "Ham", Price: types.SizePrices{Small: 1.00, Medium: 1.50, Large: 2.00}, Available: true},
		{ID: "7", Name: "Onions", Price: types.SizePrices{Small: 0.50, Medium: 0.75, Large: 1.00}, Available: true},
		{ID: "8", Name: "Tomatoes", Price: types.SizePrices{Small: 0.50, Medium: 0.75, Large: 1.00}, Available: true},
	}

	drinks := []models.Drink{
		{ID: "1", Name: "Cola", Description: "Chilled classic cola", Image: "/placeholder.svg", Price: 2.49, Size: "500ml", Available: true},
		{ID: "2", Name: "Lemonade", Description: "House-made lemonade", Image: "/placeholder.svg", Price: 2.99, Size: "400ml", Available: true, Tags: []string{"fresh"}},
		{ID: "3", Name: "Sparkling Water", Description: "Lightly carbonated mineral water", Image: "/placeholder.svg", Price: 1.99, Size: "330ml", Available: true},
		{ID: "4", Name: "Iced Tea", Description: "Peach iced tea", Image: "/placeholder.svg", Price: 2.79, Size: "500ml", Available: true},
	}

	return pizzas, toppings, drinks
}

// SeedRepository builds a repository over the demo menu.
func SeedRepository() *Repository {
	pizzas, toppings, drinks := SeedMenu()
	return NewRepository(pizzas, toppings, drinks)
}
