package catalog

import "github.com/pizzadelight/storefront/pkg/models"

// Repository holds the read-only menu and answers id-keyed lookups.
// Records are supplied by an external loader; the repository never
// mutates them after construction.
type Repository struct {
	pizzas   map[string]models.Pizza
	toppings map[string]models.Topping
	drinks   map[string]models.Drink

	pizzaOrder   []string
	toppingOrder []string
	drinkOrder   []string
}

// NewRepository indexes the supplied catalog records.
func NewRepository(pizzas []models.Pizza, toppings []models.Topping, drinks []models.Drink) *Repository {
	repo := &Repository{
		pizzas:   make(map[string]models.Pizza, len(pizzas)),
		toppings: make(map[string]models.Topping, len(toppings)),
		drinks:   make(map[string]models.Drink, len(drinks)),
	}
	for _, pizza := range pizzas {
		if _, seen := repo.pizzas[pizza.ID]; !seen {
			repo.pizzaOrder = append(repo.pizzaOrder, pizza.ID)
		}
		repo.pizzas[pizza.ID] = pizza
	}
	for _, topping := range toppings {
		if _, seen := repo.toppings[topping.ID]; !seen {
			repo.toppingOrder = append(repo.toppingOrder, topping.ID)
		}
		repo.toppings[topping.ID] = topping
	}
	for _, drink := range drinks {
		if _, seen := repo.drinks[drink.ID]; !seen {
			repo.drinkOrder = append(repo.drinkOrder, drink.ID)
		}
		repo.drinks[drink.ID] = drink
	}
	return repo
}

// PizzaByID looks up a pizza; the second return is false on a miss.
func (r *Repository) PizzaByID(id string) (models.Pizza, bool) {
	pizza, ok := r.pizzas[id]
	return pizza, ok
}

// ToppingByID looks up a topping.
func (r *Repository) ToppingByID(id string) (models.Topping, bool) {
	topping, ok := r.toppings[id]
	return topping, ok
}

// DrinkByID looks up a drink.
func (r *Repository) DrinkByID(id string) (models.Drink, bool) {
	drink, ok := r.drinks[id]
	return drink, ok
}

// Pizzas returns the menu in load order.
func (r *Repository) Pizzas() []models.Pizza {
	out := make([]models.Pizza, 0, len(r.pizzaOrder))
	for _, id := range r.pizzaOrder {
		out = append(out, r.pizzas[id])
	}
	return out
}

// Toppings returns the toppings in load order.
func (r *Repository) Toppings() []models.Topping {
	out := make([]models.Topping, 0, len(r.toppingOrder))
	for _, id := range r.toppingOrder {
		out = append(out, r.toppings[id])
	}
	return out
}

// Drinks returns the drinks in load order.
func (r *Repository) Drinks() []models.Drink {
	out := make([]models.Drink, 0, len(r.drinkOrder))
	for _, id := range r.drinkOrder {
		out = append(out, r.drinks[id])
	}
	return out
}
