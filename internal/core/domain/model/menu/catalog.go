package menu

// DefaultCatalog returns the fixed in-memory catalog used as the
// recommendation source.
func DefaultCatalog() []Item {
	catalog := make([]Item, 0, 4)
	for _, row := range []struct {
		name        string
		description string
		price       float64
		category    string
		image       string
	}{
		{"Greek Salad", "Tomatoes, cucumber, feta and olives", 5.0, "Mediterranean", "salad.jpg"},
		{"Chicken Wrap", "Grilled chicken wrap with yogurt sauce", 7.5, "Street Food", "wrap.jpg"},
		{"Veggie Pizza", "Pizza with seasonal grilled vegetables", 8.0, "Italian", "pizza.jpg"},
		{"Fruit Bowl", "Seasonal fruit with honey and walnuts", 4.0, "Dessert", "fruit.jpg"},
	} {
		item, err := NewItem(row.name, row.description, row.price, row.category, row.image)
		if err != nil {
			// The fixed catalog is well-formed by construction.
			panic(err)
		}
		catalog = append(catalog, item)
	}
	return catalog
}
