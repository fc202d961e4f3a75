package menu

// Preferences carries the diner's taste criteria for recommendations.
// It is a plain criteria value object with no invariants of its own.
type Preferences struct {
	cuisine  string
	mealType string
}

// NewPreferences creates a preferences value object.
func NewPreferences(cuisine string, mealType string) Preferences {
	return Preferences{cuisine: cuisine, mealType: mealType}
}

// Cuisine returns the preferred cuisine.
func (p Preferences) Cuisine() string {
	return p.cuisine
}

// MealType returns the preferred meal type.
func (p Preferences) MealType() string {
	return p.mealType
}
