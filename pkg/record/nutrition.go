package record

// FoodItem is one food within a macro entry.
type FoodItem struct {
	Name     string   `json:"name" validate:"required"`
	Calories float64  `json:"calories" validate:"gte=0"`
	Protein  float64  `json:"protein" validate:"gte=0"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`
	Sodium   *float64 `json:"sodium,omitempty"`
}

// MacroEntry is a nutrition log.
type MacroEntry struct {
	ID            string     `json:"id,omitempty"`
	Date          string     `json:"date" validate:"required,datetime=2006-01-02"`
	FoodItems     []FoodItem `json:"food_items,omitempty" validate:"dive"`
	TotalCalories *float64   `json:"total_calories,omitempty"`
	TotalProtein  *float64   `json:"total_protein,omitempty"`
	TotalCarbs    *float64   `json:"total_carbs,omitempty"`
	TotalFats     *float64   `json:"total_fats,omitempty"`
	TotalSodium   *float64   `json:"total_sodium,omitempty"`
}

// HydrationEntry is a water intake log.
type HydrationEntry struct {
	ID       string  `json:"id,omitempty"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	AmountML float64 `json:"amount_ml" validate:"gt=0"`
	Notes    string  `json:"notes,omitempty"`
}
