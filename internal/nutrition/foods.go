package nutrition

import (
	"errors"
	"fmt"
)

var ErrInvalidBudgetFilter = errors.New("invalid budget filter")

type Budget string

const (
	BudgetLow  Budget = "low"
	BudgetHigh Budget = "high"
)

const BudgetAll = "all"

type Food struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	ProteinPer100g    float64 `json:"proteinPer100g"`
	Budget            Budget  `json:"budget"`
	ServingSuggestion string  `json:"servingSuggestion"`
	ImageURL          string  `json:"imageUrl"`
}

const placeholderImage = "/public/placeholder.svg"

var DefaultFoods = []Food{
	{ID: "eggs", Name: "Eggs", ProteinPer100g: 13, Budget: BudgetLow, ServingSuggestion: "3 eggs = ~20g protein", ImageURL: placeholderImage},
	{ID: "lentils", Name: "Lentils, Beans, Chickpeas", ProteinPer100g: 9, Budget: BudgetLow, ServingSuggestion: "1 cup cooked = ~18g protein", ImageURL: placeholderImage},
	{ID: "soya", Name: "Soya Chunks", ProteinPer100g: 52, Budget: BudgetLow, ServingSuggestion: "100g = ~52g protein", ImageURL: placeholderImage},
	{ID: "milk", Name: "Milk, Curd/Yogurt", ProteinPer100g: 3.5, Budget: BudgetLow, ServingSuggestion: "1 cup = ~8g protein", ImageURL: placeholderImage},
	{ID: "paneer", Name: "Homemade Paneer", ProteinPer100g: 18, Budget: BudgetLow, ServingSuggestion: "100g = ~18g protein", ImageURL: placeholderImage},
	{ID: "oats-milk", Name: "Oats + Milk", ProteinPer100g: 16.5, Budget: BudgetLow, ServingSuggestion: "1 bowl = ~15g protein", ImageURL: placeholderImage},
	{ID: "peanut-butter", Name: "Peanut Butter", ProteinPer100g: 25, Budget: BudgetLow, ServingSuggestion: "2 tbsp = ~7g protein", ImageURL: placeholderImage},
	{ID: "whey", Name: "Whey Protein", ProteinPer100g: 80, Budget: BudgetHigh, ServingSuggestion: "1 scoop (30g) = ~24g protein", ImageURL: placeholderImage},
	{ID: "chicken", Name: "Chicken Breast", ProteinPer100g: 31, Budget: BudgetHigh, ServingSuggestion: "100g = ~31g protein", ImageURL: placeholderImage},
	{ID: "fish", Name: "Fish (Tuna, Salmon)", ProteinPer100g: 26, Budget: BudgetHigh, ServingSuggestion: "100g = ~26g protein", ImageURL: placeholderImage},
	{ID: "beef", Name: "Lean Beef", ProteinPer100g: 26, Budget: BudgetHigh, ServingSuggestion: "100g = ~26g protein", ImageURL: placeholderImage},
	{ID: "protein-bars", Name: "Protein Bars", ProteinPer100g: 30, Budget: BudgetHigh, ServingSuggestion: "1 bar = ~20g protein", ImageURL: placeholderImage},
	{ID: "nuts", Name: "Almonds, Walnuts", ProteinPer100g: 21, Budget: BudgetHigh, ServingSuggestion: "30g (handful) = ~6g protein", ImageURL: placeholderImage},
	{ID: "greek-yogurt", Name: "Greek Yogurt", ProteinPer100g: 10, Budget: BudgetHigh, ServingSuggestion: "1 cup = ~17g protein", ImageURL: placeholderImage},
}

// FilterFoods keeps the foods matching the budget filter, in their original order.
// Filter "all" (or empty) returns every food.
func FilterFoods(foods []Food, filter string) ([]Food, error) {
	switch filter {
	case "", BudgetAll:
		return append([]Food{}, foods...), nil
	case string(BudgetLow), string(BudgetHigh):
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBudgetFilter, filter)
	}

	filtered := make([]Food, 0, len(foods))
	for _, f := range foods {
		if string(f.Budget) == filter {
			filtered = append(filtered, f)
		}
	}
	return filtered, nil
}
