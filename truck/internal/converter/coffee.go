package converter

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/you-humble/coffee-truck/truck/internal/model"
)

func CoffeeToLine(c model.Coffee) string {
	return fmt.Sprintf("%s (Price/kg: %.2f, Weight: %.2f, Quality: %.2f)",
		c.Name, c.PricePerKg, c.Weight, c.Quality)
}

func CoffeesToLines(cs []model.Coffee) []string {
	return lo.Map(cs, func(c model.Coffee, _ int) string {
		return CoffeeToLine(c)
	})
}

func SummaryToLine(s model.LoadSummary) string {
	return fmt.Sprintf("Loaded %d items, %.2f/%.2f kg", s.Items, s.UsedKg, s.MaxVolume)
}
