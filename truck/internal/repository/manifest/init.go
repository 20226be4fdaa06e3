package repository

// defaultEntities is the sample load the truck receives when no manifest is given.
func defaultEntities() []CoffeeEntity {
	return []CoffeeEntity{
		{Name: "Arabica Beans", Kind: "beans", PricePerKg: 20.0, Weight: 5.0, Quality: 9.0},
		{Name: "Ground Espresso", Kind: "ground", PricePerKg: 15.0, Weight: 3.0, Quality: 8.5},
		{Name: "Instant Gold", Kind: "instant", PricePerKg: 30.0, Weight: 2.0, Quality: 9.5},
		{Name: "Robusta Beans", Kind: "beans", PricePerKg: 18.0, Weight: 4.0, Quality: 5.0},
		{Name: "House Blend", Kind: "ground", PricePerKg: 12.0, Weight: 6.0, Quality: 7.5},
		{Name: "Quick Brew", Kind: "instant", PricePerKg: 25.0, Weight: 1.5, Quality: 9.2},
		{Name: "Premium Arabica", Kind: "beans", PricePerKg: 22.0, Weight: 5.0, Quality: 2.0},
		{Name: "Dark Roast", Kind: "ground", PricePerKg: 17.0, Weight: 3.5, Quality: 8.9},
		{Name: "Budget Blend", Kind: "instant", PricePerKg: 10.0, Weight: 2.5, Quality: 7.0},
		{Name: "Ethiopian Sidamo", Kind: "beans", PricePerKg: 24.0, Weight: 4.0, Quality: 9.7},
		{Name: "Colombian", Kind: "ground", PricePerKg: 16.0, Weight: 3.0, Quality: 4.8},
		{Name: "Cappuccino Mix", Kind: "instant", PricePerKg: 28.0, Weight: 1.8, Quality: 9.4},
		{Name: "Kenya AA", Kind: "beans", PricePerKg: 23.0, Weight: 4.5, Quality: 3.5},
		{Name: "French Roast", Kind: "ground", PricePerKg: 14.0, Weight: 2.8, Quality: 7.8},
		{Name: "Latte Sachets", Kind: "instant", PricePerKg: 27.0, Weight: 2.2, Quality: 6.3},
		{Name: "Mocha", Kind: "beans", PricePerKg: 19.0, Weight: 3.0, Quality: 5.9},
		{Name: "Vienna Roast", Kind: "ground", PricePerKg: 13.0, Weight: 2.7, Quality: 6.2},
		{Name: "Black Instant", Kind: "instant", PricePerKg: 20.0, Weight: 2.0, Quality: 4.0},
	}
}
