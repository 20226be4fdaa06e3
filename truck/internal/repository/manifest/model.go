package repository

type ManifestEntity struct {
	Coffees []CoffeeEntity `json:"coffees" yaml:"coffees" toml:"coffees"`
}

type CoffeeEntity struct {
	Name       string  `json:"name" yaml:"name" toml:"name"`
	Kind       string  `json:"kind" yaml:"kind" toml:"kind"`
	PricePerKg float64 `json:"price_per_kg" yaml:"price_per_kg" toml:"price_per_kg"`
	Weight     float64 `json:"weight" yaml:"weight" toml:"weight"`
	Quality    float64 `json:"quality" yaml:"quality" toml:"quality"`
}
