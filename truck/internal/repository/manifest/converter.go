package repository

import (
	"errors"
	"fmt"

	"github.com/you-humble/coffee-truck/truck/internal/model"
)

func EntityToModel(e CoffeeEntity) (model.Coffee, error) {
	kind, err := model.ParseKind(e.Kind)
	if err != nil {
		return model.Coffee{}, errors.Join(model.ErrInvalidCoffee, err)
	}

	return model.NewCoffee(model.CoffeeParams{
		Name:       e.Name,
		PricePerKg: e.PricePerKg,
		Weight:     e.Weight,
		Quality:    e.Quality,
		Kind:       kind,
	})
}

func EntityFromModel(c model.Coffee) CoffeeEntity {
	return CoffeeEntity{
		Name:       c.Name,
		Kind:       c.Kind.String(),
		PricePerKg: c.PricePerKg,
		Weight:     c.Weight,
		Quality:    c.Quality,
	}
}

func EntitiesToModels(entities []CoffeeEntity) ([]model.Coffee, error) {
	out := make([]model.Coffee, 0, len(entities))
	for i, e := range entities {
		c, err := EntityToModel(e)
		if err != nil {
			return nil, fmt.Errorf("coffee #%d %q: %w", i+1, e.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}
