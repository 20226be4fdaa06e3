package model

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

const (
	MinQuality = 0.0
	MaxQuality = 10.0
)

type Kind int32

const (
	KindUnknown Kind = iota
	KindBeans
	KindGround
	KindInstant
)

func (k Kind) String() string {
	switch k {
	case KindBeans:
		return "beans"
	case KindGround:
		return "ground"
	case KindInstant:
		return "instant"
	default:
		return "unknown"
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beans", "bean":
		return KindBeans, nil
	case "ground":
		return KindGround, nil
	case "instant":
		return KindInstant, nil
	default:
		return KindUnknown, fmt.Errorf("unknown coffee kind %q", s)
	}
}

// Coffee is a single item of cargo. Values are fixed once built by NewCoffee.
type Coffee struct {
	// Random identifier used to follow the item through log records.
	ID uuid.UUID
	// Human-readable name.
	Name string
	// Price of one kilogram.
	PricePerKg float64
	// Weight in kilograms, packaging included.
	Weight float64
	// Quality score within [MinQuality, MaxQuality].
	Quality float64
	// Descriptive form of the coffee. It does not change any behavior.
	Kind Kind
}

type CoffeeParams struct {
	Name       string
	PricePerKg float64
	Weight     float64
	Quality    float64
	Kind       Kind
}

func NewCoffee(p CoffeeParams) (Coffee, error) {
	if err := p.Validate(); err != nil {
		return Coffee{}, errors.Join(ErrInvalidCoffee, err)
	}

	return Coffee{
		ID:         uuid.New(),
		Name:       p.Name,
		PricePerKg: p.PricePerKg,
		Weight:     p.Weight,
		Quality:    p.Quality,
		Kind:       p.Kind,
	}, nil
}

func (p CoffeeParams) Validate() error {
	if !(p.PricePerKg > 0) || math.IsInf(p.PricePerKg, 0) {
		return errors.New("price_per_kg must be positive")
	}
	if !(p.Weight > 0) || math.IsInf(p.Weight, 0) {
		return errors.New("weight must be positive")
	}
	if !(p.Quality >= MinQuality && p.Quality <= MaxQuality) {
		return fmt.Errorf("quality must be within [%.1f, %.1f]", MinQuality, MaxQuality)
	}
	return nil
}

// Price is the full price of the item.
func (c Coffee) Price() float64 {
	return c.PricePerKg * c.Weight
}

// ValueRatio is Price divided by Weight, which is the price per kilogram.
// It is returned directly so equal ratios compare exactly equal.
func (c Coffee) ValueRatio() float64 {
	return c.PricePerKg
}
