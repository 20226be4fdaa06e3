package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/you-humble/coffee-truck/platform/logger"
	"github.com/you-humble/coffee-truck/truck/internal/converter"
	"github.com/you-humble/coffee-truck/truck/internal/model"
)

type CargoService interface {
	LoadBatch(ctx context.Context, coffees []model.Coffee) (int, error)
	SortByValueRatio(ctx context.Context)
	FilterByQuality(ctx context.Context, r model.QualityRange) ([]model.Coffee, error)
	List(ctx context.Context) []model.Coffee
	Summary(ctx context.Context) model.LoadSummary
}

// CargoFactory opens a truck with the given capacity.
type CargoFactory func(maxVolume float64) (CargoService, error)

type ManifestRepository interface {
	Coffees(ctx context.Context) ([]model.Coffee, error)
}

// Options holds values that were already supplied outside the session. A nil
// field is asked for interactively.
type Options struct {
	MaxVolume *float64
	Quality   *model.QualityRange
}

type handler struct {
	in       io.Reader
	out      io.Writer
	newCargo CargoFactory
	manifest ManifestRepository
	opts     Options
}

func NewConsoleHandler(
	in io.Reader,
	out io.Writer,
	newCargo CargoFactory,
	manifest ManifestRepository,
	opts Options,
) *handler {
	return &handler{
		in:       in,
		out:      out,
		newCargo: newCargo,
		manifest: manifest,
		opts:     opts,
	}
}

// Run drives one session: open the truck, load the manifest, show the cargo
// before and after sorting and finally filter it by quality.
func (h *handler) Run(ctx context.Context) error {
	const op = "console.handler.Run"

	ctx = logger.WithSessionID(ctx, uuid.NewString())
	p := newPrompter(h.in, h.out)
	defer p.close()

	cargo, err := h.openTruck(ctx, p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := h.loadManifest(ctx, p, cargo); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.println("Truck contents before sorting:")
	h.printCoffees(p, cargo.List(ctx))
	p.println(converter.SummaryToLine(cargo.Summary(ctx)))

	cargo.SortByValueRatio(ctx)
	p.println()
	p.println("Truck contents after sorting by price-to-weight ratio:")
	h.printCoffees(p, cargo.List(ctx))

	filtered, err := h.filter(ctx, p, cargo)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.println()
	if len(filtered) == 0 {
		p.println("No coffee matches the quality range.")
		return nil
	}
	p.println("Cargo filtered by quality range:")
	h.printCoffees(p, filtered)

	return nil
}

func (h *handler) openTruck(ctx context.Context, p *prompter) (CargoService, error) {
	if h.opts.MaxVolume != nil {
		cargo, err := h.newCargo(*h.opts.MaxVolume)
		if err != nil {
			logger.Error(ctx, "preset capacity rejected", logger.ErrorF(err))
			return nil, err
		}
		return cargo, nil
	}

	for {
		v, err := p.readFloat(ctx, "Enter the truck's maximum volume: ")
		switch {
		case errors.Is(err, errNotANumber):
			p.println("Invalid input. Enter a number for the truck volume.")
			continue
		case err != nil:
			return nil, err
		}

		cargo, err := h.newCargo(v)
		if err != nil {
			logger.Debug(ctx, "capacity rejected", logger.ErrorF(err))
			p.println("Error: " + userMessage(err))
			continue
		}
		return cargo, nil
	}
}

func (h *handler) loadManifest(ctx context.Context, p *prompter, cargo CargoService) error {
	p.println("Loading coffee into the truck...")
	p.println()

	coffees, err := h.manifest.Coffees(ctx)
	if err != nil {
		logger.Error(ctx, "manifest unavailable", logger.ErrorF(err))
		return err
	}

	if _, err := cargo.LoadBatch(ctx, coffees); err != nil {
		if !errors.Is(err, model.ErrCapacityExceeded) {
			return err
		}
		p.println("Error while loading cargo: " + userMessage(err))
	}
	return nil
}

func (h *handler) filter(ctx context.Context, p *prompter, cargo CargoService) ([]model.Coffee, error) {
	if h.opts.Quality != nil {
		return cargo.FilterByQuality(ctx, *h.opts.Quality)
	}

	for {
		r, err := h.readRange(ctx, p)
		switch {
		case errors.Is(err, errNotANumber):
			p.println("Invalid input. Enter valid numbers for the quality range.")
			continue
		case err != nil:
			return nil, err
		}

		filtered, err := cargo.FilterByQuality(ctx, r)
		if err != nil {
			if errors.Is(err, model.ErrInvalidRange) {
				p.println("Error: " + userMessage(err))
				continue
			}
			return nil, err
		}
		return filtered, nil
	}
}

func (h *handler) readRange(ctx context.Context, p *prompter) (model.QualityRange, error) {
	var r model.QualityRange

	p.println()
	minQ, err := p.readFloat(ctx, fmt.Sprintf("Enter the minimum quality (%.1f - %.1f): ", model.MinQuality, model.MaxQuality))
	if err != nil {
		return r, err
	}
	maxQ, err := p.readFloat(ctx, fmt.Sprintf("Enter the maximum quality (%.1f - %.1f): ", model.MinQuality, model.MaxQuality))
	if err != nil {
		return r, err
	}

	r.Min, r.Max = minQ, maxQ
	return r, nil
}

func (h *handler) printCoffees(p *prompter, cs []model.Coffee) {
	for _, line := range converter.CoffeesToLines(cs) {
		p.println(line)
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidConfiguration):
		return "the truck volume must be a positive number"
	case errors.Is(err, model.ErrCapacityExceeded):
		return "not enough room in the truck for the next coffee"
	case errors.Is(err, model.ErrInvalidRange):
		return fmt.Sprintf("quality range must lie within %.1f - %.1f with min not above max",
			model.MinQuality, model.MaxQuality)
	case errors.Is(err, model.ErrInvalidCoffee):
		return "invalid coffee parameters"
	default:
		return err.Error()
	}
}
