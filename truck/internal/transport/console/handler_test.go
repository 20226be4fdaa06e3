package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/coffee-truck/platform/logger"
	"github.com/you-humble/coffee-truck/truck/internal/model"
	repository "github.com/you-humble/coffee-truck/truck/internal/repository/manifest"
	service "github.com/you-humble/coffee-truck/truck/internal/service/cargo"
	"github.com/you-humble/coffee-truck/truck/internal/transport/console/mocks"
)

func realCargo(maxVolume float64) (CargoService, error) {
	s, err := service.NewCargoService(maxVolume)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func mockCargo(m *mocks.MockCargoService) CargoFactory {
	return func(float64) (CargoService, error) { return m, nil }
}

func ptr[T any](v T) *T { return &v }

// assertInOrder checks that every want line appears in out after the previous one.
func assertInOrder(t *testing.T, out string, want ...string) {
	t.Helper()

	rest := out
	for _, w := range want {
		i := strings.Index(rest, w)
		if !assert.GreaterOrEqual(t, i, 0, "missing %q after previous lines", w) {
			return
		}
		rest = rest[i+len(w):]
	}
}

func TestHandlerRunSampleSession(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	in := strings.NewReader("abc\n-5\n50\nx\n-1\n5\n9\n9.5\n")
	var out bytes.Buffer

	h := NewConsoleHandler(in, &out, realCargo, repository.NewManifestRepository(""), Options{})
	require.NoError(t, h.Run(context.Background()))

	got := out.String()
	assertInOrder(t, got,
		"Enter the truck's maximum volume: ",
		"Invalid input. Enter a number for the truck volume.",
		"Error: the truck volume must be a positive number",
		"Loading coffee into the truck...",
		"Error while loading cargo: not enough room in the truck for the next coffee",
		"Truck contents before sorting:",
		"Arabica Beans (Price/kg: 20.00, Weight: 5.00, Quality: 9.00)",
		"French Roast (Price/kg: 14.00, Weight: 2.80, Quality: 7.80)",
		"Loaded 14 items, 48.60/50.00 kg",
		"Truck contents after sorting by price-to-weight ratio:",
		"Budget Blend (Price/kg: 10.00, Weight: 2.50, Quality: 7.00)",
		"House Blend (Price/kg: 12.00, Weight: 6.00, Quality: 7.50)",
		"Instant Gold (Price/kg: 30.00, Weight: 2.00, Quality: 9.50)",
		"Invalid input. Enter valid numbers for the quality range.",
		"Error: quality range must lie within 0.0 - 10.0",
		"Cargo filtered by quality range:",
		"Arabica Beans",
		"Quick Brew",
		"Cappuccino Mix",
		"Instant Gold",
	)

	assert.NotContains(t, got, "Latte Sachets")
	filtered := got[strings.Index(got, "Cargo filtered by quality range:"):]
	assert.NotContains(t, filtered, "Ethiopian Sidamo")
	assert.Equal(t, 4, strings.Count(filtered, "Price/kg"))
}

func TestHandlerRunPresetOptions(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	t.Run("preset capacity skips the volume prompt", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		h := NewConsoleHandler(strings.NewReader("0\n10\n"), &out, realCargo,
			repository.NewManifestRepository(""), Options{MaxVolume: ptr(10.0)})
		require.NoError(t, h.Run(context.Background()))

		got := out.String()
		assert.NotContains(t, got, "Enter the truck's maximum volume")
		assertInOrder(t, got,
			"Error while loading cargo:",
			"Loaded 3 items, 10.00/10.00 kg",
			"Cargo filtered by quality range:",
			"Ground Espresso",
			"Arabica Beans",
			"Instant Gold",
		)
	})

	t.Run("invalid preset capacity is a hard error", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		h := NewConsoleHandler(strings.NewReader(""), &out, realCargo,
			repository.NewManifestRepository(""), Options{MaxVolume: ptr(-1.0)})

		err := h.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
		assert.NotContains(t, out.String(), "Loading coffee")
	})

	t.Run("invalid preset range is a hard error", func(t *testing.T) {
		t.Parallel()

		h := NewConsoleHandler(strings.NewReader("10\n"), io.Discard, realCargo,
			repository.NewManifestRepository(""), Options{Quality: &model.QualityRange{Min: 8, Max: 3}})

		err := h.Run(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidRange)
	})
}

func TestHandlerRunWithMocks(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	type deps struct {
		cargo    *mocks.MockCargoService
		manifest *mocks.MockManifestRepository
	}

	coffee, err := model.NewCoffee(model.CoffeeParams{
		Name:       gofakeit.ProductName(),
		PricePerKg: gofakeit.Float64Range(1, 40),
		Weight:     gofakeit.Float64Range(0.5, 5),
		Quality:    gofakeit.Float64Range(0, 10),
		Kind:       model.KindGround,
	})
	require.NoError(t, err)

	type testCase struct {
		name   string
		input  string
		opts   Options
		setup  func(d deps)
		assert func(t *testing.T, out string, err error)
	}

	tests := []testCase{
		{
			name:  "manifest error stops the session",
			input: "10\n",
			setup: func(d deps) {
				d.manifest.On("Coffees", mock.Anything).
					Return(nil, errors.New("disk on fire")).Once()
			},
			assert: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "disk on fire")
				assert.NotContains(t, out, "Truck contents before sorting:")
			},
		},
		{
			name:  "unexpected load error stops the session",
			input: "10\n",
			setup: func(d deps) {
				d.manifest.On("Coffees", mock.Anything).
					Return([]model.Coffee{coffee}, nil).Once()
				d.cargo.On("LoadBatch", mock.Anything, []model.Coffee{coffee}).
					Return(0, context.DeadlineExceeded).Once()
			},
			assert: func(t *testing.T, out string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, context.DeadlineExceeded)
				assert.NotContains(t, out, "Error while loading cargo")
			},
		},
		{
			name:  "empty filter result",
			input: "10\n",
			opts:  Options{Quality: &model.QualityRange{Min: 10, Max: 10}},
			setup: func(d deps) {
				d.manifest.On("Coffees", mock.Anything).
					Return([]model.Coffee{coffee}, nil).Once()
				d.cargo.On("LoadBatch", mock.Anything, []model.Coffee{coffee}).
					Return(1, nil).Once()
				d.cargo.On("List", mock.Anything).Return([]model.Coffee{coffee}).Twice()
				d.cargo.On("Summary", mock.Anything).
					Return(model.LoadSummary{Items: 1, UsedKg: coffee.Weight, MaxVolume: 10}).Once()
				d.cargo.On("SortByValueRatio", mock.Anything).Return().Once()
				d.cargo.On("FilterByQuality", mock.Anything, model.QualityRange{Min: 10, Max: 10}).
					Return([]model.Coffee{}, nil).Once()
			},
			assert: func(t *testing.T, out string, err error) {
				require.NoError(t, err)
				assertInOrder(t, out,
					"Loaded 1 items",
					"No coffee matches the quality range.",
				)
				assert.NotContains(t, out, "Cargo filtered by quality range:")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				cargo:    mocks.NewMockCargoService(t),
				manifest: mocks.NewMockManifestRepository(t),
			}
			tt.setup(d)

			var out bytes.Buffer
			h := NewConsoleHandler(strings.NewReader(tt.input), &out, mockCargo(d.cargo), d.manifest, tt.opts)

			err := h.Run(context.Background())
			tt.assert(t, out.String(), err)
		})
	}
}

func TestHandlerRunInputEnds(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	tests := []struct {
		name  string
		input string
	}{
		{name: "before the volume", input: ""},
		{name: "after a bad volume", input: "abc\n"},
		{name: "before the quality range", input: "50\n"},
		{name: "between min and max quality", input: "50\n5\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewConsoleHandler(strings.NewReader(tt.input), io.Discard, realCargo,
				repository.NewManifestRepository(""), Options{})

			err := h.Run(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInputClosed)
		})
	}
}

func TestHandlerRunCancelled(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewConsoleHandler(pr, io.Discard, realCargo, repository.NewManifestRepository(""), Options{})

	err := h.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	other := errors.New("boom")
	assert.Equal(t, "boom", userMessage(other))
	assert.Equal(t, "the truck volume must be a positive number",
		userMessage(errors.Join(errors.New("op"), model.ErrInvalidConfiguration)))
	assert.Contains(t, userMessage(model.ErrInvalidRange), "0.0 - 10.0")
}
