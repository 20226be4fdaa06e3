package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/you-humble/coffee-truck/platform/logger"
	"github.com/you-humble/coffee-truck/truck/internal/model"
)

var ErrUnsupportedFormat = errors.New("unsupported manifest format")

type repository struct {
	path string
}

// NewManifestRepository reads cargo from the manifest at path. An empty path
// selects the built-in sample load.
func NewManifestRepository(path string) *repository {
	return &repository{path: strings.TrimSpace(path)}
}

func (r *repository) Coffees(ctx context.Context) ([]model.Coffee, error) {
	const op = "repository.Coffees"

	if r.path == "" {
		out, err := EntitiesToModels(defaultEntities())
		if err != nil {
			return nil, fmt.Errorf("%s: default manifest: %w", op, err)
		}
		return out, nil
	}

	manifest, err := LoadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := EntitiesToModels(manifest.Coffees)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, r.path, err)
	}

	logger.Info(ctx, "manifest loaded",
		logger.String("path", r.path),
		logger.Int("coffees", len(out)),
	)
	return out, nil
}

// LoadFile decodes a manifest by file extension: .yaml/.yml, .toml or .json.
func LoadFile(path string) (ManifestEntity, error) {
	var m ManifestEntity

	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &m)
	case ".toml":
		err = toml.Unmarshal(b, &m)
	case ".json":
		err = json.Unmarshal(b, &m)
	default:
		return m, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return m, fmt.Errorf("decode %s: %w", path, err)
	}

	return m, nil
}
