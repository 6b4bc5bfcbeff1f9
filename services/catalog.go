package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"tokusound/types"
)

// CatalogService loads the catalog document. Loading is one-shot: the
// catalog is read once per Load call and treated as immutable afterwards;
// staleness is resolved by loading again, not by incremental updates.
type CatalogService interface {
	Load() (*types.Catalog, error)
}

// catalogService reads the catalog from a JSON file on disk
type catalogService struct {
	dataFile string
}

// NewCatalogService creates a catalog service backed by the given JSON file
func NewCatalogService(dataFile string) CatalogService {
	return &catalogService{dataFile: dataFile}
}

// Load reads and parses the catalog document. Failures wrap ErrCatalogLoad.
// On success the catalog is normalized (nil collections become empty) and
// otherwise exposed unchanged: no sorting, no mutation.
func (s *catalogService) Load() (*types.Catalog, error) {
	data, err := os.ReadFile(s.dataFile)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCatalogLoad, s.dataFile, err)
	}

	var catalog types.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCatalogLoad, s.dataFile, err)
	}

	catalog.Normalize()

	logrus.WithFields(logrus.Fields{
		"file":       s.dataFile,
		"categories": len(catalog.Categories),
		"sounds":     len(catalog.Sounds),
	}).Info("catalog loaded")

	return &catalog, nil
}

// EmptyCatalog returns a catalog with no categories and no sounds. It is
// what consumers fall back to after a load failure, so the filter engine
// and tag index keep working without further errors.
func EmptyCatalog() *types.Catalog {
	c := &types.Catalog{}
	c.Normalize()
	return c
}
