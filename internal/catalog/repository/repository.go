package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

// catalogDocument is the on-disk envelope produced by the data tooling.
type catalogDocument[T any] struct {
	Version string `json:"version"`
	Data    []T    `json:"data"`
}

// StaticCatalogRepository serves the catalog from memory. It is populated
// once and treated as immutable from then on, so reads need no locking.
type StaticCatalogRepository struct {
	flavours  []domain.Flavour
	locations []domain.Location
	version   string

	flavourByID  map[int]*domain.Flavour
	locationByID map[int]*domain.Location
	byLocation   map[int][]domain.Flavour
}

// New builds a catalog repository from already-decoded data. Used directly by
// tests; production code goes through Load.
func New(flavours []domain.Flavour, locations []domain.Location, version string) *StaticCatalogRepository {
	r := &StaticCatalogRepository{
		flavours:     flavours,
		locations:    locations,
		version:      version,
		flavourByID:  make(map[int]*domain.Flavour, len(flavours)),
		locationByID: make(map[int]*domain.Location, len(locations)),
		byLocation:   make(map[int][]domain.Flavour),
	}

	for i := range flavours {
		f := &flavours[i]
		r.flavourByID[f.ID] = f
		r.byLocation[f.LocationID] = append(r.byLocation[f.LocationID], *f)
	}
	for i := range locations {
		r.locationByID[locations[i].ID] = &locations[i]
	}

	return r
}

// Load reads the two catalog documents from disk and indexes them. Flavours
// pointing at a location that does not exist are kept; lookups for the
// missing location return ErrNotFound and callers render without location
// context.
func Load(flavoursPath, locationsPath string) (*StaticCatalogRepository, error) {
	flavourDoc, err := readDocument[domain.Flavour](flavoursPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load flavour catalog: %w", err)
	}

	locationDoc, err := readDocument[domain.Location](locationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load location catalog: %w", err)
	}

	repo := New(flavourDoc.Data, locationDoc.Data, flavourDoc.Version)

	for _, f := range flavourDoc.Data {
		if _, ok := repo.locationByID[f.LocationID]; !ok {
			logger.Logger.Warn().
				Int("flavour_id", f.ID).
				Int("location_id", f.LocationID).
				Msg("Flavour references unknown location")
		}
	}

	logger.Logger.Info().
		Str("version", flavourDoc.Version).
		Int("flavours", len(flavourDoc.Data)).
		Int("locations", len(locationDoc.Data)).
		Msg("Catalog loaded")

	return repo, nil
}

func readDocument[T any](path string) (*catalogDocument[T], error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc catalogDocument[T]
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog document %s: %w", path, err)
	}

	return &doc, nil
}

func (r *StaticCatalogRepository) Flavours() []domain.Flavour {
	return r.flavours
}

func (r *StaticCatalogRepository) Locations() []domain.Location {
	return r.locations
}

func (r *StaticCatalogRepository) FlavourByID(id int) (*domain.Flavour, error) {
	f, ok := r.flavourByID[id]
	if !ok {
		return nil, fmt.Errorf("flavour %d: %w", id, domain.ErrNotFound)
	}
	return f, nil
}

func (r *StaticCatalogRepository) LocationByID(id int) (*domain.Location, error) {
	l, ok := r.locationByID[id]
	if !ok {
		return nil, fmt.Errorf("location %d: %w", id, domain.ErrNotFound)
	}
	return l, nil
}

func (r *StaticCatalogRepository) FlavoursByLocation(locationID int) []domain.Flavour {
	return r.byLocation[locationID]
}

func (r *StaticCatalogRepository) Version() string {
	return r.version
}
