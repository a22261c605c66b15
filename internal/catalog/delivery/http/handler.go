package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/catalog/filter"
	"github.com/cocoatrail/festival-api/internal/catalog/usecase/query"
	"github.com/cocoatrail/festival-api/internal/device"
	favquery "github.com/cocoatrail/festival-api/internal/favourites/usecase/query"
	"github.com/cocoatrail/festival-api/internal/geo"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	listFlavoursHandler  *query.ListFlavoursHandler
	listLocationsHandler *query.ListLocationsHandler
	getFlavourHandler    *query.GetFlavourHandler
	getLocationHandler   *query.GetLocationHandler
	statsHandler         *query.GetStatsHandler
	markersHandler       *query.GetMarkersHandler

	favouriteState *favquery.GetStateHandler
	defaultOrigin  geo.Coordinate

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
}

// NewCatalogHandler creates a catalog handler with manual dependency wiring.
func NewCatalogHandler(repo domain.CatalogRepository, favouriteState *favquery.GetStateHandler, defaultOrigin geo.Coordinate) *CatalogHandler {
	return NewCatalogHandlerWithDI(
		query.NewListFlavoursHandler(repo),
		query.NewListLocationsHandler(repo),
		query.NewGetFlavourHandler(repo),
		query.NewGetLocationHandler(repo),
		query.NewGetStatsHandler(repo),
		query.NewGetMarkersHandler(repo),
		favouriteState,
		defaultOrigin,
		repo,
	)
}

// NewCatalogHandlerWithDI creates a catalog handler from its query handlers.
// Used by Wire.
func NewCatalogHandlerWithDI(
	listFlavoursHandler *query.ListFlavoursHandler,
	listLocationsHandler *query.ListLocationsHandler,
	getFlavourHandler *query.GetFlavourHandler,
	getLocationHandler *query.GetLocationHandler,
	statsHandler *query.GetStatsHandler,
	markersHandler *query.GetMarkersHandler,
	favouriteState *favquery.GetStateHandler,
	defaultOrigin geo.Coordinate,
	repo domain.CatalogRepository,
) *CatalogHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "festival_api_requests_total",
			Help: "Total number of catalog requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "festival_api_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	requestSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "festival_api_request_duration_summary",
			Help: "Summary of catalog request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	totalFlavours := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "festival_api_catalog_flavours",
		Help: "Number of flavours in the loaded catalog",
	})
	totalLocations := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "festival_api_catalog_locations",
		Help: "Number of locations in the loaded catalog",
	})

	prometheus.MustRegister(requestCounter, requestLatency, requestSummary, totalFlavours, totalLocations)

	totalFlavours.Set(float64(len(repo.Flavours())))
	totalLocations.Set(float64(len(repo.Locations())))

	return &CatalogHandler{
		listFlavoursHandler:  listFlavoursHandler,
		listLocationsHandler: listLocationsHandler,
		getFlavourHandler:    getFlavourHandler,
		getLocationHandler:   getLocationHandler,
		statsHandler:         statsHandler,
		markersHandler:       markersHandler,
		favouriteState:       favouriteState,
		defaultOrigin:        defaultOrigin,
		requestCounter:       requestCounter,
		requestLatency:       requestLatency,
		requestSummary:       requestSummary,
	}
}

// Response is the common JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RegisterRoutes mounts the catalog endpoints. All routes accept an optional
// device token so favourites facets and marker annotations work when one is
// present.
func (h *CatalogHandler) RegisterRoutes(app fiber.Router, tokens *device.TokenManager) {
	optional := device.OptionalDevice(tokens)

	app.Get("/api/flavours", optional, h.metrics("/api/flavours", h.ListFlavours))
	app.Get("/api/flavours/:id", optional, h.metrics("/api/flavours/:id", h.GetFlavour))
	app.Get("/api/locations", optional, h.metrics("/api/locations", h.ListLocations))
	app.Get("/api/locations/:id", h.metrics("/api/locations/:id", h.GetLocation))
	app.Get("/api/map/markers", optional, h.metrics("/api/map/markers", h.GetMarkers))
	app.Get("/api/catalog/stats", h.metrics("/api/catalog/stats", h.GetStats))
}

// metrics wraps a handler with the prometheus request instruments.
func (h *CatalogHandler) metrics(endpoint string, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := next(c)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		h.requestCounter.WithLabelValues(c.Method(), endpoint, status).Inc()
		h.requestLatency.WithLabelValues(c.Method(), endpoint).Observe(duration)
		h.requestSummary.WithLabelValues(c.Method(), endpoint).Observe(duration)

		return err
	}
}

// ListFlavours handles GET /api/flavours
func (h *CatalogHandler) ListFlavours(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	snapshot := h.snapshot(c)

	flavours := h.listFlavoursHandler.Handle(query.ListFlavoursQuery{
		Criteria:   criteria,
		Favourites: snapshot,
		Now:        time.Now(),
	})

	return c.JSON(Response{
		Success: true,
		Data: fiber.Map{
			"flavours": flavours,
			"total":    len(flavours),
		},
	})
}

// GetFlavour handles GET /api/flavours/:id
func (h *CatalogHandler) GetFlavour(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Error:   "Invalid flavour ID",
		})
	}

	detail, err := h.getFlavourHandler.Handle(query.GetFlavourQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Response{
				Success: false,
				Error:   "Flavour not found",
			})
		}
		logger.Error(c.UserContext()).Err(err).Int("flavour_id", id).Msg("Failed to get flavour")
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Success: false,
			Error:   "Failed to get flavour",
		})
	}

	return c.JSON(Response{Success: true, Data: detail})
}

// ListLocations handles GET /api/locations
func (h *CatalogHandler) ListLocations(c *fiber.Ctx) error {
	criteria := parseCriteria(c)
	criteria.SortBy = filter.SortByName
	if c.Query("sort") == string(filter.SortByDistance) {
		criteria.SortBy = filter.SortByDistance
	}

	rows := h.listLocationsHandler.Handle(query.ListLocationsQuery{
		Criteria:   criteria,
		Favourites: h.snapshot(c),
		Now:        time.Now(),
		Origin:     h.origin(c),
	})

	return c.JSON(Response{
		Success: true,
		Data: fiber.Map{
			"locations": rows,
			"total":     len(rows),
		},
	})
}

// GetLocation handles GET /api/locations/:id
func (h *CatalogHandler) GetLocation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Success: false,
			Error:   "Invalid location ID",
		})
	}

	detail, err := h.getLocationHandler.Handle(query.GetLocationQuery{ID: id})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Response{
				Success: false,
				Error:   "Location not found",
			})
		}
		logger.Error(c.UserContext()).Err(err).Int("location_id", id).Msg("Failed to get location")
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Success: false,
			Error:   "Failed to get location",
		})
	}

	return c.JSON(Response{Success: true, Data: detail})
}

// GetMarkers handles GET /api/map/markers
func (h *CatalogHandler) GetMarkers(c *fiber.Ctx) error {
	markers := h.markersHandler.Handle(query.GetMarkersQuery{
		Favourites: h.snapshot(c),
		Now:        time.Now(),
	})

	return c.JSON(Response{
		Success: true,
		Data: fiber.Map{
			"markers": markers,
			"total":   len(markers),
		},
	})
}

// GetStats handles GET /api/catalog/stats
func (h *CatalogHandler) GetStats(c *fiber.Ctx) error {
	stats := h.statsHandler.Handle(query.GetStatsQuery{})
	return c.JSON(Response{Success: true, Data: stats})
}

// snapshot returns the requesting device's favourite state, or the empty
// view for anonymous requests.
func (h *CatalogHandler) snapshot(c *fiber.Ctx) filter.FavouriteView {
	deviceID := device.FromContext(c)
	if deviceID == "" {
		return filter.NoFavourites
	}
	return h.favouriteState.Handle(c.UserContext(), favquery.GetStateQuery{DeviceID: deviceID})
}

// origin returns the caller-supplied coordinate, falling back to the
// configured default when either component is missing.
func (h *CatalogHandler) origin(c *fiber.Ctx) geo.Coordinate {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		return h.defaultOrigin
	}

	latF, errLat := strconv.ParseFloat(lat, 64)
	lonF, errLon := strconv.ParseFloat(lon, 64)
	if errLat != nil || errLon != nil {
		return h.defaultOrigin
	}

	return geo.Coordinate{Latitude: latF, Longitude: lonF}
}

func parseCriteria(c *fiber.Ctx) filter.Criteria {
	return filter.Criteria{
		Query:           c.Query("q"),
		FavouritesOnly:  c.QueryBool("favourites"),
		HideTasted:      c.QueryBool("hide_tasted"),
		CurrentOnly:     c.QueryBool("current"),
		OpenNowOnly:     c.QueryBool("open"),
		VeganOnly:       c.QueryBool("vegan"),
		DairyFreeOnly:   c.QueryBool("dairy_free"),
		GlutenFreeOnly:  c.QueryBool("gluten_free"),
		NutFreeOnly:     c.QueryBool("nut_free"),
		AlcoholFreeOnly: c.QueryBool("alcohol_free"),
	}
}
