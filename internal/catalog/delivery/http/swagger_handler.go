package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs mounts the Swagger UI on the admin router.
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// ListFlavours godoc
// @Summary List flavours
// @Description List flavours through the filter pipeline
// @Tags Catalog
// @Produce json
// @Param q query string false "Free-text search over flavour and vendor names"
// @Param favourites query bool false "Only favourited flavours (requires device token)"
// @Param hide_tasted query bool false "Hide tasted flavours (requires device token)"
// @Param current query bool false "Only flavours inside their availability window"
// @Param open query bool false "Only flavours whose vendor has an open store"
// @Param vegan query bool false "Only vegan-tagged flavours"
// @Param dairy_free query bool false "Only dairy-free-tagged flavours"
// @Param gluten_free query bool false "Only gluten-free-tagged flavours"
// @Param nut_free query bool false "Exclude nut-tagged flavours"
// @Param alcohol_free query bool false "Exclude alcoholic-tagged flavours"
// @Success 200 {object} object{success=bool,data=object{flavours=array,total=int}}
// @Router /api/flavours [get]
func (h *CatalogHandler) ListFlavoursDoc() {}

// GetFlavour godoc
// @Summary Get flavour by ID
// @Description Get one flavour with its vendor context
// @Tags Catalog
// @Produce json
// @Param id path int true "Flavour ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/flavours/{id} [get]
func (h *CatalogHandler) GetFlavourDoc() {}

// ListLocations godoc
// @Summary List locations
// @Description List vendor locations with filtering, sorting and distances
// @Tags Catalog
// @Produce json
// @Param q query string false "Free-text search over vendor names and store addresses"
// @Param open query bool false "Only locations with an open store"
// @Param favourites query bool false "Only locations serving a favourited flavour"
// @Param sort query string false "Sort key: name or distance"
// @Param lat query number false "Origin latitude for distance sort/display"
// @Param lon query number false "Origin longitude for distance sort/display"
// @Success 200 {object} object{success=bool,data=object{locations=array,total=int}}
// @Router /api/locations [get]
func (h *CatalogHandler) ListLocationsDoc() {}

// GetMarkers godoc
// @Summary Map markers
// @Description All stores flattened with open and favourite annotations
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{markers=array,total=int}}
// @Router /api/map/markers [get]
func (h *CatalogHandler) GetMarkersDoc() {}

// GetStats godoc
// @Summary Catalog statistics
// @Description Flavour, location and store counts plus a tag histogram
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/catalog/stats [get]
func (h *CatalogHandler) GetStatsDoc() {}
