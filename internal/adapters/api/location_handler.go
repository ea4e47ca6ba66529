package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"meteorenard.app/internal/adapters/external"
	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// LocationRequest is a named coordinate sent by the client
type LocationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Latitude  *float64 `json:"latitude" binding:"required,latitude"`
	Longitude *float64 `json:"longitude" binding:"required,longitude"`
}

func (r LocationRequest) toLocation() location.Location {
	return location.Location{
		Name:      strings.TrimSpace(r.Name),
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
	}
}

type SearchQuery struct {
	Query string `form:"q"`
	Count int    `form:"count" binding:"omitempty,min=1,max=100"`
	Lang  string `form:"lang" binding:"omitempty,alpha,len=2"`
}

// GeolocateRequest carries the device position, or the error code the
// device reported instead
type GeolocateRequest struct {
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	Accuracy  float64  `json:"accuracy" binding:"omitempty,min=0"`
	Error     string   `json:"error"`
}

type LocationsResponse struct {
	Locations []location.Location `json:"locations"`
}

type SearchResponse struct {
	Results []location.SearchResult `json:"results"`
}

type CurrentLocationResponse struct {
	Location location.Location `json:"location"`
	View     *dashboard.View   `json:"dashboard,omitempty"`
}

func (s *HTTPServerAdapter) listLocations(c *gin.Context) {
	c.JSON(http.StatusOK, LocationsResponse{Locations: s.preferences.SavedLocations(c.Request.Context())})
}

// addLocation handles POST /api/locations requests. Duplicates by name or
// proximity are ignored.
func (s *HTTPServerAdapter) addLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	saved, err := s.preferences.AddLocation(c.Request.Context(), req.toLocation())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, LocationsResponse{Locations: saved})
}

func (s *HTTPServerAdapter) removeLocation(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		s.handleError(c, errors.NewValidationError("location name is required"))
		return
	}

	saved, err := s.preferences.RemoveLocation(c.Request.Context(), name)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, LocationsResponse{Locations: saved})
}

func (s *HTTPServerAdapter) getCurrentLocation(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentLocationResponse{Location: s.preferences.CurrentLocation(c.Request.Context())})
}

// setCurrentLocation handles PUT /api/locations/current requests
func (s *HTTPServerAdapter) setCurrentLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	s.selectLocation(c, req.toLocation())
}

// selectLocation stores loc and refreshes the dashboard for it. A failed
// refresh is reported in the returned view, not as an HTTP error.
func (s *HTTPServerAdapter) selectLocation(c *gin.Context, loc location.Location) {
	ctx := c.Request.Context()
	if err := s.preferences.SetCurrentLocation(ctx, loc); err != nil {
		s.handleError(c, err)
		return
	}

	if _, err := s.dashboard.Refresh(ctx); err != nil {
		s.logger.Warn("Refresh after location change failed",
			ports.F("location", loc.Name),
			ports.F("error", err))
	}

	view := s.dashboard.ViewNow(ctx)
	c.JSON(http.StatusOK, CurrentLocationResponse{Location: loc, View: &view})
}

func (s *HTTPServerAdapter) popularLocations(c *gin.Context) {
	c.JSON(http.StatusOK, LocationsResponse{Locations: location.PopularCities()})
}

// searchLocations handles GET /api/locations/search requests
func (s *HTTPServerAdapter) searchLocations(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	results, err := s.geocoder.SearchCities(c.Request.Context(), query.Query, query.Count, query.Lang)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if results == nil {
		results = []location.SearchResult{}
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results})
}

// geolocate handles POST /api/locations/geolocate requests. The permission
// flag is recorded whatever the outcome.
func (s *HTTPServerAdapter) geolocate(c *gin.Context) {
	var req GeolocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	var source ports.PositionSource
	if req.Error != "" {
		code, ok := location.ParsePositionErrorCode(req.Error)
		if !ok {
			s.handleError(c, errors.NewValidationError("unknown geolocation error code: "+req.Error))
			return
		}
		source = external.ReportedPositionError{Code: code}
	} else {
		if req.Latitude == nil || req.Longitude == nil {
			s.handleError(c, errors.NewValidationError("latitude and longitude are required"))
			return
		}
		source = external.ReportedPosition{Latitude: *req.Latitude, Longitude: *req.Longitude, Accuracy: req.Accuracy}
	}

	ctx := c.Request.Context()
	if err := s.preferences.SetPermissionRequested(ctx); err != nil {
		s.logger.Warn("Failed to record geolocation permission request", ports.F("error", err))
	}

	loc, err := s.locator.Locate(ctx, source)
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.selectLocation(c, loc)
}
