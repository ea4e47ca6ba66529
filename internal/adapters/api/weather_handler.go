package api

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"meteorenard.app/internal/core/clothing"
	"meteorenard.app/internal/core/dashboard"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/core/timeblock"
	"meteorenard.app/internal/core/weather"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// WeatherQuery selects a provider and a location. Without coordinates the
// stored current location is used.
type WeatherQuery struct {
	Provider string   `form:"provider" binding:"omitempty,provider"`
	Name     string   `form:"name"`
	Lat      *float64 `form:"lat" binding:"omitempty,latitude"`
	Lon      *float64 `form:"lon" binding:"omitempty,longitude"`
}

type HourQuery struct {
	Hour *int `form:"hour" binding:"omitempty,min=0,max=23"`
}

type TimeBlocksQuery struct {
	Hour  *int  `form:"hour" binding:"omitempty,min=0,max=23"`
	Child *bool `form:"child"`
}

type ClothingQuery struct {
	Temp  *float64 `form:"temp" binding:"required,finite"`
	Child *bool    `form:"child"`
}

type ProviderRequest struct {
	Provider string `json:"provider" binding:"required,provider"`
}

type ProviderResponse struct {
	Provider  string   `json:"provider"`
	Available []string `json:"available"`
}

type WeatherResponse struct {
	Provider string               `json:"provider"`
	Location location.Location    `json:"location"`
	Weather  *weather.WeatherData `json:"weather"`
}

type TimeBlocksResponse struct {
	ChildMode bool              `json:"childMode"`
	Blocks    []timeblock.Block `json:"blocks"`
}

type ClothingItemResponse struct {
	clothing.Item
	Icon string `json:"icon,omitempty"`
}

type ClothingResponse struct {
	Temperature float64                `json:"temperature"`
	ChildMode   bool                   `json:"childMode"`
	Description string                 `json:"description"`
	Items       []ClothingItemResponse `json:"items"`
}

// bindingError turns a gin binding failure into a validation error naming
// the offending fields
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.NewValidationError("Invalid request format")
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return errors.NewValidationError("Invalid request: " + strings.Join(parts, ", "))
}

// getWeather handles GET /api/weather requests
func (s *HTTPServerAdapter) getWeather(c *gin.Context) {
	var query WeatherQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	ctx := c.Request.Context()
	var loc location.Location
	switch {
	case query.Lat == nil && query.Lon == nil:
		loc = s.preferences.CurrentLocation(ctx)
	case query.Lat == nil || query.Lon == nil:
		s.handleError(c, errors.NewValidationError("lat and lon must be given together"))
		return
	default:
		loc = location.Location{Name: strings.TrimSpace(query.Name), Latitude: *query.Lat, Longitude: *query.Lon}
		if loc.Name == "" {
			loc.Name = location.DefaultPositionName
		}
	}

	providerID := query.Provider
	if providerID == "" {
		providerID = s.dashboard.ProviderID()
	}

	data, err := s.dashboard.Fetch(ctx, providerID, loc)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{Provider: providerID, Location: loc, Weather: data})
}

// getDashboard handles GET /api/dashboard requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	var query HourQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	var view dashboard.View
	if query.Hour != nil {
		view = s.dashboard.View(c.Request.Context(), *query.Hour)
	} else {
		view = s.dashboard.ViewNow(c.Request.Context())
	}
	c.JSON(http.StatusOK, view)
}

// refreshDashboard handles POST /api/dashboard/refresh requests
func (s *HTTPServerAdapter) refreshDashboard(c *gin.Context) {
	snap, err := s.dashboard.Refresh(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *HTTPServerAdapter) getProvider(c *gin.Context) {
	c.JSON(http.StatusOK, ProviderResponse{
		Provider:  s.dashboard.ProviderID(),
		Available: s.providers.AvailableProviders(),
	})
}

// setProvider handles PUT /api/provider requests
func (s *HTTPServerAdapter) setProvider(c *gin.Context) {
	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	if err := s.dashboard.SetProvider(req.Provider); err != nil {
		s.handleError(c, err)
		return
	}

	s.getProvider(c)
}

// getTimeBlocks handles GET /api/timeblocks requests. Child mode defaults
// to the stored preference.
func (s *HTTPServerAdapter) getTimeBlocks(c *gin.Context) {
	var query TimeBlocksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	ctx := c.Request.Context()
	childMode := s.preferences.ChildMode(ctx)
	if query.Child != nil {
		childMode = *query.Child
	}

	var data *weather.WeatherData
	if snap, ok := s.dashboard.Current(); ok {
		data = snap.Data
	}

	var blocks []timeblock.Block
	if query.Hour != nil {
		blocks = timeblock.GetBlocks(data, *query.Hour, childMode)
	} else {
		blocks = timeblock.GetBlocksNow(data, childMode)
	}

	c.JSON(http.StatusOK, TimeBlocksResponse{ChildMode: childMode, Blocks: blocks})
}

// getClothing handles GET /api/clothing requests
func (s *HTTPServerAdapter) getClothing(c *gin.Context) {
	var query ClothingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	childMode := s.preferences.ChildMode(c.Request.Context())
	if query.Child != nil {
		childMode = *query.Child
	}

	items := clothing.Recommend(*query.Temp, childMode)
	response := ClothingResponse{
		Temperature: *query.Temp,
		ChildMode:   childMode,
		Description: clothing.Describe(*query.Temp),
		Items:       make([]ClothingItemResponse, 0, len(items)),
	}
	for _, item := range items {
		icon, _ := clothing.IconFor(item.ID)
		response.Items = append(response.Items, ClothingItemResponse{Item: item, Icon: icon})
	}

	s.logger.Debug("Clothing recommended",
		ports.F("temperature", *query.Temp),
		ports.F("child_mode", childMode),
		ports.F("items", len(items)))
	c.JSON(http.StatusOK, response)
}
