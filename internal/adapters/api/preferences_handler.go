package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"meteorenard.app/internal/adapters/infrastructure"
	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
)

type PreferencesRequest struct {
	ChildMode *bool `json:"childMode" binding:"required"`
}

type PreferencesResponse struct {
	ChildMode              bool              `json:"childMode"`
	HasRequestedPermission bool              `json:"hasRequestedPermission"`
	CurrentLocation        location.Location `json:"currentLocation"`
	Provider               string            `json:"provider"`
}

type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

func (s *HTTPServerAdapter) getPreferences(c *gin.Context) {
	ctx := c.Request.Context()
	prefs := s.preferences.Preferences(ctx)
	c.JSON(http.StatusOK, PreferencesResponse{
		ChildMode:              prefs.ChildMode,
		HasRequestedPermission: prefs.HasRequestedPermission,
		CurrentLocation:        s.preferences.CurrentLocation(ctx),
		Provider:               s.dashboard.ProviderID(),
	})
}

// updatePreferences handles PUT /api/preferences requests
func (s *HTTPServerAdapter) updatePreferences(c *gin.Context) {
	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, bindingError(err))
		return
	}

	if err := s.preferences.SetChildMode(c.Request.Context(), *req.ChildMode); err != nil {
		s.handleError(c, err)
		return
	}
	s.getPreferences(c)
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.health.CheckAll(c.Request.Context())
	status := infrastructure.Overall(results)

	code := http.StatusOK
	if status == infrastructure.StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{Status: status, Components: results})
}
