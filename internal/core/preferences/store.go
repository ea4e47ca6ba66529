package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"meteorenard.app/internal/core/location"
	"meteorenard.app/internal/ports"
	"meteorenard.app/pkg/errors"
)

// Storage keys. They match the keys the browser dashboard kept in localStorage
// so exported data stays interchangeable.
const (
	KeyCurrentLocation     = "meteorenard_current_location"
	KeySavedLocations      = "meteorenard_saved_locations"
	KeyPermissionRequested = "meteorenard_has_requested_permission"
	KeyChildMode           = "meteorenard_preschool_mode"
)

// Preferences is the user-facing settings snapshot
type Preferences struct {
	ChildMode              bool `json:"childMode"`
	HasRequestedPermission bool `json:"hasRequestedPermission"`
}

// Store keeps the current location, saved locations and user flags in a
// key-value store. Absent or malformed entries read as "not set"; read
// failures are logged and never returned.
type Store struct {
	kv              ports.KeyValueStore
	logger          ports.Logger
	defaultLocation location.Location

	// serializes read-modify-write of the saved list
	mu sync.Mutex
}

type StoreDependencies struct {
	KV              ports.KeyValueStore
	Logger          ports.Logger
	DefaultLocation location.Location
}

func NewStore(deps StoreDependencies) (*Store, error) {
	if deps.KV == nil {
		return nil, errors.NewValidationError("key-value store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if err := deps.DefaultLocation.Validate(); err != nil {
		return nil, fmt.Errorf("default location: %w", err)
	}

	return &Store{
		kv:              deps.KV,
		logger:          deps.Logger,
		defaultLocation: deps.DefaultLocation,
	}, nil
}

// CurrentLocation returns the stored current location, or the configured
// default when none is stored.
func (s *Store) CurrentLocation(ctx context.Context) location.Location {
	if loc, ok := s.StoredCurrentLocation(ctx); ok {
		return loc
	}
	return s.defaultLocation
}

// StoredCurrentLocation returns the stored current location, if any
func (s *Store) StoredCurrentLocation(ctx context.Context) (location.Location, bool) {
	var loc location.Location
	if !s.readJSON(ctx, KeyCurrentLocation, &loc) {
		return location.Location{}, false
	}
	if err := loc.Validate(); err != nil {
		s.logger.Warn("Ignoring invalid stored location",
			ports.F("key", KeyCurrentLocation),
			ports.F("error", err))
		return location.Location{}, false
	}
	return loc, true
}

// SetCurrentLocation replaces the current location
func (s *Store) SetCurrentLocation(ctx context.Context, loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	return s.writeJSON(ctx, KeyCurrentLocation, loc)
}

// SavedLocations returns the saved list, empty when nothing is stored
func (s *Store) SavedLocations(ctx context.Context) []location.Location {
	var locs []location.Location
	if !s.readJSON(ctx, KeySavedLocations, &locs) || locs == nil {
		return []location.Location{}
	}
	return locs
}

// AddLocation appends loc unless an entry with the same name or nearby
// coordinates already exists. It returns the resulting list.
func (s *Store) AddLocation(ctx context.Context, loc location.Location) ([]location.Location, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.SavedLocations(ctx)
	for _, existing := range saved {
		if existing.SameAs(loc) {
			s.logger.Debug("Location already saved",
				ports.F("name", loc.Name),
				ports.F("existing", existing.Name))
			return saved, nil
		}
	}

	saved = append(saved, loc)
	if err := s.writeJSON(ctx, KeySavedLocations, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// RemoveLocation drops every saved entry named name
func (s *Store) RemoveLocation(ctx context.Context, name string) ([]location.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := s.SavedLocations(ctx)
	filtered := make([]location.Location, 0, len(saved))
	for _, loc := range saved {
		if loc.Name != name {
			filtered = append(filtered, loc)
		}
	}

	if err := s.writeJSON(ctx, KeySavedLocations, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

func (s *Store) HasRequestedPermission(ctx context.Context) bool {
	return s.readFlag(ctx, KeyPermissionRequested)
}

func (s *Store) SetPermissionRequested(ctx context.Context) error {
	return s.writeFlag(ctx, KeyPermissionRequested, true)
}

// ChildMode reports whether the preschool recommendation bias is on
func (s *Store) ChildMode(ctx context.Context) bool {
	return s.readFlag(ctx, KeyChildMode)
}

func (s *Store) SetChildMode(ctx context.Context, enabled bool) error {
	return s.writeFlag(ctx, KeyChildMode, enabled)
}

// Preferences returns all user flags at once
func (s *Store) Preferences(ctx context.Context) Preferences {
	return Preferences{
		ChildMode:              s.ChildMode(ctx),
		HasRequestedPermission: s.HasRequestedPermission(ctx),
	}
}

// ClearAll removes every location entry. Child mode is a preference, not
// location data, and is kept.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{KeyCurrentLocation, KeySavedLocations, KeyPermissionRequested} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	s.logger.Info("Cleared stored location data")
	return nil
}

func (s *Store) readJSON(ctx context.Context, key string, target interface{}) bool {
	raw, ok := s.read(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		s.logger.Warn("Discarding malformed stored value",
			ports.F("key", key),
			ports.F("error", err))
		return false
	}
	return true
}

func (s *Store) read(ctx context.Context, key string) ([]byte, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			s.logger.Error("Failed to read stored value",
				ports.F("key", key),
				ports.F("error", err))
		}
		return nil, false
	}
	return raw, true
}

func (s *Store) writeJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("encode %s", key), err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

// flags are stored as the strings "true" and "false"; anything else is unset
func (s *Store) readFlag(ctx context.Context, key string) bool {
	raw, ok := s.read(ctx, key)
	if !ok {
		return false
	}
	return string(raw) == "true"
}

func (s *Store) writeFlag(ctx context.Context, key string, value bool) error {
	if err := s.kv.Set(ctx, key, []byte(strconv.FormatBool(value))); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
