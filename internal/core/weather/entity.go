package weather

import (
	"fmt"
	"strings"
	"time"
)

// Condition is the canonical weather vocabulary every provider maps into
type Condition string

const (
	Clear        Condition = "clear"
	PartlyCloudy Condition = "partly-cloudy"
	Cloudy       Condition = "cloudy"
	Rain         Condition = "rain"
	HeavyRain    Condition = "heavy-rain"
	Thunderstorm Condition = "thunderstorm"
	Snow         Condition = "snow"
	Fog          Condition = "fog"
)

// DefaultCondition is used for any input a mapper does not recognize
const DefaultCondition = Cloudy

// AllConditions returns the eight canonical conditions in declaration order
func AllConditions() []Condition {
	return []Condition{Clear, PartlyCloudy, Cloudy, Rain, HeavyRain, Thunderstorm, Snow, Fog}
}

// IsValid reports whether c is one of the canonical conditions
func (c Condition) IsValid() bool {
	for _, known := range AllConditions() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCondition parses a canonical condition name
func ParseCondition(s string) (Condition, error) {
	c := Condition(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("unknown weather condition %q", s)
	}
	return c, nil
}

// CurrentWeather is the observation at fetch time. Temp is rounded to the nearest degree.
type CurrentWeather struct {
	Location    string    `json:"location"`
	Temp        int       `json:"temp"`
	Condition   Condition `json:"condition"`
	Description string    `json:"description"`
}

// HourlyWeather is one forecast hour. Time is a 12-hour label such as "8AM";
// two entries may share a label when the series spans more than a day.
type HourlyWeather struct {
	Time                     string    `json:"time"`
	Temp                     int       `json:"temp"`
	Condition                Condition `json:"condition"`
	FeelsLike                *int      `json:"feelsLike,omitempty"`
	Humidity                 *float64  `json:"humidity,omitempty"`
	WindSpeed                *int      `json:"windSpeed,omitempty"`
	PrecipitationProbability *float64  `json:"precipitationProbability,omitempty"`
	Precipitation            *float64  `json:"precipitation,omitempty"`
}

// DailyWeather is one forecast day after today
type DailyWeather struct {
	Date                     string    `json:"date"`
	DayLabel                 string    `json:"dayLabel"`
	TempLow                  int       `json:"tempLow"`
	TempHigh                 int       `json:"tempHigh"`
	Condition                Condition `json:"condition"`
	PrecipitationProbability *float64  `json:"precipitationProbability,omitempty"`
}

// MaxHourly and MaxDaily bound the series a provider returns
const (
	MaxHourly = 24
	MaxDaily  = 10
)

// WeatherData is the normalized result of one provider fetch. A new value is
// produced per fetch; callers replace, never patch, what they hold.
type WeatherData struct {
	Current CurrentWeather  `json:"current"`
	Hourly  []HourlyWeather `json:"hourly"`
	Daily   []DailyWeather  `json:"daily"`

	// Zone is the zone the hourly labels are written in; nil means local time
	Zone *time.Location `json:"-"`
}

// LocalHour returns the hour of t on the clock the hourly labels use
func (d *WeatherData) LocalHour(t time.Time) int {
	if d == nil || d.Zone == nil {
		return t.Hour()
	}
	return t.In(d.Zone).Hour()
}

// Validate checks provider output against the canonical schema
func (d *WeatherData) Validate() error {
	if d == nil {
		return fmt.Errorf("weather data is nil")
	}
	if !d.Current.Condition.IsValid() {
		return fmt.Errorf("current condition %q is not canonical", d.Current.Condition)
	}
	if len(d.Hourly) > MaxHourly {
		return fmt.Errorf("hourly series has %d entries, max %d", len(d.Hourly), MaxHourly)
	}
	if len(d.Daily) > MaxDaily {
		return fmt.Errorf("daily series has %d entries, max %d", len(d.Daily), MaxDaily)
	}
	for i, h := range d.Hourly {
		if !h.Condition.IsValid() {
			return fmt.Errorf("hourly[%d] condition %q is not canonical", i, h.Condition)
		}
		if _, ok := ParseHourLabel(h.Time); !ok {
			return fmt.Errorf("hourly[%d] time %q is not a 12-hour label", i, h.Time)
		}
	}
	for i, day := range d.Daily {
		if !day.Condition.IsValid() {
			return fmt.Errorf("daily[%d] condition %q is not canonical", i, day.Condition)
		}
	}
	return nil
}

// IsEmpty reports whether there is nothing to aggregate
func (d *WeatherData) IsEmpty() bool {
	return d == nil || (len(d.Hourly) == 0 && len(d.Daily) == 0 && d.Current.Condition == "")
}
