package timeblock

import (
	"time"

	"meteorenard.app/internal/core/clothing"
	"meteorenard.app/internal/core/weather"
)

// Period names one of the three guidance segments of a day
type Period string

const (
	Morning   Period = "MORNING"
	Afternoon Period = "AFTERNOON"
	Evening   Period = "EVENING"
)

// Config is a fixed segment [StartHour, EndHour) of the day
type Config struct {
	Period    Period `json:"period"`
	Label     string `json:"label"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
}

// Contains reports whether hour falls within the segment
func (c Config) Contains(hour int) bool {
	return hour >= c.StartHour && hour < c.EndHour
}

// Block is a segment resolved against a forecast, with its clothing guidance.
// Source names the fallback strategy that produced the estimate.
type Block struct {
	Config
	Temperature              float64           `json:"temperature"`
	Condition                weather.Condition `json:"condition"`
	PrecipitationProbability *float64          `json:"precipitationProbability,omitempty"`
	ClothingItems            []clothing.Item   `json:"clothingItems"`
	IsNextDay                bool              `json:"isNextDay"`
	Source                   string            `json:"source"`
}

// BlockCount is the number of blocks GetBlocks returns
const BlockCount = 3

// 22h-8h is not covered by any segment.
var configs = [BlockCount]Config{
	{Period: Morning, Label: "8h-12h", StartHour: 8, EndHour: 12},
	{Period: Afternoon, Label: "12h-17h", StartHour: 12, EndHour: 17},
	{Period: Evening, Label: "18h-22h", StartHour: 18, EndHour: 22},
}

// Configs returns the fixed segment table in day order
func Configs() []Config {
	out := make([]Config, len(configs))
	copy(out, configs[:])
	return out
}

// CurrentIndex returns the index of the segment containing hour, or 0 when
// hour is outside every segment (the next morning).
func CurrentIndex(hour int) int {
	i, _ := locate(hour)
	return i
}

func locate(hour int) (int, bool) {
	for i, c := range configs {
		if c.Contains(hour) {
			return i, true
		}
	}
	return 0, false
}

// Slot is a segment scheduled relative to now
type Slot struct {
	Config    Config
	IsNextDay bool
}

// NextConfigs returns count consecutive segments starting at CurrentIndex(hour),
// wrapping into the next day. Once the last segment has ended (22h-23h) the
// sequence starts from tomorrow morning; any other hour outside a segment
// (0h-7h, 17h) starts from this morning.
func NextConfigs(count, hour int) []Slot {
	current, inside := locate(hour)
	if !inside && hour >= configs[len(configs)-1].EndHour {
		current += len(configs)
	}
	slots := make([]Slot, 0, count)
	for i := 0; i < count; i++ {
		pos := current + i
		slots = append(slots, Slot{
			Config:    configs[pos%len(configs)],
			IsNextDay: pos >= len(configs),
		})
	}
	return slots
}

// GetBlocks resolves the next three segments after nowHour against data.
// It never fails: missing data degrades through the fallback chain down to
// DefaultTemperature and the default condition. data may be nil.
func GetBlocks(data *weather.WeatherData, nowHour int, childMode bool) []Block {
	slots := NextConfigs(BlockCount, nowHour)
	blocks := make([]Block, 0, len(slots))
	for _, slot := range slots {
		s, source := resolve(data, slot)
		blocks = append(blocks, Block{
			Config:                   slot.Config,
			Temperature:              s.temperature,
			Condition:                s.condition,
			PrecipitationProbability: s.precipitationProbability,
			ClothingItems:            clothing.Recommend(s.temperature, childMode),
			IsNextDay:                slot.IsNextDay,
			Source:                   source,
		})
	}
	return blocks
}

// GetBlocksNow is GetBlocks at the current hour of the forecast's zone
func GetBlocksNow(data *weather.WeatherData, childMode bool) []Block {
	return GetBlocks(data, data.LocalHour(time.Now()), childMode)
}
