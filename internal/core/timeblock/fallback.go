package timeblock

import "meteorenard.app/internal/core/weather"

const (
	// DefaultTemperature is used when no forecast source has anything for a block
	DefaultTemperature = 15.0

	// EveningInterpolation positions the evening estimate between the daily
	// low and high. Heuristic, not physically derived.
	EveningInterpolation = 0.3
)

type sample struct {
	temperature              float64
	condition                weather.Condition
	precipitationProbability *float64
}

type strategy struct {
	name    string
	resolve func(data *weather.WeatherData, slot Slot) (sample, bool)
}

// fallbackChain is evaluated in order; the first strategy that yields a sample wins
var fallbackChain = []strategy{
	{"range-average", rangeAverage},
	{"exact-start-hour", exactStartHour},
	{"current-conditions", currentConditions},
	{"daily-entry", dailyEntry},
	{"defaults", defaults},
}

// StrategyNames lists the fallback chain in evaluation order
func StrategyNames() []string {
	names := make([]string, len(fallbackChain))
	for i, s := range fallbackChain {
		names[i] = s.name
	}
	return names
}

// resolve also reports which strategy produced the sample
func resolve(data *weather.WeatherData, slot Slot) (sample, string) {
	for _, st := range fallbackChain {
		if s, ok := st.resolve(data, slot); ok {
			return s, st.name
		}
	}
	return defaultSample(), "defaults"
}

// rangeAverage averages every hourly sample whose label falls in the block.
// Condition comes from the first sample; precipitation is averaged over the
// samples that report it.
func rangeAverage(data *weather.WeatherData, slot Slot) (sample, bool) {
	if data == nil {
		return sample{}, false
	}

	var (
		count, precipCount int
		tempSum, precipSum float64
		first              *weather.HourlyWeather
	)
	for i := range data.Hourly {
		h := &data.Hourly[i]
		hour, ok := weather.ParseHourLabel(h.Time)
		if !ok || !slot.Config.Contains(hour) {
			continue
		}
		if first == nil {
			first = h
		}
		count++
		tempSum += float64(h.Temp)
		if h.PrecipitationProbability != nil {
			precipCount++
			precipSum += *h.PrecipitationProbability
		}
	}
	if count == 0 {
		return sample{}, false
	}

	s := sample{
		temperature: tempSum / float64(count),
		condition:   first.Condition,
	}
	if precipCount > 0 {
		avg := precipSum / float64(precipCount)
		s.precipitationProbability = &avg
	}
	return s, true
}

func exactStartHour(data *weather.WeatherData, slot Slot) (sample, bool) {
	if data == nil {
		return sample{}, false
	}
	for _, h := range data.Hourly {
		if hour, ok := weather.ParseHourLabel(h.Time); ok && hour == slot.Config.StartHour {
			return sample{
				temperature:              float64(h.Temp),
				condition:                h.Condition,
				precipitationProbability: h.PrecipitationProbability,
			}, true
		}
	}
	return sample{}, false
}

// currentConditions only applies to blocks later today
func currentConditions(data *weather.WeatherData, slot Slot) (sample, bool) {
	if data == nil || slot.IsNextDay || data.Current.Condition == "" {
		return sample{}, false
	}
	return sample{
		temperature: float64(data.Current.Temp),
		condition:   data.Current.Condition,
	}, true
}

// dailyEntry derives a block estimate from the day's low and high. The daily
// series starts tomorrow, so only next-day blocks have an entry.
func dailyEntry(data *weather.WeatherData, slot Slot) (sample, bool) {
	day, ok := dailyFor(data, slot)
	if !ok {
		return sample{}, false
	}

	low, high := float64(day.TempLow), float64(day.TempHigh)
	var temp float64
	switch slot.Config.Period {
	case Afternoon:
		temp = high
	case Evening:
		temp = low + EveningInterpolation*(high-low)
	default:
		temp = (low + high) / 2
	}
	return sample{
		temperature:              temp,
		condition:                day.Condition,
		precipitationProbability: day.PrecipitationProbability,
	}, true
}

func dailyFor(data *weather.WeatherData, slot Slot) (weather.DailyWeather, bool) {
	if data == nil || !slot.IsNextDay || len(data.Daily) == 0 {
		return weather.DailyWeather{}, false
	}
	return data.Daily[0], true
}

func defaults(*weather.WeatherData, Slot) (sample, bool) {
	return defaultSample(), true
}

func defaultSample() sample {
	return sample{temperature: DefaultTemperature, condition: weather.DefaultCondition}
}
