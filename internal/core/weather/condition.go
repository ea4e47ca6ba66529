package weather

import "strings"

type codeRange struct {
	min, max  int
	condition Condition
}

// wmoRanges is scanned in order; first match wins
var wmoRanges = []codeRange{
	{0, 1, Clear},
	{2, 2, PartlyCloudy},
	{3, 3, Cloudy},
	{45, 45, Fog},
	{48, 48, Fog},
	{51, 57, Rain},
	{61, 67, Rain},
	{71, 77, Snow},
	{80, 84, HeavyRain},
	{85, 86, Snow},
	{95, 99, Thunderstorm},
}

// MapWMOCode maps a WMO weather interpretation code. Unknown codes map to Cloudy.
func MapWMOCode(code int) Condition {
	for _, r := range wmoRanges {
		if code >= r.min && code <= r.max {
			return r.condition
		}
	}
	return DefaultCondition
}

var wmoDescriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mostly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Freezing fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Heavy drizzle",
	61: "Light rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Light snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Light showers",
	81: "Moderate showers",
	82: "Heavy showers",
	85: "Light snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with light hail",
	99: "Thunderstorm with heavy hail",
}

// DescribeWMOCode returns an English description of a WMO code
func DescribeWMOCode(code int) string {
	if d, ok := wmoDescriptions[code]; ok {
		return d
	}
	return "Variable conditions"
}

type keywordSet struct {
	condition Condition
	keywords  []string
}

// conditionKeywords is scanned in order. "partly cloudy" contains "cloudy",
// so partly-cloudy must be checked before cloudy.
var conditionKeywords = []keywordSet{
	{Clear, []string{"clear", "sunny", "dégagé", "ensoleillé"}},
	{PartlyCloudy, []string{"partly cloudy", "partly sunny", "mix of sun and cloud", "mainly", "partiellement nuageux", "plutôt"}},
	{Cloudy, []string{"cloudy", "overcast", "nuageux", "couvert"}},
	{Thunderstorm, []string{"thunderstorm", "thunder", "orage"}},
	{HeavyRain, []string{"heavy rain", "forte pluie", "showers"}},
	{Rain, []string{"rain", "pluie"}},
	{Snow, []string{"snow", "neige"}},
	{Fog, []string{"fog", "mist", "brouillard", "brume"}},
}

// MapConditionText maps free-form English or French condition text by keyword.
// Matching is case-insensitive; unmatched text maps to Cloudy.
func MapConditionText(text string) Condition {
	lower := strings.ToLower(text)
	for _, set := range conditionKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.condition
			}
		}
	}
	return DefaultCondition
}
