package external

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"meteorenard.app/internal/core/location"
)

type cityCode struct {
	key  string
	code string
}

// Name keys are matched in table order against the folded location name
var mscCityCodes = []cityCode{
	{"montreal", "qc-147"},
	{"quebec", "qc-133"},
	{"laval", "qc-131"},
	{"gatineau", "qc-69"},
	{"longueuil", "qc-88"},
	{"sherbrooke", "qc-159"},
	{"trois-rivieres", "qc-184"},
	{"toronto", "on-143"},
	{"ottawa", "on-118"},
	{"vancouver", "bc-74"},
	{"calgary", "ab-52"},
	{"edmonton", "ab-50"},
}

type cityPoint struct {
	latitude  float64
	longitude float64
	code      string
}

var mscCityPoints = []cityPoint{
	{45.5017, -73.5673, "qc-147"},
	{46.8139, -71.2080, "qc-133"},
	{43.6532, -79.3832, "on-143"},
	{45.4215, -75.6972, "on-118"},
	{49.2827, -123.1207, "bc-74"},
	{51.0447, -114.0719, "ab-52"},
}

var mscCityZones = map[string]string{
	"qc": "America/Toronto",
	"on": "America/Toronto",
	"bc": "America/Vancouver",
	"ab": "America/Edmonton",
}

// foldName lower-cases s, strips accents and drops everything but letters and spaces
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, folded)
}

// resolveCityCode maps a location to an MSC city page code, by name first and
// then by the nearest supported city.
func resolveCityCode(loc location.Location) string {
	name := foldName(loc.Name)
	for _, c := range mscCityCodes {
		if strings.Contains(name, foldName(c.key)) {
			return c.code
		}
	}

	nearest := mscCityPoints[0]
	best := math.Inf(1)
	for _, c := range mscCityPoints {
		d := math.Hypot(c.latitude-loc.Latitude, c.longitude-loc.Longitude)
		if d < best {
			best = d
			nearest = c
		}
	}
	return nearest.code
}

// cityZone returns the IANA zone of a city code's province
func cityZone(code string) string {
	province, _, _ := strings.Cut(code, "-")
	if zone, ok := mscCityZones[province]; ok {
		return zone
	}
	return "America/Toronto"
}
