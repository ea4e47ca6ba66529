package clothing

import "math"

// Category groups items by the body part they cover
type Category string

const (
	Head          Category = "head"
	Neck          Category = "neck"
	Hands         Category = "hands"
	Outerwear     Category = "outerwear"
	Pants         Category = "pants"
	Footwear      Category = "footwear"
	SunProtection Category = "sun-protection"
)

// Item is a single piece of recommended clothing. ID is stable across releases.
type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// TemperatureRange is the half-open interval [Min, Max) in °C
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether Min <= t < Max
func (r TemperatureRange) Contains(t float64) bool {
	return t >= r.Min && t < r.Max
}

// Recommendation is the wardrobe for one temperature range
type Recommendation struct {
	Range TemperatureRange `json:"temperatureRange"`
	Items []Item           `json:"items"`
}

// catalog follows the Quebec school-board clothing thermometer. Ranges are
// ascending, contiguous and cover the whole real line.
var catalog = []Recommendation{
	{
		Range: TemperatureRange{Min: math.Inf(-1), Max: 0},
		Items: []Item{
			{ID: "winter-hat", Name: "Tuque", Category: Head},
			{ID: "neck-warmer", Name: "Cache-cou", Category: Neck},
			{ID: "mittens-gloves", Name: "Mitaines/gants", Category: Hands},
			{ID: "winter-coat", Name: "Manteau d'hiver", Category: Outerwear},
			{ID: "snow-pants", Name: "Pantalon de neige", Category: Pants},
			{ID: "winter-boots", Name: "Bottes d'hiver", Category: Footwear},
		},
	},
	{
		Range: TemperatureRange{Min: 0, Max: 8},
		Items: []Item{
			{ID: "thin-hat", Name: "Tuque mince", Category: Head},
			{ID: "thin-gloves", Name: "Gants minces", Category: Hands},
			{ID: "mid-season-coat", Name: "Manteau de mi-saison", Category: Outerwear},
			{ID: "mid-season-pants", Name: "Pantalon de mi-saison", Category: Pants},
			{ID: "rain-winter-boots", Name: "Bottes d'hiver/de pluie/bottillons", Category: Footwear},
		},
	},
	{
		Range: TemperatureRange{Min: 8, Max: 18},
		Items: []Item{
			{ID: "light-coat-vest", Name: "Veste ou manteau léger", Category: Outerwear},
			{ID: "casual-pants", Name: "Pantalon tout aller", Category: Pants},
			{ID: "outdoor-shoes", Name: "Chaussures d'extérieur", Category: Footwear},
		},
	},
	{
		Range: TemperatureRange{Min: 18, Max: 22},
		Items: []Item{
			{ID: "light-long-sleeve", Name: "Chandail léger à manches longues", Category: Outerwear},
			{ID: "light-pants", Name: "Pantalon léger", Category: Pants},
			{ID: "outdoor-shoes-2", Name: "Chaussures d'extérieur", Category: Footwear},
		},
	},
	{
		Range: TemperatureRange{Min: 22, Max: math.Inf(1)},
		Items: []Item{
			{ID: "cap-hat", Name: "Casquette/chapeau", Category: Head},
			{ID: "short-sleeve", Name: "Chandail à manches courtes", Category: Outerwear},
			{ID: "shorts-skirt", Name: "Bermuda/jupe", Category: Pants},
			{ID: "outdoor-shoes-3", Name: "Chaussures d'extérieur", Category: Footwear},
			{ID: "sunscreen", Name: "Écran solaire", Category: SunProtection},
		},
	},
}

// fallbackIndex is the mild range returned if no range matches, which only a NaN input can cause
const fallbackIndex = 2

var icons = map[string]string{
	"winter-hat":     "tuque.png",
	"neck-warmer":    "foulard.png",
	"mittens-gloves": "mitaines.png",
	"winter-coat":    "manteau-hiver.png",
	"snow-pants":     "pantalon-leger.png",
	"winter-boots":   "bottes-hiver.png",

	"thin-hat":          "tuque.png",
	"thin-gloves":       "mitaines.png",
	"mid-season-coat":   "manteau-chaud.png",
	"mid-season-pants":  "pantalon-leger.png",
	"rain-winter-boots": "bottes-pluie.png",

	"light-coat-vest": "manteau-leger.png",
	"casual-pants":    "pantalon-leger.png",
	"outdoor-shoes":   "bottes-pluie.png",

	"light-long-sleeve": "t-shirt-manches-longues.png",
	"light-pants":       "pantalon-leger.png",
	"outdoor-shoes-2":   "bottes-pluie.png",

	"cap-hat":         "casquette.png",
	"short-sleeve":    "t-shirt-leger.png",
	"shorts-skirt":    "short.png",
	"outdoor-shoes-3": "bottes-pluie.png",
	"sunscreen":       "creme-solaire.png",

	"raincoat":      "imperméable.png",
	"windbreaker":   "coupe-vent.png",
	"sweater":       "chandail.png",
	"light-sweater": "chandail-leger.png",
	"polo":          "polo.png",
}

// IconFor returns the icon file name for an item id
func IconFor(itemID string) (string, bool) {
	icon, ok := icons[itemID]
	return icon, ok
}

// Catalog returns a copy of every recommendation range in ascending order
func Catalog() []Recommendation {
	out := make([]Recommendation, len(catalog))
	for i, r := range catalog {
		out[i] = Recommendation{Range: r.Range, Items: copyItems(r.Items)}
	}
	return out
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
