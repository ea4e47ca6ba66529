package clothing

// ChildModeOffset is subtracted from the temperature in child mode so that
// young children are dressed one notch warmer.
const ChildModeOffset = 5.0

// EffectiveTemperature applies the child-mode offset
func EffectiveTemperature(temp float64, childMode bool) float64 {
	if childMode {
		return temp - ChildModeOffset
	}
	return temp
}

// Recommend returns the wardrobe for temp. The returned slice is owned by the caller.
func Recommend(temp float64, childMode bool) []Item {
	rec, ok := FullRecommendation(EffectiveTemperature(temp, childMode))
	if !ok {
		return copyItems(catalog[fallbackIndex].Items)
	}
	return rec.Items
}

// FullRecommendation returns the matching range together with its items.
// Child mode is not applied.
func FullRecommendation(temp float64) (Recommendation, bool) {
	for _, r := range catalog {
		if r.Range.Contains(temp) {
			return Recommendation{Range: r.Range, Items: copyItems(r.Items)}, true
		}
	}
	return Recommendation{}, false
}

// RecommendByCategory filters the recommendation to one category
func RecommendByCategory(temp float64, childMode bool, category Category) []Item {
	var out []Item
	for _, item := range Recommend(temp, childMode) {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Describe returns a French label for the temperature bucket. Child mode never applies here.
func Describe(temp float64) string {
	switch {
	case temp < 0:
		return "Très froid"
	case temp < 8:
		return "Froid"
	case temp < 18:
		return "Frais"
	case temp < 22:
		return "Doux"
	default:
		return "Chaud"
	}
}
