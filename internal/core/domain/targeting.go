package domain

// Targeting describes who should see a campaign. Each list is ordered and
// free of duplicates once normalised.
type Targeting struct {
	Keywords  []string `json:"keywords"`
	Audiences []string `json:"audiences"`
	Locations []string `json:"locations"`
	Languages []string `json:"languages"`
}

// MatchesAny reports whether any of the given lowercase keywords is among the
// campaign keywords.
func (t Targeting) MatchesAny(keywords []string) bool {
	if len(keywords) == 0 || len(t.Keywords) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(t.Keywords))
	for _, k := range t.Keywords {
		set[k] = struct{}{}
	}
	for _, k := range keywords {
		if _, ok := set[k]; ok {
			return true
		}
	}
	return false
}
