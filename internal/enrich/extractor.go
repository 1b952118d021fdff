package enrich

import "strings"

// Sentinel values stored when a title matches no roster or lexicon entry.
const (
	UnknownDriver = "Desconhecido"
	UnknownRegion = "Desconhecida"
)

// RegionEntry maps a race keyword to the region label stored in the database.
type RegionEntry struct {
	Keyword string
	Region  string
}

type candidate struct {
	key   string // normalized matching key
	value string // stored value
}

// Extractor derives driver and region fields from video titles by ordered
// substring matching over normalized text. The first matching entry wins, so
// roster/lexicon order is a deliberate tie-break for ambiguous substrings.
type Extractor struct {
	drivers []candidate
	regions []candidate
}

// NewExtractor builds an Extractor for the given roster and lexicon. Both
// are scanned in the order given; matching keys are pre-normalized once.
func NewExtractor(roster []string, lexicon []RegionEntry) *Extractor {
	e := &Extractor{
		drivers: make([]candidate, 0, len(roster)),
		regions: make([]candidate, 0, len(lexicon)),
	}
	for _, name := range roster {
		e.drivers = append(e.drivers, candidate{key: Normalize(name), value: name})
	}
	for _, entry := range lexicon {
		e.regions = append(e.regions, candidate{key: Normalize(entry.Keyword), value: entry.Region})
	}
	return e
}

// Driver returns the first roster entry whose normalized name occurs in the
// normalized title, or UnknownDriver. Total: never fails.
func (e *Extractor) Driver(title string) string {
	return scan(e.drivers, Normalize(title), UnknownDriver)
}

// Region returns the region label of the first lexicon keyword found in the
// normalized title, or UnknownRegion. Callers should only use this when the
// video carries no geolocation.
func (e *Extractor) Region(title string) string {
	return scan(e.regions, Normalize(title), UnknownRegion)
}

func scan(candidates []candidate, normalizedTitle, fallback string) string {
	for _, c := range candidates {
		if c.key != "" && strings.Contains(normalizedTitle, c.key) {
			return c.value
		}
	}
	return fallback
}
