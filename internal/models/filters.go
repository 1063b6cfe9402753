package models

import (
	"math"
	"strconv"
	"strings"
)

// PropertyFilter holds the optional listing criteria. A nil field imposes
// no constraint; every set field must hold for a property to match.
type PropertyFilter struct {
	City         *string
	State        *string
	PropertyType *string
	MinPrice     *float64
	MaxPrice     *float64
	MinHdi       *float64
}

// Matches checks if a property satisfies every criterion that is set
func (f PropertyFilter) Matches(p *Property) bool {
	if f.City != nil && p.City != *f.City {
		return false
	}
	if f.State != nil && p.State != *f.State {
		return false
	}
	if f.PropertyType != nil && p.PropertyType != *f.PropertyType {
		return false
	}

	// NaN bounds come from unparseable input and never match
	if f.MinPrice != nil && !(float64(p.Price) >= *f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && !(float64(p.Price) <= *f.MaxPrice) {
		return false
	}

	// A property without an HDI score cannot satisfy a minimum
	if f.MinHdi != nil {
		if p.HdiScore == nil || !(*p.HdiScore >= *f.MinHdi) {
			return false
		}
	}

	return true
}

// IsEmpty reports whether no criterion is set.
func (f PropertyFilter) IsEmpty() bool {
	return f.City == nil && f.State == nil && f.PropertyType == nil &&
		f.MinPrice == nil && f.MaxPrice == nil && f.MinHdi == nil
}

// Apply returns the matching properties in their original order.
func (f PropertyFilter) Apply(properties []Property) []Property {
	result := make([]Property, 0, len(properties))
	for i := range properties {
		if f.Matches(&properties[i]) {
			result = append(result, properties[i])
		}
	}
	return result
}

// NeighborhoodFilter narrows neighborhoods by city and/or state.
type NeighborhoodFilter struct {
	City  *string
	State *string
}

func (f NeighborhoodFilter) Matches(n *Neighborhood) bool {
	if f.City != nil && n.City != *f.City {
		return false
	}
	if f.State != nil && n.State != *f.State {
		return false
	}
	return true
}

func (f NeighborhoodFilter) Apply(neighborhoods []Neighborhood) []Neighborhood {
	result := make([]Neighborhood, 0, len(neighborhoods))
	for i := range neighborhoods {
		if f.Matches(&neighborhoods[i]) {
			result = append(result, neighborhoods[i])
		}
	}
	return result
}

// OptionalString treats an empty query value as absent.
func OptionalString(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}

// OptionalNumber coerces a query value to a number. Empty input is absent,
// input that is not a number becomes NaN so that no comparison holds.
func OptionalNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		v = math.NaN()
	}
	return &v
}
