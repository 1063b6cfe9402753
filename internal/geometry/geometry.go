// Package geometry locates listings relative to neighborhoods and renders
// them as GeoJSON for map clients.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"

	"github.com/Akshat3144/safespace-api/internal/models"
)

// NeighborhoodPoint returns the neighborhood center as an orb point.
func NeighborhoodPoint(n *models.Neighborhood) orb.Point {
	return orb.Point{n.Longitude, n.Latitude}
}

// PropertyPoint returns the listing location as an orb point.
func PropertyPoint(p *models.Property) orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// Nearest finds the neighborhood whose center is closest to point.
// It returns nil when neighborhoods is empty. Distance is in meters.
func Nearest(point orb.Point, neighborhoods []models.Neighborhood) (*models.Neighborhood, float64) {
	var nearest *models.Neighborhood
	best := math.Inf(1)

	for i := range neighborhoods {
		d := geo.DistanceHaversine(point, NeighborhoodPoint(&neighborhoods[i]))
		if d < best {
			best = d
			nearest = &neighborhoods[i]
		}
	}

	if nearest == nil {
		return nil, 0
	}
	return nearest, best
}

// ValidCoordinates reports whether lat/lng are usable on a WGS84 map.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func PropertiesFeatureCollection(properties []models.Property) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range properties {
		p := &properties[i]
		feature := geojson.NewFeature(PropertyPoint(p))
		feature.ID = p.ID
		feature.Properties["title"] = p.Title
		feature.Properties["address"] = p.Address
		feature.Properties["city"] = p.City
		feature.Properties["state"] = p.State
		feature.Properties["price"] = p.Price
		feature.Properties["propertyType"] = p.PropertyType
		feature.Properties["safetyScore"] = p.SafetyScore
		if p.HdiScore != nil {
			feature.Properties["hdiScore"] = *p.HdiScore
		}
		if p.FloodZone != nil {
			feature.Properties["floodZone"] = *p.FloodZone
		}
		fc.Append(feature)
	}
	return fc
}

func NeighborhoodsFeatureCollection(neighborhoods []models.Neighborhood) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range neighborhoods {
		n := &neighborhoods[i]
		feature := geojson.NewFeature(NeighborhoodPoint(n))
		feature.ID = n.ID
		feature.Properties["name"] = n.Name
		feature.Properties["city"] = n.City
		feature.Properties["state"] = n.State
		feature.Properties["hdiScore"] = n.HdiScore
		feature.Properties["safetyLevel"] = n.SafetyLevel
		if n.Aqi != nil {
			feature.Properties["aqi"] = *n.Aqi
		}
		fc.Append(feature)
	}
	return fc
}
