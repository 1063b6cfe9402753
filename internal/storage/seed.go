package storage

import (
	"fmt"
	"time"

	"github.com/Akshat3144/safespace-api/internal/models"
	"github.com/sirupsen/logrus"
)

// ISOTimestamp is the layout used for createdAt and addedAt values.
const ISOTimestamp = "2006-01-02T15:04:05.000Z07:00"

// Seed loads the Portland sample neighborhoods and listings. Neighborhoods
// already present are skipped and listings are only inserted into a store
// that has none, so seeding a persistent store again is harmless.
func Seed(store Storage, logger *logrus.Logger) error {
	added := 0
	for _, n := range sampleNeighborhoods() {
		existing, err := store.GetNeighborhoodByName(n.Name, n.City, n.State)
		if err != nil {
			return fmt.Errorf("failed to look up neighborhood %s: %w", n.Name, err)
		}
		if existing != nil {
			continue
		}
		if _, err := store.CreateNeighborhood(n); err != nil {
			return fmt.Errorf("failed to seed neighborhood %s: %w", n.Name, err)
		}
		added++
	}
	logger.WithField("count", added).Info("Seeded sample neighborhoods")

	properties, err := store.GetProperties(models.PropertyFilter{})
	if err != nil {
		return fmt.Errorf("failed to count properties: %w", err)
	}
	if len(properties) > 0 {
		logger.WithField("count", len(properties)).Info("Properties already present, skipping sample listings")
		return nil
	}

	samples := sampleProperties(time.Now().UTC().Format(ISOTimestamp))
	for _, p := range samples {
		if _, err := store.CreateProperty(p); err != nil {
			return fmt.Errorf("failed to seed property %s: %w", p.Title, err)
		}
	}
	logger.WithField("count", len(samples)).Info("Seeded sample properties")
	return nil
}

func sampleNeighborhoods() []models.InsertNeighborhood {
	neighborhood := func(name string, hdi float64, police, fire, medical int, hospital, shelter float64,
		safety string, lat, lng float64, aqi int, aqiText, flood, quake string) models.InsertNeighborhood {
		return models.InsertNeighborhood{
			Name:             name,
			City:             "Portland",
			State:            "OR",
			HdiScore:         models.Ptr(hdi),
			PoliceResponse:   models.Ptr(police),
			FireResponse:     models.Ptr(fire),
			MedicalResponse:  models.Ptr(medical),
			HospitalDistance: models.Ptr(hospital),
			ShelterDistance:  models.Ptr(shelter),
			SafetyLevel:      safety,
			Latitude:         models.Ptr(lat),
			Longitude:        models.Ptr(lng),
			Aqi:              models.Ptr(aqi),
			AqiText:          models.Ptr(aqiText),
			FloodRisk:        models.Ptr(flood),
			EarthquakeRisk:   models.Ptr(quake),
		}
	}

	return []models.InsertNeighborhood{
		neighborhood("Alameda", 0.89, 3, 4, 6, 1.2, 3.5, models.SafetyHigh, 45.546, -122.635, 28, "Excellent", "Low", "Medium"),
		neighborhood("Pearl District", 0.82, 2, 3, 4, 0.8, 1.2, models.SafetyHigh, 45.526, -122.684, 42, "Good", "Medium", "Medium"),
		neighborhood("Irvington", 0.85, 3, 5, 5, 1.5, 2.8, models.SafetyHigh, 45.543, -122.653, 35, "Good", "Low", "Low"),
		neighborhood("Laurelhurst", 0.79, 4, 6, 7, 2.2, 4.1, models.SafetyMedium, 45.528, -122.625, 45, "Good", "Low", "Low"),
		neighborhood("Sellwood", 0.72, 7, 8, 9, 4.2, 6.5, models.SafetyMedium, 45.472, -122.652, 65, "Moderate", "Medium", "Medium"),
	}
}

func sampleProperties(createdAt string) []models.InsertProperty {
	type sample struct {
		title, address, zip, kind, image string
		price, beds, sqft             int
		baths, safety, lat, lng, hdi  float64
		air, response                 int
		airText, flood, zone          string
	}

	samples := []sample{
		{
			title: "Modern Townhome in Grant Park", address: "123 NE Knott St", zip: "97212", kind: "House",
			image: "https://images.unsplash.com/photo-1570129477492-45c003edd2be?auto=format&fit=crop&w=600&q=80",
			price: 625000, beds: 3, sqft: 1850, baths: 2.5, safety: 8.5, lat: 45.535, lng: -122.639, hdi: 0.82,
			air: 42, airText: "Good", response: 5, flood: "Medium", zone: "Zone B",
		},
		{
			title: "Renovated Craftsman in Alameda", address: "2418 NE Alameda St", zip: "97212", kind: "House",
			image: "https://images.unsplash.com/photo-1592595896551-12b371d546d5?auto=format&fit=crop&w=600&q=80",
			price: 875000, beds: 4, sqft: 2450, baths: 3, safety: 9.2, lat: 45.546, lng: -122.635, hdi: 0.89,
			air: 28, airText: "Excellent", response: 3, flood: "Low", zone: "Zone X",
		},
		{
			title: "Luxury Condo in Pearl District", address: "1122 NW Marshall St", zip: "97209", kind: "Apartment",
			image: "https://images.unsplash.com/photo-1493809842364-78817add7ffb?auto=format&fit=crop&w=600&q=80",
			price: 720000, beds: 2, sqft: 1350, baths: 2, safety: 8.8, lat: 45.526, lng: -122.684, hdi: 0.82,
			air: 38, airText: "Good", response: 4, flood: "Low", zone: "Zone X",
		},
		{
			title: "Historic Home in Irvington", address: "1845 NE 15th Ave", zip: "97212", kind: "House",
			image: "https://images.unsplash.com/photo-1605276374104-dee2a0ed3cd6?auto=format&fit=crop&w=600&q=80",
			price: 950000, beds: 5, sqft: 3200, baths: 3.5, safety: 8.7, lat: 45.537, lng: -122.651, hdi: 0.85,
			air: 35, airText: "Good", response: 4, flood: "Low", zone: "Zone X",
		},
		{
			title: "Sellwood Bungalow", address: "8722 SE 13th Ave", zip: "97202", kind: "House",
			image: "https://images.unsplash.com/photo-1576941089067-2de3c901e126?auto=format&fit=crop&w=600&q=80",
			price: 550000, beds: 3, sqft: 1650, baths: 2, safety: 7.2, lat: 45.472, lng: -122.652, hdi: 0.72,
			air: 65, airText: "Moderate", response: 8, flood: "Medium", zone: "Zone B",
		},
	}

	properties := make([]models.InsertProperty, 0, len(samples))
	for _, s := range samples {
		properties = append(properties, models.InsertProperty{
			Title:                 s.title,
			Address:               s.address,
			City:                  "Portland",
			State:                 "OR",
			ZipCode:               s.zip,
			Price:                 models.Ptr(s.price),
			Beds:                  models.Ptr(s.beds),
			Baths:                 models.Ptr(s.baths),
			Sqft:                  models.Ptr(s.sqft),
			PropertyType:          s.kind,
			ImageURL:              models.Ptr(s.image),
			SafetyScore:           models.Ptr(s.safety),
			Latitude:              models.Ptr(s.lat),
			Longitude:             models.Ptr(s.lng),
			AirQuality:            models.Ptr(s.air),
			AirQualityText:        models.Ptr(s.airText),
			HdiScore:              models.Ptr(s.hdi),
			EmergencyResponseTime: models.Ptr(s.response),
			FloodRisk:             models.Ptr(s.flood),
			FloodZone:             models.Ptr(s.zone),
			CreatedAt:             createdAt,
		})
	}
	return properties
}
