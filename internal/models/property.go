package models

// Property is a listing as stored and served by the API.
type Property struct {
	ID                    int64    `json:"id" gorm:"primaryKey"`
	Title                 string   `json:"title" gorm:"not null"`
	Address               string   `json:"address" gorm:"not null"`
	City                  string   `json:"city" gorm:"not null;index"`
	State                 string   `json:"state" gorm:"not null;index"`
	ZipCode               string   `json:"zipCode" gorm:"not null"`
	Price                 int      `json:"price" gorm:"not null"`
	Beds                  int      `json:"beds" gorm:"not null"`
	Baths                 float64  `json:"baths" gorm:"not null"`
	Sqft                  int      `json:"sqft" gorm:"not null"`
	PropertyType          string   `json:"propertyType" gorm:"not null"`
	ImageURL              *string  `json:"imageUrl,omitempty"`
	SafetyScore           float64  `json:"safetyScore" gorm:"not null"`
	Latitude              float64  `json:"latitude" gorm:"not null"`
	Longitude             float64  `json:"longitude" gorm:"not null"`
	AirQuality            *int     `json:"airQuality,omitempty"`
	AirQualityText        *string  `json:"airQualityText,omitempty"`
	HdiScore              *float64 `json:"hdiScore,omitempty"`
	EmergencyResponseTime *int     `json:"emergencyResponseTime,omitempty"`
	FloodRisk             *string  `json:"floodRisk,omitempty"`
	FloodZone             *string  `json:"floodZone,omitempty"`
	CreatedAt             string   `json:"createdAt" gorm:"not null"`
}

// InsertProperty is the request body accepted when creating a property.
// Required numbers are pointers so that a zero value still counts as present.
type InsertProperty struct {
	Title                 string   `json:"title" binding:"required"`
	Address               string   `json:"address" binding:"required"`
	City                  string   `json:"city" binding:"required"`
	State                 string   `json:"state" binding:"required"`
	ZipCode               string   `json:"zipCode" binding:"required"`
	Price                 *int     `json:"price" binding:"required,min=0"`
	Beds                  *int     `json:"beds" binding:"required,min=0"`
	Baths                 *float64 `json:"baths" binding:"required,min=0"`
	Sqft                  *int     `json:"sqft" binding:"required,min=0"`
	PropertyType          string   `json:"propertyType" binding:"required"`
	ImageURL              *string  `json:"imageUrl"`
	SafetyScore           *float64 `json:"safetyScore" binding:"required"`
	Latitude              *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude             *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	AirQuality            *int     `json:"airQuality"`
	AirQualityText        *string  `json:"airQualityText"`
	HdiScore              *float64 `json:"hdiScore"`
	EmergencyResponseTime *int     `json:"emergencyResponseTime"`
	FloodRisk             *string  `json:"floodRisk"`
	FloodZone             *string  `json:"floodZone"`
	CreatedAt             string   `json:"createdAt" binding:"required"`
}

// ToProperty merges the validated payload with an assigned id.
func (in InsertProperty) ToProperty(id int64) Property {
	return Property{
		ID:                    id,
		Title:                 in.Title,
		Address:               in.Address,
		City:                  in.City,
		State:                 in.State,
		ZipCode:               in.ZipCode,
		Price:                 deref(in.Price),
		Beds:                  deref(in.Beds),
		Baths:                 deref(in.Baths),
		Sqft:                  deref(in.Sqft),
		PropertyType:          in.PropertyType,
		ImageURL:              in.ImageURL,
		SafetyScore:           deref(in.SafetyScore),
		Latitude:              deref(in.Latitude),
		Longitude:             deref(in.Longitude),
		AirQuality:            in.AirQuality,
		AirQualityText:        in.AirQualityText,
		HdiScore:              in.HdiScore,
		EmergencyResponseTime: in.EmergencyResponseTime,
		FloodRisk:             in.FloodRisk,
		FloodZone:             in.FloodZone,
		CreatedAt:             in.CreatedAt,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
