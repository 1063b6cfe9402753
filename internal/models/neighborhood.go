package models

// Safety levels a neighborhood can be rated with.
const (
	SafetyHigh   = "high"
	SafetyMedium = "medium"
	SafetyLow    = "low"
)

type Neighborhood struct {
	ID               int64   `json:"id" gorm:"primaryKey"`
	Name             string  `json:"name" gorm:"not null"`
	City             string  `json:"city" gorm:"not null;index"`
	State            string  `json:"state" gorm:"not null;index"`
	HdiScore         float64 `json:"hdiScore" gorm:"not null"`
	PoliceResponse   int     `json:"policeResponse" gorm:"not null"`
	FireResponse     int     `json:"fireResponse" gorm:"not null"`
	MedicalResponse  int     `json:"medicalResponse" gorm:"not null"`
	HospitalDistance float64 `json:"hospitalDistance" gorm:"not null"`
	ShelterDistance  float64 `json:"shelterDistance" gorm:"not null"`
	SafetyLevel      string  `json:"safetyLevel" gorm:"not null"`
	Latitude         float64 `json:"latitude" gorm:"not null"`
	Longitude        float64 `json:"longitude" gorm:"not null"`
	Aqi              *int    `json:"aqi,omitempty"`
	AqiText          *string `json:"aqiText,omitempty"`
	FloodRisk        *string `json:"floodRisk,omitempty"`
	EarthquakeRisk   *string `json:"earthquakeRisk,omitempty"`
}

type InsertNeighborhood struct {
	Name             string   `json:"name" binding:"required"`
	City             string   `json:"city" binding:"required"`
	State            string   `json:"state" binding:"required"`
	HdiScore         *float64 `json:"hdiScore" binding:"required"`
	PoliceResponse   *int     `json:"policeResponse" binding:"required,min=0"`
	FireResponse     *int     `json:"fireResponse" binding:"required,min=0"`
	MedicalResponse  *int     `json:"medicalResponse" binding:"required,min=0"`
	HospitalDistance *float64 `json:"hospitalDistance" binding:"required,min=0"`
	ShelterDistance  *float64 `json:"shelterDistance" binding:"required,min=0"`
	SafetyLevel      string   `json:"safetyLevel" binding:"required,oneof=high medium low"`
	Latitude         *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude        *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Aqi              *int     `json:"aqi"`
	AqiText          *string  `json:"aqiText"`
	FloodRisk        *string  `json:"floodRisk"`
	EarthquakeRisk   *string  `json:"earthquakeRisk"`
}

func (in InsertNeighborhood) ToNeighborhood(id int64) Neighborhood {
	return Neighborhood{
		ID:               id,
		Name:             in.Name,
		City:             in.City,
		State:            in.State,
		HdiScore:         deref(in.HdiScore),
		PoliceResponse:   deref(in.PoliceResponse),
		FireResponse:     deref(in.FireResponse),
		MedicalResponse:  deref(in.MedicalResponse),
		HospitalDistance: deref(in.HospitalDistance),
		ShelterDistance:  deref(in.ShelterDistance),
		SafetyLevel:      in.SafetyLevel,
		Latitude:         deref(in.Latitude),
		Longitude:        deref(in.Longitude),
		Aqi:              in.Aqi,
		AqiText:          in.AqiText,
		FloodRisk:        in.FloodRisk,
		EarthquakeRisk:   in.EarthquakeRisk,
	}
}
