package models

// CarDetail holds the optional technical sheet of a car, one per car.
type CarDetail struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CarID        uint   `gorm:"not null;uniqueIndex" json:"car_id"`
	Car          *Car   `json:"car,omitempty"`
	Engine       string `gorm:"size:100" json:"engine"`
	Transmission string `gorm:"size:100" json:"transmission"`
	Mileage      *uint  `json:"mileage"`
}
