package models

type Manufacturer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Country string `gorm:"size:100" json:"country"`
	Cars    []Car  `gorm:"constraint:OnDelete:CASCADE" json:"cars,omitempty"`
}
