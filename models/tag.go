package models

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Cars []Car  `gorm:"many2many:car_tags" json:"cars,omitempty"`
}
