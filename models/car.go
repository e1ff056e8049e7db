package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Publication status values.
const (
	StatusDraft     = 0
	StatusPublished = 1
)

type Car struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"size:255;not null" json:"title"`
	Slug           string        `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description    string        `gorm:"type:text" json:"description"`
	Price          *float64      `gorm:"type:numeric(10,2)" json:"price"`
	Image          *string       `gorm:"type:text" json:"image"`
	TimeCreate     time.Time     `gorm:"autoCreateTime;index:,sort:desc" json:"time_create"`
	TimeUpdate     time.Time     `gorm:"autoUpdateTime" json:"time_update"`
	IsPublished    int           `gorm:"default:0" json:"is_published"`
	ManufacturerID *uint         `json:"manufacturer_id"`
	Manufacturer   *Manufacturer `json:"manufacturer,omitempty"`
	Tags           []Tag         `gorm:"many2many:car_tags" json:"tags,omitempty"`
	Detail         *CarDetail    `gorm:"constraint:OnDelete:CASCADE" json:"detail,omitempty"`
}

// BriefInfo is the description summary shown in the admin listing.
func (c Car) BriefInfo() string {
	if c.Description == "" {
		return "No description"
	}
	return fmt.Sprintf("Description: %d characters", utf8.RuneCountInString(c.Description))
}

// PriceWithTax renders the price with 20% tax as a currency string.
func (c Car) PriceWithTax() string {
	if c.Price == nil {
		return "$0.00"
	}
	return fmt.Sprintf("$%.2f", *c.Price*1.2)
}

// MakeQuickSlug derives the slug used by the quick submission flow:
// lower-cased title with spaces replaced by hyphens.
func MakeQuickSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
