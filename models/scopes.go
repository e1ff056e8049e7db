package models

import "gorm.io/gorm"

// Published restricts a Car query to published records. The filter is applied
// at query time, so the preset always reflects the current status.
func Published(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", StatusPublished)
}

// DefaultOrder sorts newest-first, then alphabetically by title.
func DefaultOrder(db *gorm.DB) *gorm.DB {
	return db.Order("time_create DESC").Order("title ASC")
}

// FilterStatus partitions by publication status: "published", "draft" or
// empty for no filter.
func FilterStatus(value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch value {
		case "published":
			return db.Where("is_published = ?", StatusPublished)
		case "draft":
			return db.Where("is_published = ?", StatusDraft)
		}
		return db
	}
}

// FilterPriceRange partitions by price: "low" (<20000),
// "medium" (20000-50000), "high" (>50000) or empty for no filter.
func FilterPriceRange(value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch value {
		case "low":
			return db.Where("price < ?", 20000)
		case "medium":
			return db.Where("price >= ? AND price <= ?", 20000, 50000)
		case "high":
			return db.Where("price > ?", 50000)
		}
		return db
	}
}

// SearchTitleOrManufacturer matches a case-insensitive substring against the
// car title or its manufacturer name.
func SearchTitleOrManufacturer(q string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q == "" {
			return db
		}
		pattern := "%" + q + "%"
		return db.
			Joins("LEFT JOIN manufacturers ON manufacturers.id = cars.manufacturer_id").
			Where("LOWER(cars.title) LIKE LOWER(?) OR LOWER(manufacturers.name) LIKE LOWER(?)", pattern, pattern)
	}
}
