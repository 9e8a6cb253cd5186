package models

import "time"

// Product is a row of the static catalog. Rows are written once by the
// seeder and treated as read-only afterwards; Position preserves the
// catalog's display order independently of the product id.
type Product struct {
	ID                 int       `gorm:"column:id;primaryKey"`
	Position           int       `gorm:"column:position;not null;uniqueIndex"`
	Title              string    `gorm:"column:title;not null"`
	Category           string    `gorm:"column:category;not null"`
	Brand              string    `gorm:"column:brand;not null"`
	Price              float64   `gorm:"column:price;not null"`
	DiscountPercentage float64   `gorm:"column:discount_percentage;not null;default:0"`
	Rating             float64   `gorm:"column:rating;not null;default:0"`
	Thumbnail          string    `gorm:"column:thumbnail"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName pins the table name used by the seeder and the catalog loader.
func (Product) TableName() string {
	return "products"
}
