package models

import "gorm.io/gorm"

// Category groups products for browsing and filtering.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	gorm.Model
}

// Product represents a product in the store. StockQuantity is only
// mutated by the order-placement transaction.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string    `json:"name" validate:"required,min=3,max=100"`
	Description   string    `json:"description" validate:"omitempty,max=500"`
	Price         float64   `json:"price" validate:"required,gt=0"`
	StockQuantity int       `json:"stock_quantity" validate:"gte=0"`
	CategoryID    string    `json:"category_id" gorm:"type:varchar(36);index"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images        []string  `json:"images" gorm:"serializer:json"`
	NutritionInfo string    `json:"nutrition_info" validate:"omitempty,max=1000"`
	Ingredients   string    `json:"ingredients" validate:"omitempty,max=1000"`
	Weight        string    `json:"weight" validate:"omitempty,max=50"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
	Rating        float64   `json:"rating" validate:"gte=0,lte=5"`
	RatingCount   int       `json:"rating_count" validate:"gte=0"`
	gorm.Model
}
