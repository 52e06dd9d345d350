package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id               string          `gorm:"type:varchar(255);primaryKey"`
	Title            string          `gorm:"type:varchar(255);not null;index"`
	ProductType      *string         `gorm:"type:varchar(255);index"`
	Handle           *string         `gorm:"type:varchar(255);uniqueIndex"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrencyCode     string          `gorm:"type:char(3);not null;default:'USD'"`
	AvailableForSale bool            `gorm:"default:true;index"`
	SortOrder        int             `gorm:"default:0"`
	CreatedAt        time.Time       `gorm:"autoCreateTime"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt  `gorm:"index"`

	// Relations
	Variants []*ProductVariant `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
	Images   []*ProductImage   `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

type ProductVariant struct {
	Id               string          `gorm:"type:varchar(255);primaryKey"`
	ProductId        string          `gorm:"type:varchar(255);not null;index"`
	Title            string          `gorm:"type:varchar(255);not null"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrencyCode     string          `gorm:"type:char(3);not null;default:'USD'"`
	AvailableForSale bool            `gorm:"default:true"`
	Position         int             `gorm:"default:0"`
	SelectedOptions  datatypes.JSON  `gorm:"type:jsonb"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}

type ProductImage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductId string    `gorm:"type:varchar(255);not null;index"`
	URL       string    `gorm:"type:text;not null"`
	AltText   *string   `gorm:"type:text"`
	Position  int       `gorm:"default:0"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
