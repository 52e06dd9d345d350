package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Cart struct {
	Id        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex"`
	Lines     []*CartLine `gorm:"foreignKey:CartId;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartLine is unique per (cart, variant); repeated adds merge quantities.
type CartLine struct {
	Id              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CartId          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cart_variant"`
	ProductId       string          `gorm:"type:varchar(255);not null"`
	ProductTitle    string          `gorm:"type:varchar(255);not null"`
	VariantId       string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_variant"`
	VariantTitle    string          `gorm:"type:varchar(255)"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrencyCode    string          `gorm:"type:char(3);not null;default:'USD'"`
	Quantity        int             `gorm:"not null;default:1"`
	SelectedOptions datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (CartLine) TableName() string {
	return "cart_lines"
}
