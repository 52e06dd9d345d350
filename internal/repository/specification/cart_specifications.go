package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type WithLines struct{}

func (s WithLines) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") })
}
