package specification

import (
	"fmt"

	"gorm.io/gorm"
)

// OrderBy applies ordering
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Limit caps the number of rows
type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}
