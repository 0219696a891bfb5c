package db

import (
	"gorm.io/gorm"
)

// NewestFirst orders by created_at descending with id as the tie breaker.
// alias qualifies the columns when the query joins other tables.
func NewestFirst(alias string) func(db *gorm.DB) *gorm.DB {
	prefix := ""
	if alias != "" {
		prefix = alias + "."
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(prefix + "created_at DESC").Order(prefix + "id DESC")
	}
}

// Limit caps the result size when n is positive.
func Limit(n int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if n <= 0 {
			return db
		}
		return db.Limit(n)
	}
}
