// Package repository holds the GORM-backed implementations of the
// per-domain repository interfaces. The aggregation engine never sees these;
// it only receives the slices they return.
package repository

import (
	"gorm.io/gorm"
)

func paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}

func totalPages(count int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(count) / pageSize
	if int(count)%pageSize != 0 {
		pages++
	}
	return pages
}
