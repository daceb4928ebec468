package handler

import (
	"github.com/platelog/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db    *gorm.DB
	diary *service.Diary
}

// NewAPI constructs a handler set around the diary service.
func NewAPI(db *gorm.DB, diary *service.Diary) *API {
	return &API{
		db:    db,
		diary: diary,
	}
}

// DB exposes the underlying gorm instance for health checks.
func (a *API) DB() *gorm.DB {
	return a.db
}
