// Package store is the gateway to the persisted records. Field mapping and
// defaulting happen here once; callers work with the typed models only.
package store

import "gorm.io/gorm"

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
