// Package store holds the repositories over gorm. It is the only layer
// that touches the database; gorm's record-not-found is translated to
// ErrNotFound at this boundary so handlers never import gorm errors.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound — запись с таким id отсутствует
var ErrNotFound = errors.New("not found")

// Stores aggregates the per-entity repositories over one connection.
type Stores struct {
	Categories *CategoryStore
	Products   *ProductStore
	Images     *ImageStore
	Users      *UserStore
}

func New(gdb *gorm.DB) *Stores {
	return &Stores{
		Categories: &CategoryStore{db: gdb},
		Products:   &ProductStore{db: gdb},
		Images:     &ImageStore{db: gdb},
		Users:      &UserStore{db: gdb},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
