// Package catalog manages the master classes offered by the store.
package catalog

import "github.com/shopspring/decimal"

// MasterClass is one workshop listing. Price is NULL only when an update
// was sent without one.
type MasterClass struct {
	ID           int64               `json:"id" db:"id"`
	Title        string              `json:"title" db:"title"`
	Teacher      string              `json:"teacher" db:"teacher"`
	Price        decimal.NullDecimal `json:"price" db:"price"`
	ImageURL     string              `json:"image_url" db:"image_url"`
	TeacherPhoto string              `json:"teacher_photo" db:"teacher_photo"`
}

type MasterClassNew struct {
	Title        string           `json:"title" validate:"required"`
	Teacher      string           `json:"teacher" validate:"required"`
	Price        *decimal.Decimal `json:"price" validate:"required"`
	ImageURL     string           `json:"image_url"`
	TeacherPhoto string           `json:"teacher_photo"`
}

// MasterClassUp replaces every column of a master class. Fields left out
// of the request body are written as their zero value.
type MasterClassUp struct {
	Title        string              `json:"title"`
	Teacher      string              `json:"teacher"`
	Price        decimal.NullDecimal `json:"price"`
	ImageURL     string              `json:"image_url"`
	TeacherPhoto string              `json:"teacher_photo"`
}
