// Package cart manages the store's shopping cart.
//
// There is exactly one cart for the whole deployment: entries carry no
// owner and every client reads and changes the same set. A master class
// appears in the cart at most once, with a quantity.
package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type Entry struct {
	ID            int64     `json:"id" db:"id"`
	MasterClassID int64     `json:"master_class_id" db:"master_class_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	AddedAt       time.Time `json:"added_at" db:"added_at"`
}

// Line is an entry together with the master class it refers to.
type Line struct {
	Entry
	Title        string              `json:"title" db:"title"`
	Teacher      string              `json:"teacher" db:"teacher"`
	Price        decimal.NullDecimal `json:"price" db:"price"`
	ImageURL     string              `json:"image_url" db:"image_url"`
	TeacherPhoto string              `json:"teacher_photo" db:"teacher_photo"`
}

type EntryNew struct {
	MasterClassID int64 `json:"master_class_id" validate:"required"`
	Quantity      *int  `json:"quantity" validate:"omitempty,gt=0"`
}

// Added reports the outcome of an add: Created is false when the master
// class was already in the cart and only its quantity grew.
type Added struct {
	ID       int64 `db:"id"`
	Quantity int   `db:"quantity"`
	Created  bool  `db:"created"`
}
