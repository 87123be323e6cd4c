package domain

import (
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("record not found")

// Record is a customer's contact and address data, the sole persisted
// domain entity. ID and CreatedAt are assigned by the store on creation
// and never change afterwards.
type Record struct {
	ID        int64
	CreatedAt time.Time
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
}

// FullName returns the customer's display name.
func (r Record) FullName() string {
	return r.FirstName + " " + r.LastName
}
