// Package uuid wraps google/uuid so that IDs can be bound from
// URIs and query strings by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam parses p with google/uuid's Parse. An empty
// string yields Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, e := google_uuid.Parse(p)
	if e != nil {
		return e
	}

	*u = UUID{parsed}
	return nil
}

// IsNil reports whether the UUID is unset.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}

// Ptr returns a pointer to the wrapped UUID or nil if it is unset.
//
// Optional foreign keys are pointers on the models, this converts
// a filter value into one.
func (u UUID) Ptr() *google_uuid.UUID {
	if u.IsNil() {
		return nil
	}

	id := u.UUID
	return &id
}
