package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exporter is implemented by all models that are part of a data export.
type Exporter interface {
	Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) // All instances of this model owned by the user
}

// The Registry contains all models that are exported for a user.
//
// Operations that affect all models iterate over it instead of
// listing every model explicitly.
var Registry = []Exporter{
	User{},
	Account{},
	Alert{},
	Category{},
	CategoryRule{},
	ScheduledPayment{},
	Transaction{},
}

// export returns all resources of type T matching the scopes, including deleted ones.
func export[T any](db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) (json.RawMessage, error) {
	var resources []T
	err := db.Unscoped().Scopes(scopes...).Find(&resources).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&resources)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
