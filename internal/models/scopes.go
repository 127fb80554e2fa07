package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedBy limits a query to resources with a user_id column owned by the user.
func OwnedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// CategoriesVisibleTo limits a category query to the user's own
// categories and the default categories.
func CategoriesVisibleTo(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(categories.user_id = ? OR categories.user_id IS NULL)", userID)
	}
}

// accountsOf returns a subquery selecting the IDs of all accounts of the
// user, including deleted ones so that their history stays visible.
func accountsOf(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true}).Unscoped().Model(&Account{}).Select("id").Where("user_id = ?", userID)
}

// TransactionsOf limits a transaction query to transactions of the user.
func TransactionsOf(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("transactions.account_id IN (?)", accountsOf(db, userID))
	}
}

// ScheduledPaymentsOf limits a scheduled payment query to payments of the user.
func ScheduledPaymentsOf(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("scheduled_payments.account_id IN (?)", accountsOf(db, userID))
	}
}
