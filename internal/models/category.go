package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is used to tag transactions.
//
// Categories without a user are defaults shared by everyone.
type Category struct {
	DefaultModel
	User        *User      `json:"-"`
	UserID      *uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	Name        string     `gorm:"uniqueIndex:category_user_name"`
	Description string
}

func (Category) Self() string {
	return "Category"
}

// Export returns the categories of the user. Default categories
// are not part of the export.
func (Category) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[Category](db, OwnedBy(userID))
}

// defaultCategories are seeded on startup
var defaultCategories = []Category{
	{Name: "Leisure", Description: "Hobbies, outings and entertainment"},
	{Name: "Meals", Description: "Groceries and restaurants"},
	{Name: "Transport", Description: "Public transport, fuel and car costs"},
	{Name: "Housing", Description: "Rent, utilities and repairs"},
	{Name: "Health", Description: "Doctors, pharmacy and insurance"},
	{Name: "Clothing", Description: "Clothes and shoes"},
	{Name: "Education", Description: "Courses, books and school fees"},
	{Name: "Income", Description: "Salary and other income"},
	{Name: "Gifts", Description: "Presents and donations"},
	{Name: "Other", Description: "Everything else"},
}

// seedCategories creates all default categories that do not exist yet.
func seedCategories(db *gorm.DB) error {
	for _, c := range defaultCategories {
		category := c
		err := db.Where("user_id IS NULL AND name = ?", category.Name).FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("could not create default category %s: %w", category.Name, err)
		}
	}

	return nil
}

// BeforeSave trims whitespace from all strings
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if err := c.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.UserID == nil {
		return nil
	}

	return tx.First(&User{}, c.UserID).Error
}

// BeforeUpdate prevents changes to default categories.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if c.UserID == nil {
		return ErrCategoryReadOnly
	}

	toSave, ok := tx.Statement.Dest.(Category)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Name") && strings.TrimSpace(toSave.Name) == "" {
		return ErrCategoryNameEmpty
	}

	trimColumns(tx, map[string]string{"Name": toSave.Name, "Description": toSave.Description})
	return nil
}

// BeforeDelete prevents deletion of default categories, removes the
// rules assigning the category and unsets it on scheduled payments.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		return nil
	}

	if c.UserID == nil {
		return ErrCategoryReadOnly
	}

	err := tx.Where(&CategoryRule{CategoryID: c.ID}).Delete(&CategoryRule{}).Error
	if err != nil {
		return err
	}

	return tx.Model(&ScheduledPayment{}).Where("category_id = ?", c.ID).UpdateColumn("category_id", nil).Error
}

// visibleCategory loads a category that the user can use, i.e. one of
// their own or a default category.
func visibleCategory(tx *gorm.DB, userID, categoryID uuid.UUID) (Category, error) {
	var category Category
	err := tx.Scopes(CategoriesVisibleTo(userID)).First(&category, "categories.id = ?", categoryID).Error
	return category, err
}
