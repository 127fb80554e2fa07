package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// CategoryRule assigns a category to new transactions whose note
// matches the glob pattern in Match. Matching ignores case.
//
// Rules are evaluated by ascending priority, the first match wins.
type CategoryRule struct {
	DefaultModel
	User       User      `json:"-"`
	UserID     uuid.UUID `gorm:"index"`
	Category   Category  `json:"-"`
	CategoryID uuid.UUID
	Priority   uint
	Match      string
}

func (CategoryRule) Self() string {
	return "Category Rule"
}

func (CategoryRule) Export(db *gorm.DB, userID uuid.UUID) (json.RawMessage, error) {
	return export[CategoryRule](db, OwnedBy(userID))
}

func (r *CategoryRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	return nil
}

func (r *CategoryRule) BeforeCreate(tx *gorm.DB) error {
	if err := r.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	if r.Match == "" {
		return ErrCategoryRuleMatchEmpty
	}

	_, err := visibleCategory(tx, r.UserID, r.CategoryID)
	return err
}

func (r *CategoryRule) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(CategoryRule)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Match") && strings.TrimSpace(toSave.Match) == "" {
		return ErrCategoryRuleMatchEmpty
	}

	trimColumns(tx, map[string]string{"Match": toSave.Match})

	if tx.Statement.Changed("CategoryID") {
		_, err := visibleCategory(tx, r.UserID, toSave.CategoryID)
		return err
	}

	return nil
}

// Matches reports if the note matches the rule.
func (r CategoryRule) Matches(note string) bool {
	return glob.Glob(strings.ToLower(r.Match), strings.ToLower(note))
}

// MatchCategoryRule returns the first rule of the user matching the note.
func MatchCategoryRule(tx *gorm.DB, userID uuid.UUID, note string) (*CategoryRule, error) {
	var rules []CategoryRule
	err := tx.
		Where(&CategoryRule{UserID: userID}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Matches(note) {
			return &rule, nil
		}
	}

	return nil, nil
}
