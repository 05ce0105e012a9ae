package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is an ordered list of text lines stored as a JSON array in a
// text column. Substring search runs against the serialized form.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// keep &, < and > literal so the stored text matches what users typed
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string(l)); err != nil {
		return nil, err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}

	var items []string
	if len(bytes.TrimSpace(raw)) == 0 || json.Unmarshal(raw, &items) != nil {
		*l = StringList{}
		return nil
	}
	if items == nil {
		items = []string{}
	}
	*l = items
	return nil
}

// MarshalJSON always renders an array, never null
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// GormDBDataType picks a text column wide enough for the dialect
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "mysql" {
		return "longtext"
	}
	return "text"
}

// Recipe is a dish record with its metadata, ingredients and instructions.
// Rows are created once and never updated.
type Recipe struct {
	ID              uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Category        string     `gorm:"size:50;not null;index" json:"category"`
	PrepTime        int        `gorm:"not null" json:"prep_time"`
	CookTime        int        `gorm:"not null" json:"cook_time"`
	Servings        int        `gorm:"not null" json:"servings"`
	Difficulty      string     `gorm:"size:50;not null" json:"difficulty"`
	Ingredients     StringList `gorm:"not null" json:"ingredients"`
	Instructions    StringList `gorm:"not null" json:"instructions"`
	CulturalContext string     `gorm:"type:text" json:"cultural_context"`
	ImageData       string     `json:"image_data"`
	ImageURL        string     `gorm:"size:2048" json:"image_url"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
}

// TableName returns the table name for the Recipe model
func (Recipe) TableName() string {
	return "recipes"
}
