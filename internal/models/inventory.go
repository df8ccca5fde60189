package models

import "time"

// StockFields are tracked by every inventory category that has stock levels
// and an expiry date.
type StockFields struct {
	ItemName        string     `gorm:"type:varchar(255);not null" bson:"item_name" json:"itemName" binding:"required"`
	Category        string     `gorm:"type:varchar(100);not null" bson:"category" json:"category" binding:"required"`
	Quantity        int        `gorm:"not null" bson:"quantity" json:"quantity" binding:"min=0"`
	WeightVolume    float64    `bson:"weight_volume" json:"weightVolume" binding:"min=0"`
	ExpiryDate      *time.Time `gorm:"index" bson:"expiry_date" json:"expiryDate" binding:"required"`
	StorageLocation string     `gorm:"type:varchar(255)" bson:"storage_location" json:"storageLocation"`
	MinimumLevel    int        `gorm:"not null" bson:"minimum_level" json:"minimumLevel" binding:"min=0"`
}

func (s *StockFields) normalize() {
	s.ExpiryDate = utcPtr(s.ExpiryDate)
}

func (s *StockFields) duplicateKey(unit string) map[string]any {
	return map[string]any{
		"item_name":        s.ItemName,
		"category":         s.Category,
		"weight_volume":    s.WeightVolume,
		"unit":             unit,
		"expiry_date":      timeOrNil(s.ExpiryDate),
		"storage_location": s.StorageLocation,
		"minimum_level":    s.MinimumLevel,
	}
}

// FoodItem is a food or beverage kept in the household.
type FoodItem struct {
	Base        `bson:",inline"`
	Owned       `bson:",inline"`
	StockFields `bson:",inline"`
	Unit        FoodUnit `gorm:"type:varchar(20);not null" bson:"unit" json:"unit" binding:"required,enum"`
}

func (FoodItem) TableName() string { return "food_items" }

func (f *FoodItem) DuplicateKey() map[string]any { return f.duplicateKey(string(f.Unit)) }

func (f *FoodItem) Normalize() { f.normalize() }

// CleaningSupply is a detergent, spray or other cleaning product.
type CleaningSupply struct {
	Base        `bson:",inline"`
	Owned       `bson:",inline"`
	StockFields `bson:",inline"`
	Unit        CleaningUnit `gorm:"type:varchar(20);not null" bson:"unit" json:"unit" binding:"required,enum"`
}

func (CleaningSupply) TableName() string { return "cleaning_supplies" }

func (c *CleaningSupply) DuplicateKey() map[string]any { return c.duplicateKey(string(c.Unit)) }

func (c *CleaningSupply) Normalize() { c.normalize() }

// PersonalCareItem is a toiletry or other personal care product.
type PersonalCareItem struct {
	Base        `bson:",inline"`
	Owned       `bson:",inline"`
	StockFields `bson:",inline"`
	Unit        PersonalCareUnit `gorm:"type:varchar(20);not null" bson:"unit" json:"unit" binding:"required,enum"`
}

func (PersonalCareItem) TableName() string { return "personal_care_items" }

func (p *PersonalCareItem) DuplicateKey() map[string]any { return p.duplicateKey(string(p.Unit)) }

func (p *PersonalCareItem) Normalize() { p.normalize() }

// ItemFields describe goods that are counted but never expire.
type ItemFields struct {
	ItemName        string `gorm:"type:varchar(255);not null" bson:"item_name" json:"itemName" binding:"required"`
	Category        string `gorm:"type:varchar(100);not null" bson:"category" json:"category" binding:"required"`
	Quantity        int    `gorm:"not null" bson:"quantity" json:"quantity" binding:"min=0"`
	StorageLocation string `gorm:"type:varchar(255)" bson:"storage_location" json:"storageLocation"`
}

func (i *ItemFields) duplicateKey() map[string]any {
	return map[string]any{
		"item_name":        i.ItemName,
		"category":         i.Category,
		"storage_location": i.StorageLocation,
	}
}

// HouseholdItem is furniture, linen, kitchenware and the like.
type HouseholdItem struct {
	Base       `bson:",inline"`
	Owned      `bson:",inline"`
	ItemFields `bson:",inline"`
}

func (HouseholdItem) TableName() string { return "household_items" }

func (h *HouseholdItem) DuplicateKey() map[string]any { return h.duplicateKey() }

// ToolItem is a tool or maintenance supply.
type ToolItem struct {
	Base       `bson:",inline"`
	Owned      `bson:",inline"`
	ItemFields `bson:",inline"`
}

func (ToolItem) TableName() string { return "tool_items" }

func (t *ToolItem) DuplicateKey() map[string]any { return t.duplicateKey() }
