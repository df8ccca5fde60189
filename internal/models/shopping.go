package models

// ShoppingListItem is something the household plans to buy.
type ShoppingListItem struct {
	Base           `bson:",inline"`
	Owned          `bson:",inline"`
	ItemName       string           `gorm:"type:varchar(255);not null" bson:"item_name" json:"itemName" binding:"required"`
	Quantity       int              `gorm:"not null" bson:"quantity" json:"quantity" binding:"min=1"`
	Unit           ShoppingUnit     `gorm:"type:varchar(20);not null" bson:"unit" json:"unit" binding:"required,enum"`
	Category       ShoppingCategory `gorm:"type:varchar(50);not null" bson:"category" json:"category" binding:"required,enum"`
	Priority       Priority         `gorm:"type:varchar(10);not null" bson:"priority" json:"priority" binding:"omitempty,enum"`
	Store          string           `gorm:"type:varchar(255);not null;index" bson:"store" json:"store" binding:"required"`
	EstimatedPrice float64          `bson:"estimated_price" json:"estimatedPrice" binding:"min=0"`
}

func (ShoppingListItem) TableName() string { return "shopping_list_items" }

// DuplicateKey is narrower than the inventory key: the same product may be
// listed once per store.
func (s *ShoppingListItem) DuplicateKey() map[string]any {
	return map[string]any{
		"item_name": s.ItemName,
		"store":     s.Store,
	}
}

func (s *ShoppingListItem) Normalize() {
	if s.Priority == "" {
		s.Priority = PriorityMedium
	}
}
