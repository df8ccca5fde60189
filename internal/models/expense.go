package models

import "time"

type Expense struct {
	Base          `bson:",inline"`
	Owned         `bson:",inline"`
	Amount        float64    `gorm:"not null" bson:"amount" json:"amount" binding:"min=0"`
	Month         string     `gorm:"type:varchar(20);not null" bson:"month" json:"month" binding:"required"`
	Date          *time.Time `bson:"date" json:"date" binding:"required"`
	Category      string     `gorm:"type:varchar(100);not null" bson:"category" json:"category" binding:"required"`
	PaymentMethod string     `gorm:"type:varchar(50);not null" bson:"payment_method" json:"paymentMethod" binding:"required"`
	Description   string     `gorm:"type:text" bson:"description" json:"description"`
}

func (Expense) TableName() string { return "expenses" }

func (e *Expense) DuplicateKey() map[string]any {
	return map[string]any{
		"amount":         e.Amount,
		"month":          e.Month,
		"date":           timeOrNil(e.Date),
		"category":       e.Category,
		"payment_method": e.PaymentMethod,
		"description":    e.Description,
	}
}

func (e *Expense) Normalize() {
	e.Date = utcPtr(e.Date)
}
