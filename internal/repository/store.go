package repository

import (
	"github.com/hometrack/hometrack-api/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Store groups the repositories of every collection.
type Store struct {
	Users        Repository[models.User]
	Food         Repository[models.FoodItem]
	Cleaning     Repository[models.CleaningSupply]
	PersonalCare Repository[models.PersonalCareItem]
	Household    Repository[models.HouseholdItem]
	Tools        Repository[models.ToolItem]
	ShoppingList Repository[models.ShoppingListItem]
	Tasks        Repository[models.Task]
	Expenses     Repository[models.Expense]
}

// NewGormStore creates a Store backed by a relational database
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:        NewGormRepository[models.User](db),
		Food:         NewGormRepository[models.FoodItem](db),
		Cleaning:     NewGormRepository[models.CleaningSupply](db),
		PersonalCare: NewGormRepository[models.PersonalCareItem](db),
		Household:    NewGormRepository[models.HouseholdItem](db),
		Tools:        NewGormRepository[models.ToolItem](db),
		ShoppingList: NewGormRepository[models.ShoppingListItem](db),
		Tasks:        NewGormRepository[models.Task](db),
		Expenses:     NewGormRepository[models.Expense](db),
	}
}

// NewMongoStore creates a Store backed by MongoDB. Collection names match the
// relational table names.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:        NewMongoRepository[models.User](db.Collection(models.User{}.TableName())),
		Food:         NewMongoRepository[models.FoodItem](db.Collection(models.FoodItem{}.TableName())),
		Cleaning:     NewMongoRepository[models.CleaningSupply](db.Collection(models.CleaningSupply{}.TableName())),
		PersonalCare: NewMongoRepository[models.PersonalCareItem](db.Collection(models.PersonalCareItem{}.TableName())),
		Household:    NewMongoRepository[models.HouseholdItem](db.Collection(models.HouseholdItem{}.TableName())),
		Tools:        NewMongoRepository[models.ToolItem](db.Collection(models.ToolItem{}.TableName())),
		ShoppingList: NewMongoRepository[models.ShoppingListItem](db.Collection(models.ShoppingListItem{}.TableName())),
		Tasks:        NewMongoRepository[models.Task](db.Collection(models.Task{}.TableName())),
		Expenses:     NewMongoRepository[models.Expense](db.Collection(models.Expense{}.TableName())),
	}
}
