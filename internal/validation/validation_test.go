package validation

import (
	"testing"
	"time"

	"github.com/hometrack/hometrack-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStruct_Enum(t *testing.T) {
	task := &models.Task{
		Category: models.TaskCategoryCooking,
		Title:    "Make dinner",
		Priority: models.PriorityHigh,
	}
	assert.NoError(t, Struct(task))

	task.Category = "Gardening"
	assert.Error(t, Struct(task))

	task.Category = models.TaskCategoryCooking
	task.Status = "Paused"
	assert.Error(t, Struct(task))
}

func TestStruct_OmittedOptionalEnum(t *testing.T) {
	task := &models.Task{Category: models.TaskCategoryOther, Title: "Call plumber"}
	assert.NoError(t, Struct(task))
}

func TestStruct_NestedStockFields(t *testing.T) {
	expiry := time.Now().Add(48 * time.Hour)
	item := &models.FoodItem{
		StockFields: models.StockFields{
			ItemName:   "Milk",
			Category:   "Dairy",
			Quantity:   2,
			ExpiryDate: &expiry,
		},
		Unit: models.FoodUnitLiter,
	}
	assert.NoError(t, Struct(item))

	item.Quantity = -1
	assert.Error(t, Struct(item))

	item.Quantity = 2
	item.ExpiryDate = nil
	assert.Error(t, Struct(item))

	item.ExpiryDate = &expiry
	item.Unit = "bushels"
	assert.Error(t, Struct(item))
}
