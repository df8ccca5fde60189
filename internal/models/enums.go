package models

// Priority is shared by tasks and shopping list items.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskCategory string

const (
	TaskCategoryCooking  TaskCategory = "Cooking"
	TaskCategoryBilling  TaskCategory = "Billing"
	TaskCategoryCleaning TaskCategory = "Cleaning"
	TaskCategoryWork     TaskCategory = "Work"
	TaskCategoryOther    TaskCategory = "Other"
)

func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskCategoryCooking, TaskCategoryBilling, TaskCategoryCleaning, TaskCategoryWork, TaskCategoryOther:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// FoodUnit is the unit of measure for food and beverages.
type FoodUnit string

const (
	FoodUnitKilogram   FoodUnit = "kg"
	FoodUnitGram       FoodUnit = "g"
	FoodUnitLiter      FoodUnit = "l"
	FoodUnitMilliliter FoodUnit = "ml"
	FoodUnitPieces     FoodUnit = "pieces"
	FoodUnitPacks      FoodUnit = "packs"
)

func (u FoodUnit) IsValid() bool {
	switch u {
	case FoodUnitKilogram, FoodUnitGram, FoodUnitLiter, FoodUnitMilliliter, FoodUnitPieces, FoodUnitPacks:
		return true
	}
	return false
}

// CleaningUnit is the unit of measure for cleaning supplies.
type CleaningUnit string

const (
	CleaningUnitLiter      CleaningUnit = "l"
	CleaningUnitMilliliter CleaningUnit = "ml"
	CleaningUnitKilogram   CleaningUnit = "kg"
	CleaningUnitGram       CleaningUnit = "g"
	CleaningUnitPieces     CleaningUnit = "pieces"
	CleaningUnitBottles    CleaningUnit = "bottles"
)

func (u CleaningUnit) IsValid() bool {
	switch u {
	case CleaningUnitLiter, CleaningUnitMilliliter, CleaningUnitKilogram, CleaningUnitGram, CleaningUnitPieces, CleaningUnitBottles:
		return true
	}
	return false
}

// PersonalCareUnit is the unit of measure for personal care products.
type PersonalCareUnit string

const (
	PersonalCareUnitMilliliter PersonalCareUnit = "ml"
	PersonalCareUnitLiter      PersonalCareUnit = "l"
	PersonalCareUnitGram       PersonalCareUnit = "g"
	PersonalCareUnitPieces     PersonalCareUnit = "pieces"
	PersonalCareUnitTubes      PersonalCareUnit = "tubes"
	PersonalCareUnitBottles    PersonalCareUnit = "bottles"
)

func (u PersonalCareUnit) IsValid() bool {
	switch u {
	case PersonalCareUnitMilliliter, PersonalCareUnitLiter, PersonalCareUnitGram, PersonalCareUnitPieces, PersonalCareUnitTubes, PersonalCareUnitBottles:
		return true
	}
	return false
}

type ShoppingUnit string

const (
	ShoppingUnitKilogram   ShoppingUnit = "kg"
	ShoppingUnitLiter      ShoppingUnit = "l"
	ShoppingUnitMilliliter ShoppingUnit = "ml"
	ShoppingUnitGram       ShoppingUnit = "g"
	ShoppingUnitPieces     ShoppingUnit = "pieces"
)

func (u ShoppingUnit) IsValid() bool {
	switch u {
	case ShoppingUnitKilogram, ShoppingUnitLiter, ShoppingUnitMilliliter, ShoppingUnitGram, ShoppingUnitPieces:
		return true
	}
	return false
}

type ShoppingCategory string

const (
	ShoppingCategoryGroceries    ShoppingCategory = "Groceries"
	ShoppingCategoryHousehold    ShoppingCategory = "Household"
	ShoppingCategoryPersonalCare ShoppingCategory = "Personal Care"
	ShoppingCategoryCleaning     ShoppingCategory = "Cleaning"
	ShoppingCategoryElectronics  ShoppingCategory = "Electronics"
	ShoppingCategoryOther        ShoppingCategory = "Other"
)

func (c ShoppingCategory) IsValid() bool {
	switch c {
	case ShoppingCategoryGroceries, ShoppingCategoryHousehold, ShoppingCategoryPersonalCare,
		ShoppingCategoryCleaning, ShoppingCategoryElectronics, ShoppingCategoryOther:
		return true
	}
	return false
}
