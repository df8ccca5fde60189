package services

// View is a derived read view a resource may expose.
type View uint8

const (
	ViewLowStock View = 1 << iota
	ViewNearExpiry
	ViewByStore
	ViewHighPriority
)

// Has reports whether every view in v is enabled.
func (set View) Has(v View) bool {
	return v != 0 && set&v == v
}

// ResourceDefinition describes one household resource.
type ResourceDefinition struct {
	// Name is used in response messages, e.g. "Food item added successfully".
	Name string
	// EnvelopeKey wraps the document in mutation responses.
	EnvelopeKey string
	// OwnerScoped restricts every operation to the caller's documents.
	OwnerScoped bool
	Views       View
}

func (d ResourceDefinition) CreatedMessage() string {
	return d.Name + " added successfully"
}

func (d ResourceDefinition) UpdatedMessage() string {
	return d.Name + " updated successfully"
}

func (d ResourceDefinition) DeletedMessage() string {
	return d.Name + " deleted successfully"
}

func (d ResourceDefinition) NotFoundMessage() string {
	return d.Name + " not found"
}

func (d ResourceDefinition) DuplicateMessage() string {
	return d.Name + " already exists"
}

var (
	FoodDefinition = ResourceDefinition{
		Name:        "Food item",
		EnvelopeKey: "item",
		OwnerScoped: true,
		Views:       ViewLowStock | ViewNearExpiry,
	}
	CleaningDefinition = ResourceDefinition{
		Name:        "Cleaning supply",
		EnvelopeKey: "item",
		OwnerScoped: true,
		Views:       ViewLowStock | ViewNearExpiry,
	}
	PersonalCareDefinition = ResourceDefinition{
		Name:        "Personal care item",
		EnvelopeKey: "item",
		OwnerScoped: true,
		Views:       ViewLowStock | ViewNearExpiry,
	}
	HouseholdDefinition = ResourceDefinition{
		Name:        "Household item",
		EnvelopeKey: "item",
		OwnerScoped: true,
	}
	ToolsDefinition = ResourceDefinition{
		Name:        "Tool",
		EnvelopeKey: "item",
		OwnerScoped: true,
	}
	ShoppingListDefinition = ResourceDefinition{
		Name:        "Shopping list item",
		EnvelopeKey: "item",
		OwnerScoped: true,
		Views:       ViewByStore | ViewHighPriority,
	}
	TaskDefinition = ResourceDefinition{
		Name:        "Task",
		EnvelopeKey: "task",
		OwnerScoped: true,
	}
	ExpenseDefinition = ResourceDefinition{
		Name:        "Expense",
		EnvelopeKey: "expense",
		OwnerScoped: true,
	}
)
