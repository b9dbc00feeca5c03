package model

// CategoryType indicates whether a category is for income or expense.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategory is the catch-all bucket returned when nothing matches.
const DefaultCategory = "outros"

// Category represents a spending or income bucket. The engine treats the
// ID as an opaque key; Name and Type exist for presentation.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// Budget is a monthly spending limit for one category.
type Budget struct {
	CategoryID string  `json:"category_id"`
	Limit      float64 `json:"limit"`
}
