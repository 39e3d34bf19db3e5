package entity

// Category is a browsable grouping of listings by experience type.
type Category struct {
	ID          string
	Name        string
	Description string
}
