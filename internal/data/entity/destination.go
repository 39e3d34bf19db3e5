package entity

// Destination is a browsable grouping of listings by place.
type Destination struct {
	ID          string
	Name        string
	Country     string
	Description string
}
