package request

// ListingFilterRequest carries the browse filters; zero values mean
// "no filter on this field".
type ListingFilterRequest struct {
	Category string   `json:"category,omitempty"`
	Location string   `json:"location,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"max_price,omitempty" validate:"omitempty,gte=0"`
	Featured *bool    `json:"featured,omitempty"`
	PaginatedRequest
}
