package entity

// Listing is a bookable marine experience. Listings are managed outside
// this service and read-only here; the external code is the only
// identifier exposed to callers, while relationship fields elsewhere hold
// the store's internal id.
type Listing struct {
	ID          string // store internal record id
	Code        string // stable external identifier, unique
	Title       string
	Description string
	Location    string
	Category    string
	Price       float64
	Currency    string
	RatingScore float64
	ReviewCount int
	Featured    bool
	Duration    string
	Photos      []Photo
}

type Photo struct {
	ID       string
	URL      string
	Filename string
}
