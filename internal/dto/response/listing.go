package response

import (
	"marine-booking/internal/data/entity"
)

type ListingResponse struct {
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       float64         `json:"price"`
	Currency    string          `json:"currency,omitempty"`
	RatingScore float64         `json:"rating_score"`
	ReviewCount int             `json:"review_count"`
	Featured    bool            `json:"featured"`
	Duration    string          `json:"duration,omitempty"`
	Photos      []PhotoResponse `json:"photos,omitempty"`
}

type PhotoResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

type DestinationResponse struct {
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	Description string `json:"description,omitempty"`
}

type CategoryResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// The internal record id never leaves the service; listings are addressed
// by code only.
func ListingToResponse(listing *entity.Listing) ListingResponse {
	resp := ListingResponse{
		Code:        listing.Code,
		Title:       listing.Title,
		Description: listing.Description,
		Location:    listing.Location,
		Category:    listing.Category,
		Price:       listing.Price,
		Currency:    listing.Currency,
		RatingScore: listing.RatingScore,
		ReviewCount: listing.ReviewCount,
		Featured:    listing.Featured,
		Duration:    listing.Duration,
	}

	for _, photo := range listing.Photos {
		resp.Photos = append(resp.Photos, PhotoResponse{
			URL:      photo.URL,
			Filename: photo.Filename,
		})
	}

	return resp
}

func DestinationToResponse(d *entity.Destination) DestinationResponse {
	return DestinationResponse{
		Name:        d.Name,
		Country:     d.Country,
		Description: d.Description,
	}
}

func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		Name:        c.Name,
		Description: c.Description,
	}
}
