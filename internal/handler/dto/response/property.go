package response

import (
	"stayfinder/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PropertyResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     AddressResponse `json:"address"`
	Rating      float64         `json:"rating"`
	Category    []string        `json:"category"`
	Price       int64           `json:"price"`
	Offers      OffersResponse  `json:"offers"`
	Image       string          `json:"image"`
	Discount    string          `json:"discount"`
	Description string          `json:"description,omitempty"`
	Amenities   []string        `json:"amenities,omitempty"`
}

type AddressResponse struct {
	State   string `json:"state"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type OffersResponse struct {
	Bed       string `json:"bed"`
	Shower    string `json:"shower"`
	Occupants string `json:"occupants"`
}

func FromPropertyView(view *queries.PropertyView) (*PropertyResponse, error) {
	var resp PropertyResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}
