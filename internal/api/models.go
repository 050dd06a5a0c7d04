package api

import (
	"strconv"
	"strings"
)

// Restaurant is a restaurant as returned by the owner endpoints.
type Restaurant struct {
	ID                    int      `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Logo                  string   `json:"logo,omitempty"`
	AverageServiceMinutes *float64 `json:"averageServiceMinutes"`
	ShippingCosts         float64  `json:"shippingCosts"`
}

// Key is the identifier rendered as the list key.
func (r Restaurant) Key() string { return strconv.Itoa(r.ID) }

// PlaceholderLogo is the bundled image used when a restaurant has no logo.
const PlaceholderLogo = "assets/restaurantLogo.jpeg"

// ResolveLogo returns <base>/<logo> when logo is set and the placeholder asset otherwise.
func ResolveLogo(baseURL, logo string) (uri string, placeholder bool) {
	logo = strings.TrimSpace(logo)
	if logo == "" {
		return PlaceholderLogo, true
	}
	return baseURL + "/" + logo, false
}
