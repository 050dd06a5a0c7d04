package mockapi

import (
	"context"
	"fmt"
)

// DemoOwnerEmail is the account Seed creates and the demo mode logs in as.
const DemoOwnerEmail = "owner1@owner.com"

func minutes(v float64) *float64 { return &v }

// Seed fills the store with two owners and a handful of restaurants.
func Seed(ctx context.Context, s *Store) error {
	owner := &Owner{Email: DemoOwnerEmail, FirstName: "Owner One"}
	other := &Owner{Email: "owner2@owner.com", FirstName: "Owner Two"}
	for _, o := range []*Owner{owner, other} {
		if err := s.CreateOwner(ctx, o); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	restaurants := []Restaurant{
		{OwnerID: owner.ID, Name: "Casa Félix", Description: "Cocina andaluza de toda la vida, con guisos caseros, pescaíto frito y postres de la abuela.", Logo: "public/restaurants/casaFelixLogo.jpeg", AverageServiceMinutes: minutes(30), ShippingCosts: 2.5},
		{OwnerID: owner.ID, Name: "100 montaditos", Description: "Cervecería con montaditos de todo tipo.", ShippingCosts: 1},
		{OwnerID: owner.ID, Name: "La Tagliatella", Description: "Pasta fresca y pizzas al horno de piedra.", Logo: "public/restaurants/tagliatellaLogo.jpeg", AverageServiceMinutes: minutes(12), ShippingCosts: 3},
		{OwnerID: other.ID, Name: "Burger Place", Description: "Hamburguesas a la brasa.", AverageServiceMinutes: minutes(20), ShippingCosts: 4.5},
	}
	for i := range restaurants {
		if err := s.CreateRestaurant(ctx, &restaurants[i]); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
