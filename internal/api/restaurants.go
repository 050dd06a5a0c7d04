package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	myRestaurantsPath = "/users/myrestaurants"
	restaurantsPath   = "/restaurants"
)

// RestaurantClient exposes the owner restaurant endpoints.
type RestaurantClient struct {
	rest *RESTClient
}

func NewRestaurantClient(rest *RESTClient) *RestaurantClient {
	return &RestaurantClient{rest: rest}
}

// GetAll lists the restaurants owned by the session user, in server order.
func (c *RestaurantClient) GetAll(ctx context.Context) ([]Restaurant, error) {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, myRestaurantsPath, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer res.Body.Close()
	if err := checkStatus(res); err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	var out []Restaurant
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}
	if out == nil {
		out = []Restaurant{}
	}
	c.rest.log.Debug("restaurants listed", slog.Int("count", len(out)))
	return out, nil
}

// Remove deletes a restaurant by id.
func (c *RestaurantClient) Remove(ctx context.Context, id int) error {
	req, err := c.rest.NewRequest(ctx, http.MethodDelete, restaurantsPath+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("remove restaurant %d: %w", id, err)
	}
	defer res.Body.Close()
	if err := checkStatus(res); err != nil {
		return fmt.Errorf("remove restaurant %d: %w", id, err)
	}
	return nil
}
