package app

import (
	"context"
	"log/slog"

	"github.com/jask/deliverus-owner/internal/api"
	"github.com/jask/deliverus-owner/internal/auth"
	"github.com/jask/deliverus-owner/internal/config"
	"github.com/jask/deliverus-owner/internal/core"
	"github.com/jask/deliverus-owner/internal/notify"
	"github.com/jask/deliverus-owner/internal/screens"
	"github.com/jask/deliverus-owner/internal/screens/restaurants"
)

// Deps are the long-lived collaborators shared by every route.
type Deps struct {
	Ctx         context.Context
	Config      config.Config
	Restaurants *api.RestaurantClient
	Auth        *auth.Store
	Log         *slog.Logger
}

// Routes is the route table of the client.
func Routes(d Deps, keys *core.KeyRegistry) map[string]core.ScreenFactory {
	return map[string]core.ScreenFactory{
		core.RouteRestaurants: func(core.Route) core.Screen {
			return restaurants.New(restaurants.Deps{
				Ctx:          d.Ctx,
				Lister:       d.Restaurants,
				Remover:      d.Restaurants,
				Auth:         d.Auth,
				Navigator:    core.StackNavigator(),
				Notifier:     notify.Bus,
				Keys:         keys,
				AssetBaseURL: d.Config.API.BaseURL,
				Currency:     d.Config.UI.CurrencySymbol,
				Log:          d.Log.With(slog.String("screen", "restaurants")),
			})
		},
		core.RouteRestaurantDetail: func(r core.Route) core.Screen {
			return screens.NewRestaurantDetail(r, keys)
		},
		core.RouteCreateRestaurant: func(r core.Route) core.Screen {
			return screens.NewCreateRestaurant(r, keys)
		},
		core.RouteLogin: func(core.Route) core.Screen {
			return screens.NewLogin(d.Auth, keys)
		},
	}
}

// NewModel builds the shell with the restaurant list as root.
func NewModel(d Deps) core.Model {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	return core.NewModel(core.Options{
		Routes:   Routes(d, keys),
		Root:     core.RouteRestaurants,
		Keys:     keys,
		Auth:     d.Auth,
		Flash:    notify.NewFlash(d.Config.UI.FlashTTL),
		AppTitle: "DeliverUS Owner",
		Log:      d.Log,
	})
}
