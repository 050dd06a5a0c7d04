package restaurants

import (
	"strconv"

	"github.com/jask/deliverus-owner/internal/api"
	"github.com/jask/deliverus-owner/internal/auth"
)

// EmptyMessage is shown when there is nothing to list.
const EmptyMessage = "No restaurants were retreived. Are you logged in?"

// CreateLabel is the header action label.
const CreateLabel = "Create restaurant"

// descriptionLines caps the description shown on each card.
const descriptionLines = 2

// Tree is what the list screen shows for a given state. It carries no behaviour;
// the screen maps selections back onto navigation.
type Tree struct {
	// Header is nil when nobody is signed in.
	Header *HeaderAction
	// Entries is empty whenever Empty is set.
	Entries []Entry
	Empty   string
}

type HeaderAction struct {
	Label string
}

// Image is the card image: a logo URL or the bundled placeholder.
type Image struct {
	URI         string
	Placeholder bool
}

type Entry struct {
	Key         string
	ID          int
	Image       Image
	Title       string
	Description string
	// ServiceTime is "" when the restaurant has no average service time.
	ServiceTime string
	Shipping    string
	// Actions is the edit/remove slot; empty until those controls exist.
	Actions []Action
}

// Action is a per-entry control rendered in the card's action slot.
type Action struct {
	Label string
}

// RenderOptions carry the presentation settings Render needs.
type RenderOptions struct {
	AssetBaseURL string
	Currency     string
	// EntryActions fills each entry's action slot. Nil leaves it empty.
	EntryActions func(api.Restaurant) []Action
}

// Render maps the view state and the signed-in user onto a Tree.
// restaurants == nil is the "nothing loaded" sentinel.
func Render(restaurants []api.Restaurant, user *auth.User, opts RenderOptions) Tree {
	var t Tree
	if user != nil {
		t.Header = &HeaderAction{Label: CreateLabel}
	}
	if len(restaurants) == 0 {
		t.Empty = EmptyMessage
		return t
	}
	t.Entries = make([]Entry, 0, len(restaurants))
	for _, r := range restaurants {
		uri, placeholder := api.ResolveLogo(opts.AssetBaseURL, r.Logo)
		e := Entry{
			Key:         r.Key(),
			ID:          r.ID,
			Image:       Image{URI: uri, Placeholder: placeholder},
			Title:       r.Name,
			Description: r.Description,
			ServiceTime: FormatServiceTime(r.AverageServiceMinutes),
			Shipping:    FormatShipping(r.ShippingCosts, opts.Currency),
		}
		if opts.EntryActions != nil {
			e.Actions = opts.EntryActions(r)
		}
		t.Entries = append(t.Entries, e)
	}
	return t
}

// FormatServiceTime renders "<v> min.", or "" for a missing value.
func FormatServiceTime(minutes *float64) string {
	if minutes == nil {
		return ""
	}
	return strconv.FormatFloat(*minutes, 'f', -1, 64) + " min."
}

// FormatShipping renders the cost with exactly two decimals and the currency suffix.
func FormatShipping(cost float64, currency string) string {
	return strconv.FormatFloat(cost, 'f', 2, 64) + currency
}
