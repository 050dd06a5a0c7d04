package restaurants

import (
	"strings"
	"testing"

	"github.com/jask/deliverus-owner/internal/api"
	"github.com/jask/deliverus-owner/internal/auth"
)

func ptr(v float64) *float64 { return &v }

var owner = &auth.User{ID: "1", FirstName: "Owner"}

func TestRenderSignedOutShowsOnlyEmptyState(t *testing.T) {
	tree := Render([]api.Restaurant{{ID: 1, Name: "A"}}, nil, RenderOptions{})
	if tree.Header != nil {
		t.Fatalf("header must be hidden when signed out")
	}
	// the screen never holds data while signed out; Render itself just lists what it gets
	if len(tree.Entries) != 1 {
		t.Fatalf("expected entries passthrough")
	}

	tree = Render(nil, nil, RenderOptions{})
	if tree.Empty != EmptyMessage || len(tree.Entries) != 0 {
		t.Fatalf("nil state should render the empty message, got %+v", tree)
	}
}

func TestRenderEmptyListShowsMessageAndHeader(t *testing.T) {
	tree := Render([]api.Restaurant{}, owner, RenderOptions{})
	if tree.Header == nil || tree.Header.Label != CreateLabel {
		t.Fatalf("expected create header, got %+v", tree.Header)
	}
	if tree.Empty != EmptyMessage {
		t.Fatalf("expected empty message")
	}
}

func TestRenderEntriesKeepServerOrder(t *testing.T) {
	list := []api.Restaurant{
		{ID: 9, Name: "Nine", ShippingCosts: 3},
		{ID: 2, Name: "Two", ShippingCosts: 4.5, AverageServiceMinutes: ptr(12)},
		{ID: 5, Name: "Five", Logo: "public/five.png"},
	}
	tree := Render(list, owner, RenderOptions{AssetBaseURL: "http://api", Currency: "€"})
	if tree.Empty != "" || len(tree.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %+v", tree)
	}
	for i, want := range []string{"9", "2", "5"} {
		if tree.Entries[i].Key != want {
			t.Fatalf("entry %d key = %s, want %s", i, tree.Entries[i].Key, want)
		}
	}
	if tree.Entries[0].Shipping != "3.00€" || tree.Entries[1].Shipping != "4.50€" || tree.Entries[2].Shipping != "0.00€" {
		t.Fatalf("unexpected shipping: %q %q %q", tree.Entries[0].Shipping, tree.Entries[1].Shipping, tree.Entries[2].Shipping)
	}
	if tree.Entries[0].ServiceTime != "" {
		t.Fatalf("null service time must be omitted")
	}
	if tree.Entries[1].ServiceTime != "12 min." {
		t.Fatalf("service time = %q", tree.Entries[1].ServiceTime)
	}
	if !tree.Entries[0].Image.Placeholder {
		t.Fatalf("missing logo should use the placeholder")
	}
	if tree.Entries[2].Image.URI != "http://api/public/five.png" {
		t.Fatalf("logo uri = %q", tree.Entries[2].Image.URI)
	}
	for _, e := range tree.Entries {
		if len(e.Actions) != 0 {
			t.Fatalf("action slot should be empty by default")
		}
	}
}

func TestRenderFillsActionSlotWhenProvided(t *testing.T) {
	tree := Render([]api.Restaurant{{ID: 1}}, owner, RenderOptions{
		EntryActions: func(r api.Restaurant) []Action { return []Action{{Label: "Edit"}, {Label: "Delete"}} },
	})
	if len(tree.Entries[0].Actions) != 2 {
		t.Fatalf("expected provided actions")
	}
}

func TestFormatShippingAlwaysTwoDecimals(t *testing.T) {
	cases := map[float64]string{0: "0.00€", 3: "3.00€", 4.5: "4.50€", 2.499: "2.50€", 10.25: "10.25€"}
	for in, want := range cases {
		if got := FormatShipping(in, "€"); got != want {
			t.Fatalf("FormatShipping(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatServiceTime(t *testing.T) {
	if FormatServiceTime(nil) != "" {
		t.Fatalf("nil should be empty")
	}
	if got := FormatServiceTime(ptr(12)); got != "12 min." {
		t.Fatalf("got %q", got)
	}
	if got := FormatServiceTime(ptr(7.5)); got != "7.5 min." {
		t.Fatalf("got %q", got)
	}
}

func TestClampLinesTruncatesToTwo(t *testing.T) {
	text := strings.Repeat("word ", 40)
	lines := clampLines(text, 20, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis, got %q", lines[1])
	}
	if got := clampLines("short", 20, 2); len(got) != 1 || got[0] != "short" {
		t.Fatalf("short text should pass through, got %v", got)
	}
}
