package listing_test

import (
	"errors"
	"testing"
	"time"

	"rentwatch/internal/domain"
	"rentwatch/internal/listing"
	"rentwatch/internal/shared"
)

func snapshot() []domain.Property { return shared.FixtureProperties() }

func ids(ps []domain.Property) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func sameIDs(a []domain.Property, want ...string) bool {
	if len(a) != len(want) {
		return false
	}
	for i := range a {
		if a[i].ID != want[i] {
			return false
		}
	}
	return true
}

func TestList_FilterSoundnessAndOrdering(t *testing.T) {
	cases := []domain.Filters{
		{},
		{MinPrice: 30000},
		{MaxPrice: 35000},
		{MinPrice: 30000, MaxPrice: 40000},
		{Rooms: 3},
		{RiskLevel: "low"},
		{MinPrice: 30000, Rooms: 2, RiskLevel: "low"},
	}
	for _, f := range cases {
		page, err := listing.List(snapshot(), "", 100, f)
		if err != nil {
			t.Fatalf("filters %+v: %v", f, err)
		}
		var prev time.Time
		for i, p := range page.Items {
			if f.MinPrice > 0 && p.Price < f.MinPrice {
				t.Fatalf("filters %+v: %s violates min price", f, p.ID)
			}
			if f.MaxPrice > 0 && p.Price > f.MaxPrice {
				t.Fatalf("filters %+v: %s violates max price", f, p.ID)
			}
			if f.Rooms > 0 && p.Rooms < f.Rooms {
				t.Fatalf("filters %+v: %s violates rooms", f, p.ID)
			}
			if f.RiskLevel != "" && f.RiskLevel != "any" && string(p.RiskLevel) != f.RiskLevel {
				t.Fatalf("filters %+v: %s violates risk level", f, p.ID)
			}
			if i > 0 && p.CreatedAt.After(prev) {
				t.Fatalf("filters %+v: createdAt not non-increasing at %s", f, p.ID)
			}
			prev = p.CreatedAt
		}
	}
}

func TestList_AnyRiskLevelIsUnconstrained(t *testing.T) {
	all, _ := listing.List(snapshot(), "", 100, domain.Filters{})
	anyLvl, _ := listing.List(snapshot(), "", 100, domain.Filters{RiskLevel: "any"})
	if len(all.Items) != len(anyLvl.Items) {
		t.Fatalf("risk_level=any filtered something: %d vs %d", len(all.Items), len(anyLvl.Items))
	}
}

func TestList_MinPriceFirstPage(t *testing.T) {
	// 4 of 5 fixtures are priced >= 30000; newest first is property-5, then 4, 2, 1.
	page, err := listing.List(snapshot(), "", 2, domain.Filters{MinPrice: 30000})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !sameIDs(page.Items, "property-5", "property-4") {
		t.Fatalf("unexpected page: %v", ids(page.Items))
	}
	if !page.HasMore {
		t.Fatalf("expected hasMore with two qualifying properties left")
	}
	if page.NextCursor == "" {
		t.Fatalf("expected a cursor for the next page")
	}
}

func TestList_PagesConcatenateExactly(t *testing.T) {
	full, err := listing.List(snapshot(), "", 100, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for pageSize := 1; pageSize <= len(full.Items)+1; pageSize++ {
		var got []domain.Property
		cursor := ""
		for {
			page, err := listing.List(snapshot(), cursor, pageSize, domain.Filters{})
			if err != nil {
				t.Fatalf("pageSize %d: %v", pageSize, err)
			}
			got = append(got, page.Items...)
			if !page.HasMore {
				// the final page must end exactly at the collection edge
				if len(got) != len(full.Items) {
					t.Fatalf("pageSize %d: got %d items, want %d", pageSize, len(got), len(full.Items))
				}
				break
			}
			cursor = page.NextCursor
		}
		seen := map[string]bool{}
		for i, p := range got {
			if seen[p.ID] {
				t.Fatalf("pageSize %d: duplicate %s", pageSize, p.ID)
			}
			seen[p.ID] = true
			if p.ID != full.Items[i].ID {
				t.Fatalf("pageSize %d: order diverged at %d: %s vs %s", pageSize, i, p.ID, full.Items[i].ID)
			}
		}
	}
}

func TestList_HasMoreFalseAtExactBoundary(t *testing.T) {
	// exactly 5 items, page size 5: no more pages
	page, err := listing.List(snapshot(), "", 5, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if page.HasMore {
		t.Fatalf("hasMore should be false when the page reaches the end")
	}
}

func TestList_EmptyResult(t *testing.T) {
	page, err := listing.List(snapshot(), "", 10, domain.Filters{MinPrice: 1_000_000})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(page.Items) != 0 || page.HasMore || page.NextCursor != "" {
		t.Fatalf("expected empty terminal page, got %+v", page)
	}
}

func TestList_NonPositivePageSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := listing.List(snapshot(), "", n, domain.Filters{}); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Fatalf("pageSize %d: want ErrInvalidArgument, got %v", n, err)
		}
	}
}

func TestList_MalformedCursor(t *testing.T) {
	if _, err := listing.List(snapshot(), "not-a-cursor!!", 2, domain.Filters{}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestList_CursorSurvivesDeletionOfCursorItem(t *testing.T) {
	page1, err := listing.List(snapshot(), "", 2, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// page1 = [property-5, property-4]; drop property-4 from the collection
	var mutated []domain.Property
	for _, p := range snapshot() {
		if p.ID != "property-4" {
			mutated = append(mutated, p)
		}
	}

	page2, err := listing.List(mutated, page1.NextCursor, 2, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	// resumes at the first item strictly older than the deleted cursor item
	if !sameIDs(page2.Items, "property-3", "property-2") {
		t.Fatalf("unexpected resume page: %v", ids(page2.Items))
	}
}

func TestList_CursorIsKeysetNotOffset(t *testing.T) {
	// Insert a property newer than everything after taking page one. An offset
	// cursor would re-serve an old item; the keyset cursor must not.
	page1, err := listing.List(snapshot(), "", 2, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	newest := domain.Property{
		ID: "property-6", Title: "Brand-new studio", Address: "1 Xinsheng S Rd, Taipei",
		Price: 30000, Size: 15, Rooms: 1, Bathrooms: 1,
		LandlordID: "landlord-3", LandlordName: "Mr. Wang",
		CreatedAt: time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	mutated := append(snapshot(), newest)

	page2, err := listing.List(mutated, page1.NextCursor, 2, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !sameIDs(page2.Items, "property-2", "property-1") {
		t.Fatalf("insertion shifted the page: %v", ids(page2.Items))
	}
}

func TestList_TiesKeepSnapshotOrder(t *testing.T) {
	ts := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	snap := []domain.Property{
		{ID: "a", Title: "A", Address: "x", Price: 1000, Rooms: 1, CreatedAt: ts},
		{ID: "b", Title: "B", Address: "x", Price: 1000, Rooms: 1, CreatedAt: ts},
		{ID: "c", Title: "C", Address: "x", Price: 1000, Rooms: 1, CreatedAt: ts},
	}
	page, err := listing.List(snap, "", 10, domain.Filters{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if !sameIDs(page.Items, "a", "b", "c") {
		t.Fatalf("tie order not stable: %v", ids(page.Items))
	}
}

func TestSearch_EmptyQueryShortCircuits(t *testing.T) {
	if got := listing.Search(snapshot(), ""); len(got) != 0 {
		t.Fatalf("empty query must return nothing, got %d items", len(got))
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	upper := listing.Search(snapshot(), "TAIPEI")
	lower := listing.Search(snapshot(), "taipei")
	if len(upper) == 0 {
		t.Fatalf("expected matches for TAIPEI")
	}
	if len(upper) != len(lower) {
		t.Fatalf("case sensitivity leak: %d vs %d", len(upper), len(lower))
	}
	for i := range upper {
		if upper[i].ID != lower[i].ID {
			t.Fatalf("result sets differ at %d: %s vs %s", i, upper[i].ID, lower[i].ID)
		}
	}
}

func TestSearch_MatchesAddressLandlordAndTitle(t *testing.T) {
	if got := listing.Search(snapshot(), "songren"); !sameIDs(got, "property-1") {
		t.Fatalf("address search: %v", ids(got))
	}
	if got := listing.Search(snapshot(), "ms. lee"); !sameIDs(got, "property-2", "property-4") {
		t.Fatalf("landlord search: %v", ids(got))
	}
	if got := listing.Search(snapshot(), "riverside"); !sameIDs(got, "property-5") {
		t.Fatalf("title search: %v", ids(got))
	}
}

func TestSearch_ReturnsSnapshotOrder(t *testing.T) {
	got := listing.Search(snapshot(), "taipei")
	if !sameIDs(got, "property-1", "property-2", "property-3", "property-4", "property-5") {
		t.Fatalf("expected snapshot order, got %v", ids(got))
	}
}
