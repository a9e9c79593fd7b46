package memory_test

import (
	"context"
	"errors"
	"testing"

	"rentwatch/internal/domain"
	"rentwatch/internal/shared"
	"rentwatch/internal/storage/memory"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	ctx := context.Background()
	for _, l := range shared.FixtureLandlords() {
		if err := s.SaveLandlord(ctx, l); err != nil {
			t.Fatalf("seed landlord: %v", err)
		}
	}
	for _, p := range shared.FixtureProperties() {
		if err := s.SaveProperty(ctx, p); err != nil {
			t.Fatalf("seed property: %v", err)
		}
	}
	for _, r := range shared.FixtureReviews() {
		if err := s.SaveReview(ctx, r); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}
	return s
}

func TestListAll_InsertionOrder(t *testing.T) {
	s := seeded(t)
	ps, err := s.ListAll(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	for i, p := range ps {
		want := shared.FixtureProperties()[i].ID
		if p.ID != want {
			t.Fatalf("order broken at %d: got %s, want %s", i, p.ID, want)
		}
	}
}

func TestListAll_ReturnsACopy(t *testing.T) {
	s := seeded(t)
	ps, _ := s.ListAll(context.Background())
	ps[0].Title = "mutated"

	again, _ := s.ListAll(context.Background())
	if again[0].Title == "mutated" {
		t.Fatalf("store aliased its backing slice")
	}
}

func TestSaveProperty_DuplicateID(t *testing.T) {
	s := seeded(t)
	err := s.SaveProperty(context.Background(), domain.Property{ID: "property-1"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestUpdateAndDelete_NotFound(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	if err := s.UpdateProperty(ctx, domain.Property{ID: "property-99"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update: want ErrNotFound, got %v", err)
	}
	if err := s.DeleteProperty(ctx, "property-99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete: want ErrNotFound, got %v", err)
	}
	if _, err := s.GetProperty(ctx, "property-99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get: want ErrNotFound, got %v", err)
	}
}

func TestDeleteProperty_RemovesFromOrder(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	if err := s.DeleteProperty(ctx, "property-3"); err != nil {
		t.Fatalf("err: %v", err)
	}
	ps, _ := s.ListAll(ctx)
	if len(ps) != 4 {
		t.Fatalf("got %d properties, want 4", len(ps))
	}
	for _, p := range ps {
		if p.ID == "property-3" {
			t.Fatalf("deleted property still listed")
		}
	}
}

func TestListReviews_FiltersByProperty(t *testing.T) {
	s := seeded(t)
	rs, err := s.ListReviews(context.Background(), "property-1")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("got %d reviews, want 2", len(rs))
	}
	none, _ := s.ListReviews(context.Background(), "property-5")
	if len(none) != 0 {
		t.Fatalf("expected no reviews, got %d", len(none))
	}
}

func TestSaveLandlord_UpsertsInPlace(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	if err := s.SaveLandlord(ctx, domain.Landlord{ID: "landlord-2", Name: "Ms. Lee-Chen"}); err != nil {
		t.Fatalf("err: %v", err)
	}
	l, _ := s.GetLandlord(ctx, "landlord-2")
	if l.Name != "Ms. Lee-Chen" {
		t.Fatalf("upsert did not replace: %+v", l)
	}
	lls, _ := s.ListLandlords(ctx)
	if len(lls) != 3 {
		t.Fatalf("upsert duplicated: %d landlords", len(lls))
	}
}
