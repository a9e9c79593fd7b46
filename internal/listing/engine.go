// Package listing implements the property listing pipeline: conjunctive
// filtering, newest-first ordering, keyset pagination, and substring search.
// All functions are pure over the snapshot they are given.
package listing

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"rentwatch/internal/domain"
)

// cursor is the keyset for resuming a page: the creation time and id of the
// last item returned. It is resolved against the filtered, sorted ordering,
// so pages stay correct when unrelated items are inserted or deleted.
type cursor struct {
	CreatedAt time.Time
	ID        string
}

func encodeCursor(p domain.Property) string {
	raw := strconv.FormatInt(p.CreatedAt.UnixNano(), 10) + ":" + p.ID
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(s string) (cursor, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return cursor{}, fmt.Errorf("%w: bad cursor", domain.ErrInvalidArgument)
	}
	nanos, id, ok := strings.Cut(string(b), ":")
	if !ok || id == "" {
		return cursor{}, fmt.Errorf("%w: bad cursor", domain.ErrInvalidArgument)
	}
	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return cursor{}, fmt.Errorf("%w: bad cursor", domain.ErrInvalidArgument)
	}
	return cursor{CreatedAt: time.Unix(0, n), ID: id}, nil
}

func matches(p domain.Property, f domain.Filters) bool {
	if f.MinPrice > 0 && p.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Rooms > 0 && p.Rooms < f.Rooms {
		return false
	}
	if f.RiskLevel != "" && f.RiskLevel != "any" && string(p.RiskLevel) != f.RiskLevel {
		return false
	}
	return true
}

// List filters the snapshot, orders it newest-first (ties keep snapshot
// order), and returns the page after cur. An empty cur means the first page.
// pageSize must be positive.
func List(snapshot []domain.Property, cur string, pageSize int, f domain.Filters) (domain.PropertyPage, error) {
	if pageSize <= 0 {
		return domain.PropertyPage{}, fmt.Errorf("%w: page size must be positive, got %d", domain.ErrInvalidArgument, pageSize)
	}

	filtered := make([]domain.Property, 0, len(snapshot))
	for _, p := range snapshot {
		if matches(p, f) {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	start := 0
	if cur != "" {
		c, err := decodeCursor(cur)
		if err != nil {
			return domain.PropertyPage{}, err
		}
		start = resume(filtered, c)
	}

	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	page := domain.PropertyPage{
		Items:   append([]domain.Property(nil), filtered[start:end]...),
		HasMore: end < len(filtered),
	}
	if len(page.Items) > 0 {
		page.NextCursor = encodeCursor(page.Items[len(page.Items)-1])
	}
	return page, nil
}

// resume finds the index just past the cursor item in the filtered ordering.
// If the item is gone (deleted, or no longer matching the filters), it falls
// back to the first item strictly older than the cursor timestamp, so a stale
// cursor degrades to a small overlap-free skip instead of restarting.
func resume(filtered []domain.Property, c cursor) int {
	for i, p := range filtered {
		if p.ID == c.ID {
			return i + 1
		}
	}
	for i, p := range filtered {
		if p.CreatedAt.Before(c.CreatedAt) {
			return i
		}
	}
	return len(filtered)
}

// Search returns every property whose address, landlord name, or title
// contains query, case-insensitively, in snapshot order. An empty query
// returns nothing rather than everything.
func Search(snapshot []domain.Property, query string) []domain.Property {
	if query == "" {
		return []domain.Property{}
	}
	q := strings.ToLower(query)
	out := []domain.Property{}
	for _, p := range snapshot {
		if strings.Contains(strings.ToLower(p.Address), q) ||
			strings.Contains(strings.ToLower(p.LandlordName), q) ||
			strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}
