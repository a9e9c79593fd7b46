package shared

import (
	"time"

	"rentwatch/internal/domain"
)

// Fixture dataset used by the seeder and as a deterministic test corpus:
// three landlords across the risk tiers, five Taipei rentals with strictly
// increasing creation dates, and a handful of reviews.

func FixtureLandlords() []domain.Landlord {
	return []domain.Landlord{
		{
			ID: "landlord-1", Name: "Mr. Chang", Properties: 5, AverageRating: 2.3, ReviewCount: 12,
			RiskScore: 85, RiskLevel: domain.RiskHigh,
			RiskFactors: []string{"multiple rent dispute records", "withheld deposits", "entered unit without notice"},
		},
		{
			ID: "landlord-2", Name: "Ms. Lee", Properties: 3, AverageRating: 3.7, ReviewCount: 8,
			RiskScore: 45, RiskLevel: domain.RiskMedium,
			RiskFactors: []string{"refuses repair requests", "unreasonable lease terms"},
		},
		{
			ID: "landlord-3", Name: "Mr. Wang", Properties: 8, AverageRating: 4.5, ReviewCount: 15,
			RiskScore: 15, RiskLevel: domain.RiskLow,
			RiskFactors: []string{"occasional slow communication"},
		},
	}
}

func FixtureProperties() []domain.Property {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []domain.Property{
		{
			ID: "property-1", Title: "Luxury 2BR in Xinyi", Address: "100 Songren Rd, Xinyi District, Taipei",
			Price: 35000, Size: 25, Rooms: 2, Bathrooms: 1,
			Description: "Renovated two-bedroom near the MRT with full appliances and 24-hour security.",
			Images:      []string{"https://images.example.com/property-1a.jpg", "https://images.example.com/property-1b.jpg"},
			LandlordID:  "landlord-1", LandlordName: "Mr. Chang",
			CreatedAt: day("2023-05-15"), UpdatedAt: day("2023-05-15"),
			RiskScore: 85, RiskLevel: domain.RiskHigh,
			RiskFactors: []string{"landlord has rent dispute history", "structural safety concerns", "repeated flooding incidents"},
		},
		{
			ID: "property-2", Title: "Cozy 3BR in Daan", Address: "45 Heping E Rd, Daan District, Taipei",
			Price: 42000, Size: 30, Rooms: 3, Bathrooms: 2,
			Description: "Bright three-bedroom near Daan Forest Park, balcony, fully furnished.",
			Images:      []string{"https://images.example.com/property-2a.jpg"},
			LandlordID:  "landlord-2", LandlordName: "Ms. Lee",
			CreatedAt: day("2023-06-20"), UpdatedAt: day("2023-06-20"),
			RiskScore: 45, RiskLevel: domain.RiskMedium,
			RiskFactors: []string{"noise complaints", "aging plumbing"},
		},
		{
			ID: "property-3", Title: "Modern 1BR in Zhongshan", Address: "8 Nanjing E Rd, Zhongshan District, Taipei",
			Price: 28000, Size: 18, Rooms: 1, Bathrooms: 1,
			Description: "Compact modern studio next to Zhongshan MRT, doorman building.",
			Images:      []string{"https://images.example.com/property-3a.jpg"},
			LandlordID:  "landlord-3", LandlordName: "Mr. Wang",
			CreatedAt: day("2023-07-05"), UpdatedAt: day("2023-07-05"),
			RiskScore: 15, RiskLevel: domain.RiskLow,
			RiskFactors: []string{"weak building management"},
		},
		{
			ID: "property-4", Title: "Refined 2BR in Songshan", Address: "22 Minsheng E Rd, Songshan District, Taipei",
			Price: 32000, Size: 22, Rooms: 2, Bathrooms: 1,
			Description: "Well-kept two-bedroom close to the MRT, suits a small family.",
			Images:      []string{"https://images.example.com/property-4a.jpg"},
			LandlordID:  "landlord-2", LandlordName: "Ms. Lee",
			CreatedAt: day("2023-08-10"), UpdatedAt: day("2023-08-10"),
			RiskScore: 25, RiskLevel: domain.RiskLow,
			RiskFactors: []string{"occasional noise"},
		},
		{
			ID: "property-5", Title: "Riverside 3BR in Neihu", Address: "301 Chenggong Rd, Neihu District, Taipei",
			Price: 38000, Size: 28, Rooms: 3, Bathrooms: 2,
			Description: "Spacious riverside three-bedroom with a large balcony, gym and pool in the complex.",
			Images:      []string{"https://images.example.com/property-5a.jpg"},
			LandlordID:  "landlord-3", LandlordName: "Mr. Wang",
			CreatedAt: day("2023-09-15"), UpdatedAt: day("2023-09-15"),
			RiskScore: 20, RiskLevel: domain.RiskLow,
			RiskFactors: []string{"limited parking"},
		},
	}
}

func FixtureReviews() []domain.Review {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []domain.Review{
		{
			ID: "review-1", PropertyID: "property-1", UserID: "user-1", UserName: "Chen Hsiao-ming",
			Rating:  2,
			Content: "Landlord withheld the deposit over trivial wear and the leak was never fixed.",
			Pros:    "convenient location", Cons: "unresponsive landlord, water damage",
			Images:    []string{"https://images.example.com/review-1a.jpg"},
			CreatedAt: day("2023-06-10"), UpdatedAt: day("2023-06-10"), Helpful: 15,
		},
		{
			ID: "review-2", PropertyID: "property-1", UserID: "user-2", UserName: "Lin Hsiao-hua",
			Rating:  1,
			Content: "Landlord entered the unit without notice and the mold problem is severe.",
			Pros:    "good location", Cons: "privacy violations, mold",
			Images:    []string{},
			CreatedAt: day("2023-07-15"), UpdatedAt: day("2023-07-15"), Helpful: 20,
		},
		{
			ID: "review-3", PropertyID: "property-2", UserID: "user-3", UserName: "Chang Hsiao-fang",
			Rating:  4,
			Content: "Good overall experience, landlord responds quickly, some street noise at night.",
			Pros:    "responsive landlord, clean building", Cons: "occasional noise",
			Images:    []string{},
			CreatedAt: day("2023-08-20"), UpdatedAt: day("2023-08-20"), Helpful: 8,
		},
		{
			ID: "review-4", PropertyID: "property-3", UserID: "user-4", UserName: "Wang Hsiao-ming",
			Rating:  5,
			Content: "Very satisfied, friendly landlord, unit in great shape, everything nearby.",
			Pros:    "friendly landlord, great condition", Cons: "none",
			Images:    []string{"https://images.example.com/review-4a.jpg"},
			CreatedAt: day("2023-09-25"), UpdatedAt: day("2023-09-25"), Helpful: 12,
		},
	}
}
