package domain

import "time"

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether l is one of the three known tiers.
func (l RiskLevel) Valid() bool {
	return l == RiskLow || l == RiskMedium || l == RiskHigh
}

type Property struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	Price        int       `json:"price"` // monthly, NT$
	Size         float64   `json:"size"`  // ping
	Rooms        int       `json:"rooms"`
	Bathrooms    int       `json:"bathrooms"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	LandlordID   string    `json:"landlordId"`
	LandlordName string    `json:"landlordName"` // denormalized at write time
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	RiskScore    int       `json:"riskScore,omitempty"`
	RiskLevel    RiskLevel `json:"riskLevel,omitempty"`
	RiskFactors  []string  `json:"riskFactors,omitempty"`
}

type Landlord struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Properties    int       `json:"properties"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int       `json:"reviewCount"`
	RiskScore     int       `json:"riskScore,omitempty"`
	RiskLevel     RiskLevel `json:"riskLevel,omitempty"`
	RiskFactors   []string  `json:"riskFactors,omitempty"`
}

// Filters narrows a listing query. Zero values mean unconstrained;
// RiskLevel also treats "any" as unconstrained.
type Filters struct {
	MinPrice  int
	MaxPrice  int
	Rooms     int
	RiskLevel string
}

type PropertyPage struct {
	Items      []Property `json:"items"`
	NextCursor string     `json:"nextCursor,omitempty"`
	HasMore    bool       `json:"hasMore"`
}

// RiskAlerts groups the highest-risk landlords and properties for the
// disclosure view, each sorted by risk score descending.
type RiskAlerts struct {
	Landlords  []Landlord `json:"landlords"`
	Properties []Property `json:"properties"`
}
