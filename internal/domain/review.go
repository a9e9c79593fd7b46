package domain

import "time"

type Review struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Rating     int       `json:"rating"` // 1..5
	Content    string    `json:"content"`
	Pros       string    `json:"pros,omitempty"`
	Cons       string    `json:"cons,omitempty"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Helpful    int       `json:"helpful"`
	Reported   bool      `json:"reported"`
}
