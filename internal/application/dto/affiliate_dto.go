package dto

import "time"

// CreateAffiliateRequest admin input for registering a chamber/association.
type CreateAffiliateRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Region string `json:"region"`
}

// AffiliateResponse output of an affiliate.
type AffiliateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AffiliateListResponse paginated list of affiliates.
type AffiliateListResponse struct {
	Items []AffiliateResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
