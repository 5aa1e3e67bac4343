package entity

import "time"

// Affiliate is a chamber or association a business can belong to.
// Every business names one required primary affiliate (its chamber) and may
// reference any number of secondary affiliates through join rows.
type Affiliate struct {
	ID        string
	Name      string
	Region    string
	CreatedAt time.Time
}
