package domain

// DriverRecord is the projection of one roster row: the four logical fields
// the lookup endpoint returns. All values are trimmed cell text; an absent
// cell projects as the empty string.
type DriverRecord struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	ExpiryDate string `json:"expiry_date"`
	Status     string `json:"status"`
}
