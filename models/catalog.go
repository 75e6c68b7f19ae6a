package models

// Service is a priced, timed offering a shop sells (e.g. an express wash).
// Catalog entries are immutable; bookings copy the price at creation time.
type Service struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// Shop is a vehicle-wash business listed on the marketplace.
// Verified shops are visible to customers; shops still pending approval
// are visible only through the admin portal.
type Shop struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Location        string    `json:"location"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
	ImageURL        string    `json:"imageUrl"`
	IsVerified      bool      `json:"isVerified"`
	PendingApproval bool      `json:"pendingApproval"`
	CommissionRate  float64   `json:"commissionRate"` // percentage, e.g. 15
	Services        []Service `json:"services"`
}

// ServiceByID returns the catalog entry with the given id, or nil if the
// shop does not offer it.
func (s *Shop) ServiceByID(serviceID string) *Service {
	for i := range s.Services {
		if s.Services[i].ID == serviceID {
			return &s.Services[i]
		}
	}
	return nil
}
