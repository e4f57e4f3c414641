package domain

import "time"

// Snapshot is the whole persisted dataset, loaded and saved as one unit.
type Snapshot struct {
	Restaurants []Restaurant `json:"restaurants"`
	Dishes      []Dish       `json:"dishes"`
}

// NewSnapshot returns an empty dataset whose collections encode as [].
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Restaurants: []Restaurant{},
		Dishes:      []Dish{},
	}
}

// Normalize replaces nil collections with empty ones.
func (s *Snapshot) Normalize() {
	if s.Restaurants == nil {
		s.Restaurants = []Restaurant{}
	}
	if s.Dishes == nil {
		s.Dishes = []Dish{}
	}
}

// FindRestaurant looks a restaurant up by id.
func (s *Snapshot) FindRestaurant(id string) (Restaurant, bool) {
	for _, r := range s.Restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return Restaurant{}, false
}

// LatestCreatedAt returns the highest creation timestamp in the dataset.
func (s *Snapshot) LatestCreatedAt() int64 {
	var latest int64
	for _, r := range s.Restaurants {
		latest = max(latest, r.CreatedAt)
	}
	for _, d := range s.Dishes {
		latest = max(latest, d.CreatedAt)
	}
	return latest
}

// NextCreatedAt returns a Unix millisecond timestamp strictly greater than
// latest, using now when the clock is ahead.
func NextCreatedAt(now time.Time, latest int64) int64 {
	return max(now.UnixMilli(), latest+1)
}
