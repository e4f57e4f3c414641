package domain

// Restaurant is a catalog entry that dishes attach to. Records are append-only.
type Restaurant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// Ref returns the summary embedded into dish projections.
func (r Restaurant) Ref() RestaurantRef {
	return RestaurantRef{ID: r.ID, Name: r.Name}
}

// RestaurantRef is the {id, name} summary of a restaurant.
type RestaurantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
