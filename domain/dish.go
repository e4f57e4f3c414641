package domain

// Dish belongs to exactly one restaurant through RestaurantID.
type Dish struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	RestaurantID string  `json:"restaurantId"`
	CreatedAt    int64   `json:"createdAt"`
}

// DishView is the client-facing projection of a dish. It never carries the
// dish id, its timestamps or the raw restaurant reference.
type DishView struct {
	Name       string        `json:"name"`
	Price      float64       `json:"price"`
	Restaurant RestaurantRef `json:"restaurant"`
}

// View projects the dish using its owning restaurant.
func (d Dish) View(owner Restaurant) DishView {
	return DishView{
		Name:       d.Name,
		Price:      d.Price,
		Restaurant: owner.Ref(),
	}
}
