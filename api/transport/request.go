package transport

// The request bodies keep their fields untyped so the validation layer can
// tell a missing field from one of the wrong JSON type.

type RestaurantRequest struct {
	Name any `json:"name"`
}

type DishRequest struct {
	Name  any `json:"name"`
	Price any `json:"price"`
}
