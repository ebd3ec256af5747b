package menu

// Category groups dishes on the menu. Image is a plain file reference;
// upload storage lives outside this service.
type Category struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Dish is a single menu item. Price and rating are mutable via update;
// orders snapshot the price at placement time.
type Dish struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	CategoryID  uint    `json:"categoryId"`
}
