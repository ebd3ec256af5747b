package menu

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateDishRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
	Image       string  `json:"image"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
}

type UpdateDishRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
	CategoryID  uint    `json:"categoryId" validate:"required"`
}
