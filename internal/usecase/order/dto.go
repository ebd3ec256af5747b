package order

type PlaceOrderRequest struct {
	UserID   uint `json:"userId" validate:"required"`
	DishID   uint `json:"dishId" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
