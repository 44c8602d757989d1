package request

import "vmarket/internal/usecase/commands"

type CreateListingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int   `json:"price" binding:"required,min=0,max=1000"`
	Link        string `json:"link" binding:"required"`
	IsInfinite  *bool  `json:"isInfinite" binding:"required"`
	Stock       *int   `json:"stock,omitempty" binding:"omitempty,min=1"`
}

func (r CreateListingRequest) ToInput() commands.CreateListingInput {
	return commands.CreateListingInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Link:        r.Link,
		IsInfinite:  *r.IsInfinite,
		Stock:       r.Stock,
	}
}
