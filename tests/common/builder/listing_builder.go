//go:build unit || e2e

package builder

import (
	"time"

	domlisting "vmarket/internal/domain/listing"
	reqdto "vmarket/internal/handler/dto/request"
	"vmarket/internal/usecase/queries"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	Title          string
	Description    string
	Price          int
	Link           string
	IsInfinite     bool
	Stock          *int
	SellerID       uuid.UUID
	SellerUsername string
	IsAccepted     bool
	CreatedAt      time.Time
}

func NewListingBuilder() *ListingBuilder {
	stock := 5
	return &ListingBuilder{
		Title:          "Steam Key Bundle",
		Description:    "Three indie games, one key each",
		Price:          100,
		Link:           "https://example.com/delivery/abc123",
		IsInfinite:     false,
		Stock:          &stock,
		SellerID:       uuid.New(),
		SellerUsername: "seller_one",
		IsAccepted:     true,
		CreatedAt:      time.Now(),
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithPrice(price int) *ListingBuilder {
	b.Price = price
	return b
}

func (b *ListingBuilder) WithInfiniteStock() *ListingBuilder {
	b.IsInfinite = true
	b.Stock = nil
	return b
}

func (b *ListingBuilder) WithStock(count int) *ListingBuilder {
	b.IsInfinite = false
	b.Stock = &count
	return b
}

// Build methods
func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	title, err := domlisting.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	price, err := domlisting.NewPrice(b.Price)
	if err != nil {
		return nil, err
	}
	var stock domlisting.Stock
	if b.IsInfinite {
		stock = domlisting.InfiniteStock()
	} else {
		count := 0
		if b.Stock != nil {
			count = *b.Stock
		}
		stock, err = domlisting.NewFiniteStock(count)
		if err != nil {
			return nil, err
		}
	}
	return domlisting.NewListing(title, b.Description, price, b.Link, stock, b.SellerID, b.SellerUsername)
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	price := b.Price
	isInfinite := b.IsInfinite
	return reqdto.CreateListingRequest{
		Title:       b.Title,
		Description: b.Description,
		Price:       &price,
		Link:        b.Link,
		IsInfinite:  &isInfinite,
		Stock:       b.Stock,
	}
}

func (b *ListingBuilder) BuildViewQuery() *queries.ListingView {
	return &queries.ListingView{
		ID:             uuid.New(),
		Title:          b.Title,
		Description:    b.Description,
		Price:          b.Price,
		IsInfinite:     b.IsInfinite,
		Stock:          copyStock(b.Stock),
		SellerUsername: b.SellerUsername,
		CreatedAt:      b.CreatedAt,
	}
}

func (b *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:             uuid.New(),
		Title:          b.Title,
		Description:    b.Description,
		Price:          b.Price,
		Link:           b.Link,
		IsInfinite:     b.IsInfinite,
		Stock:          copyStock(b.Stock),
		SellerID:       b.SellerID,
		SellerUsername: b.SellerUsername,
		IsAccepted:     b.IsAccepted,
		CreatedAt:      b.CreatedAt,
	}
}

func copyStock(s *int) *int {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
