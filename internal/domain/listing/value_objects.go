package listing

import (
	"errors"
	"strings"
)

const (
	MinPrice = 0
	MaxPrice = 1000
)

var (
	ErrPriceOutOfRange = errors.New("price must be between 0 and 1000")
	ErrInvalidStock    = errors.New("stock must be a positive integer")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyDescr      = errors.New("description is required")
	ErrEmptyLink       = errors.New("link is required")
)

type Price struct {
	value int
}

func NewPrice(v int) (Price, error) {
	if v < MinPrice || v > MaxPrice {
		return Price{}, ErrPriceOutOfRange
	}
	return Price{value: v}, nil
}

func (p Price) Value() int {
	return p.value
}

// Stock is either an unlimited supply or a positive unit count.
type Stock struct {
	infinite bool
	count    int
}

func InfiniteStock() Stock {
	return Stock{infinite: true}
}

func NewFiniteStock(count int) (Stock, error) {
	if count <= 0 {
		return Stock{}, ErrInvalidStock
	}
	return Stock{count: count}, nil
}

func (s Stock) IsInfinite() bool {
	return s.infinite
}

// Count returns nil for infinite stock, matching the nullable column.
func (s Stock) Count() *int {
	if s.infinite {
		return nil
	}
	c := s.count
	return &c
}

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	return Title{value: s}, nil
}

func (t Title) Value() string {
	return t.value
}
