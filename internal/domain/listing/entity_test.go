//go:build unit

package listing_test

import (
	"testing"

	"vmarket/internal/domain/listing"
	"vmarket/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Steam Key Bundle", actual.Title().Value())
		assert.Equal(t, 100, actual.Price().Value())
		assert.False(t, actual.Stock().IsInfinite())
		require.NotNil(t, actual.Stock().Count())
		assert.Equal(t, 5, *actual.Stock().Count())
		assert.False(t, actual.IsAccepted(), "new listings must start unaccepted")
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minimum valid price (free listing)",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(0) },
			},
			{
				name:   "maximum valid price",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(1000) },
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(-1) },
				errIs:  listing.ErrPriceOutOfRange,
			},
			{
				name:   "above maximum price",
				mutate: func(b *builder.ListingBuilder) { b.WithPrice(1001) },
				errIs:  listing.ErrPriceOutOfRange,
			},
		})
	})

	t.Run("stock validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single unit",
				mutate: func(b *builder.ListingBuilder) { b.WithStock(1) },
			},
			{
				name:   "infinite stock",
				mutate: func(b *builder.ListingBuilder) { b.WithInfiniteStock() },
			},
			{
				name:   "zero stock",
				mutate: func(b *builder.ListingBuilder) { b.WithStock(0) },
				errIs:  listing.ErrInvalidStock,
			},
			{
				name:   "negative stock",
				mutate: func(b *builder.ListingBuilder) { b.WithStock(-3) },
				errIs:  listing.ErrInvalidStock,
			},
		})
	})

	t.Run("text field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.ListingBuilder) { b.Title = "" },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "whitespace only title",
				mutate: func(b *builder.ListingBuilder) { b.Title = "   " },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ListingBuilder) { b.Description = "" },
				errIs:  listing.ErrEmptyDescr,
			},
			{
				name:   "empty link",
				mutate: func(b *builder.ListingBuilder) { b.Link = "" },
				errIs:  listing.ErrEmptyLink,
			},
			{
				name:   "whitespace only link",
				mutate: func(b *builder.ListingBuilder) { b.Link = "  " },
				errIs:  listing.ErrEmptyLink,
			},
		})
	})

	t.Run("title trimming", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().
			With(func(b *builder.ListingBuilder) { b.Title = "  Trimmed Title  " }).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Trimmed Title", actual.Title().Value())
	})

	t.Run("infinite stock has no count", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().WithInfiniteStock().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, actual.Stock().IsInfinite())
		assert.Nil(t, actual.Stock().Count())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		l1, err1 := builder.NewListingBuilder().BuildDomain()
		l2, err2 := builder.NewListingBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)
		require.NotNil(t, l1)
		require.NotNil(t, l2)

		assert.NotEqual(t, l1.ID(), l2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
