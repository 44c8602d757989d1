package listing

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Listing is a marketplace entry describing an item for sale. New
// listings always start unaccepted; moderation flips the flag out of
// band before the listing becomes purchasable.
type Listing struct {
	id             uuid.UUID
	title          Title
	description    string
	price          Price
	link           string
	stock          Stock
	sellerID       uuid.UUID
	sellerUsername string
	isAccepted     bool
	createdAt      time.Time
}

func NewListing(
	title Title,
	description string,
	price Price,
	link string,
	stock Stock,
	sellerID uuid.UUID,
	sellerUsername string,
) (*Listing, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescr
	}

	link = strings.TrimSpace(link)
	if link == "" {
		return nil, ErrEmptyLink
	}

	return &Listing{
		id:             uuid.New(),
		title:          title,
		description:    description,
		price:          price,
		link:           link,
		stock:          stock,
		sellerID:       sellerID,
		sellerUsername: sellerUsername,
		isAccepted:     false,
	}, nil
}

func (l *Listing) ID() uuid.UUID          { return l.id }
func (l *Listing) Title() Title           { return l.title }
func (l *Listing) Description() string    { return l.description }
func (l *Listing) Price() Price           { return l.price }
func (l *Listing) Link() string           { return l.link }
func (l *Listing) Stock() Stock           { return l.stock }
func (l *Listing) SellerID() uuid.UUID    { return l.sellerID }
func (l *Listing) SellerUsername() string { return l.sellerUsername }
func (l *Listing) IsAccepted() bool       { return l.isAccepted }
func (l *Listing) CreatedAt() time.Time   { return l.createdAt }
