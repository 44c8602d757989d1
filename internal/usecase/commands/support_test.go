//go:build unit

package commands_test

import (
	"context"
	"errors"
	"time"

	"vmarket/internal/domain/listing"
	"vmarket/internal/infra"
	"vmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows in result set")

type fakeNotification struct {
	SellerID      uuid.UUID
	BuyerUsername string
	ProductTitle  string
	IsRead        bool
	CreatedAt     time.Time
}

type fakePurchaseEvent struct {
	BuyerUsername string
	ItemTitle     string
	CreatedAt     time.Time
}

type fakeState struct {
	users          map[uuid.UUID]*shared.UserSnapshot
	listings       map[uuid.UUID]*shared.ListingSnapshot
	giftCodes      map[string]int64
	notifications  []fakeNotification
	purchaseEvents []fakePurchaseEvent
}

func newFakeState() *fakeState {
	return &fakeState{
		users:     make(map[uuid.UUID]*shared.UserSnapshot),
		listings:  make(map[uuid.UUID]*shared.ListingSnapshot),
		giftCodes: make(map[string]int64),
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for id, u := range s.users {
		cp := *u
		c.users[id] = &cp
	}
	for id, l := range s.listings {
		cp := *l
		if l.Stock != nil {
			st := *l.Stock
			cp.Stock = &st
		}
		c.listings[id] = &cp
	}
	for code, amount := range s.giftCodes {
		c.giftCodes[code] = amount
	}
	c.notifications = append(c.notifications, s.notifications...)
	c.purchaseEvents = append(c.purchaseEvents, s.purchaseEvents...)
	return c
}

func (s *fakeState) seedUser(username string, balance int64) uuid.UUID {
	id := uuid.New()
	s.users[id] = &shared.UserSnapshot{ID: id, Username: username, Balance: balance}
	return id
}

func (s *fakeState) seedListing(l *shared.ListingSnapshot) uuid.UUID {
	cp := *l
	if l.Stock != nil {
		st := *l.Stock
		cp.Stock = &st
	}
	s.listings[cp.ID] = &cp
	return cp.ID
}

func (s *fakeState) balance(id uuid.UUID) int64 {
	if u, ok := s.users[id]; ok {
		return u.Balance
	}
	return -1
}

// fakeUoW mimics transactional semantics: the callback runs against a
// copy of the state, which replaces the original only on success.
type fakeUoW struct {
	state *fakeState
}

func newFakeUoW(state *fakeState) *fakeUoW {
	return &fakeUoW{state: state}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	work := u.state.clone()
	if err := fn(ctx, &fakeTx{state: work}); err != nil {
		return err
	}
	*u.state = *work
	return nil
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Users() shared.UserRepository                   { return &fakeUserRepo{state: t.state} }
func (t *fakeTx) Listings() shared.ListingRepository             { return &fakeListingRepo{state: t.state} }
func (t *fakeTx) GiftCodes() shared.GiftCodeRepository           { return &fakeGiftCodeRepo{state: t.state} }
func (t *fakeTx) Notifications() shared.NotificationRepository   { return &fakeNotificationRepo{state: t.state} }
func (t *fakeTx) PurchaseEvents() shared.PurchaseEventRepository { return &fakePurchaseEventRepo{state: t.state} }

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.state.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeUserRepo) AddBalance(_ context.Context, id uuid.UUID, delta int64) error {
	u, ok := r.state.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
	}
	if u.Balance+delta < 0 {
		return infra.WrapRepoErr("balance check failed", errors.New("balance would go negative"), infra.KindCheckFailed)
	}
	u.Balance += delta
	return nil
}

type fakeListingRepo struct {
	state *fakeState
}

func (r *fakeListingRepo) Create(_ context.Context, l *listing.Listing, createdAt time.Time) error {
	snap := &shared.ListingSnapshot{
		ID:             l.ID(),
		Title:          l.Title().Value(),
		Description:    l.Description(),
		Price:          l.Price().Value(),
		Link:           l.Link(),
		IsInfinite:     l.Stock().IsInfinite(),
		Stock:          l.Stock().Count(),
		SellerID:       l.SellerID(),
		SellerUsername: l.SellerUsername(),
		IsAccepted:     l.IsAccepted(),
		CreatedAt:      createdAt,
	}
	r.state.listings[snap.ID] = snap
	return nil
}

func (r *fakeListingRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	l, ok := r.state.listings[id]
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", errNoRows, infra.KindNotFound)
	}
	cp := *l
	if l.Stock != nil {
		st := *l.Stock
		cp.Stock = &st
	}
	return &cp, nil
}

func (r *fakeListingRepo) SetStock(_ context.Context, id uuid.UUID, stock int) error {
	l, ok := r.state.listings[id]
	if !ok {
		return infra.WrapRepoErr("listing not found", errNoRows, infra.KindNotFound)
	}
	l.Stock = &stock
	return nil
}

func (r *fakeListingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.state.listings[id]; !ok {
		return infra.WrapRepoErr("listing not found", errNoRows, infra.KindNotFound)
	}
	delete(r.state.listings, id)
	return nil
}

type fakeGiftCodeRepo struct {
	state *fakeState
}

func (r *fakeGiftCodeRepo) Insert(_ context.Context, code string, amount int64) error {
	if _, exists := r.state.giftCodes[code]; exists {
		return infra.WrapRepoErr("duplicate gift code", errors.New("duplicate key"), infra.KindDuplicateKey)
	}
	r.state.giftCodes[code] = amount
	return nil
}

func (r *fakeGiftCodeRepo) DeleteReturningAmount(_ context.Context, code string) (int64, error) {
	amount, ok := r.state.giftCodes[code]
	if !ok {
		return 0, infra.WrapRepoErr("gift code not found", errNoRows, infra.KindNotFound)
	}
	delete(r.state.giftCodes, code)
	return amount, nil
}

type fakeNotificationRepo struct {
	state *fakeState
}

func (r *fakeNotificationRepo) Create(_ context.Context, sellerID uuid.UUID, buyerUsername, productTitle string, at time.Time) error {
	r.state.notifications = append(r.state.notifications, fakeNotification{
		SellerID:      sellerID,
		BuyerUsername: buyerUsername,
		ProductTitle:  productTitle,
		CreatedAt:     at,
	})
	return nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, sellerID uuid.UUID) (int64, error) {
	var n int64
	for i := range r.state.notifications {
		if r.state.notifications[i].SellerID == sellerID && !r.state.notifications[i].IsRead {
			r.state.notifications[i].IsRead = true
			n++
		}
	}
	return n, nil
}

type fakePurchaseEventRepo struct {
	state *fakeState
}

func (r *fakePurchaseEventRepo) Create(_ context.Context, buyerUsername, itemTitle string, at time.Time) error {
	r.state.purchaseEvents = append(r.state.purchaseEvents, fakePurchaseEvent{
		BuyerUsername: buyerUsername,
		ItemTitle:     itemTitle,
		CreatedAt:     at,
	})
	return nil
}
