package impl

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
)

// memStore is an in-memory database with snapshot transactions. A transaction
// works on a private copy and, at commit, fails with a version conflict when
// an offer it wrote was committed by someone else in the meantime.
type memStore struct {
	mu     sync.Mutex
	nextID atomic.Int64
	state  *memState
}

type memState struct {
	users     map[int64]entity.User
	cars      map[int64]entity.Car
	offers    map[int64]entity.CarOffer
	purchases map[int64]entity.Purchase
	favorites map[int64]entity.FavoriteCar
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		users:     map[int64]entity.User{},
		cars:      map[int64]entity.Car{},
		offers:    map[int64]entity.CarOffer{},
		purchases: map[int64]entity.Purchase{},
		favorites: map[int64]entity.FavoriteCar{},
	}}
}

func (s *memState) clone() *memState {
	c := &memState{
		users:     make(map[int64]entity.User, len(s.users)),
		cars:      make(map[int64]entity.Car, len(s.cars)),
		offers:    make(map[int64]entity.CarOffer, len(s.offers)),
		purchases: make(map[int64]entity.Purchase, len(s.purchases)),
		favorites: make(map[int64]entity.FavoriteCar, len(s.favorites)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.cars {
		c.cars[k] = v
	}
	for k, v := range s.offers {
		c.offers[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.favorites {
		c.favorites[k] = v
	}

	return c
}

// memTx is either a snapshot transaction or, when auto is set, a view that
// locks the committed state for every call.
type memTx struct {
	store *memStore
	state *memState
	auto  bool

	offerBase      map[int64]int64
	dirtyUsers     map[int64]bool
	dirtyCars      map[int64]bool
	dirtyPurchases map[int64]bool
	dirtyFavorites map[int64]bool
	deletedFavs    map[int64]bool
}

func (s *memStore) direct() *memTx {
	return &memTx{store: s, state: s.state, auto: true}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	tx := &memTx{
		store:          s,
		state:          s.state.clone(),
		offerBase:      map[int64]int64{},
		dirtyUsers:     map[int64]bool{},
		dirtyCars:      map[int64]bool{},
		dirtyPurchases: map[int64]bool{},
		dirtyFavorites: map[int64]bool{},
		deletedFavs:    map[int64]bool{},
	}
	s.mu.Unlock()

	if err := fn(tx); err != nil {
		return err
	}

	return s.commit(tx)
}

func (s *memStore) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, base := range tx.offerBase {
		if cur, ok := s.state.offers[id]; ok && cur.Version != base {
			return repository.ErrOfferVersionConflict
		}
	}
	for id := range tx.dirtyPurchases {
		p := tx.state.purchases[id]
		if p.Status == entity.PurchaseStatusCancelled {
			continue
		}
		for _, other := range s.state.purchases {
			if other.ID != p.ID && other.CarOfferID == p.CarOfferID && other.Status != entity.PurchaseStatusCancelled {
				return domainerrors.ErrOfferUnavailable
			}
		}
	}

	for id := range tx.offerBase {
		s.state.offers[id] = tx.state.offers[id]
	}
	for id := range tx.dirtyUsers {
		s.state.users[id] = tx.state.users[id]
	}
	for id := range tx.dirtyCars {
		s.state.cars[id] = tx.state.cars[id]
	}
	for id := range tx.dirtyPurchases {
		s.state.purchases[id] = tx.state.purchases[id]
	}
	for id := range tx.dirtyFavorites {
		s.state.favorites[id] = tx.state.favorites[id]
	}
	for id := range tx.deletedFavs {
		delete(s.state.favorites, id)
	}

	return nil
}

func (t *memTx) lock() func() {
	if t.auto {
		t.store.mu.Lock()

		return t.store.mu.Unlock
	}

	return func() {}
}

func (t *memTx) id() int64 {
	return t.store.nextID.Add(1)
}

func mark(set map[int64]bool, id int64) {
	if set != nil {
		set[id] = true
	}
}

func (t *memTx) NewUserRepository() repository.UserRepository {
	return memUsers{t}
}

func (t *memTx) NewCarRepository() repository.CarRepository {
	return memCars{t}
}

func (t *memTx) NewOfferRepository() repository.OfferRepository {
	return memOffers{t}
}

func (t *memTx) NewPurchaseRepository() repository.PurchaseRepository {
	return memPurchases{t}
}

func (t *memTx) NewFavoriteRepository() repository.FavoriteRepository {
	return memFavorites{t}
}

func window[T any](items []T, page entity.Page) []T {
	page = page.Normalize()
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[page.Offset:end]
}

type memUsers struct{ t *memTx }

func (r memUsers) FindByID(_ context.Context, id int64) (*entity.User, error) {
	defer r.t.lock()()
	u, ok := r.t.state.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	defer r.t.lock()()
	for _, u := range r.t.state.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUsers) ExistsByNationalID(_ context.Context, nationalID string) (bool, error) {
	defer r.t.lock()()
	for _, u := range r.t.state.users {
		if u.BuyerProfile != nil && u.BuyerProfile.NationalID == nationalID {
			return true, nil
		}
	}

	return false, nil
}

func (r memUsers) ExistsByTaxID(_ context.Context, taxID string) (bool, error) {
	defer r.t.lock()()
	for _, u := range r.t.state.users {
		if u.DealershipProfile != nil && u.DealershipProfile.TaxID == taxID {
			return true, nil
		}
	}

	return false, nil
}

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	defer r.t.lock()()
	for _, u := range r.t.state.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	user.ID = r.t.id()
	r.t.state.users[user.ID] = *user
	mark(r.t.dirtyUsers, user.ID)

	return nil
}

func (r memUsers) SetActive(_ context.Context, id int64, active bool) error {
	defer r.t.lock()()
	u, ok := r.t.state.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Active = active
	r.t.state.users[id] = u
	mark(r.t.dirtyUsers, id)

	return nil
}

type memCars struct{ t *memTx }

func (r memCars) FindByID(_ context.Context, id int64) (*entity.Car, error) {
	defer r.t.lock()()
	c, ok := r.t.state.cars[id]
	if !ok {
		return nil, repository.ErrCarNotFound
	}

	return &c, nil
}

func (r memCars) plateTaken(plate string, id int64) bool {
	for _, c := range r.t.state.cars {
		if c.ID != id && c.Plate == plate {
			return true
		}
	}

	return false
}

func (r memCars) Create(_ context.Context, car *entity.Car) error {
	defer r.t.lock()()
	if r.plateTaken(car.Plate, 0) {
		return domainerrors.ErrDuplicatePlate
	}
	car.ID = r.t.id()
	r.t.state.cars[car.ID] = *car
	mark(r.t.dirtyCars, car.ID)

	return nil
}

func (r memCars) Update(_ context.Context, car *entity.Car) error {
	defer r.t.lock()()
	if _, ok := r.t.state.cars[car.ID]; !ok {
		return repository.ErrCarNotFound
	}
	if r.plateTaken(car.Plate, car.ID) {
		return domainerrors.ErrDuplicatePlate
	}
	r.t.state.cars[car.ID] = *car
	mark(r.t.dirtyCars, car.ID)

	return nil
}

func (r memCars) SetAvailability(_ context.Context, id int64, available bool) error {
	defer r.t.lock()()
	c, ok := r.t.state.cars[id]
	if !ok {
		return repository.ErrCarNotFound
	}
	c.Available = available
	r.t.state.cars[id] = c
	mark(r.t.dirtyCars, id)

	return nil
}

func (r memCars) Search(_ context.Context, filter entity.CarFilter) ([]*entity.Car, error) {
	defer r.t.lock()()
	var out []*entity.Car
	for _, c := range r.t.state.cars {
		if filter.AvailableOnly && !c.Available {
			continue
		}
		if filter.Brand != "" && !strings.EqualFold(c.Brand, filter.Brand) {
			continue
		}
		if kw := strings.ToLower(filter.Keyword); kw != "" &&
			!strings.Contains(strings.ToLower(c.Brand+" "+c.Model), kw) {
			continue
		}
		if filter.YearFrom != nil && c.Year < *filter.YearFrom {
			continue
		}
		if filter.YearTo != nil && c.Year > *filter.YearTo {
			continue
		}
		if filter.FuelType != nil && c.FuelType != *filter.FuelType {
			continue
		}
		if filter.Transmission != nil && c.Transmission != *filter.Transmission {
			continue
		}
		car := c
		out = append(out, &car)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return window(out, filter.Page), nil
}

type memOffers struct{ t *memTx }

func (r memOffers) FindByID(_ context.Context, id int64) (*entity.CarOffer, error) {
	defer r.t.lock()()
	o, ok := r.t.state.offers[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}

	return &o, nil
}

func (r memOffers) FindByCarAndDealership(_ context.Context, carID, dealershipID int64) (*entity.CarOffer, error) {
	defer r.t.lock()()
	var best *entity.CarOffer
	for _, o := range r.t.state.offers {
		if o.CarID != carID || o.DealershipID != dealershipID {
			continue
		}
		if best == nil || (o.Available && !best.Available) || (o.Available == best.Available && o.ID > best.ID) {
			offer := o
			best = &offer
		}
	}
	if best == nil {
		return nil, repository.ErrOfferNotFound
	}

	return best, nil
}

func (r memOffers) existsOpen(carID, dealershipID, excludeID int64) bool {
	for _, o := range r.t.state.offers {
		if o.ID != excludeID && o.CarID == carID && o.DealershipID == dealershipID && o.Available {
			return true
		}
	}

	return false
}

func (r memOffers) ExistsOpen(_ context.Context, carID, dealershipID, excludeID int64) (bool, error) {
	defer r.t.lock()()

	return r.existsOpen(carID, dealershipID, excludeID), nil
}

func (r memOffers) ExistsClaimed(_ context.Context, carID, dealershipID, excludeID int64) (bool, error) {
	defer r.t.lock()()
	for _, p := range r.t.state.purchases {
		o := r.t.state.offers[p.CarOfferID]
		if o.ID != excludeID && o.CarID == carID && o.DealershipID == dealershipID && p.Status != entity.PurchaseStatusCancelled {
			return true, nil
		}
	}

	return false, nil
}

// LockPair is a no-op: concurrent listings of one pair are not exercised
// against the in-memory store.
func (r memOffers) LockPair(context.Context, int64, int64) error {
	return nil
}

func (r memOffers) list(keep func(entity.CarOffer) bool, page entity.Page) []*entity.CarOffer {
	var out []*entity.CarOffer
	for _, o := range r.t.state.offers {
		if keep(o) {
			offer := o
			out = append(out, &offer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return window(out, page)
}

func (r memOffers) ListByDealership(_ context.Context, dealershipID int64, page entity.Page) ([]*entity.CarOffer, error) {
	defer r.t.lock()()

	return r.list(func(o entity.CarOffer) bool { return o.DealershipID == dealershipID }, page), nil
}

func (r memOffers) ListAvailable(_ context.Context, page entity.Page) ([]*entity.CarOffer, error) {
	defer r.t.lock()()

	return r.list(func(o entity.CarOffer) bool { return o.Available }, page), nil
}

func (r memOffers) Create(_ context.Context, offer *entity.CarOffer) error {
	defer r.t.lock()()
	offer.ID = r.t.id()
	offer.Version = 1
	r.t.state.offers[offer.ID] = *offer
	if r.t.offerBase != nil {
		r.t.offerBase[offer.ID] = 0
	}

	return nil
}

func (r memOffers) UpdateWithVersion(_ context.Context, offer *entity.CarOffer) error {
	defer r.t.lock()()
	cur, ok := r.t.state.offers[offer.ID]
	if !ok {
		return repository.ErrOfferNotFound
	}
	if cur.Version != offer.Version {
		return repository.ErrOfferVersionConflict
	}
	if r.t.offerBase != nil {
		if _, seen := r.t.offerBase[offer.ID]; !seen {
			r.t.offerBase[offer.ID] = cur.Version
		}
	}
	offer.Version++
	r.t.state.offers[offer.ID] = *offer

	return nil
}

type memPurchases struct{ t *memTx }

func (r memPurchases) FindByID(_ context.Context, id int64) (*entity.Purchase, error) {
	defer r.t.lock()()
	p, ok := r.t.state.purchases[id]
	if !ok {
		return nil, repository.ErrPurchaseNotFound
	}

	return &p, nil
}

func (r memPurchases) hasActive(offerID, excludeID int64) bool {
	for _, p := range r.t.state.purchases {
		if p.ID != excludeID && p.CarOfferID == offerID && p.Status != entity.PurchaseStatusCancelled {
			return true
		}
	}

	return false
}

func (r memPurchases) Create(_ context.Context, purchase *entity.Purchase) error {
	defer r.t.lock()()
	if r.hasActive(purchase.CarOfferID, 0) {
		return domainerrors.ErrOfferUnavailable
	}
	purchase.ID = r.t.id()
	r.t.state.purchases[purchase.ID] = *purchase
	mark(r.t.dirtyPurchases, purchase.ID)

	return nil
}

func (r memPurchases) UpdateStatus(_ context.Context, purchase *entity.Purchase) error {
	defer r.t.lock()()
	cur, ok := r.t.state.purchases[purchase.ID]
	if !ok {
		return repository.ErrPurchaseNotFound
	}
	cur.Status = purchase.Status
	cur.UpdatedAt = purchase.UpdatedAt
	r.t.state.purchases[purchase.ID] = cur
	mark(r.t.dirtyPurchases, purchase.ID)

	return nil
}

func (r memPurchases) HasActiveForOffer(_ context.Context, offerID, excludeID int64) (bool, error) {
	defer r.t.lock()()

	return r.hasActive(offerID, excludeID), nil
}

func (r memPurchases) HasAnyForOffer(_ context.Context, offerID int64) (bool, error) {
	defer r.t.lock()()
	for _, p := range r.t.state.purchases {
		if p.CarOfferID == offerID {
			return true, nil
		}
	}

	return false, nil
}

func (r memPurchases) CountOpenByBuyer(_ context.Context, buyerID int64) (int64, error) {
	defer r.t.lock()()
	var n int64
	for _, p := range r.t.state.purchases {
		if p.BuyerID == buyerID && p.Status.IsOpen() {
			n++
		}
	}

	return n, nil
}

func (r memPurchases) list(keep func(entity.Purchase) bool, page entity.Page) []*entity.Purchase {
	var out []*entity.Purchase
	for _, p := range r.t.state.purchases {
		if keep(p) {
			purchase := p
			out = append(out, &purchase)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return window(out, page)
}

func (r memPurchases) ListByBuyer(_ context.Context, buyerID int64, page entity.Page) ([]*entity.Purchase, error) {
	defer r.t.lock()()

	return r.list(func(p entity.Purchase) bool { return p.BuyerID == buyerID }, page), nil
}

func (r memPurchases) ListByDealership(_ context.Context, dealershipID int64, page entity.Page) ([]*entity.Purchase, error) {
	defer r.t.lock()()

	return r.list(func(p entity.Purchase) bool {
		return r.t.state.offers[p.CarOfferID].DealershipID == dealershipID
	}, page), nil
}

type memFavorites struct{ t *memTx }

func (r memFavorites) FindByID(_ context.Context, id int64) (*entity.FavoriteCar, error) {
	defer r.t.lock()()
	f, ok := r.t.state.favorites[id]
	if !ok {
		return nil, repository.ErrFavoriteNotFound
	}

	return &f, nil
}

func (r memFavorites) FindByBuyerAndCar(_ context.Context, buyerID, carID int64) (*entity.FavoriteCar, error) {
	defer r.t.lock()()
	for _, f := range r.t.state.favorites {
		if f.BuyerID == buyerID && f.CarID == carID {
			return &f, nil
		}
	}

	return nil, repository.ErrFavoriteNotFound
}

func (r memFavorites) Create(_ context.Context, favorite *entity.FavoriteCar) error {
	defer r.t.lock()()
	for _, f := range r.t.state.favorites {
		if f.BuyerID == favorite.BuyerID && f.CarID == favorite.CarID {
			return domainerrors.ErrFavoriteAlreadyExists
		}
	}
	favorite.ID = r.t.id()
	r.t.state.favorites[favorite.ID] = *favorite
	mark(r.t.dirtyFavorites, favorite.ID)

	return nil
}

func (r memFavorites) Update(_ context.Context, favorite *entity.FavoriteCar) error {
	defer r.t.lock()()
	if _, ok := r.t.state.favorites[favorite.ID]; !ok {
		return repository.ErrFavoriteNotFound
	}
	r.t.state.favorites[favorite.ID] = *favorite
	mark(r.t.dirtyFavorites, favorite.ID)

	return nil
}

func (r memFavorites) Delete(_ context.Context, id int64) error {
	defer r.t.lock()()
	if _, ok := r.t.state.favorites[id]; !ok {
		return repository.ErrFavoriteNotFound
	}
	delete(r.t.state.favorites, id)
	mark(r.t.deletedFavs, id)

	return nil
}

func (r memFavorites) list(keep func(entity.FavoriteCar) bool) []*entity.FavoriteCar {
	var out []*entity.FavoriteCar
	for _, f := range r.t.state.favorites {
		if keep(f) {
			fav := f
			out = append(out, &fav)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func (r memFavorites) ListByBuyer(_ context.Context, buyerID int64, page entity.Page) ([]*entity.FavoriteCar, error) {
	defer r.t.lock()()

	return window(r.list(func(f entity.FavoriteCar) bool { return f.BuyerID == buyerID }), page), nil
}

func (r memFavorites) ListReviewedByCar(_ context.Context, carID int64) ([]*entity.FavoriteCar, error) {
	defer r.t.lock()()

	return r.list(func(f entity.FavoriteCar) bool { return f.CarID == carID && f.IsReviewed() }), nil
}

func (r memFavorites) ListPriceWatchers(_ context.Context, carID int64) ([]int64, error) {
	defer r.t.lock()()
	ids := []int64{}
	for _, f := range r.list(func(f entity.FavoriteCar) bool { return f.CarID == carID && f.NotifyPriceChanges }) {
		ids = append(ids, f.BuyerID)
	}

	return ids, nil
}
