package repositories

import (
	"slices"
	"sync"

	"storefront/internal/models"
)

// MockFavouriteRepository is an in-memory implementation of FavouriteRepository,
// keyed by FavouriteID.Key of the normalised like date.
type MockFavouriteRepository struct {
	favourites map[string]models.Favourite
	mu         sync.RWMutex
}

func NewMockFavouriteRepository() *MockFavouriteRepository {
	return &MockFavouriteRepository{
		favourites: make(map[string]models.Favourite),
	}
}

func (r *MockFavouriteRepository) FindAll() ([]models.Favourite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Favourite, 0, len(r.favourites))
	for _, f := range r.favourites {
		list = append(list, f)
	}
	slices.SortFunc(list, func(a, b models.Favourite) int { return a.ID().Compare(b.ID()) })
	return list, nil
}

func (r *MockFavouriteRepository) FindByID(id models.FavouriteID) (*models.Favourite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.favourites[normaliseID(id).Key()]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (r *MockFavouriteRepository) Save(favourite *models.Favourite) (*models.Favourite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *favourite
	stored.LikeDate = normaliseLikeDate(stored.LikeDate)
	r.favourites[stored.ID().Key()] = stored
	return &stored, nil
}

func (r *MockFavouriteRepository) DeleteByID(id models.FavouriteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.favourites, normaliseID(id).Key())
	return nil
}

func (r *MockFavouriteRepository) Delete(favourite *models.Favourite) error {
	return r.DeleteByID(favourite.ID())
}
