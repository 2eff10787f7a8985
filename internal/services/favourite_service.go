package services

import (
	"time"

	"storefront/internal/dto"
	"storefront/internal/mapping"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// FavouriteService handles business logic related to favourites.
type FavouriteService struct {
	repo     repositories.FavouriteRepository
	enricher Enricher
	events   EventPublisher
	now      func() time.Time
}

// NewFavouriteService creates a new FavouriteService. enricher and events may be nil.
func NewFavouriteService(repo repositories.FavouriteRepository, enricher Enricher, events EventPublisher) *FavouriteService {
	return &FavouriteService{
		repo:     repo,
		enricher: enricher,
		events:   events,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to default like dates.
func (s *FavouriteService) WithClock(now func() time.Time) *FavouriteService {
	s.now = now
	return s
}

// FindAll retrieves all favourites, enriched with user and product detail where available.
func (s *FavouriteService) FindAll() ([]dto.FavouriteDto, error) {
	favourites, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := mapping.FavouritesToDtos(favourites)
	for i := range out {
		enrichFavourite(s.enricher, &out[i])
	}
	return out, nil
}

// FindByID retrieves the favourite matching all three key fields.
func (s *FavouriteService) FindByID(id models.FavouriteID) (*dto.FavouriteDto, error) {
	favourite, err := findOrFail(DomainFavourite, id, s.repo.FindByID)
	if err != nil {
		return nil, err
	}
	out := mapping.FavouriteToDto(favourite)
	enrichFavourite(s.enricher, out)
	return out, nil
}

// Save stores a new favourite, stamping it with the current time when it has no like date.
func (s *FavouriteService) Save(d *dto.FavouriteDto) (*dto.FavouriteDto, error) {
	saved, err := s.persist(d)
	if err != nil {
		return nil, err
	}
	publish(s.events, "favourite.saved", favouriteKey(saved))
	return saved, nil
}

// Update re-saves the full favourite at its key. The same like date default applies.
func (s *FavouriteService) Update(d *dto.FavouriteDto) (*dto.FavouriteDto, error) {
	saved, err := s.persist(d)
	if err != nil {
		return nil, err
	}
	publish(s.events, "favourite.updated", favouriteKey(saved))
	return saved, nil
}

func (s *FavouriteService) persist(d *dto.FavouriteDto) (*dto.FavouriteDto, error) {
	if d == nil {
		return nil, ErrNilInput
	}
	entity := mapping.FavouriteToEntity(d)
	if entity.LikeDate.IsZero() {
		// Defaults share the microsecond precision of the likeDate wire format.
		entity.LikeDate = s.now().UTC().Truncate(time.Microsecond)
	}
	saved, err := s.repo.Save(entity)
	if err != nil {
		return nil, err
	}
	return mapping.FavouriteToDto(saved), nil
}

// DeleteByID removes the favourite with the given key. A missing favourite is not an error.
func (s *FavouriteService) DeleteByID(id models.FavouriteID) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	publish(s.events, "favourite.deleted", map[string]any{
		"userId":    id.UserID(),
		"productId": id.ProductID(),
		"likeDate":  dto.FormatLikeDate(id.LikeDate()),
	})
	return nil
}

func favouriteKey(d *dto.FavouriteDto) map[string]any {
	return map[string]any{
		"userId":    d.UserID,
		"productId": d.ProductID,
		"likeDate":  dto.FormatLikeDate(d.LikeDate),
	}
}
