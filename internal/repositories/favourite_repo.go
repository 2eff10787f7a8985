package repositories

import (
	"time"

	"storefront/internal/models"
)

// FavouriteRepository defines the interface for favourite data access.
// Lookups match all three key fields exactly.
type FavouriteRepository interface {
	FindAll() ([]models.Favourite, error)
	FindByID(id models.FavouriteID) (*models.Favourite, error)
	Save(favourite *models.Favourite) (*models.Favourite, error)
	DeleteByID(id models.FavouriteID) error
	Delete(favourite *models.Favourite) error
}

// normaliseLikeDate reduces a like date to what every store keeps: UTC at
// microsecond precision, the resolution of the likeDate wire format.
func normaliseLikeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func normaliseID(id models.FavouriteID) models.FavouriteID {
	return models.NewFavouriteID(id.UserID(), id.ProductID(), normaliseLikeDate(id.LikeDate()))
}
