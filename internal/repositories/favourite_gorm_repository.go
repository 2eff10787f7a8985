package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMFavouriteRepository is a GORM implementation of FavouriteRepository.
// Like dates are stored in UTC at microsecond precision so that a key read
// back from the database matches the key it was written with.
type GORMFavouriteRepository struct {
	db *gorm.DB
}

func NewGORMFavouriteRepository(db *gorm.DB) *GORMFavouriteRepository {
	return &GORMFavouriteRepository{db: db}
}

func (r *GORMFavouriteRepository) byKey(id models.FavouriteID) *gorm.DB {
	return r.db.Where("user_id = ? AND product_id = ? AND like_date = ?",
		id.UserID(), id.ProductID(), normaliseLikeDate(id.LikeDate()))
}

func (r *GORMFavouriteRepository) FindAll() ([]models.Favourite, error) {
	var favourites []models.Favourite
	if err := r.db.Order("user_id, product_id, like_date").Find(&favourites).Error; err != nil {
		return nil, fmt.Errorf("failed to get all favourites: %w", err)
	}
	for i := range favourites {
		favourites[i].LikeDate = favourites[i].LikeDate.UTC()
	}
	return favourites, nil
}

func (r *GORMFavouriteRepository) FindByID(id models.FavouriteID) (*models.Favourite, error) {
	var favourite models.Favourite
	if err := r.byKey(id).First(&favourite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get favourite %s: %w", id, err)
	}
	favourite.LikeDate = favourite.LikeDate.UTC()
	return &favourite, nil
}

// Save inserts the favourite. The whole row is the key, so saving an
// existing favourite leaves it untouched.
func (r *GORMFavouriteRepository) Save(favourite *models.Favourite) (*models.Favourite, error) {
	row := *favourite
	row.LikeDate = normaliseLikeDate(row.LikeDate)
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to save favourite: %w", err)
	}
	return &row, nil
}

func (r *GORMFavouriteRepository) DeleteByID(id models.FavouriteID) error {
	if err := r.byKey(id).Delete(&models.Favourite{}).Error; err != nil {
		return fmt.Errorf("failed to delete favourite %s: %w", id, err)
	}
	return nil
}

func (r *GORMFavouriteRepository) Delete(favourite *models.Favourite) error {
	return r.DeleteByID(favourite.ID())
}
