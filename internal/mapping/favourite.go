package mapping

import (
	"storefront/internal/dto"
	"storefront/internal/models"
)

// FavouriteToDto maps a stored favourite to its transfer form.
func FavouriteToDto(f *models.Favourite) *dto.FavouriteDto {
	if f == nil {
		return nil
	}
	return &dto.FavouriteDto{
		UserID:    f.UserID,
		ProductID: f.ProductID,
		LikeDate:  f.LikeDate,
	}
}

// FavouriteToEntity maps a transfer form to a favourite entity. Display
// detail (user, product) is not part of the entity and is dropped.
func FavouriteToEntity(d *dto.FavouriteDto) *models.Favourite {
	if d == nil {
		return nil
	}
	return &models.Favourite{
		UserID:    d.UserID,
		ProductID: d.ProductID,
		LikeDate:  d.LikeDate,
	}
}

// FavouritesToDtos maps a slice of favourites, never returning nil.
func FavouritesToDtos(favourites []models.Favourite) []dto.FavouriteDto {
	out := make([]dto.FavouriteDto, 0, len(favourites))
	for i := range favourites {
		out = append(out, *FavouriteToDto(&favourites[i]))
	}
	return out
}
