package services

import (
	"fmt"

	"storefront/internal/dto"
	"storefront/pkg/logger"
	"storefront/pkg/metrics"
)

// Enricher fetches display detail for favourites from the user and product
// services.
type Enricher interface {
	FetchUser(userID int) (*dto.UserDto, error)
	FetchProduct(productID int) (*dto.ProductDto, error)
}

// enrichFavourite attaches user and product detail to d. Each lookup is
// independent; a failed one leaves its field empty and is never returned.
func enrichFavourite(e Enricher, d *dto.FavouriteDto) {
	if e == nil || d == nil {
		return
	}
	if user, err := guarded(e.FetchUser, d.UserID); err != nil {
		logger.Logger.Warn().Err(err).Int("user_id", d.UserID).Msg("user enrichment failed")
		metrics.EnrichmentFailures.WithLabelValues("user").Inc()
	} else {
		d.User = user
	}
	if product, err := guarded(e.FetchProduct, d.ProductID); err != nil {
		logger.Logger.Warn().Err(err).Int("product_id", d.ProductID).Msg("product enrichment failed")
		metrics.EnrichmentFailures.WithLabelValues("product").Inc()
	} else {
		d.Product = product
	}
}

// guarded turns a panicking fetch into an error.
func guarded[T any](fetch func(int) (*T, error), id int) (out *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("enrichment panicked: %v", r)
		}
	}()
	return fetch(id)
}
