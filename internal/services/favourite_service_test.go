package services_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
	"storefront/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var likeDate = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func TestFavouriteService_FindAll(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)

	mockRepo.On("FindAll").Return([]models.Favourite{
		{UserID: 1, ProductID: 1, LikeDate: likeDate},
		{UserID: 1, ProductID: 2, LikeDate: likeDate},
	}, nil).Once()

	favourites, err := service.FindAll()

	assert.NoError(t, err)
	assert.Len(t, favourites, 2)
	assert.Equal(t, 2, favourites[1].ProductID)
	mockRepo.AssertExpectations(t)
}

func TestFavouriteService_FindAll_Empty(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)

	mockRepo.On("FindAll").Return(nil, nil).Once()

	favourites, err := service.FindAll()

	assert.NoError(t, err)
	assert.NotNil(t, favourites)
	assert.Empty(t, favourites)
}

func TestFavouriteService_FindAll_StoreError(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)
	storeErr := errors.New("connection refused")

	mockRepo.On("FindAll").Return(nil, storeErr).Once()

	_, err := service.FindAll()

	assert.Same(t, storeErr, err)
}

func TestFavouriteService_FindByID(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)
	id := models.NewFavouriteID(1, 1, likeDate)

	// Test successful retrieval
	mockRepo.On("FindByID", id).Return(&models.Favourite{UserID: 1, ProductID: 1, LikeDate: likeDate}, nil).Once()
	favourite, err := service.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, 1, favourite.UserID)
	assert.Equal(t, 1, favourite.ProductID)
	assert.True(t, favourite.LikeDate.Equal(likeDate))

	// Test favourite not found
	missing := models.NewFavouriteID(999, 999, likeDate)
	mockRepo.On("FindByID", missing).Return(nil, nil).Once()
	favourite, err = service.FindByID(missing)
	assert.Nil(t, favourite)
	assert.ErrorIs(t, err, services.ErrNotFound)

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, services.DomainFavourite, notFound.Domain)
	assert.Equal(t, missing, notFound.Key)
	assert.Contains(t, err.Error(), "Favourite not found with key:")
	mockRepo.AssertExpectations(t)
}

func TestFavouriteService_Save(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)

	input := &dto.FavouriteDto{UserID: 1, ProductID: 1, LikeDate: likeDate}
	mockRepo.On("Save", &models.Favourite{UserID: 1, ProductID: 1, LikeDate: likeDate}).
		Return(&models.Favourite{UserID: 1, ProductID: 1, LikeDate: likeDate}, nil).Once()

	saved, err := service.Save(input)

	require.NoError(t, err)
	assert.Equal(t, input.UserID, saved.UserID)
	assert.True(t, saved.LikeDate.Equal(likeDate))
	mockRepo.AssertExpectations(t)
}

func TestFavouriteService_Save_DefaultsLikeDate(t *testing.T) {
	service := services.NewFavouriteService(repositories.NewMockFavouriteRepository(), nil, nil)

	before := time.Now().Truncate(time.Microsecond)
	saved, err := service.Save(&dto.FavouriteDto{UserID: 2, ProductID: 2})

	require.NoError(t, err)
	assert.False(t, saved.LikeDate.IsZero())
	assert.False(t, saved.LikeDate.Before(before))
}

func TestFavouriteService_Save_DefaultLikeDateRoundTripsThroughWireKey(t *testing.T) {
	fine := time.Date(2024, 5, 1, 10, 30, 0, 123456789, time.UTC)
	service := services.NewFavouriteService(repositories.NewMockFavouriteRepository(), nil, nil).
		WithClock(func() time.Time { return fine })

	saved, err := service.Save(&dto.FavouriteDto{UserID: 1, ProductID: 1})
	require.NoError(t, err)
	assert.True(t, saved.LikeDate.Equal(fine.Truncate(time.Microsecond)))

	wireDate, err := dto.ParseLikeDate(dto.FormatLikeDate(saved.LikeDate))
	require.NoError(t, err)
	id := models.NewFavouriteID(saved.UserID, saved.ProductID, wireDate)

	found, err := service.FindByID(id)
	require.NoError(t, err)
	assert.True(t, found.LikeDate.Equal(wireDate))

	require.NoError(t, service.DeleteByID(id))
	_, err = service.FindByID(id)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFavouriteService_Save_UsesClock(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	service := services.NewFavouriteService(mockRepo, nil, nil).WithClock(func() time.Time { return fixed })

	mockRepo.On("Save", mock.MatchedBy(func(f *models.Favourite) bool { return f.LikeDate.Equal(fixed) })).
		Return(&models.Favourite{UserID: 2, ProductID: 2, LikeDate: fixed}, nil).Once()

	saved, err := service.Save(&dto.FavouriteDto{UserID: 2, ProductID: 2})

	require.NoError(t, err)
	assert.True(t, saved.LikeDate.Equal(fixed))
	mockRepo.AssertExpectations(t)
}

func TestFavouriteService_Save_MultipleProductsForSameUser(t *testing.T) {
	repo := repositories.NewMockFavouriteRepository()
	service := services.NewFavouriteService(repo, nil, nil)

	first, err := service.Save(&dto.FavouriteDto{UserID: 1, ProductID: 1, LikeDate: likeDate})
	require.NoError(t, err)
	second, err := service.Save(&dto.FavouriteDto{UserID: 1, ProductID: 2, LikeDate: likeDate})
	require.NoError(t, err)

	got1, err := service.FindByID(models.NewFavouriteID(first.UserID, first.ProductID, first.LikeDate))
	require.NoError(t, err)
	got2, err := service.FindByID(models.NewFavouriteID(second.UserID, second.ProductID, second.LikeDate))
	require.NoError(t, err)

	assert.Equal(t, 1, got1.ProductID)
	assert.Equal(t, 2, got2.ProductID)

	all, err := service.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFavouriteService_Save_NilInput(t *testing.T) {
	service := services.NewFavouriteService(new(MockFavouriteRepository), nil, nil)

	_, err := service.Save(nil)

	assert.ErrorIs(t, err, services.ErrNilInput)
}

func TestFavouriteService_Update(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)
	newLikeDate := likeDate.Add(24 * time.Hour)

	mockRepo.On("Save", &models.Favourite{UserID: 1, ProductID: 1, LikeDate: newLikeDate}).
		Return(&models.Favourite{UserID: 1, ProductID: 1, LikeDate: newLikeDate}, nil).Once()

	updated, err := service.Update(&dto.FavouriteDto{UserID: 1, ProductID: 1, LikeDate: newLikeDate})

	require.NoError(t, err)
	assert.True(t, updated.LikeDate.Equal(newLikeDate))
	mockRepo.AssertExpectations(t)
}

func TestFavouriteService_DeleteByID(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	service := services.NewFavouriteService(mockRepo, nil, nil)
	id := models.NewFavouriteID(1, 1, likeDate)

	mockRepo.On("DeleteByID", id).Return(nil).Once()
	assert.NoError(t, service.DeleteByID(id))

	mockRepo.On("DeleteByID", id).Return(fmt.Errorf("database error")).Once()
	err := service.DeleteByID(id)
	assert.EqualError(t, err, "database error")

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything)
}

func TestFavouriteService_Enrichment(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	enricher := new(MockEnricher)
	service := services.NewFavouriteService(mockRepo, enricher, nil)
	id := models.NewFavouriteID(1, 5, likeDate)

	mockRepo.On("FindByID", id).Return(&models.Favourite{UserID: 1, ProductID: 5, LikeDate: likeDate}, nil).Once()
	enricher.On("FetchUser", 1).Return(&dto.UserDto{UserID: 1, FirstName: "John"}, nil).Once()
	enricher.On("FetchProduct", 5).Return(&dto.ProductDto{ProductID: 5, ProductTitle: "Laptop"}, nil).Once()

	favourite, err := service.FindByID(id)

	require.NoError(t, err)
	require.NotNil(t, favourite.User)
	require.NotNil(t, favourite.Product)
	assert.Equal(t, "John", favourite.User.FirstName)
	assert.Equal(t, "Laptop", favourite.Product.ProductTitle)
	enricher.AssertExpectations(t)
}

func TestFavouriteService_EnrichmentFailureDoesNotFailRead(t *testing.T) {
	mockRepo := new(MockFavouriteRepository)
	enricher := new(MockEnricher)
	service := services.NewFavouriteService(mockRepo, enricher, nil)
	failuresBefore := testutil.ToFloat64(metrics.EnrichmentFailures.WithLabelValues("user"))

	mockRepo.On("FindAll").Return([]models.Favourite{{UserID: 1, ProductID: 5, LikeDate: likeDate}}, nil).Once()
	enricher.On("FetchUser", 1).Return(nil, errors.New("user-service unavailable")).Once()
	enricher.On("FetchProduct", 5).Return(&dto.ProductDto{ProductID: 5}, nil).Once()

	favourites, err := service.FindAll()

	require.NoError(t, err)
	require.Len(t, favourites, 1)
	assert.Nil(t, favourites[0].User)
	assert.NotNil(t, favourites[0].Product)
	assert.Equal(t, failuresBefore+1, testutil.ToFloat64(metrics.EnrichmentFailures.WithLabelValues("user")))
}

type panickingEnricher struct{}

func (panickingEnricher) FetchUser(int) (*dto.UserDto, error)       { panic("boom") }
func (panickingEnricher) FetchProduct(int) (*dto.ProductDto, error) { panic("boom") }

func TestFavouriteService_EnrichmentPanicDoesNotFailRead(t *testing.T) {
	repo := repositories.NewMockFavouriteRepository()
	service := services.NewFavouriteService(repo, panickingEnricher{}, nil)
	_, err := repo.Save(&models.Favourite{UserID: 1, ProductID: 1, LikeDate: likeDate})
	require.NoError(t, err)

	favourite, err := service.FindByID(models.NewFavouriteID(1, 1, likeDate))

	require.NoError(t, err)
	assert.Nil(t, favourite.User)
	assert.Nil(t, favourite.Product)
}

func TestFavouriteService_PublishesEvents(t *testing.T) {
	publisher := new(MockPublisher)
	service := services.NewFavouriteService(repositories.NewMockFavouriteRepository(), nil, publisher)

	var published services.Event
	publisher.On("Publish", "favourite.saved", mock.Anything).Run(func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal(args.Get(1).([]byte), &published))
	}).Return(nil).Once()

	_, err := service.Save(&dto.FavouriteDto{UserID: 3, ProductID: 4, LikeDate: likeDate})

	require.NoError(t, err)
	assert.Equal(t, "favourite.saved", published.Type)
	assert.NotEmpty(t, published.ID)
	data := published.Data.(map[string]any)
	assert.EqualValues(t, 3, data["userId"])
	assert.Equal(t, dto.FormatLikeDate(likeDate), data["likeDate"])
	publisher.AssertExpectations(t)
}

func TestFavouriteService_PublishFailureDoesNotFailWrite(t *testing.T) {
	publisher := new(MockPublisher)
	service := services.NewFavouriteService(repositories.NewMockFavouriteRepository(), nil, publisher)

	publisher.On("Publish", "favourite.saved", mock.Anything).Return(errors.New("broker down")).Once()

	saved, err := service.Save(&dto.FavouriteDto{UserID: 3, ProductID: 4, LikeDate: likeDate})

	require.NoError(t, err)
	assert.Equal(t, 4, saved.ProductID)
	publisher.AssertExpectations(t)
}
