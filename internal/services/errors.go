package services

import (
	"errors"
	"fmt"
)

// Domain names an entity kind in error messages and events.
type Domain string

const (
	DomainFavourite Domain = "Favourite"
	DomainProduct   Domain = "Product"
	DomainCategory  Domain = "Category"
	DomainUser      Domain = "User"
)

// ErrNotFound matches every *NotFoundError under errors.Is.
var ErrNotFound = errors.New("not found")

// ErrNilInput is returned when a write operation receives no transfer form.
var ErrNilInput = errors.New("transfer form must not be nil")

// NotFoundError reports that a lookup by Key found nothing in Domain.
type NotFoundError struct {
	Domain Domain
	Key    any
}

// NotFound builds a *NotFoundError.
func NotFound(domain Domain, key any) *NotFoundError {
	return &NotFoundError{Domain: domain, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with key: %v", e.Domain, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// findOrFail runs lookup and turns an empty result into NotFound(domain, key).
// Store errors are returned unchanged.
func findOrFail[K any, E any](domain Domain, key K, lookup func(K) (*E, error)) (*E, error) {
	entity, err := lookup(key)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, NotFound(domain, key)
	}
	return entity, nil
}
