package domain

import (
	"errors"
	"fmt"
)

// Доменные ошибки - используются во всех слоях приложения.
// Каждая ошибка обернута в базовую категорию, чтобы delivery-слой
// мог маппить ее на HTTP статус через errors.Is.

// Базовые категории ошибок
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal server error")
)

// Location errors
var (
	ErrLocationNotFound      = fmt.Errorf("%w: location", ErrNotFound)
	ErrLocationAlreadyExists = fmt.Errorf("%w: location already exists", ErrConflict)
	ErrInvalidLocationData   = fmt.Errorf("%w: invalid location data", ErrValidation)
)

// Attraction errors
var (
	ErrAttractionNotFound    = fmt.Errorf("%w: attraction", ErrNotFound)
	ErrInvalidAttractionData = fmt.Errorf("%w: invalid attraction data", ErrValidation)
)

// Transport errors
var (
	ErrTransportNotFound    = fmt.Errorf("%w: transport", ErrNotFound)
	ErrInvalidTransportData = fmt.Errorf("%w: invalid transport data", ErrValidation)
)

// Accommodation errors
var (
	ErrAccommodationNotFound    = fmt.Errorf("%w: accommodation", ErrNotFound)
	ErrInvalidAccommodationData = fmt.Errorf("%w: invalid accommodation data", ErrValidation)
)

// Itinerary errors
var (
	ErrItineraryNotFound    = fmt.Errorf("%w: itinerary", ErrNotFound)
	ErrInvalidItineraryData = fmt.Errorf("%w: invalid itinerary data", ErrValidation)
)

// ItineraryAttraction errors
var (
	ErrItineraryAttractionNotFound      = fmt.Errorf("%w: itinerary-attraction relation", ErrNotFound)
	ErrItineraryAttractionAlreadyExists = fmt.Errorf("%w: itinerary-attraction relation already exists", ErrConflict)
	ErrInvalidItineraryAttractionData   = fmt.Errorf("%w: invalid itinerary-attraction data", ErrValidation)
)

// User errors
var (
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrInvalidUserData = fmt.Errorf("%w: invalid user data", ErrValidation)
)
