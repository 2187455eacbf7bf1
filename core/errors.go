package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidProperty indicates a Property failed validation.
	ErrInvalidProperty = errors.New("invalid property")

	// ErrInvalidProfile indicates a UserProfile failed validation.
	ErrInvalidProfile = errors.New("invalid user profile")

	// ErrInvalidRegion indicates a Region failed validation.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrEmptyName indicates a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyType indicates the property type field is empty.
	ErrEmptyType = errors.New("property type cannot be empty")

	// ErrInvalidArea indicates a non-positive area.
	ErrInvalidArea = errors.New("area must be positive")

	// ErrInvalidListingType indicates an unknown ListingType value.
	ErrInvalidListingType = errors.New("invalid listing type")

	// ErrMissingPrice indicates a listing carries no price field consistent
	// with its listing type.
	ErrMissingPrice = errors.New("listing has no price for its listing type")

	// ErrNegativeBedrooms indicates a negative bedroom count.
	ErrNegativeBedrooms = errors.New("bedroom count cannot be negative")

	// ErrBudgetRange indicates budget min exceeds budget max.
	ErrBudgetRange = errors.New("budget minimum exceeds maximum")

	// ErrBedroomRange indicates bedrooms min exceeds bedrooms max.
	ErrBedroomRange = errors.New("bedroom minimum exceeds maximum")

	// ErrInvalidUserType indicates an invalid UserType value.
	ErrInvalidUserType = errors.New("invalid user type")
)
