package core

import "fmt"

// ValidateProperty validates a Property according to domain rules.
//
// Validation rules:
//   - Name and Type must not be empty
//   - AreaSqft must be positive
//   - ListingType must be valid
//   - At least the price field matching the listing type must be set
//     (sale price for Sale, annual rent for Rent, annual lease for Lease)
//   - Bedrooms, when present, must not be negative
//
// Validation runs once when a catalog is loaded; the matcher itself only
// performs per-field presence checks.
func ValidateProperty(p *Property) error {
	if p == nil {
		return fmt.Errorf("%w: property is nil", ErrInvalidProperty)
	}

	if p.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrEmptyName)
	}

	if p.Type == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrEmptyType)
	}

	if p.AreaSqft <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrInvalidArea)
	}

	if err := ValidateListingType(p.ListingType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, err)
	}

	if !hasPriceForListing(p) {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrMissingPrice)
	}

	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidProperty, ErrNegativeBedrooms)
	}

	return nil
}

// ValidateProfile validates a UserProfile according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Budget range must satisfy min <= max
//   - Bedroom range must satisfy min <= max
func ValidateProfile(profile *UserProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyName)
	}

	if profile.BudgetMinAED > profile.BudgetMaxAED {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrBudgetRange)
	}

	if profile.BedroomsMin > profile.BedroomsMax {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrBedroomRange)
	}

	return nil
}

// ValidateRegion validates a Region and every property it holds.
func ValidateRegion(region *Region) error {
	if region == nil {
		return fmt.Errorf("%w: region is nil", ErrInvalidRegion)
	}

	if region.Key == "" || region.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, ErrEmptyName)
	}

	for i := range region.Properties {
		if err := ValidateProperty(&region.Properties[i]); err != nil {
			return fmt.Errorf("%w: region %q property %d: %w", ErrInvalidRegion, region.Key, i, err)
		}
	}

	return nil
}

// ValidateListingType validates that a ListingType has a known value.
func ValidateListingType(lt ListingType) error {
	switch lt {
	case ListingSale, ListingRent, ListingLease:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidListingType, lt)
}

// ValidateUserType validates that a UserType has a valid value.
func ValidateUserType(user UserType) error {
	if user != UserGuest && user != UserRegistered {
		return fmt.Errorf("%w: value %d", ErrInvalidUserType, user)
	}
	return nil
}

func hasPriceForListing(p *Property) bool {
	switch p.ListingType {
	case ListingSale:
		return p.PriceAED != nil
	case ListingRent:
		return p.RentAnnualAED != nil
	case ListingLease:
		return p.LeaseAnnualAED != nil
	}
	return false
}
