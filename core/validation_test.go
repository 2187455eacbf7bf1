package core

import (
	"errors"
	"testing"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func validSaleProperty() *Property {
	return &Property{
		Name:        "Marina Sky Apartment",
		Type:        PropertyApartment,
		Status:      StatusReady,
		AreaSqft:    1200,
		Description: "Bright two bedroom apartment with marina views.",
		Features:    []string{"balcony", "pool"},
		ListingType: ListingSale,
		PriceAED:    int64Ptr(1_800_000),
		Bedrooms:    intPtr(2),
	}
}

func TestValidateProperty(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Property)
		wantErr error
	}{
		{
			name:    "valid sale listing",
			mutate:  func(p *Property) {},
			wantErr: nil,
		},
		{
			name: "valid rent listing without bedrooms",
			mutate: func(p *Property) {
				p.ListingType = ListingRent
				p.PriceAED = nil
				p.RentAnnualAED = int64Ptr(120_000)
				p.Bedrooms = nil
			},
			wantErr: nil,
		},
		{
			name: "valid lease listing",
			mutate: func(p *Property) {
				p.Type = PropertyOffice
				p.ListingType = ListingLease
				p.PriceAED = nil
				p.LeaseAnnualAED = int64Ptr(300_000)
				p.Bedrooms = nil
			},
			wantErr: nil,
		},
		{
			name:    "empty name",
			mutate:  func(p *Property) { p.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty type",
			mutate:  func(p *Property) { p.Type = "" },
			wantErr: ErrEmptyType,
		},
		{
			name:    "zero area",
			mutate:  func(p *Property) { p.AreaSqft = 0 },
			wantErr: ErrInvalidArea,
		},
		{
			name:    "unknown listing type",
			mutate:  func(p *Property) { p.ListingType = "Swap" },
			wantErr: ErrInvalidListingType,
		},
		{
			name:    "sale listing without sale price",
			mutate:  func(p *Property) { p.PriceAED = nil },
			wantErr: ErrMissingPrice,
		},
		{
			name: "rent listing with only sale price",
			mutate: func(p *Property) {
				p.ListingType = ListingRent
			},
			wantErr: ErrMissingPrice,
		},
		{
			name:    "negative bedrooms",
			mutate:  func(p *Property) { p.Bedrooms = intPtr(-1) },
			wantErr: ErrNegativeBedrooms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validSaleProperty()
			tt.mutate(p)

			err := ValidateProperty(p)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateProperty() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateProperty() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidProperty) {
				t.Errorf("ValidateProperty() error = %v, want wrapped %v", err, ErrInvalidProperty)
			}
		})
	}

	t.Run("nil property", func(t *testing.T) {
		if err := ValidateProperty(nil); !errors.Is(err, ErrInvalidProperty) {
			t.Errorf("ValidateProperty(nil) error = %v, want %v", err, ErrInvalidProperty)
		}
	})
}

func TestValidateProfile(t *testing.T) {
	valid := func() *UserProfile {
		return &UserProfile{
			Name:         "Ayesha Khan",
			BudgetMinAED: 4_000_000,
			BudgetMaxAED: 9_000_000,
			BedroomsMin:  3,
			BedroomsMax:  5,
		}
	}

	t.Run("valid profile", func(t *testing.T) {
		if err := ValidateProfile(valid()); err != nil {
			t.Errorf("ValidateProfile() unexpected error: %v", err)
		}
	})

	t.Run("nil profile", func(t *testing.T) {
		if err := ValidateProfile(nil); !errors.Is(err, ErrInvalidProfile) {
			t.Errorf("ValidateProfile(nil) error = %v, want %v", err, ErrInvalidProfile)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		p := valid()
		p.Name = ""
		if err := ValidateProfile(p); !errors.Is(err, ErrEmptyName) {
			t.Errorf("ValidateProfile() error = %v, want %v", err, ErrEmptyName)
		}
	})

	t.Run("inverted budget range", func(t *testing.T) {
		p := valid()
		p.BudgetMinAED = 10_000_000
		if err := ValidateProfile(p); !errors.Is(err, ErrBudgetRange) {
			t.Errorf("ValidateProfile() error = %v, want %v", err, ErrBudgetRange)
		}
	})

	t.Run("inverted bedroom range", func(t *testing.T) {
		p := valid()
		p.BedroomsMin = 6
		if err := ValidateProfile(p); !errors.Is(err, ErrBedroomRange) {
			t.Errorf("ValidateProfile() error = %v, want %v", err, ErrBedroomRange)
		}
	})
}

func TestValidateUserType(t *testing.T) {
	if err := ValidateUserType(UserGuest); err != nil {
		t.Errorf("ValidateUserType(UserGuest) unexpected error: %v", err)
	}
	if err := ValidateUserType(UserRegistered); err != nil {
		t.Errorf("ValidateUserType(UserRegistered) unexpected error: %v", err)
	}
	if err := ValidateUserType(UserType(99)); !errors.Is(err, ErrInvalidUserType) {
		t.Errorf("ValidateUserType(99) error = %v, want %v", err, ErrInvalidUserType)
	}
}

func TestValidateRegion(t *testing.T) {
	t.Run("valid region", func(t *testing.T) {
		region := &Region{
			Key:        "dubai_marina",
			Name:       "Dubai Marina",
			Properties: []Property{*validSaleProperty()},
		}
		if err := ValidateRegion(region); err != nil {
			t.Errorf("ValidateRegion() unexpected error: %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		region := &Region{Name: "Dubai Marina"}
		if err := ValidateRegion(region); !errors.Is(err, ErrInvalidRegion) {
			t.Errorf("ValidateRegion() error = %v, want %v", err, ErrInvalidRegion)
		}
	})

	t.Run("invalid property inside region", func(t *testing.T) {
		bad := validSaleProperty()
		bad.PriceAED = nil
		region := &Region{
			Key:        "dubai_marina",
			Name:       "Dubai Marina",
			Properties: []Property{*bad},
		}
		err := ValidateRegion(region)
		if !errors.Is(err, ErrMissingPrice) {
			t.Errorf("ValidateRegion() error = %v, want %v", err, ErrMissingPrice)
		}
	})
}
