package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored catalog entities.
// It is derived from content so that identical listings map to identical keys.
type ID uint64

// IDFromName generates a deterministic ID from a listing or region name
// using BLAKE2b hashing. The same name always produces the same ID.
func IDFromName(name string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(name))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// UserType identifies the caller's identity mode.
type UserType int

const (
	// UserGuest is a non-registered caller; only keyword matching applies.
	UserGuest UserType = iota + 1
	// UserRegistered unlocks profile-based matching rules.
	UserRegistered
)

// PropertyType categorizes a listing. The set is open: catalogs may carry
// types beyond the common ones named here.
type PropertyType string

const (
	PropertyVilla     PropertyType = "Villa"
	PropertyPenthouse PropertyType = "Penthouse"
	PropertyDuplex    PropertyType = "Duplex"
	PropertyApartment PropertyType = "Apartment"
	PropertyOffice    PropertyType = "Office"
)

// Status describes the construction status of a listing.
type Status string

const (
	StatusReady             Status = "Ready"
	StatusUnderConstruction Status = "Under Construction"
)

// ListingType describes how a property is offered.
type ListingType string

const (
	ListingSale  ListingType = "Sale"
	ListingRent  ListingType = "Rent"
	ListingLease ListingType = "Lease"
)

// Property is a single listing in the catalog.
//
// Optional fields are pointers so that "absent" is representable: a listing
// offered for rent carries no sale price, an office carries no bedroom
// count. Matching rules that depend on an absent field skip it.
type Property struct {
	Name           string       `json:"name"`
	Type           PropertyType `json:"type"`
	Status         Status       `json:"status"`
	AreaSqft       int          `json:"area_sqft"`
	Description    string       `json:"description"`
	Features       []string     `json:"features"`
	ListingType    ListingType  `json:"listing_type"`
	PriceAED       *int64       `json:"price_aed,omitempty"`
	RentAnnualAED  *int64       `json:"rent_annual_aed,omitempty"`
	LeaseAnnualAED *int64       `json:"lease_annual_aed,omitempty"`
	Bedrooms       *int         `json:"bedrooms,omitempty"`
}

// Region is a named geographic grouping of properties. Property order is
// irrelevant for scoring but kept stable for reproducibility.
type Region struct {
	Key        string     `json:"key"`
	Name       string     `json:"name"`
	Properties []Property `json:"properties"`
}

// BrowsingEvent is one entry in a user's browsing history.
type BrowsingEvent struct {
	PropertyID       string `json:"property_id"`
	ViewedOn         string `json:"viewed_on"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// UserProfile holds the stored preferences of a registered user.
type UserProfile struct {
	Name                   string          `json:"name"`
	BudgetMinAED           int64           `json:"budget_min_aed"`
	BudgetMaxAED           int64           `json:"budget_max_aed"`
	PreferredLocations     []string        `json:"preferred_locations"`
	PropertyTypePreference []PropertyType  `json:"property_type_preference"`
	CategoryInterest       string          `json:"category_interest"`
	ListingTypeInterest    ListingType     `json:"listing_type_interest"`
	BedroomsMin            int             `json:"bedrooms_min"`
	BedroomsMax            int             `json:"bedrooms_max"`
	MustHaveFeatures       []string        `json:"must_have_features"`
	LifestylePreferences   []string        `json:"lifestyle_preferences"`
	BrowsingHistory        []BrowsingEvent `json:"browsing_history"`
	SavedProperties        []string        `json:"saved_properties"`
}
