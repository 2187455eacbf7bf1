package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/guddy2005/real-estate-app/core"
)

// catalogFile mirrors the property_catalog.json layout: a map of region
// key to region payload.
type catalogFile struct {
	Regions map[string]regionJSON `json:"regions"`
}

type regionJSON struct {
	Name       string          `json:"name"`
	Properties []core.Property `json:"properties"`
}

// userFile mirrors the user_database.json layout: a map of user id to
// user record, with preferences nested under "profile".
type userFile map[string]userRecord

type userRecord struct {
	Name            string               `json:"name"`
	Profile         profileJSON          `json:"profile"`
	BrowsingHistory []core.BrowsingEvent `json:"browsing_history"`
	SavedProperties []string             `json:"saved_properties"`
}

type profileJSON struct {
	BudgetMinAED           int64               `json:"budget_min_aed"`
	BudgetMaxAED           int64               `json:"budget_max_aed"`
	PreferredLocations     []string            `json:"preferred_locations"`
	PropertyTypePreference []core.PropertyType `json:"property_type_preference"`
	CategoryInterest       string              `json:"category_interest"`
	ListingTypeInterest    core.ListingType    `json:"listing_type_interest"`
	BedroomsMin            int                 `json:"bedrooms_min"`
	BedroomsMax            int                 `json:"bedrooms_max"`
	MustHaveFeatures       []string            `json:"must_have_features"`
	LifestylePreferences   []string            `json:"lifestyle_preferences"`
}

// LoadCatalog reads and validates a property catalog from a JSON file.
// Regions are returned sorted by key so the catalog order is stable
// across loads regardless of JSON map ordering.
func LoadCatalog(path string) ([]core.Region, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}

	keys := make([]string, 0, len(file.Regions))
	for key := range file.Regions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	regions := make([]core.Region, 0, len(keys))
	for _, key := range keys {
		entry := file.Regions[key]
		region := core.Region{
			Key:        key,
			Name:       entry.Name,
			Properties: entry.Properties,
		}
		if err := core.ValidateRegion(&region); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// LoadUsers reads and validates user profiles from a JSON file.
func LoadUsers(path string) (map[string]*core.UserProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read user file: %w", err)
	}

	var file userFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}

	profiles := make(map[string]*core.UserProfile, len(file))
	for id, record := range file {
		profile := &core.UserProfile{
			Name:                   record.Name,
			BudgetMinAED:           record.Profile.BudgetMinAED,
			BudgetMaxAED:           record.Profile.BudgetMaxAED,
			PreferredLocations:     record.Profile.PreferredLocations,
			PropertyTypePreference: record.Profile.PropertyTypePreference,
			CategoryInterest:       record.Profile.CategoryInterest,
			ListingTypeInterest:    record.Profile.ListingTypeInterest,
			BedroomsMin:            record.Profile.BedroomsMin,
			BedroomsMax:            record.Profile.BedroomsMax,
			MustHaveFeatures:       record.Profile.MustHaveFeatures,
			LifestylePreferences:   record.Profile.LifestylePreferences,
			BrowsingHistory:        record.BrowsingHistory,
			SavedProperties:        record.SavedProperties,
		}
		if err := core.ValidateProfile(profile); err != nil {
			return nil, fmt.Errorf("user %q: %w", id, err)
		}
		profiles[id] = profile
	}
	return profiles, nil
}
