package catalog

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/guddy2005/real-estate-app/core"
)

// RegionRecord is the stored form of a region: display data plus the IDs
// of its property records, in catalog order. Properties are stored as
// separate records keyed by content-derived IDs.
type RegionRecord struct {
	Key         string
	Name        string
	PropertyIDs []core.ID
}

// MUS serializers for the stored record types. Hand-composed from mus-go
// primitives; optional fields are encoded as a presence flag followed by
// the value.
var (
	PropertyMUS     = propertyMUS{}
	ProfileMUS      = profileMUS{}
	RegionRecordMUS = regionRecordMUS{}
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(v), nil
}

// MarshalProperty serializes a Property to bytes.
func MarshalProperty(p *core.Property) []byte {
	buf := make([]byte, PropertyMUS.Size(*p))
	PropertyMUS.Marshal(*p, buf)
	return buf
}

// UnmarshalProperty deserializes a Property from bytes.
func UnmarshalProperty(data []byte) (*core.Property, error) {
	p, _, err := PropertyMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &p, nil
}

// MarshalProfile serializes a UserProfile to bytes.
func MarshalProfile(profile *core.UserProfile) []byte {
	buf := make([]byte, ProfileMUS.Size(*profile))
	ProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a UserProfile from bytes.
func UnmarshalProfile(data []byte) (*core.UserProfile, error) {
	profile, _, err := ProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &profile, nil
}

// MarshalRegionRecord serializes a RegionRecord to bytes.
func MarshalRegionRecord(record *RegionRecord) []byte {
	buf := make([]byte, RegionRecordMUS.Size(*record))
	RegionRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalRegionRecord deserializes a RegionRecord from bytes.
func UnmarshalRegionRecord(data []byte) (*RegionRecord, error) {
	record, _, err := RegionRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}

// MarshalStrings serializes a string slice to bytes.
func MarshalStrings(v []string) []byte {
	buf := make([]byte, stringsMUS.Size(v))
	stringsMUS.Marshal(v, buf)
	return buf
}

// UnmarshalStrings deserializes a string slice from bytes.
func UnmarshalStrings(data []byte) ([]string, error) {
	v, _, err := stringsMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return v, nil
}

// ---- string slice ----

var stringsMUS = stringSliceMUS{}

type stringSliceMUS struct{}

func (stringSliceMUS) Marshal(v []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, s := range v {
		n += ord.String.Marshal(s, bs[n:])
	}
	return
}

func (stringSliceMUS) Unmarshal(bs []byte) (v []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if length < 0 {
		err = ErrTruncatedData
		return
	}
	v = make([]string, 0, length)
	for i := 0; i < length; i++ {
		var (
			s  string
			n1 int
		)
		s, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v = append(v, s)
	}
	return
}

func (stringSliceMUS) Size(v []string) (size int) {
	size = varint.Int.Size(len(v))
	for _, s := range v {
		size += ord.String.Size(s)
	}
	return
}

// ---- optional numbers ----

type optInt64MUS struct{}

func (optInt64MUS) Marshal(v *int64, bs []byte) (n int) {
	n = ord.Bool.Marshal(v != nil, bs)
	if v != nil {
		n += varint.Int64.Marshal(*v, bs[n:])
	}
	return
}

func (optInt64MUS) Unmarshal(bs []byte) (v *int64, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return
	}
	var (
		val int64
		n1  int
	)
	val, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v = &val
	return
}

func (optInt64MUS) Size(v *int64) (size int) {
	size = ord.Bool.Size(v != nil)
	if v != nil {
		size += varint.Int64.Size(*v)
	}
	return
}

type optIntMUS struct{}

func (optIntMUS) Marshal(v *int, bs []byte) (n int) {
	n = ord.Bool.Marshal(v != nil, bs)
	if v != nil {
		n += varint.Int.Marshal(*v, bs[n:])
	}
	return
}

func (optIntMUS) Unmarshal(bs []byte) (v *int, n int, err error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return
	}
	var (
		val int
		n1  int
	)
	val, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v = &val
	return
}

func (optIntMUS) Size(v *int) (size int) {
	size = ord.Bool.Size(v != nil)
	if v != nil {
		size += varint.Int.Size(*v)
	}
	return
}

var (
	optInt64 = optInt64MUS{}
	optInt   = optIntMUS{}
)

// ---- Property ----

type propertyMUS struct{}

func (propertyMUS) Marshal(p core.Property, bs []byte) (n int) {
	n = ord.String.Marshal(p.Name, bs)
	n += ord.String.Marshal(string(p.Type), bs[n:])
	n += ord.String.Marshal(string(p.Status), bs[n:])
	n += varint.Int.Marshal(p.AreaSqft, bs[n:])
	n += ord.String.Marshal(p.Description, bs[n:])
	n += stringsMUS.Marshal(p.Features, bs[n:])
	n += ord.String.Marshal(string(p.ListingType), bs[n:])
	n += optInt64.Marshal(p.PriceAED, bs[n:])
	n += optInt64.Marshal(p.RentAnnualAED, bs[n:])
	n += optInt64.Marshal(p.LeaseAnnualAED, bs[n:])
	n += optInt.Marshal(p.Bedrooms, bs[n:])
	return
}

func (propertyMUS) Unmarshal(bs []byte) (p core.Property, n int, err error) {
	var n1 int
	p.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var s string
	s, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Type = core.PropertyType(s)
	s, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Status = core.Status(s)
	p.AreaSqft, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Features, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.ListingType = core.ListingType(s)
	p.PriceAED, n1, err = optInt64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.RentAnnualAED, n1, err = optInt64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.LeaseAnnualAED, n1, err = optInt64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.Bedrooms, n1, err = optInt.Unmarshal(bs[n:])
	n += n1
	return
}

func (propertyMUS) Size(p core.Property) (size int) {
	size = ord.String.Size(p.Name)
	size += ord.String.Size(string(p.Type))
	size += ord.String.Size(string(p.Status))
	size += varint.Int.Size(p.AreaSqft)
	size += ord.String.Size(p.Description)
	size += stringsMUS.Size(p.Features)
	size += ord.String.Size(string(p.ListingType))
	size += optInt64.Size(p.PriceAED)
	size += optInt64.Size(p.RentAnnualAED)
	size += optInt64.Size(p.LeaseAnnualAED)
	size += optInt.Size(p.Bedrooms)
	return
}

// ---- RegionRecord ----

type regionRecordMUS struct{}

func (regionRecordMUS) Marshal(r RegionRecord, bs []byte) (n int) {
	n = ord.String.Marshal(r.Key, bs)
	n += ord.String.Marshal(r.Name, bs[n:])
	n += varint.Int.Marshal(len(r.PropertyIDs), bs[n:])
	for _, id := range r.PropertyIDs {
		n += varint.Uint64.Marshal(uint64(id), bs[n:])
	}
	return
}

func (regionRecordMUS) Unmarshal(bs []byte) (r RegionRecord, n int, err error) {
	var n1 int
	r.Key, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	r.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length < 0 {
		err = ErrTruncatedData
		return
	}
	r.PropertyIDs = make([]core.ID, 0, length)
	for i := 0; i < length; i++ {
		var v uint64
		v, n1, err = varint.Uint64.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		r.PropertyIDs = append(r.PropertyIDs, core.ID(v))
	}
	return
}

func (regionRecordMUS) Size(r RegionRecord) (size int) {
	size = ord.String.Size(r.Key)
	size += ord.String.Size(r.Name)
	size += varint.Int.Size(len(r.PropertyIDs))
	for _, id := range r.PropertyIDs {
		size += varint.Uint64.Size(uint64(id))
	}
	return
}

// ---- UserProfile ----

type browsingEventMUS struct{}

func (browsingEventMUS) Marshal(e core.BrowsingEvent, bs []byte) (n int) {
	n = ord.String.Marshal(e.PropertyID, bs)
	n += ord.String.Marshal(e.ViewedOn, bs[n:])
	n += varint.Int.Marshal(e.TimeSpentSeconds, bs[n:])
	return
}

func (browsingEventMUS) Unmarshal(bs []byte) (e core.BrowsingEvent, n int, err error) {
	var n1 int
	e.PropertyID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	e.ViewedOn, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.TimeSpentSeconds, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (browsingEventMUS) Size(e core.BrowsingEvent) (size int) {
	size = ord.String.Size(e.PropertyID)
	size += ord.String.Size(e.ViewedOn)
	size += varint.Int.Size(e.TimeSpentSeconds)
	return
}

var eventMUS = browsingEventMUS{}

type profileMUS struct{}

func (profileMUS) Marshal(p core.UserProfile, bs []byte) (n int) {
	n = ord.String.Marshal(p.Name, bs)
	n += varint.Int64.Marshal(p.BudgetMinAED, bs[n:])
	n += varint.Int64.Marshal(p.BudgetMaxAED, bs[n:])
	n += stringsMUS.Marshal(p.PreferredLocations, bs[n:])
	n += stringsMUS.Marshal(propertyTypesToStrings(p.PropertyTypePreference), bs[n:])
	n += ord.String.Marshal(p.CategoryInterest, bs[n:])
	n += ord.String.Marshal(string(p.ListingTypeInterest), bs[n:])
	n += varint.Int.Marshal(p.BedroomsMin, bs[n:])
	n += varint.Int.Marshal(p.BedroomsMax, bs[n:])
	n += stringsMUS.Marshal(p.MustHaveFeatures, bs[n:])
	n += stringsMUS.Marshal(p.LifestylePreferences, bs[n:])
	n += varint.Int.Marshal(len(p.BrowsingHistory), bs[n:])
	for _, e := range p.BrowsingHistory {
		n += eventMUS.Marshal(e, bs[n:])
	}
	n += stringsMUS.Marshal(p.SavedProperties, bs[n:])
	return
}

func (profileMUS) Unmarshal(bs []byte) (p core.UserProfile, n int, err error) {
	var n1 int
	p.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	p.BudgetMinAED, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.BudgetMaxAED, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.PreferredLocations, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var types []string
	types, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.PropertyTypePreference = stringsToPropertyTypes(types)
	p.CategoryInterest, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var s string
	s, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.ListingTypeInterest = core.ListingType(s)
	p.BedroomsMin, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.BedroomsMax, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.MustHaveFeatures, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	p.LifestylePreferences, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var length int
	length, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if length < 0 {
		err = ErrTruncatedData
		return
	}
	p.BrowsingHistory = make([]core.BrowsingEvent, 0, length)
	for i := 0; i < length; i++ {
		var e core.BrowsingEvent
		e, n1, err = eventMUS.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		p.BrowsingHistory = append(p.BrowsingHistory, e)
	}
	p.SavedProperties, n1, err = stringsMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (profileMUS) Size(p core.UserProfile) (size int) {
	size = ord.String.Size(p.Name)
	size += varint.Int64.Size(p.BudgetMinAED)
	size += varint.Int64.Size(p.BudgetMaxAED)
	size += stringsMUS.Size(p.PreferredLocations)
	size += stringsMUS.Size(propertyTypesToStrings(p.PropertyTypePreference))
	size += ord.String.Size(p.CategoryInterest)
	size += ord.String.Size(string(p.ListingTypeInterest))
	size += varint.Int.Size(p.BedroomsMin)
	size += varint.Int.Size(p.BedroomsMax)
	size += stringsMUS.Size(p.MustHaveFeatures)
	size += stringsMUS.Size(p.LifestylePreferences)
	size += varint.Int.Size(len(p.BrowsingHistory))
	for _, e := range p.BrowsingHistory {
		size += eventMUS.Size(e)
	}
	size += stringsMUS.Size(p.SavedProperties)
	return
}

func propertyTypesToStrings(types []core.PropertyType) []string {
	if types == nil {
		return nil
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func stringsToPropertyTypes(values []string) []core.PropertyType {
	if values == nil {
		return nil
	}
	out := make([]core.PropertyType, len(values))
	for i, s := range values {
		out[i] = core.PropertyType(s)
	}
	return out
}
