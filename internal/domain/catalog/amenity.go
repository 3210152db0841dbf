package catalog

import "strings"

type Amenity uint8

const (
	AmenityWifi Amenity = 1 << iota
	AmenityParking
	AmenityPool
	AmenityGym
	AmenityRestaurant
	AmenitySpa
)

var amenityNames = []struct {
	a    Amenity
	name string
}{
	{AmenityWifi, "wifi"},
	{AmenityParking, "parking"},
	{AmenityPool, "pool"},
	{AmenityGym, "gym"},
	{AmenityRestaurant, "restaurant"},
	{AmenitySpa, "spa"},
}

func ParseAmenity(s string) (Amenity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, n := range amenityNames {
		if n.name == s {
			return n.a, true
		}
	}
	return 0, false
}

func (a Amenity) String() string {
	for _, n := range amenityNames {
		if n.a == a {
			return n.name
		}
	}
	return ""
}

// AmenitySet is a bit set of amenities.
type AmenitySet uint8

func NewAmenitySet(amenities ...Amenity) AmenitySet {
	var s AmenitySet
	for _, a := range amenities {
		s |= AmenitySet(a)
	}
	return s
}

func (s AmenitySet) With(a Amenity) AmenitySet { return s | AmenitySet(a) }
func (s AmenitySet) Has(a Amenity) bool       { return s&AmenitySet(a) != 0 }

// Contains reports whether every amenity of o is in s.
func (s AmenitySet) Contains(o AmenitySet) bool { return s&o == o }

// Names lists the set in declaration order.
func (s AmenitySet) Names() []string {
	out := make([]string, 0, len(amenityNames))
	for _, n := range amenityNames {
		if s.Has(n.a) {
			out = append(out, n.name)
		}
	}
	return out
}

// AllAmenities are the filterable amenities in declaration order.
func AllAmenities() []Amenity {
	out := make([]Amenity, 0, len(amenityNames))
	for _, n := range amenityNames {
		out = append(out, n.a)
	}
	return out
}
