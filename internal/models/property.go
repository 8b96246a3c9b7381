package models

import (
	"time"
)

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypePlot        PropertyType = "plot"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeOffices     PropertyType = "offices"
)

// PropertyStatus is the sales state of a listing.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusReserved  PropertyStatus = "reserved"
)

// Property is a marketed real-estate listing.
// Nullable fields use pointers to distinguish zero values from NULL.
type Property struct {
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	Type           PropertyType            `json:"type"`
	Status         PropertyStatus          `json:"status"`
	Builder        string                  `json:"builder"`
	Location       *string                 `json:"location,omitempty"`
	Description    *string                 `json:"description,omitempty"`
	Price          *float64                `json:"price,omitempty"`
	Images         []PropertyImage         `json:"images"`
	Configurations []PropertyConfiguration `json:"configurations"`
	ID             int64                   `json:"id"`
}

// PropertyImage is one entry in a property's ordered image gallery.
type PropertyImage struct {
	URL        string `json:"url"`
	Role       string `json:"role,omitempty"`
	Position   int    `json:"position"`
	PropertyID int64  `json:"propertyId"`
	ID         int64  `json:"id"`
}

// PropertyConfiguration is a purchasable layout of a property,
// e.g. "2 BHK" with its own area and price.
type PropertyConfiguration struct {
	Name       string   `json:"name"`
	Area       *string  `json:"area,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	PropertyID int64    `json:"propertyId"`
	ID         int64    `json:"id"`
}

// ValidPropertyType reports whether t is a recognized property type.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeResidential, PropertyTypePlot, PropertyTypeCommercial, PropertyTypeOffices:
		return true
	}
	return false
}

// ValidPropertyStatus reports whether s is a recognized property status.
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusReserved:
		return true
	}
	return false
}
