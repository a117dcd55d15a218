package models

import (
	"errors"
	"strings"
)

// ErrItemRequired is returned when the request item is empty after trimming.
var ErrItemRequired = errors.New("item name is required")

// Input message
type ItemCheckRequest struct {
	Item        string `json:"item" description:"Name of the item to check"`
	Description string `json:"description,omitempty" description:"Optional description of the item"`
}

// Final output returned to the caller. Boolean fields are always present;
// string fields may be empty but never absent.
type ItemCheckResult struct {
	Item                  string `json:"item" description:"Echo of the requested item name"`
	CarryOnAllowed        bool   `json:"carry_on_allowed" description:"Whether the item is allowed in carry-on luggage"`
	CheckedBaggageAllowed bool   `json:"checked_baggage_allowed" description:"Whether the item is allowed in checked baggage"`
	Description           string `json:"description" description:"Explanation of the TSA rules for this item"`
	Restrictions          string `json:"restrictions" description:"Size, quantity or packaging restrictions, if any"`
	AdditionalNotes       string `json:"additional_notes" description:"Safety or regulatory notes, if any"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Service string `json:"service" description:"Service name"`
}

type InfoResponse struct {
	Message   string            `json:"message" description:"Service banner"`
	Version   string            `json:"version" description:"API version"`
	Endpoints map[string]string `json:"endpoints" description:"Available endpoints"`
}

func (r *ItemCheckRequest) Validate() error {
	if strings.TrimSpace(r.Item) == "" {
		return ErrItemRequired
	}
	return nil
}

func (r *ItemCheckRequest) Normalize() {
	r.Item = strings.TrimSpace(r.Item)
}
