package catalog

import "encoding/json"

// ======================================================
// RAW SQUARE CATALOG (wire shapes)
// ======================================================

type RawCatalog struct {
	Objects []CatalogObject `json:"objects"`
}

type CatalogObject struct {
	Type                  string    `json:"type"`
	ID                    string    `json:"id"`
	PresentAtAllLocations bool      `json:"present_at_all_locations"`
	PresentAtLocationIDs  []string  `json:"present_at_location_ids"`
	AbsentAtLocationIDs   []string  `json:"absent_at_location_ids"`
	ItemData              *ItemData `json:"item_data,omitempty"`
}

type ItemData struct {
	Name       string      `json:"name"`
	Variations []Variation `json:"variations"`
}

type Variation struct {
	ID                    string             `json:"id"`
	Type                  string             `json:"type"`
	PresentAtAllLocations bool               `json:"present_at_all_locations"`
	PresentAtLocationIDs  []string           `json:"present_at_location_ids"`
	AbsentAtLocationIDs   []string           `json:"absent_at_location_ids"`
	ItemVariationData     *ItemVariationData `json:"item_variation_data,omitempty"`
}

type ItemVariationData struct {
	ItemID            string             `json:"item_id"`
	Name              string             `json:"name"`
	PriceMoney        *Money             `json:"price_money,omitempty"`
	ServiceDuration   *int64             `json:"service_duration,omitempty"`
	LocationOverrides []LocationOverride `json:"location_overrides"`
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type LocationOverride struct {
	LocationID  string `json:"location_id"`
	PricingType string `json:"pricing_type"` // FIXED_PRICING or VARIABLE_PRICING
	PriceMoney  *Money `json:"price_money,omitempty"`
}

// Location is a business location as returned by the locations endpoint.
type Location struct {
	ID       string `json:"id"`
	Name     string `json:"business_name"`
	Timezone string `json:"timezone"`
}

// ======================================================
// NORMALIZED OUTPUT
// ======================================================

// Service is one bookable (variation, location) pair, flattened for the
// app's service cards and cart.
type Service struct {
	ID          string  `json:"id"`           // composite, unique per variation+location
	VariationID string  `json:"variation_id"` // Square variation id, used on booking calls
	LocationID  string  `json:"location_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // currency units, not cents
	DurationMin int     `json:"duration_min"`
	IsDeal      bool    `json:"is_deal"`
}

// ServiceID builds the composite id. Same pair, same id — the cart relies
// on this for idempotent add/increment.
func ServiceID(variationID, locationID string) string {
	return variationID + "_" + locationID
}

// Decode parses a raw catalog payload. The feed is an external dependency:
// malformed JSON degrades to an empty catalog, never an error.
func Decode(data []byte) RawCatalog {
	var raw RawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawCatalog{}
	}
	return raw
}
