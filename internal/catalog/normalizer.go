package catalog

// ======================================================
// PRESENCE POLICY
// ======================================================

// PresencePolicy decides what to do when a variation carries no presence
// information at all (no all-locations flag, no allow-list at either level).
type PresencePolicy int

const (
	// PresenceDefaultAll treats missing presence data as "everywhere".
	// This matches the live feed, where items created before multi-location
	// support carry no presence arrays.
	PresenceDefaultAll PresencePolicy = iota

	// PresenceDefaultNone excludes such variations instead.
	PresenceDefaultNone
)

// DefaultDurationMin is used when a variation has no usable duration.
const DefaultDurationMin = 15

const pricingTypeFixed = "FIXED_PRICING"

// ======================================================
// NORMALIZE
// ======================================================

// Normalize flattens the raw catalog into one Service per (variation,
// location) pair. Output is deterministic for identical input: items in
// feed order, variations in item order, locations in presence-list order.
//
// Locations not in the caller's list are skipped, never emitted.
func Normalize(raw RawCatalog, locations []Location, policy PresencePolicy) []Service {
	known := make(map[string]Location, len(locations))
	for _, loc := range locations {
		known[loc.ID] = loc
	}

	allIDs := make([]string, 0, len(locations))
	for _, loc := range locations {
		allIDs = append(allIDs, loc.ID)
	}

	services := []Service{}

	for _, obj := range raw.Objects {
		if obj.Type != "ITEM" || obj.ItemData == nil {
			continue
		}

		itemName := obj.ItemData.Name
		if itemName == "" {
			itemName = "Unnamed Item"
		}

		for _, variation := range obj.ItemData.Variations {
			vdata := variation.ItemVariationData
			if vdata == nil {
				vdata = &ItemVariationData{}
			}

			variationID := variation.ID
			if variationID == "" {
				variationID = vdata.ItemID
			}
			if variationID == "" {
				continue
			}

			variationName := vdata.Name
			if variationName == "" {
				variationName = "Default"
			}

			basePrice := priceCents(vdata.PriceMoney)
			duration := normalizeDuration(vdata.ServiceDuration)

			presentIDs := resolvePresence(obj, variation, allIDs, policy)
			presentIDs = subtractAbsent(presentIDs, obj, variation)

			overrides := make(map[string]LocationOverride, len(vdata.LocationOverrides))
			for _, ov := range vdata.LocationOverrides {
				if ov.LocationID == "" {
					continue
				}
				overrides[ov.LocationID] = ov
			}

			for _, locID := range presentIDs {
				if _, ok := known[locID]; !ok {
					continue
				}

				finalPrice := basePrice
				isDeal := false

				if ov, ok := overrides[locID]; ok {
					// Only a fixed-price override carries a usable amount;
					// variable pricing falls back to the base price.
					if ov.PricingType == pricingTypeFixed && ov.PriceMoney != nil {
						amount := ov.PriceMoney.Amount
						finalPrice = &amount
						if basePrice != nil && amount < *basePrice {
							isDeal = true
						}
					}
				}

				var cents int64
				if finalPrice != nil {
					cents = *finalPrice
				}

				services = append(services, Service{
					ID:          ServiceID(variationID, locID),
					VariationID: variationID,
					LocationID:  locID,
					Name:        itemName + " - " + variationName,
					Price:       float64(cents) / 100,
					DurationMin: duration,
					IsDeal:      isDeal,
				})
			}
		}
	}

	return services
}

// ======================================================
// HELPERS
// ======================================================

func priceCents(m *Money) *int64 {
	if m == nil {
		return nil
	}
	amount := m.Amount
	return &amount
}

// normalizeDuration converts the feed's duration field to minutes. Square
// sends milliseconds; older feed entries carry plain minutes. Anything at
// or above 1000 is read as milliseconds.
func normalizeDuration(d *int64) int {
	if d == nil || *d <= 0 {
		return DefaultDurationMin
	}
	if *d >= 1000 {
		return int((*d + 30000) / 60000)
	}
	return int(*d)
}

// resolvePresence applies the documented priority order:
// all-locations flag, variation allow-list, item allow-list, policy default.
func resolvePresence(
	obj CatalogObject,
	variation Variation,
	allIDs []string,
	policy PresencePolicy,
) []string {

	if variation.PresentAtAllLocations || obj.PresentAtAllLocations {
		return append([]string(nil), allIDs...)
	}
	if len(variation.PresentAtLocationIDs) > 0 {
		return append([]string(nil), variation.PresentAtLocationIDs...)
	}
	if len(obj.PresentAtLocationIDs) > 0 {
		return append([]string(nil), obj.PresentAtLocationIDs...)
	}
	if policy == PresenceDefaultAll {
		return append([]string(nil), allIDs...)
	}
	return nil
}

// subtractAbsent removes explicitly-absent locations. A variation-level
// list, even an empty one, overrides the item-level list.
func subtractAbsent(ids []string, obj CatalogObject, variation Variation) []string {
	absentList := obj.AbsentAtLocationIDs
	if variation.AbsentAtLocationIDs != nil {
		absentList = variation.AbsentAtLocationIDs
	}
	if len(absentList) == 0 {
		return ids
	}

	absent := make(map[string]struct{}, len(absentList))
	for _, id := range absentList {
		if id != "" {
			absent[id] = struct{}{}
		}
	}

	kept := ids[:0]
	for _, id := range ids {
		if _, gone := absent[id]; !gone {
			kept = append(kept, id)
		}
	}
	return kept
}
