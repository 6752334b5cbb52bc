package services

import (
	"fmt"

	"hostel-backend/models"
)

// Catalog bundles the current catalog collections the pricing resolver works
// against. It is passed in explicitly so a booking's money fields are always
// derived from the catalog "as of now", never from a stale reference.
type Catalog struct {
	Activities      []models.Activity
	SpeedBoatTrips  []models.SpeedBoatTrip
	TaxiBoatOptions []models.TaxiBoatOption
	Extras          []models.Extra
}

// ResolvedPricing holds the money fields derived from one catalog entry and a
// quantity. ItemCost stays nil when the entry carries no third-party cost —
// no synthetic zero.
type ResolvedPricing struct {
	ItemName           string
	CustomerPrice      float64
	ItemCost           *float64
	EmployeeCommission float64
}

// ResolveItemPricing derives {itemName, customerPrice, itemCost,
// employeeCommission} for one catalog item and quantity. The second return is
// false when the itemType has no catalog (private tours) or the itemID no
// longer matches any entry (deleted since the booking was made).
func ResolveItemPricing(itemType string, catalog Catalog, itemID uint, quantity int) (ResolvedPricing, bool) {
	qty := float64(quantity)

	switch itemType {
	case models.ItemTypeActivity:
		for _, a := range catalog.Activities {
			if a.ID != itemID {
				continue
			}
			rp := ResolvedPricing{
				ItemName:           a.Name,
				CustomerPrice:      a.Price * qty,
				EmployeeCommission: a.Commission * qty,
			}
			if a.Cost != nil {
				cost := *a.Cost * qty
				rp.ItemCost = &cost
			}
			return rp, true
		}

	case models.ItemTypeSpeedBoat:
		for _, t := range catalog.SpeedBoatTrips {
			if t.ID != itemID {
				continue
			}
			cost := t.Cost * qty
			return ResolvedPricing{
				ItemName:           fmt.Sprintf("%s (%s)", t.Route, t.Company),
				CustomerPrice:      t.Price * qty,
				ItemCost:           &cost,
				EmployeeCommission: t.Commission * qty,
			}, true
		}

	case models.ItemTypeTaxiBoat:
		for _, o := range catalog.TaxiBoatOptions {
			if o.ID != itemID {
				continue
			}
			return ResolvedPricing{
				ItemName:           o.Name,
				CustomerPrice:      o.Price * qty,
				EmployeeCommission: o.Commission * qty,
			}, true
		}

	case models.ItemTypeExtra:
		for _, e := range catalog.Extras {
			if e.ID != itemID {
				continue
			}
			return ResolvedPricing{
				ItemName:      e.Name,
				CustomerPrice: e.Price * qty,
			}, true
		}
	}

	return ResolvedPricing{}, false
}

// ResolveBookingEdit re-derives a booking's money fields after its item
// reference or quantity changed during an edit. Private tours carry flat
// manual pricing and no catalog reference, so only the headcount is applied.
// When the catalog entry cannot be found the booking is returned unchanged so
// a stale reference never breaks the edit flow.
func ResolveBookingEdit(booking models.Booking, newItemID uint, newQuantity int, catalog Catalog) models.Booking {
	if booking.ItemType == models.ItemTypePrivateTour {
		if newQuantity > 0 {
			booking.NumberOfPeople = newQuantity
		}
		return booking
	}

	rp, ok := ResolveItemPricing(booking.ItemType, catalog, newItemID, newQuantity)
	if !ok {
		return booking
	}

	booking.ItemID = newItemID
	booking.NumberOfPeople = newQuantity
	booking.ItemName = rp.ItemName
	booking.CustomerPrice = rp.CustomerPrice
	booking.ItemCost = rp.ItemCost
	commission := rp.EmployeeCommission
	booking.EmployeeCommission = &commission
	return booking
}
