package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func testCatalog() Catalog {
	return Catalog{
		Activities: []models.Activity{
			{ID: 1, Name: "Snorkeling Day Trip", Price: 1200, Commission: 100},
			{ID: 2, Name: "Outsourced Jungle Trek", Price: 900, Cost: fptr(600), Commission: 80},
		},
		SpeedBoatTrips: []models.SpeedBoatTrip{
			{ID: 10, Route: "Koh Tao", Company: "Lomprayah", Price: 600, Cost: 450, Commission: 30},
		},
		TaxiBoatOptions: []models.TaxiBoatOption{
			{ID: 20, Name: "Taxi boat - short hop", Price: 150, Commission: 20},
		},
		Extras: []models.Extra{
			{ID: 30, Name: "Snorkel set", Price: 80},
		},
	}
}

func TestResolveItemPricingActivity(t *testing.T) {
	catalog := testCatalog()

	rp, ok := ResolveItemPricing(models.ItemTypeActivity, catalog, 1, 3)
	require.True(t, ok)
	assert.Equal(t, "Snorkeling Day Trip", rp.ItemName)
	assert.Equal(t, 3600.0, rp.CustomerPrice)
	assert.Equal(t, 300.0, rp.EmployeeCommission)
	// hostel-run activity carries no third-party cost
	assert.Nil(t, rp.ItemCost)
}

func TestResolveItemPricingOutsourcedActivityCost(t *testing.T) {
	rp, ok := ResolveItemPricing(models.ItemTypeActivity, testCatalog(), 2, 2)
	require.True(t, ok)
	require.NotNil(t, rp.ItemCost)
	assert.Equal(t, 1200.0, *rp.ItemCost)
}

func TestResolveItemPricingSpeedBoatNameAndCost(t *testing.T) {
	rp, ok := ResolveItemPricing(models.ItemTypeSpeedBoat, testCatalog(), 10, 2)
	require.True(t, ok)
	assert.Equal(t, "Koh Tao (Lomprayah)", rp.ItemName)
	assert.Equal(t, 1200.0, rp.CustomerPrice)
	require.NotNil(t, rp.ItemCost)
	assert.Equal(t, 900.0, *rp.ItemCost)
	assert.Equal(t, 60.0, rp.EmployeeCommission)
}

func TestResolveItemPricingExtraHasNoCommission(t *testing.T) {
	rp, ok := ResolveItemPricing(models.ItemTypeExtra, testCatalog(), 30, 4)
	require.True(t, ok)
	assert.Equal(t, 320.0, rp.CustomerPrice)
	assert.Zero(t, rp.EmployeeCommission)
	assert.Nil(t, rp.ItemCost)
}

func TestResolveItemPricingIdempotentAndLinear(t *testing.T) {
	catalog := testCatalog()

	first, ok1 := ResolveItemPricing(models.ItemTypeSpeedBoat, catalog, 10, 2)
	second, ok2 := ResolveItemPricing(models.ItemTypeSpeedBoat, catalog, 10, 2)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first.ItemName, second.ItemName)
	assert.Equal(t, first.CustomerPrice, second.CustomerPrice)
	assert.Equal(t, *first.ItemCost, *second.ItemCost)
	assert.Equal(t, first.EmployeeCommission, second.EmployeeCommission)

	triple, ok3 := ResolveItemPricing(models.ItemTypeSpeedBoat, catalog, 10, 6)
	require.True(t, ok3)
	assert.Equal(t, first.CustomerPrice*3, triple.CustomerPrice)
	assert.Equal(t, *first.ItemCost*3, *triple.ItemCost)
	assert.Equal(t, first.EmployeeCommission*3, triple.EmployeeCommission)
}

func TestResolveItemPricingUnknownEntry(t *testing.T) {
	_, ok := ResolveItemPricing(models.ItemTypeActivity, testCatalog(), 999, 2)
	assert.False(t, ok)

	// private tours have no catalog at all
	_, ok = ResolveItemPricing(models.ItemTypePrivateTour, testCatalog(), 1, 2)
	assert.False(t, ok)
}

func TestResolveBookingEditRederives(t *testing.T) {
	booking := models.Booking{
		ID:                 7,
		ItemType:           models.ItemTypeSpeedBoat,
		ItemID:             10,
		ItemName:           "Koh Tao (Lomprayah)",
		NumberOfPeople:     1,
		CustomerPrice:      600,
		ItemCost:           fptr(450),
		EmployeeCommission: fptr(30),
		Discount:           50,
		PaymentMethod:      "cash",
	}

	updated := ResolveBookingEdit(booking, 10, 3, testCatalog())

	assert.Equal(t, 3, updated.NumberOfPeople)
	assert.Equal(t, 1800.0, updated.CustomerPrice)
	require.NotNil(t, updated.ItemCost)
	assert.Equal(t, 1350.0, *updated.ItemCost)
	require.NotNil(t, updated.EmployeeCommission)
	assert.Equal(t, 90.0, *updated.EmployeeCommission)
	// non-derived fields survive the edit
	assert.Equal(t, 50.0, updated.Discount)
	assert.Equal(t, "cash", updated.PaymentMethod)
}

func TestResolveBookingEditPrivateTourAppliesQuantityOnly(t *testing.T) {
	booking := models.Booking{
		ID:             9,
		ItemType:       models.ItemTypePrivateTour,
		ItemName:       "Sunset longtail charter",
		NumberOfPeople: 2,
		CustomerPrice:  4500, // flat manual price, does not scale with headcount
		ItemCost:       fptr(2000),
		FuelCost:       fptr(500),
	}

	updated := ResolveBookingEdit(booking, 0, 5, testCatalog())

	assert.Equal(t, 5, updated.NumberOfPeople)
	assert.Equal(t, 4500.0, updated.CustomerPrice)
	require.NotNil(t, updated.ItemCost)
	assert.Equal(t, 2000.0, *updated.ItemCost)

	// a non-positive quantity changes nothing
	same := ResolveBookingEdit(booking, 0, 0, testCatalog())
	assert.Equal(t, booking, same)
}

func TestResolveBookingEditMissingEntryLeavesBookingUntouched(t *testing.T) {
	booking := models.Booking{
		ID:                 8,
		ItemType:           models.ItemTypeSpeedBoat,
		ItemID:             999, // trip deleted from the catalog
		ItemName:           "Old Route (Gone Co)",
		NumberOfPeople:     2,
		CustomerPrice:      1000,
		ItemCost:           fptr(700),
		EmployeeCommission: fptr(40),
	}

	updated := ResolveBookingEdit(booking, 999, 5, testCatalog())
	assert.Equal(t, booking, updated)
}
