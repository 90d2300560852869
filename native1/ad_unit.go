package native1

// 7.2 Native Ad Unit IDs
//
// The Ad unit ID of the native ad unit, describing the placement in terms of
// the IAB Native Advertising Playbook categories. Core units are listed
// below; exchange-specific units use values above 500.
//
// Introduced in 1.0, to be deprecated by 1.2.
type AdUnitID int32

const (
	AdUnitPaidSearch           AdUnitID = 1 // Paid Search Units
	AdUnitRecommendationWidget AdUnitID = 2 // Recommendation Widgets
	AdUnitPromotedListing      AdUnitID = 3 // Promoted Listings
	AdUnitInAd                 AdUnitID = 4 // In-Ad (IAB Standard) with Native Element Units
	AdUnitCustom               AdUnitID = 5 // Custom / "Can't Be Contained"
)

// Ptr returns a pointer to its receiver, for use with the optional model
// fields.
func (a AdUnitID) Ptr() *AdUnitID {
	return &a
}
