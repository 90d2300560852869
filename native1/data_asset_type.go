package native1

// 7.4 Data Asset Types
//
// Common asset element types of native advertising at the time of writing
// this spec. This list is non-exhaustive and intended to be extended by the
// buyers and sellers as the format evolves; exchange-specific types use
// values above 500.
type DataAssetType int32

const (
	DataAssetTypeSponsored  DataAssetType = 1  // Sponsored By message where response should contain the brand name of the sponsor.
	DataAssetTypeDesc       DataAssetType = 2  // Descriptive text associated with the product or service being advertised.
	DataAssetTypeRating     DataAssetType = 3  // Rating of the product being offered to the user. For example an app's rating in an app store from 0-5.
	DataAssetTypeLikes      DataAssetType = 4  // Number of social ratings or "likes" of the product being offered to the user.
	DataAssetTypeDownloads  DataAssetType = 5  // Number downloads/installs of this product.
	DataAssetTypePrice      DataAssetType = 6  // Price for product / app / in-app purchase. Value should include currency symbol in localised format.
	DataAssetTypeSalePrice  DataAssetType = 7  // Sale price that can be used together with price to indicate a discounted price.
	DataAssetTypePhone      DataAssetType = 8  // Phone number.
	DataAssetTypeAddress    DataAssetType = 9  // Address.
	DataAssetTypeDesc2      DataAssetType = 10 // Additional descriptive text associated with the product or service being advertised.
	DataAssetTypeDisplayURL DataAssetType = 11 // Display URL for the text ad.
	DataAssetTypeCTAText    DataAssetType = 12 // CTA description - descriptive text describing a 'call to action' button for the destination URL.
)

// Ptr returns a pointer to its receiver, for use with the optional model
// fields.
func (t DataAssetType) Ptr() *DataAssetType {
	return &t
}
