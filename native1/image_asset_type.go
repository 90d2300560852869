package native1

// 7.5 Image Asset Types
//
// Type ID of the image element supported by the publisher. Core types are
// listed below; exchange-specific types use values above 500.
type ImageAssetType int32

const (
	ImageAssetTypeIcon ImageAssetType = 1 // Icon image. Max height: at least 50; aspect ratio: 1:1.
	ImageAssetTypeLogo ImageAssetType = 2 // Logo image for the brand/app. To be deprecated in a future version.
	ImageAssetTypeMain ImageAssetType = 3 // Large image preview for the ad.
)

// Ptr returns a pointer to its receiver, for use with the optional model
// fields.
func (t ImageAssetType) Ptr() *ImageAssetType {
	return &t
}
