package native1

// 7.1 Native Layout IDs
//
// The Layout ID of the native ad unit. Core layouts are listed below; an
// exchange may introduce its own using values above 500.
//
// Introduced in 1.0, to be deprecated by 1.2.
type LayoutID int32

const (
	LayoutContentWall   LayoutID = 1 // Content Wall
	LayoutAppWall       LayoutID = 2 // App Wall
	LayoutNewsFeed      LayoutID = 3 // News Feed
	LayoutChatList      LayoutID = 4 // Chat List
	LayoutCarousel      LayoutID = 5 // Carousel
	LayoutContentStream LayoutID = 6 // Content Stream
	LayoutGrid          LayoutID = 7 // Grid adjoining the content
)

// Ptr returns a pointer to its receiver, for use with the optional model
// fields.
func (l LayoutID) Ptr() *LayoutID {
	return &l
}
