package response

import (
	"github.com/leerob727/openrtb/util/ptrutil"
	"github.com/leerob727/openrtb/util/sliceutil"
)

func CloneResponse(s *Response) *Response {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.Ver = ptrutil.Clone(s.Ver)
	c.Assets = cloneAssets(s.Assets)
	c.Link = CloneLink(s.Link)
	c.ImpTrackers = sliceutil.Clone(s.ImpTrackers)
	c.JSTracker = ptrutil.Clone(s.JSTracker)
	c.Ext = s.Ext.Clone()

	return &c
}

func CloneAsset(s *Asset) *Asset {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.ID = ptrutil.Clone(s.ID)
	c.Required = ptrutil.Clone(s.Required)
	c.Title = CloneTitle(s.Title)
	c.Img = CloneImage(s.Img)
	c.Video = CloneVideo(s.Video)
	c.Data = CloneData(s.Data)
	c.Link = CloneLink(s.Link)
	c.Ext = s.Ext.Clone()

	return &c
}

func CloneTitle(s *Title) *Title {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.Text = ptrutil.Clone(s.Text)
	c.Ext = s.Ext.Clone()

	return &c
}

func CloneImage(s *Image) *Image {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.URL = ptrutil.Clone(s.URL)
	c.W = ptrutil.Clone(s.W)
	c.H = ptrutil.Clone(s.H)
	c.Ext = s.Ext.Clone()

	return &c
}

func CloneVideo(s *Video) *Video {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.VASTTag = sliceutil.Clone(s.VASTTag)
	c.Ext = s.Ext.Clone()

	return &c
}

func CloneData(s *Data) *Data {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.Label = ptrutil.Clone(s.Label)
	c.Value = ptrutil.Clone(s.Value)
	c.Ext = s.Ext.Clone()

	return &c
}

func CloneLink(s *Link) *Link {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.URL = ptrutil.Clone(s.URL)
	c.ClickTrackers = sliceutil.Clone(s.ClickTrackers)
	c.Fallback = ptrutil.Clone(s.Fallback)
	c.Ext = s.Ext.Clone()

	return &c
}

func cloneAssets(s []Asset) []Asset {
	if s == nil {
		return nil
	}

	c := make([]Asset, len(s))
	for i := range s {
		c[i] = *CloneAsset(&s[i])
	}

	return c
}
