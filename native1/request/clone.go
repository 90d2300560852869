package request

import (
	"github.com/leerob727/openrtb/util/ptrutil"
	"github.com/leerob727/openrtb/util/sliceutil"
)

func CloneRequest(s *Request) *Request {
	if s == nil {
		return nil
	}

	// Shallow Copy (Value Fields)
	c := *s

	// Deep Copy (Pointers)
	c.Ver = ptrutil.Clone(s.Ver)
	c.Layout = ptrutil.Clone(s.Layout)
	c.AdUnit = ptrutil.Clone(s.AdUnit)
	c.PlcmtCnt = ptrutil.Clone(s.PlcmtCnt)
	c.Seq = ptrutil.Clone(s.Seq)
	c.Assets = cloneAssets(s.Assets)
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
	c.Len = ptrutil.Clone(s.Len)
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
	c.Type = ptrutil.Clone(s.Type)
	c.W = ptrutil.Clone(s.W)
	c.H = ptrutil.Clone(s.H)
	c.WMin = ptrutil.Clone(s.WMin)
	c.HMin = ptrutil.Clone(s.HMin)
	c.MIMEs = sliceutil.Clone(s.MIMEs)
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
	c.MIMEs = sliceutil.Clone(s.MIMEs)
	c.MinDuration = ptrutil.Clone(s.MinDuration)
	c.MaxDuration = ptrutil.Clone(s.MaxDuration)
	c.Protocols = sliceutil.Clone(s.Protocols)
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
	c.Type = ptrutil.Clone(s.Type)
	c.Len = ptrutil.Clone(s.Len)
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
