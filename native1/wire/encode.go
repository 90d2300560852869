package wire

import (
	"fmt"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/response"
	"github.com/leerob727/openrtb/native1/schema"
)

// EncodeRequest renders a native markup request in the canonical binary
// framing. It fails fast with a MissingRequiredField error when the request
// or any nested message omits a required field, mirroring the validator's
// check so encoding is safe without a prior validation pass. Optional fields
// explicitly set to their declared default are elided from the wire.
func EncodeRequest(r *request.Request) ([]byte, error) {
	if r == nil {
		return nil, &errortypes.ConfigurationError{Message: "wire: nil request"}
	}
	return appendRequest(nil, r)
}

// EncodeResponse renders a native markup response in the canonical binary
// framing, under the same required-field and default-elision rules as
// EncodeRequest.
func EncodeResponse(r *response.Response) ([]byte, error) {
	if r == nil {
		return nil, &errortypes.ConfigurationError{Message: "wire: nil response"}
	}
	return appendResponse(nil, r)
}

func appendRequest(b []byte, r *request.Request) ([]byte, error) {
	md := schema.Request()

	if r.Ver == nil {
		return nil, missingRequired(md, "ver")
	}
	b = appendString(b, 1, *r.Ver)

	if r.Layout != nil {
		b = appendTag(b, 2, native1.WireVarint)
		b = appendInt32(b, int32(*r.Layout))
	}

	if r.AdUnit != nil {
		b = appendTag(b, 3, native1.WireVarint)
		b = appendInt32(b, int32(*r.AdUnit))
	}

	if r.PlcmtCnt != nil && *r.PlcmtCnt != native1.DefaultPlcmtCnt {
		b = appendTag(b, 4, native1.WireVarint)
		b = appendInt32(b, *r.PlcmtCnt)
	}

	if r.Seq != nil && *r.Seq != native1.DefaultSeq {
		b = appendTag(b, 5, native1.WireVarint)
		b = appendInt32(b, *r.Seq)
	}

	for i := range r.Assets {
		body, err := appendRequestAsset(nil, &r.Assets[i])
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 6, body)
	}

	return appendExtensions(b, md, r.Ext)
}

func appendRequestAsset(b []byte, a *request.Asset) ([]byte, error) {
	md := schema.RequestAsset()

	if a.ID == nil {
		return nil, missingRequired(md, "id")
	}
	b = appendTag(b, 1, native1.WireVarint)
	b = appendInt32(b, *a.ID)

	if a.Required != nil && *a.Required != native1.DefaultAssetRequired {
		b = appendTag(b, 2, native1.WireVarint)
		b = appendBool(b, *a.Required)
	}

	if a.Title != nil {
		body, err := appendRequestTitle(nil, a.Title)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 3, body)
	}

	if a.Img != nil {
		body, err := appendRequestImage(nil, a.Img)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 4, body)
	}

	if a.Video != nil {
		body, err := appendRequestVideo(nil, a.Video)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 5, body)
	}

	if a.Data != nil {
		body, err := appendRequestData(nil, a.Data)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 6, body)
	}

	return appendExtensions(b, md, a.Ext)
}

func appendRequestTitle(b []byte, t *request.Title) ([]byte, error) {
	md := schema.RequestTitle()

	if t.Len == nil {
		return nil, missingRequired(md, "len")
	}
	b = appendTag(b, 1, native1.WireVarint)
	b = appendInt32(b, *t.Len)

	return appendExtensions(b, md, t.Ext)
}

func appendRequestImage(b []byte, img *request.Image) ([]byte, error) {
	md := schema.RequestImage()

	if img.Type != nil {
		b = appendTag(b, 1, native1.WireVarint)
		b = appendInt32(b, int32(*img.Type))
	}

	if img.W != nil {
		b = appendTag(b, 2, native1.WireVarint)
		b = appendInt32(b, *img.W)
	}

	if img.H != nil {
		b = appendTag(b, 3, native1.WireVarint)
		b = appendInt32(b, *img.H)
	}

	if img.WMin != nil {
		b = appendTag(b, 4, native1.WireVarint)
		b = appendInt32(b, *img.WMin)
	}

	if img.HMin != nil {
		b = appendTag(b, 5, native1.WireVarint)
		b = appendInt32(b, *img.HMin)
	}

	for _, mime := range img.MIMEs {
		b = appendString(b, 6, mime)
	}

	return appendExtensions(b, md, img.Ext)
}

func appendRequestVideo(b []byte, v *request.Video) ([]byte, error) {
	md := schema.RequestVideo()

	for _, mime := range v.MIMEs {
		b = appendString(b, 1, mime)
	}

	if v.MinDuration == nil {
		return nil, missingRequired(md, "minduration")
	}
	b = appendTag(b, 2, native1.WireVarint)
	b = appendInt32(b, *v.MinDuration)

	if v.MaxDuration == nil {
		return nil, missingRequired(md, "maxduration")
	}
	b = appendTag(b, 3, native1.WireVarint)
	b = appendInt32(b, *v.MaxDuration)

	for _, p := range v.Protocols {
		b = appendTag(b, 4, native1.WireVarint)
		b = appendInt32(b, int32(p))
	}

	return appendExtensions(b, md, v.Ext)
}

func appendRequestData(b []byte, d *request.Data) ([]byte, error) {
	md := schema.RequestData()

	if d.Type == nil {
		return nil, missingRequired(md, "type")
	}
	b = appendTag(b, 1, native1.WireVarint)
	b = appendInt32(b, int32(*d.Type))

	if d.Len != nil {
		b = appendTag(b, 2, native1.WireVarint)
		b = appendInt32(b, *d.Len)
	}

	return appendExtensions(b, md, d.Ext)
}

func appendResponse(b []byte, r *response.Response) ([]byte, error) {
	md := schema.Response()

	if r.Ver != nil {
		b = appendString(b, 1, *r.Ver)
	}

	for i := range r.Assets {
		body, err := appendResponseAsset(nil, &r.Assets[i])
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 2, body)
	}

	if r.Link == nil {
		return nil, missingRequired(md, "link")
	}
	body, err := appendLink(nil, r.Link)
	if err != nil {
		return nil, err
	}
	b = appendMessage(b, 3, body)

	for _, tracker := range r.ImpTrackers {
		b = appendString(b, 4, tracker)
	}

	if r.JSTracker != nil {
		b = appendString(b, 5, *r.JSTracker)
	}

	return appendExtensions(b, md, r.Ext)
}

func appendResponseAsset(b []byte, a *response.Asset) ([]byte, error) {
	md := schema.ResponseAsset()

	if a.ID == nil {
		return nil, missingRequired(md, "id")
	}
	b = appendTag(b, 1, native1.WireVarint)
	b = appendInt32(b, *a.ID)

	if a.Required != nil && *a.Required != native1.DefaultAssetRequired {
		b = appendTag(b, 2, native1.WireVarint)
		b = appendBool(b, *a.Required)
	}

	if a.Title != nil {
		body, err := appendResponseTitle(nil, a.Title)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 3, body)
	}

	if a.Img != nil {
		body, err := appendResponseImage(nil, a.Img)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 4, body)
	}

	if a.Video != nil {
		body, err := appendResponseVideo(nil, a.Video)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 5, body)
	}

	if a.Data != nil {
		body, err := appendResponseData(nil, a.Data)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 6, body)
	}

	if a.Link != nil {
		body, err := appendLink(nil, a.Link)
		if err != nil {
			return nil, err
		}
		b = appendMessage(b, 7, body)
	}

	return appendExtensions(b, md, a.Ext)
}

func appendResponseTitle(b []byte, t *response.Title) ([]byte, error) {
	md := schema.ResponseTitle()

	if t.Text == nil {
		return nil, missingRequired(md, "text")
	}
	b = appendString(b, 1, *t.Text)

	return appendExtensions(b, md, t.Ext)
}

func appendResponseImage(b []byte, img *response.Image) ([]byte, error) {
	md := schema.ResponseImage()

	if img.URL != nil {
		b = appendString(b, 1, *img.URL)
	}

	if img.W != nil {
		b = appendTag(b, 2, native1.WireVarint)
		b = appendInt32(b, *img.W)
	}

	if img.H != nil {
		b = appendTag(b, 3, native1.WireVarint)
		b = appendInt32(b, *img.H)
	}

	return appendExtensions(b, md, img.Ext)
}

func appendResponseVideo(b []byte, v *response.Video) ([]byte, error) {
	md := schema.ResponseVideo()

	for _, tag := range v.VASTTag {
		b = appendString(b, 1, tag)
	}

	return appendExtensions(b, md, v.Ext)
}

func appendResponseData(b []byte, d *response.Data) ([]byte, error) {
	md := schema.ResponseData()

	if d.Label != nil {
		b = appendString(b, 1, *d.Label)
	}

	if d.Value == nil {
		return nil, missingRequired(md, "value")
	}
	b = appendString(b, 2, *d.Value)

	return appendExtensions(b, md, d.Ext)
}

func appendLink(b []byte, l *response.Link) ([]byte, error) {
	md := schema.Link()

	if l.URL == nil {
		return nil, missingRequired(md, "url")
	}
	b = appendString(b, 1, *l.URL)

	for _, tracker := range l.ClickTrackers {
		b = appendString(b, 2, tracker)
	}

	if l.Fallback != nil {
		b = appendString(b, 3, *l.Fallback)
	}

	return appendExtensions(b, md, l.Ext)
}

// appendExtensions re-emits stored extension entries verbatim, tag first and
// payload bytes untouched. Entries that bypassed Extensions.Add are checked
// here so a malformed container cannot corrupt the surrounding message.
func appendExtensions(b []byte, md *schema.MessageDescriptor, exts native1.Extensions) ([]byte, error) {
	for _, ext := range exts {
		if !native1.InExtensionRange(ext.FieldNumber) {
			return nil, &errortypes.MalformedField{
				MessageName: md.Name,
				FieldNumber: ext.FieldNumber,
				Reason:      fmt.Sprintf("extension number outside the range %d-%d", native1.ExtensionRangeStart, native1.ExtensionRangeEnd),
			}
		}
		if !ext.WireType.Valid() {
			return nil, &errortypes.MalformedField{
				MessageName: md.Name,
				FieldNumber: ext.FieldNumber,
				Reason:      fmt.Sprintf("unsupported extension wire type %d", ext.WireType),
			}
		}

		b = appendTag(b, ext.FieldNumber, ext.WireType)
		b = append(b, ext.Data...)
	}

	return b, nil
}

func missingRequired(md *schema.MessageDescriptor, field string) error {
	return &errortypes.MissingRequiredField{MessageName: md.Name, FieldName: field}
}
