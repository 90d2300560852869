package wire

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/response"
	"github.com/leerob727/openrtb/native1/schema"
	"github.com/leerob727/openrtb/util/ptrutil"
	"github.com/leerob727/openrtb/util/sliceutil"
)

// DecodeOptions controls how a decode treats fields the registry does not
// declare.
type DecodeOptions struct {
	// Permissive drops undeclared fields outside the extension range instead
	// of failing the decode. Every drop is reported afterwards through a
	// LossyDecode warning.
	Permissive bool
}

// DecodeRequest parses a native markup request from its binary form,
// rejecting any undeclared field outside the extension range. Required
// fields are not enforced here; run the validator on the result to check
// message completeness.
func DecodeRequest(data []byte) (*request.Request, error) {
	return DecodeRequestOptions(data, DecodeOptions{})
}

// DecodeRequestOptions parses a native markup request under the given
// options. In permissive mode the parsed request is returned alongside a
// LossyDecode warning when anything was dropped, so callers that tolerate
// warnings can keep the result.
func DecodeRequestOptions(data []byte, opts DecodeOptions) (*request.Request, error) {
	d := &decoder{data: data, opts: opts, dropped: new([]errortypes.DroppedField)}
	r, err := decodeRequest(d)
	if err != nil {
		return nil, err
	}
	if len(*d.dropped) > 0 {
		return r, &errortypes.LossyDecode{Dropped: *d.dropped}
	}
	return r, nil
}

// DecodeResponse parses a native markup response from its binary form under
// the same rules as DecodeRequest.
func DecodeResponse(data []byte) (*response.Response, error) {
	return DecodeResponseOptions(data, DecodeOptions{})
}

// DecodeResponseOptions parses a native markup response under the given
// options, with the same permissive-mode contract as DecodeRequestOptions.
func DecodeResponseOptions(data []byte, opts DecodeOptions) (*response.Response, error) {
	d := &decoder{data: data, opts: opts, dropped: new([]errortypes.DroppedField)}
	r, err := decodeResponse(d)
	if err != nil {
		return nil, err
	}
	if len(*d.dropped) > 0 {
		return r, &errortypes.LossyDecode{Dropped: *d.dropped}
	}
	return r, nil
}

func decodeRequest(d *decoder) (*request.Request, error) {
	md := schema.Request()
	r := &request.Request{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.stringField(md, "ver", wt)
			if err != nil {
				return nil, err
			}
			r.Ver = &v
		case 2:
			v, err := d.int32Field(md, "layout", wt)
			if err != nil {
				return nil, err
			}
			r.Layout = ptrutil.ToPtr(native1.LayoutID(v))
		case 3:
			v, err := d.int32Field(md, "adunit", wt)
			if err != nil {
				return nil, err
			}
			r.AdUnit = ptrutil.ToPtr(native1.AdUnitID(v))
		case 4:
			v, err := d.int32Field(md, "plcmtcnt", wt)
			if err != nil {
				return nil, err
			}
			r.PlcmtCnt = &v
		case 5:
			v, err := d.int32Field(md, "seq", wt)
			if err != nil {
				return nil, err
			}
			r.Seq = &v
		case 6:
			p, err := d.messageField(md, "assets", wt)
			if err != nil {
				return nil, err
			}
			asset, err := decodeRequestAsset(p)
			if err != nil {
				return nil, err
			}
			r.Assets = append(r.Assets, *asset)
		default:
			if err := d.unknownField(md, num, wt, &r.Ext); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func decodeRequestAsset(d *decoder) (*request.Asset, error) {
	md := schema.RequestAsset()
	a := &request.Asset{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.int32Field(md, "id", wt)
			if err != nil {
				return nil, err
			}
			a.ID = &v
		case 2:
			v, err := d.boolField(md, "required", wt)
			if err != nil {
				return nil, err
			}
			a.Required = &v
		case 3:
			p, err := d.messageField(md, "title", wt)
			if err != nil {
				return nil, err
			}
			if a.Title, err = decodeRequestTitle(p); err != nil {
				return nil, err
			}
		case 4:
			p, err := d.messageField(md, "img", wt)
			if err != nil {
				return nil, err
			}
			if a.Img, err = decodeRequestImage(p); err != nil {
				return nil, err
			}
		case 5:
			p, err := d.messageField(md, "video", wt)
			if err != nil {
				return nil, err
			}
			if a.Video, err = decodeRequestVideo(p); err != nil {
				return nil, err
			}
		case 6:
			p, err := d.messageField(md, "data", wt)
			if err != nil {
				return nil, err
			}
			if a.Data, err = decodeRequestData(p); err != nil {
				return nil, err
			}
		default:
			if err := d.unknownField(md, num, wt, &a.Ext); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

func decodeRequestTitle(d *decoder) (*request.Title, error) {
	md := schema.RequestTitle()
	t := &request.Title{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.int32Field(md, "len", wt)
			if err != nil {
				return nil, err
			}
			t.Len = &v
		default:
			if err := d.unknownField(md, num, wt, &t.Ext); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func decodeRequestImage(d *decoder) (*request.Image, error) {
	md := schema.RequestImage()
	img := &request.Image{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.int32Field(md, "type", wt)
			if err != nil {
				return nil, err
			}
			img.Type = ptrutil.ToPtr(native1.ImageAssetType(v))
		case 2:
			v, err := d.int32Field(md, "w", wt)
			if err != nil {
				return nil, err
			}
			img.W = &v
		case 3:
			v, err := d.int32Field(md, "h", wt)
			if err != nil {
				return nil, err
			}
			img.H = &v
		case 4:
			v, err := d.int32Field(md, "wmin", wt)
			if err != nil {
				return nil, err
			}
			img.WMin = &v
		case 5:
			v, err := d.int32Field(md, "hmin", wt)
			if err != nil {
				return nil, err
			}
			img.HMin = &v
		case 6:
			v, err := d.stringField(md, "mimes", wt)
			if err != nil {
				return nil, err
			}
			img.MIMEs = append(img.MIMEs, v)
		default:
			if err := d.unknownField(md, num, wt, &img.Ext); err != nil {
				return nil, err
			}
		}
	}

	return img, nil
}

func decodeRequestVideo(d *decoder) (*request.Video, error) {
	md := schema.RequestVideo()
	v := &request.Video{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			s, err := d.stringField(md, "mimes", wt)
			if err != nil {
				return nil, err
			}
			v.MIMEs = append(v.MIMEs, s)
		case 2:
			n, err := d.int32Field(md, "minduration", wt)
			if err != nil {
				return nil, err
			}
			v.MinDuration = &n
		case 3:
			n, err := d.int32Field(md, "maxduration", wt)
			if err != nil {
				return nil, err
			}
			v.MaxDuration = &n
		case 4:
			if v.Protocols, err = appendInt32List(d, md, "protocols", wt, v.Protocols); err != nil {
				return nil, err
			}
		default:
			if err := d.unknownField(md, num, wt, &v.Ext); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

func decodeRequestData(d *decoder) (*request.Data, error) {
	md := schema.RequestData()
	data := &request.Data{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.int32Field(md, "type", wt)
			if err != nil {
				return nil, err
			}
			data.Type = ptrutil.ToPtr(native1.DataAssetType(v))
		case 2:
			v, err := d.int32Field(md, "len", wt)
			if err != nil {
				return nil, err
			}
			data.Len = &v
		default:
			if err := d.unknownField(md, num, wt, &data.Ext); err != nil {
				return nil, err
			}
		}
	}

	return data, nil
}

func decodeResponse(d *decoder) (*response.Response, error) {
	md := schema.Response()
	r := &response.Response{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.stringField(md, "ver", wt)
			if err != nil {
				return nil, err
			}
			r.Ver = &v
		case 2:
			p, err := d.messageField(md, "assets", wt)
			if err != nil {
				return nil, err
			}
			asset, err := decodeResponseAsset(p)
			if err != nil {
				return nil, err
			}
			r.Assets = append(r.Assets, *asset)
		case 3:
			p, err := d.messageField(md, "link", wt)
			if err != nil {
				return nil, err
			}
			if r.Link, err = decodeLink(p); err != nil {
				return nil, err
			}
		case 4:
			v, err := d.stringField(md, "imptrackers", wt)
			if err != nil {
				return nil, err
			}
			r.ImpTrackers = append(r.ImpTrackers, v)
		case 5:
			v, err := d.stringField(md, "jstracker", wt)
			if err != nil {
				return nil, err
			}
			r.JSTracker = &v
		default:
			if err := d.unknownField(md, num, wt, &r.Ext); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func decodeResponseAsset(d *decoder) (*response.Asset, error) {
	md := schema.ResponseAsset()
	a := &response.Asset{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.int32Field(md, "id", wt)
			if err != nil {
				return nil, err
			}
			a.ID = &v
		case 2:
			v, err := d.boolField(md, "required", wt)
			if err != nil {
				return nil, err
			}
			a.Required = &v
		case 3:
			p, err := d.messageField(md, "title", wt)
			if err != nil {
				return nil, err
			}
			if a.Title, err = decodeResponseTitle(p); err != nil {
				return nil, err
			}
		case 4:
			p, err := d.messageField(md, "img", wt)
			if err != nil {
				return nil, err
			}
			if a.Img, err = decodeResponseImage(p); err != nil {
				return nil, err
			}
		case 5:
			p, err := d.messageField(md, "video", wt)
			if err != nil {
				return nil, err
			}
			if a.Video, err = decodeResponseVideo(p); err != nil {
				return nil, err
			}
		case 6:
			p, err := d.messageField(md, "data", wt)
			if err != nil {
				return nil, err
			}
			if a.Data, err = decodeResponseData(p); err != nil {
				return nil, err
			}
		case 7:
			p, err := d.messageField(md, "link", wt)
			if err != nil {
				return nil, err
			}
			if a.Link, err = decodeLink(p); err != nil {
				return nil, err
			}
		default:
			if err := d.unknownField(md, num, wt, &a.Ext); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

func decodeResponseTitle(d *decoder) (*response.Title, error) {
	md := schema.ResponseTitle()
	t := &response.Title{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.stringField(md, "text", wt)
			if err != nil {
				return nil, err
			}
			t.Text = &v
		default:
			if err := d.unknownField(md, num, wt, &t.Ext); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func decodeResponseImage(d *decoder) (*response.Image, error) {
	md := schema.ResponseImage()
	img := &response.Image{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.stringField(md, "url", wt)
			if err != nil {
				return nil, err
			}
			img.URL = &v
		case 2:
			v, err := d.int32Field(md, "w", wt)
			if err != nil {
				return nil, err
			}
			img.W = &v
		case 3:
			v, err := d.int32Field(md, "h", wt)
			if err != nil {
				return nil, err
			}
			img.H = &v
		default:
			if err := d.unknownField(md, num, wt, &img.Ext); err != nil {
				return nil, err
			}
		}
	}

	return img, nil
}

func decodeResponseVideo(d *decoder) (*response.Video, error) {
	md := schema.ResponseVideo()
	v := &response.Video{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			s, err := d.stringField(md, "vasttag", wt)
			if err != nil {
				return nil, err
			}
			v.VASTTag = append(v.VASTTag, s)
		default:
			if err := d.unknownField(md, num, wt, &v.Ext); err != nil {
				return nil, err
			}
		}
	}

	return v, nil
}

func decodeResponseData(d *decoder) (*response.Data, error) {
	md := schema.ResponseData()
	data := &response.Data{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.stringField(md, "label", wt)
			if err != nil {
				return nil, err
			}
			data.Label = &v
		case 2:
			v, err := d.stringField(md, "value", wt)
			if err != nil {
				return nil, err
			}
			data.Value = &v
		default:
			if err := d.unknownField(md, num, wt, &data.Ext); err != nil {
				return nil, err
			}
		}
	}

	return data, nil
}

func decodeLink(d *decoder) (*response.Link, error) {
	md := schema.Link()
	l := &response.Link{}

	for d.remaining() {
		num, wt, err := d.readTag(md.Name)
		if err != nil {
			return nil, err
		}

		switch num {
		case 1:
			v, err := d.stringField(md, "url", wt)
			if err != nil {
				return nil, err
			}
			l.URL = &v
		case 2:
			v, err := d.stringField(md, "clicktrackers", wt)
			if err != nil {
				return nil, err
			}
			l.ClickTrackers = append(l.ClickTrackers, v)
		case 3:
			v, err := d.stringField(md, "fallback", wt)
			if err != nil {
				return nil, err
			}
			l.Fallback = &v
		default:
			if err := d.unknownField(md, num, wt, &l.Ext); err != nil {
				return nil, err
			}
		}
	}

	return l, nil
}

func (d *decoder) int32Field(md *schema.MessageDescriptor, name string, wt native1.WireType) (int32, error) {
	if wt != native1.WireVarint {
		return 0, wireTypeMismatch(md, name, wt, native1.WireVarint)
	}
	v, err := d.readVarint(md.Name)
	if err != nil {
		return 0, err
	}
	return int32FromVarint(v), nil
}

func (d *decoder) boolField(md *schema.MessageDescriptor, name string, wt native1.WireType) (bool, error) {
	if wt != native1.WireVarint {
		return false, wireTypeMismatch(md, name, wt, native1.WireVarint)
	}
	v, err := d.readVarint(md.Name)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (d *decoder) stringField(md *schema.MessageDescriptor, name string, wt native1.WireType) (string, error) {
	if wt != native1.WireBytes {
		return "", wireTypeMismatch(md, name, wt, native1.WireBytes)
	}
	region, err := d.readBytes(md.Name)
	if err != nil {
		return "", err
	}
	return string(region), nil
}

// messageField consumes the length-prefixed body of a nested message and
// returns a child decoder positioned over it.
func (d *decoder) messageField(md *schema.MessageDescriptor, name string, wt native1.WireType) (*decoder, error) {
	if wt != native1.WireBytes {
		return nil, wireTypeMismatch(md, name, wt, native1.WireBytes)
	}
	region, err := d.readBytes(md.Name)
	if err != nil {
		return nil, err
	}
	return d.child(region), nil
}

// appendInt32List consumes a repeated varint field in either form, one value
// per tag or a packed length-prefixed run of varints.
func appendInt32List[T ~int32](d *decoder, md *schema.MessageDescriptor, name string, wt native1.WireType, dst []T) ([]T, error) {
	switch wt {
	case native1.WireVarint:
		v, err := d.readVarint(md.Name)
		if err != nil {
			return dst, err
		}
		return append(dst, T(int32FromVarint(v))), nil
	case native1.WireBytes:
		region, err := d.readBytes(md.Name)
		if err != nil {
			return dst, err
		}
		p := d.child(region)
		for p.remaining() {
			v, err := p.readVarint(md.Name)
			if err != nil {
				return dst, err
			}
			dst = append(dst, T(int32FromVarint(v)))
		}
		return dst, nil
	default:
		return dst, wireTypeMismatch(md, name, wt, native1.WireVarint)
	}
}

// unknownField routes a field number the descriptor does not declare.
// Numbers in the extension range are captured verbatim; anything else fails
// a strict decode and is skipped with a logged drop in permissive mode.
func (d *decoder) unknownField(md *schema.MessageDescriptor, num int32, wt native1.WireType, exts *native1.Extensions) error {
	if native1.InExtensionRange(num) {
		data, err := d.readRawValue(md, num, wt)
		if err != nil {
			return err
		}
		*exts = append(*exts, native1.RawExtension{FieldNumber: num, WireType: wt, Data: data})
		return nil
	}

	if !d.opts.Permissive {
		return &errortypes.MalformedField{
			MessageName: md.Name,
			FieldNumber: num,
			Reason:      "undeclared field outside the extension range",
		}
	}

	if err := d.skipValue(md, num, wt); err != nil {
		return err
	}
	glog.Warningf("dropping unknown field %d in %s", num, md.Name)
	*d.dropped = append(*d.dropped, errortypes.DroppedField{MessageName: md.Name, FieldNumber: num})
	return nil
}

// readRawValue consumes one value and returns its wire bytes exactly as they
// appeared, length prefix included for the bytes wire type. The bytes are
// copied so the extension does not alias the caller's input buffer.
func (d *decoder) readRawValue(md *schema.MessageDescriptor, num int32, wt native1.WireType) ([]byte, error) {
	start := d.pos
	if err := d.skipValue(md, num, wt); err != nil {
		return nil, err
	}
	return sliceutil.Clone(d.data[start:d.pos]), nil
}

// skipValue consumes one value of the given wire type without interpreting
// it. The legacy group wire types carry no length and cannot be skipped, so
// they are rejected outright.
func (d *decoder) skipValue(md *schema.MessageDescriptor, num int32, wt native1.WireType) error {
	switch wt {
	case native1.WireVarint:
		_, err := d.readVarint(md.Name)
		return err
	case native1.WireFixed64:
		_, err := d.readFixed64(md.Name)
		return err
	case native1.WireBytes:
		_, err := d.readBytes(md.Name)
		return err
	case native1.WireFixed32:
		_, err := d.readFixed32(md.Name)
		return err
	default:
		return &errortypes.MalformedField{
			MessageName: md.Name,
			FieldNumber: num,
			Reason:      fmt.Sprintf("unsupported wire type %d", wt),
		}
	}
}

func wireTypeMismatch(md *schema.MessageDescriptor, field string, got, want native1.WireType) error {
	return &errortypes.MalformedField{
		MessageName: md.Name,
		FieldName:   field,
		Reason:      fmt.Sprintf("wire type %s where %s expected", wireTypeName(got), wireTypeName(want)),
	}
}

func wireTypeName(wt native1.WireType) string {
	switch wt {
	case native1.WireVarint:
		return "varint"
	case native1.WireFixed64:
		return "fixed64"
	case native1.WireBytes:
		return "bytes"
	case native1.WireFixed32:
		return "fixed32"
	default:
		return fmt.Sprintf("%d", wt)
	}
}
