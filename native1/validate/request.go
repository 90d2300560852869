package validate

import (
	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1/request"
	"github.com/leerob727/openrtb/native1/schema"
	"github.com/leerob727/openrtb/util/sliceutil"
)

// ValidateRequest checks a native markup request against the protocol rules
// and returns every finding in walk order: required fields, asset variant
// exclusivity, asset id uniqueness, enum membership, and the spec version.
// A conforming request yields an empty slice.
func ValidateRequest(r *request.Request) []error {
	if r == nil {
		return []error{&errortypes.ConfigurationError{Message: "validate: nil request"}}
	}

	md := schema.Request()

	var errs []error
	errs = checkRequired(errs, md, map[string]bool{
		"ver": r.Ver != nil,
	})
	errs = checkVersion(errs, md, r.Ver)
	errs = checkEnum(errs, md, "layout", r.Layout)
	errs = checkEnum(errs, md, "adunit", r.AdUnit)

	var seen []int32
	for i := range r.Assets {
		errs = validateRequestAsset(errs, &r.Assets[i])

		if id := r.Assets[i].ID; id != nil {
			if sliceutil.Contains(seen, *id) {
				errs = append(errs, &errortypes.DuplicateAssetID{AssetID: *id})
			}
			seen = append(seen, *id)
		}
	}

	return errs
}

func validateRequestAsset(errs []error, a *request.Asset) []error {
	md := schema.RequestAsset()

	errs = checkRequired(errs, md, map[string]bool{
		"id": a.ID != nil,
	})

	populated := populatedVariants(a.Title != nil, a.Img != nil, a.Video != nil, a.Data != nil)
	if len(populated) > 1 {
		errs = append(errs, &errortypes.ConflictingAssetVariant{AssetID: a.GetID(), Populated: populated})
	}

	if a.Title != nil {
		errs = checkRequired(errs, schema.RequestTitle(), map[string]bool{
			"len": a.Title.Len != nil,
		})
	}

	if a.Img != nil {
		errs = checkEnum(errs, schema.RequestImage(), "type", a.Img.Type)
	}

	if a.Video != nil {
		vmd := schema.RequestVideo()
		errs = checkRequired(errs, vmd, map[string]bool{
			"minduration": a.Video.MinDuration != nil,
			"maxduration": a.Video.MaxDuration != nil,
		})
		errs = checkEnumList(errs, vmd, "protocols", a.Video.Protocols)
	}

	if a.Data != nil {
		dmd := schema.RequestData()
		errs = checkRequired(errs, dmd, map[string]bool{
			"type": a.Data.Type != nil,
		})
		errs = checkEnum(errs, dmd, "type", a.Data.Type)
	}

	return errs
}
