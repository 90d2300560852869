// Package validate implements the conformance checks for native markup
// messages. A validation pass walks the whole message and returns every
// finding rather than stopping at the first, so one pass reports everything
// a caller must fix. Findings are errortypes values carrying codes and
// severities; callers filter with errortypes.FatalOnly, WarningOnly, and
// ContainsFatalError.
//
// Required-field and enum checks are driven by the schema registry, so the
// validator and the binary codec always agree on what the protocol declares.
package validate

import (
	"github.com/blang/semver"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1/schema"
)

// checkRequired appends a MissingRequiredField finding for every required
// field of the descriptor whose presence flag is false. Fields absent from
// the map count as missing.
func checkRequired(errs []error, md *schema.MessageDescriptor, present map[string]bool) []error {
	for _, f := range md.Fields {
		if f.Cardinality != schema.Required {
			continue
		}
		if !present[f.Name] {
			errs = append(errs, &errortypes.MissingRequiredField{MessageName: md.Name, FieldName: f.Name})
		}
	}
	return errs
}

// checkEnum appends an UnknownCoreEnumValue warning when an open enum field
// holds a core-range value with no declared symbol. Absent fields and
// exchange-specific values produce no finding.
func checkEnum[T ~int32](errs []error, md *schema.MessageDescriptor, name string, value *T) []error {
	if value == nil {
		return errs
	}
	return checkEnumValue(errs, md, name, int32(*value))
}

// checkEnumList applies checkEnumValue to every element of a repeated enum
// field, keeping one finding per offending element.
func checkEnumList[T ~int32](errs []error, md *schema.MessageDescriptor, name string, values []T) []error {
	for _, v := range values {
		errs = checkEnumValue(errs, md, name, int32(v))
	}
	return errs
}

func checkEnumValue(errs []error, md *schema.MessageDescriptor, name string, value int32) []error {
	f, ok := md.FieldByName(name)
	if !ok || f.Enum == nil {
		return errs
	}
	if f.Enum.Recognized(value) {
		return errs
	}
	return append(errs, &errortypes.UnknownCoreEnumValue{MessageName: md.Name, FieldName: name, Value: value})
}

// checkVersion appends an UnknownSpecVersion warning when ver does not parse
// as a 1.x version. ParseTolerant accepts the short "1.2" form the markup
// convention uses.
func checkVersion(errs []error, md *schema.MessageDescriptor, ver *string) []error {
	if ver == nil {
		return errs
	}
	v, err := semver.ParseTolerant(*ver)
	if err != nil || v.Major != 1 {
		errs = append(errs, &errortypes.UnknownSpecVersion{MessageName: md.Name, Ver: *ver})
	}
	return errs
}

// populatedVariants lists which of the mutually exclusive asset payload
// fields are set, in declared field order.
func populatedVariants(title, img, video, data bool) []string {
	var populated []string
	if title {
		populated = append(populated, "title")
	}
	if img {
		populated = append(populated, "img")
	}
	if video {
		populated = append(populated, "video")
	}
	if data {
		populated = append(populated, "data")
	}
	return populated
}
