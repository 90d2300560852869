package errortypes

import (
	"fmt"
	"strings"
)

// ConfigurationError should be used when a registry, schema, or option set is
// invalid before any payload is processed. It is not caused by payload data.
type ConfigurationError struct {
	Message string
}

func (err *ConfigurationError) Error() string {
	return err.Message
}

func (err *ConfigurationError) Code() int {
	return ConfigurationErrorCode
}

func (err *ConfigurationError) Severity() Severity {
	return SeverityFatal
}

// MissingRequiredField should be used when a message omits a field the
// protocol requires. Encoders fail fast with it; validators collect it.
type MissingRequiredField struct {
	MessageName string
	FieldName   string
}

func (err *MissingRequiredField) Error() string {
	return fmt.Sprintf("%s.%s: required field is missing", err.MessageName, err.FieldName)
}

func (err *MissingRequiredField) Code() int {
	return MissingRequiredFieldErrorCode
}

func (err *MissingRequiredField) Severity() Severity {
	return SeverityFatal
}

// MalformedField should be used when a field value cannot be interpreted, such
// as a wire type mismatch, an out of range value, or a malformed length prefix.
// FieldName may be empty when only the field number is known.
type MalformedField struct {
	MessageName string
	FieldName   string
	FieldNumber int32
	Reason      string
}

func (err *MalformedField) Error() string {
	loc := err.FieldName
	if loc == "" && err.FieldNumber != 0 {
		loc = fmt.Sprintf("field %d", err.FieldNumber)
	}
	if err.MessageName != "" {
		if loc == "" {
			loc = err.MessageName
		} else {
			loc = err.MessageName + "." + loc
		}
	}
	if loc == "" {
		return err.Reason
	}
	return fmt.Sprintf("%s: %s", loc, err.Reason)
}

func (err *MalformedField) Code() int {
	return MalformedFieldErrorCode
}

func (err *MalformedField) Severity() Severity {
	return SeverityFatal
}

// Truncated should be used when the payload ends before a complete tag, value,
// or length-delimited region could be read.
type Truncated struct {
	MessageName string
	Offset      int
}

func (err *Truncated) Error() string {
	return fmt.Sprintf("%s: truncated message at offset %d", err.MessageName, err.Offset)
}

func (err *Truncated) Code() int {
	return TruncatedErrorCode
}

func (err *Truncated) Severity() Severity {
	return SeverityFatal
}

// ConflictingAssetVariant should be used when an asset populates more than one
// of its title, img, video, and data variants.
type ConflictingAssetVariant struct {
	AssetID   int32
	Populated []string
}

func (err *ConflictingAssetVariant) Error() string {
	return fmt.Sprintf("asset %d: more than one variant populated (%s)", err.AssetID, strings.Join(err.Populated, ", "))
}

func (err *ConflictingAssetVariant) Code() int {
	return ConflictingAssetVariantErrorCode
}

func (err *ConflictingAssetVariant) Severity() Severity {
	return SeverityFatal
}

// DuplicateAssetID should be used when two assets in the same message share an id.
type DuplicateAssetID struct {
	AssetID int32
}

func (err *DuplicateAssetID) Error() string {
	return fmt.Sprintf("asset id %d is used by more than one asset", err.AssetID)
}

func (err *DuplicateAssetID) Code() int {
	return DuplicateAssetIDErrorCode
}

func (err *DuplicateAssetID) Severity() Severity {
	return SeverityFatal
}

// UnmatchedResponseAsset should be used when a response asset id does not
// correspond to any asset in the request it answers. Kind names the populated
// variant when known.
type UnmatchedResponseAsset struct {
	AssetID int32
	Kind    string
}

func (err *UnmatchedResponseAsset) Error() string {
	if err.Kind != "" {
		return fmt.Sprintf("response %s asset with id %d does not match any request asset", err.Kind, err.AssetID)
	}
	return fmt.Sprintf("response asset with id %d does not match any request asset", err.AssetID)
}

func (err *UnmatchedResponseAsset) Code() int {
	return UnmatchedResponseAssetErrorCode
}

func (err *UnmatchedResponseAsset) Severity() Severity {
	return SeverityFatal
}

// UnknownCoreEnumValue is a warning for an enum value inside the core range
// that no declared constant covers. The value is preserved as-is.
type UnknownCoreEnumValue struct {
	MessageName string
	FieldName   string
	Value       int32
}

func (err *UnknownCoreEnumValue) Error() string {
	return fmt.Sprintf("%s.%s: value %d is not a known core enum value", err.MessageName, err.FieldName, err.Value)
}

func (err *UnknownCoreEnumValue) Code() int {
	return UnknownCoreEnumValueWarningCode
}

func (err *UnknownCoreEnumValue) Severity() Severity {
	return SeverityWarning
}

// UnknownSpecVersion is a warning for a ver value this implementation does not
// recognize. Processing continues with the known field set.
type UnknownSpecVersion struct {
	MessageName string
	Ver         string
}

func (err *UnknownSpecVersion) Error() string {
	return fmt.Sprintf("%s.ver: unrecognized spec version %q", err.MessageName, err.Ver)
}

func (err *UnknownSpecVersion) Code() int {
	return UnknownSpecVersionWarningCode
}

func (err *UnknownSpecVersion) Severity() Severity {
	return SeverityWarning
}

// DroppedField identifies a single unknown field discarded during a
// permissive decode. Binary decodes carry the field number, textual decodes
// the object key.
type DroppedField struct {
	MessageName string
	FieldNumber int32
	FieldName   string
}

// LossyDecode is a warning returned when a permissive decode dropped unknown
// fields. The decoded message is usable, but re-encoding it will not reproduce
// the original bytes.
type LossyDecode struct {
	Dropped []DroppedField
}

func (err *LossyDecode) Error() string {
	locs := make([]string, len(err.Dropped))
	for i, d := range err.Dropped {
		if d.FieldName != "" {
			locs[i] = fmt.Sprintf("%s field %q", d.MessageName, d.FieldName)
		} else {
			locs[i] = fmt.Sprintf("%s field %d", d.MessageName, d.FieldNumber)
		}
	}
	return fmt.Sprintf("decode dropped %d unknown field(s): %s", len(err.Dropped), strings.Join(locs, ", "))
}

func (err *LossyDecode) Code() int {
	return LossyDecodeWarningCode
}

func (err *LossyDecode) Severity() Severity {
	return SeverityWarning
}

// Warning is a generic non-fatal error.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}
