// Package nativejson maps native markup messages to and from the textual
// JSON form documented by the IAB field tables. The binary wire codec is the
// canonical surface; the textual one exists for exchanges that trade JSON.
//
// Marshal elides optional fields explicitly holding their declared defaults,
// so the textual form of a message and of its binary round trip agree.
// Unmarshal accepts both the bare object and the pre-1.1 {"native": {...}}
// root wrapper, and checks every object key against the schema registry:
// undeclared keys fail a strict parse and are dropped with a warning under
// UnmarshalOptions.Permissive. Extensions travel as an "ext" object keyed by
// decimal field number, opaque and round-trippable.
package nativejson

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/golang/glog"

	"github.com/leerob727/openrtb/errortypes"
	"github.com/leerob727/openrtb/native1/schema"
)

// UnmarshalOptions control how unmarshal treats undeclared object keys.
type UnmarshalOptions struct {
	// Permissive drops undeclared keys instead of failing the parse. Drops
	// are reported through a warning-severity LossyDecode error.
	Permissive bool
}

// unwrap peels the pre-1.1 {"native": {...}} root node when present. Any
// other shape is handed to the parse unchanged.
func unwrap(data []byte) []byte {
	if value, dataType, _, err := jsonparser.Get(data, "native"); err == nil && dataType == jsonparser.Object {
		return value
	}
	return data
}

// checkKeys walks the object keys of one message against its descriptor,
// descending into nested message fields. Every message admits an "ext"
// member beside its declared fields.
func checkKeys(data []byte, md *schema.MessageDescriptor, opts UnmarshalOptions, dropped *[]errortypes.DroppedField) error {
	return jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
		name := string(key)
		if name == "ext" {
			return nil
		}

		f, ok := md.FieldByName(name)
		if !ok {
			if !opts.Permissive {
				return &errortypes.MalformedField{
					MessageName: md.Name,
					FieldName:   name,
					Reason:      "undeclared key",
				}
			}
			glog.Warningf("dropping unknown key %q in %s", name, md.Name)
			*dropped = append(*dropped, errortypes.DroppedField{MessageName: md.Name, FieldName: name})
			return nil
		}

		if f.Kind != schema.Message {
			return nil
		}
		if f.Cardinality == schema.Repeated {
			if dataType != jsonparser.Array {
				return nil
			}
			return checkElementKeys(value, f.Message, opts, dropped)
		}
		if dataType != jsonparser.Object {
			return nil
		}
		return checkKeys(value, f.Message, opts, dropped)
	})
}

// checkElementKeys applies checkKeys to every object element of a message
// array. Elements of other types are left for the typed parse to reject.
func checkElementKeys(data []byte, md *schema.MessageDescriptor, opts UnmarshalOptions, dropped *[]errortypes.DroppedField) error {
	var walkErr error
	if _, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, elemErr error) {
		if walkErr != nil || elemErr != nil || dataType != jsonparser.Object {
			return
		}
		walkErr = checkKeys(value, md, opts, dropped)
	}); err != nil {
		return err
	}
	return walkErr
}

// decodeError maps parser failures onto the shared decode error vocabulary,
// passing already-coded findings through untouched.
func decodeError(md *schema.MessageDescriptor, err error) error {
	if _, ok := err.(errortypes.Coder); ok {
		return err
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &errortypes.MalformedField{
			MessageName: md.Name,
			FieldName:   typeErr.Field,
			Reason:      fmt.Sprintf("cannot hold a JSON %s", typeErr.Value),
		}
	}
	return &errortypes.MalformedField{MessageName: md.Name, Reason: err.Error()}
}
