package nativejson

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/leerob727/openrtb/errortypes"
)

// Structural contracts for the two root payloads, compiled into the binary
// so the validator carries no runtime file dependencies.
//
//go:embed schemas/native-request.json
var requestSchemaJSON string

//go:embed schemas/native-response.json
var responseSchemaJSON string

// PayloadValidator checks raw JSON payloads against the embedded schemas
// before any typed parse. It reports shape violations, wrong member types
// and missing required members without building a model instance, which
// makes it cheap to put in front of an untrusted intake path.
type PayloadValidator struct {
	requestSchema  *gojsonschema.Schema
	responseSchema *gojsonschema.Schema
}

// NewPayloadValidator compiles the embedded schemas. Failure here means the
// shipped schemas themselves are broken and is always a configuration fault.
func NewPayloadValidator() (*PayloadValidator, error) {
	requestSchema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(requestSchemaJSON))
	if err != nil {
		return nil, &errortypes.ConfigurationError{Message: fmt.Sprintf("nativejson: compiling request schema: %v", err)}
	}
	responseSchema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(responseSchemaJSON))
	if err != nil {
		return nil, &errortypes.ConfigurationError{Message: fmt.Sprintf("nativejson: compiling response schema: %v", err)}
	}
	return &PayloadValidator{
		requestSchema:  requestSchema,
		responseSchema: responseSchema,
	}, nil
}

// ValidateRequestPayload checks a raw request payload, unwrapping the
// pre-1.1 root node first. A nil return means the shape conforms.
func (v *PayloadValidator) ValidateRequestPayload(data []byte) error {
	return checkPayload(v.requestSchema, "NativeRequest", unwrap(data))
}

// ValidateResponsePayload checks a raw response payload, unwrapping the
// pre-1.1 root node first. A nil return means the shape conforms.
func (v *PayloadValidator) ValidateResponsePayload(data []byte) error {
	return checkPayload(v.responseSchema, "NativeResponse", unwrap(data))
}

func checkPayload(s *gojsonschema.Schema, messageName string, data []byte) error {
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &errortypes.MalformedField{MessageName: messageName, Reason: err.Error()}
	}
	if result.Valid() {
		return nil
	}

	violations := make([]error, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		violations = append(violations, &errortypes.MalformedField{
			MessageName: messageName,
			Reason:      resultErr.String(),
		})
	}
	return errortypes.NewAggregateErrors(messageName+" payload", violations)
}
