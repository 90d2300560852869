package errortypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFatalError(t *testing.T) {
	fatal := &MissingRequiredField{MessageName: "Link", FieldName: "url"}
	warning := &UnknownCoreEnumValue{MessageName: "NativeRequest", FieldName: "layout", Value: 42}
	uncoded := errors.New("anything")

	testCases := []struct {
		description string
		errs        []error
		expected    bool
	}{
		{
			description: "empty",
			errs:        []error{},
			expected:    false,
		},
		{
			description: "warnings only",
			errs:        []error{warning, warning},
			expected:    false,
		},
		{
			description: "fatal among warnings",
			errs:        []error{warning, fatal, warning},
			expected:    true,
		},
		{
			description: "uncoded errors are fatal",
			errs:        []error{uncoded},
			expected:    true,
		},
	}

	for _, test := range testCases {
		result := ContainsFatalError(test.errs)
		assert.Equal(t, test.expected, result, test.description)
	}
}

func TestFatalOnly(t *testing.T) {
	fatal := &DuplicateAssetID{AssetID: 1}
	warning := &Warning{Message: "ignored", WarningCode: UnknownWarningCode}

	result := FatalOnly([]error{warning, fatal, warning})
	assert.Equal(t, []error{fatal}, result)
}

func TestWarningOnly(t *testing.T) {
	fatal := &DuplicateAssetID{AssetID: 1}
	warning := &Warning{Message: "kept", WarningCode: UnknownWarningCode}

	result := WarningOnly([]error{warning, fatal, warning})
	assert.Equal(t, []error{warning, warning}, result)
}
