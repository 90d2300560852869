package nativejson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leerob727/openrtb/errortypes"
)

func TestNewPayloadValidator(t *testing.T) {
	validator, err := NewPayloadValidator()

	require.NoError(t, err)
	assert.NotNil(t, validator)
}

func TestValidateRequestPayload(t *testing.T) {
	validator, err := NewPayloadValidator()
	require.NoError(t, err)

	testCases := []struct {
		description   string
		givenPayload  string
		expectedError string
	}{
		{
			description:  "conforming payload",
			givenPayload: `{"ver":"1.2","assets":[{"id":1,"title":{"len":90}}]}`,
		},
		{
			description:  "wrapped payload",
			givenPayload: `{"native":{"ver":"1.2","assets":[{"id":1,"title":{"len":90}}]}}`,
		},
		{
			description:  "extension slot",
			givenPayload: `{"ver":"1.2","assets":[{"id":1}],"ext":{"150":[{"wire":0,"data":"Kg=="}]}}`,
		},
		{
			description:   "missing ver",
			givenPayload:  `{"assets":[{"id":1}]}`,
			expectedError: "ver is required",
		},
		{
			description:   "missing assets",
			givenPayload:  `{"ver":"1.2"}`,
			expectedError: "assets is required",
		},
		{
			description:   "both required members missing",
			givenPayload:  `{}`,
			expectedError: "(2 errors)",
		},
		{
			description:   "ver holds a number",
			givenPayload:  `{"ver":1.2,"assets":[{"id":1}]}`,
			expectedError: "Invalid type",
		},
		{
			description:   "undeclared member",
			givenPayload:  `{"ver":"1.2","assets":[{"id":1}],"context":1}`,
			expectedError: "Additional property context is not allowed",
		},
		{
			description:   "extension number outside the range",
			givenPayload:  `{"ver":"1.2","assets":[{"id":1}],"ext":{"99":[{"wire":0,"data":"Kg=="}]}}`,
			expectedError: "Additional property 99 is not allowed",
		},
		{
			description:   "extension wire type unknown",
			givenPayload:  `{"ver":"1.2","assets":[{"id":1}],"ext":{"150":[{"wire":9,"data":"Kg=="}]}}`,
			expectedError: "must be one of the following",
		},
	}

	for _, test := range testCases {
		err := validator.ValidateRequestPayload([]byte(test.givenPayload))
		if test.expectedError == "" {
			assert.NoError(t, err, test.description)
		} else {
			require.Error(t, err, test.description)
			assert.Contains(t, err.Error(), test.expectedError, test.description)
		}
	}
}

func TestValidateResponsePayload(t *testing.T) {
	validator, err := NewPayloadValidator()
	require.NoError(t, err)

	testCases := []struct {
		description   string
		givenPayload  string
		expectedError string
	}{
		{
			description:  "conforming payload",
			givenPayload: `{"assets":[{"id":1,"title":{"text":"Learn more"}}],"link":{"url":"https://e.com"}}`,
		},
		{
			description:  "wrapped payload",
			givenPayload: `{"native":{"link":{"url":"https://e.com"}}}`,
		},
		{
			description:   "missing link",
			givenPayload:  `{"ver":"1.2"}`,
			expectedError: "link is required",
		},
		{
			description:   "link url holds a number",
			givenPayload:  `{"link":{"url":7}}`,
			expectedError: "Invalid type",
		},
		{
			description:   "data asset without value",
			givenPayload:  `{"assets":[{"id":1,"data":{"label":"by"}}],"link":{"url":"https://e.com"}}`,
			expectedError: "value is required",
		},
	}

	for _, test := range testCases {
		err := validator.ValidateResponsePayload([]byte(test.givenPayload))
		if test.expectedError == "" {
			assert.NoError(t, err, test.description)
		} else {
			require.Error(t, err, test.description)
			assert.Contains(t, err.Error(), test.expectedError, test.description)
		}
	}
}

func TestValidatePayloadBadJSON(t *testing.T) {
	validator, err := NewPayloadValidator()
	require.NoError(t, err)

	err = validator.ValidateRequestPayload([]byte(`{"ver":`))

	require.Error(t, err)
	assert.Equal(t, errortypes.MalformedFieldErrorCode, errortypes.ReadCode(err))
}
