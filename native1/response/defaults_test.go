package response

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leerob727/openrtb/util/ptrutil"
)

func TestSetDefaults(t *testing.T) {
	testCases := []struct {
		description      string
		givenResponse    *Response
		expectedResponse *Response
		expectedModified bool
	}{
		{
			description:      "nil",
			givenResponse:    nil,
			expectedResponse: nil,
			expectedModified: false,
		},
		{
			description:      "no assets",
			givenResponse:    &Response{},
			expectedResponse: &Response{},
			expectedModified: false,
		},
		{
			description: "asset required flag",
			givenResponse: &Response{
				Assets: []Asset{
					{ID: ptrutil.ToPtr(int32(1))},
					{ID: ptrutil.ToPtr(int32(2)), Required: ptrutil.ToPtr(true)},
				},
			},
			expectedResponse: &Response{
				Assets: []Asset{
					{ID: ptrutil.ToPtr(int32(1)), Required: ptrutil.ToPtr(false)},
					{ID: ptrutil.ToPtr(int32(2)), Required: ptrutil.ToPtr(true)},
				},
			},
			expectedModified: true,
		},
	}

	for _, test := range testCases {
		modified := SetDefaults(test.givenResponse)
		assert.Equal(t, test.expectedModified, modified, test.description+":modified")
		assert.Equal(t, test.expectedResponse, test.givenResponse, test.description+":response")
	}
}
