package response

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// SetDefaults materializes the declared defaults onto absent optional fields,
// giving every asset an explicit required flag. Fields already holding a
// value are left alone. It reports whether anything was modified.
func SetDefaults(r *Response) bool {
	if r == nil {
		return false
	}

	modified := false

	for i := range r.Assets {
		if r.Assets[i].Required == nil {
			r.Assets[i].Required = ptrutil.ToPtr(native1.DefaultAssetRequired)
			modified = true
		}
	}

	return modified
}
