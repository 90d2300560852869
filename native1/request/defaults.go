package request

import (
	"github.com/leerob727/openrtb/native1"
	"github.com/leerob727/openrtb/util/ptrutil"
)

// SetDefaults materializes the declared defaults onto absent optional fields,
// giving the request explicit placement counters and every asset an explicit
// required flag. Fields already holding a value are left alone. It reports
// whether anything was modified.
func SetDefaults(r *Request) bool {
	if r == nil {
		return false
	}

	modified := false

	if r.PlcmtCnt == nil {
		r.PlcmtCnt = ptrutil.ToPtr(native1.DefaultPlcmtCnt)
		modified = true
	}

	if r.Seq == nil {
		r.Seq = ptrutil.ToPtr(native1.DefaultSeq)
		modified = true
	}

	if setDefaultsAssets(r.Assets) {
		modified = true
	}

	return modified
}

func setDefaultsAssets(assets []Asset) bool {
	modified := false

	for i := range assets {
		if assets[i].Required == nil {
			assets[i].Required = ptrutil.ToPtr(native1.DefaultAssetRequired)
			modified = true
		}
	}

	return modified
}
