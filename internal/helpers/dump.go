package helpers

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders a pretty-printed representation of any value.
func Dump(v interface{}) string {
	return dumpConfig.Sdump(v)
}
