package label_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labelmatch/label"
)

// ExampleAssignment_MarkMissing shows sentinel remapping at the data boundary:
// the upstream caller's "low.conf*" and "not.defined" conventions collapse
// into the one canonical Missing value.
func ExampleAssignment_MarkMissing() {
	a := label.Assignment{
		"AAAC-1": "Tumor",
		"AAAG-1": "low.conf.Tumor",
		"AACT-1": "not.defined",
		"AACC-1": "Normal",
	}

	clean := a.MarkMissing(func(v label.Value) bool {
		return v == "not.defined" || strings.HasPrefix(string(v), "low.conf")
	})

	fmt.Println("entries:", clean.Len())
	fmt.Println("defined:", clean.Defined())
	fmt.Println("values: ", clean.Values())
	// Output:
	// entries: 4
	// defined: 2
	// values:  [Normal Tumor]
}
