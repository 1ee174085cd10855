package diagram

import (
	"fmt"
	"strings"

	"github.com/olehluchkiv/birdadapter/internal/analyzer"
)

// GenerateText renders one line per adapter:
//
//	pkg.T adapts pkg.Adaptee to pkg.Target (field F)
func GenerateText(result *analyzer.Result) string {
	adapters := SortedAdapters(result.Adapters)
	if len(adapters) == 0 {
		return "no adapters found\n"
	}

	var b strings.Builder
	for _, ad := range adapters {
		fmt.Fprintf(&b, "%s.%s adapts %s.%s to %s.%s (field %s)\n",
			ad.Type.PkgName, ad.Type.Name,
			ad.Adaptee.PkgName, ad.Adaptee.Name,
			ad.Target.PkgName, ad.Target.Name,
			ad.Field)
	}
	return b.String()
}
