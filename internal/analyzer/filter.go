package analyzer

import (
	"strings"
	"unicode"
)

// Filter applies filtering options to the analysis result. Interfaces and
// types that no longer take part in any relation or adapter are pruned.
func Filter(result *Result, opts AnalyzeOptions) *Result {
	filtered := &Result{}

	ifaceSet := make(map[string]bool)
	typeSet := make(map[string]bool)

	for _, ad := range result.Adapters {
		if !keepIface(ad.Target, opts) || !keepIface(ad.Adaptee, opts) || !keepType(ad.Type, opts) {
			continue
		}
		if !matchesPrefix(opts.Filter, ad.Type.PkgPath, ad.Target.PkgPath, ad.Adaptee.PkgPath) {
			continue
		}
		filtered.Adapters = append(filtered.Adapters, ad)
		ifaceSet[IfaceKey(ad.Target)] = true
		ifaceSet[IfaceKey(ad.Adaptee)] = true
		typeSet[TypeKey(ad.Type)] = true
	}

	for _, rel := range result.Relations {
		if !keepIface(rel.Interface, opts) || !keepType(rel.Type, opts) {
			continue
		}
		if !matchesPrefix(opts.Filter, rel.Type.PkgPath, rel.Interface.PkgPath) {
			continue
		}
		if opts.AdaptersOnly && !(typeSet[TypeKey(rel.Type)] && ifaceSet[IfaceKey(rel.Interface)]) {
			continue
		}
		filtered.Relations = append(filtered.Relations, rel)
		if !opts.AdaptersOnly {
			ifaceSet[IfaceKey(rel.Interface)] = true
			typeSet[TypeKey(rel.Type)] = true
		}
	}

	for i := range result.Interfaces {
		iface := &result.Interfaces[i]
		if ifaceSet[IfaceKey(iface)] {
			filtered.Interfaces = append(filtered.Interfaces, *iface)
		}
	}

	for i := range result.Types {
		typ := &result.Types[i]
		if typeSet[TypeKey(typ)] {
			filtered.Types = append(filtered.Types, *typ)
		}
	}

	return filtered
}

func keepIface(iface *InterfaceDef, opts AnalyzeOptions) bool {
	if !opts.IncludeStdlib && isStdlib(iface.PkgPath) {
		return false
	}
	if !opts.IncludeUnexported && isUnexported(iface.Name) {
		return false
	}
	return true
}

func keepType(typ *TypeDef, opts AnalyzeOptions) bool {
	return opts.IncludeUnexported || !isUnexported(typ.Name)
}

// matchesPrefix reports whether any of pkgPaths starts with prefix.
func matchesPrefix(prefix string, pkgPaths ...string) bool {
	if prefix == "" {
		return true
	}
	for _, p := range pkgPaths {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func isStdlib(pkgPath string) bool {
	// Stdlib packages have no dot in the first path element
	firstPart, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(firstPart, ".")
}

func isUnexported(name string) bool {
	if name == "" {
		return true
	}
	return unicode.IsLower(rune(name[0]))
}
