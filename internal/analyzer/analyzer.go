package analyzer

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// ErrNoPackages is returned when the pattern matches no packages, for example
// a directory holding only testdata or nested modules.
var ErrNoPackages = errors.New("no packages matched")

// Analyze loads the packages matched by pattern from dir and finds all
// interface implementations and adapter relationships among them.
func Analyze(ctx context.Context, dir, pattern string, opts AnalyzeOptions, logger *slog.Logger) (*Result, error) {
	if pattern == "" {
		pattern = "./..."
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w %s in %s", ErrNoPackages, pattern, dir)
	}

	logger.Info("packages loaded", "packages_count", len(pkgs), "pattern", pattern)

	// Log packages with errors but continue
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
	}

	var ifaces []InterfaceDef
	var namedTypes []TypeDef
	seenIfaces := make(map[string]bool)

	collectIfaces := func(scope *types.Scope, pkgPath, pkgName string, fset *token.FileSet) {
		for _, name := range scope.Names() {
			named, tn := namedFromScope(scope, name)
			if named == nil {
				continue
			}
			iface, ok := named.Underlying().(*types.Interface)
			if !ok {
				continue
			}
			key := pkgPath + "." + tn.Name()
			if seenIfaces[key] {
				continue
			}
			seenIfaces[key] = true
			ifaces = append(ifaces, InterfaceDef{
				Name:       tn.Name(),
				PkgPath:    pkgPath,
				PkgName:    pkgName,
				Methods:    extractIfaceMethods(iface),
				TypeObj:    iface,
				SourceFile: resolveSourceFile(fset, tn.Pos(), dir),
			})
			logger.Debug("found interface", "name", tn.Name(), "package", pkgPath, "methods", iface.NumMethods())
		}
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		collectIfaces(scope, pkg.PkgPath, pkg.Name, pkg.Fset)

		for _, name := range scope.Names() {
			named, tn := namedFromScope(scope, name)
			if named == nil {
				continue
			}
			if _, ok := named.Underlying().(*types.Interface); ok {
				continue
			}
			typeDef := TypeDef{
				Name:       tn.Name(),
				PkgPath:    pkg.PkgPath,
				PkgName:    pkg.Name,
				IsStruct:   isStruct(named),
				Methods:    extractTypeMethods(named),
				Fields:     extractIfaceFields(named),
				TypeObj:    named,
				SourceFile: resolveSourceFile(pkg.Fset, tn.Pos(), dir),
			}
			namedTypes = append(namedTypes, typeDef)
			logger.Debug("found type", "name", tn.Name(), "package", pkg.PkgPath,
				"methods", len(typeDef.Methods), "iface_fields", len(typeDef.Fields))
		}

		// Interfaces from imports can be held in fields or implemented.
		for _, imp := range pkg.Imports {
			if imp.Types == nil {
				continue
			}
			collectIfaces(imp.Types.Scope(), imp.PkgPath, imp.Name, imp.Fset)
		}
	}

	logger.Info("types collected", "interfaces", len(ifaces), "types", len(namedTypes))

	relations := matchImplementations(namedTypes, ifaces, logger)
	adapters := detectAdapters(namedTypes, ifaces, relations, logger)

	logger.Info("analysis complete", "relations", len(relations), "adapters", len(adapters))

	return &Result{
		Interfaces: ifaces,
		Types:      namedTypes,
		Relations:  relations,
		Adapters:   adapters,
	}, nil
}

func namedFromScope(scope *types.Scope, name string) (*types.Named, *types.TypeName) {
	tn, ok := scope.Lookup(name).(*types.TypeName)
	if !ok {
		return nil, nil
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, nil
	}
	return named, tn
}

func matchImplementations(namedTypes []TypeDef, ifaces []InterfaceDef, logger *slog.Logger) []Relation {
	var methodSetCache typeutil.MethodSetCache
	var relations []Relation

	for i := range namedTypes {
		t := &namedTypes[i]
		for j := range ifaces {
			iface := &ifaces[j]

			// Every type satisfies an empty interface; that says nothing.
			if iface.TypeObj.NumMethods() == 0 {
				continue
			}

			viaPointer, ok := implements(t.TypeObj, iface.TypeObj, &methodSetCache)
			if !ok {
				continue
			}
			relations = append(relations, Relation{
				Type:       t,
				Interface:  iface,
				ViaPointer: viaPointer,
			})
			logger.Debug("match found", "type", t.Name, "interface", iface.Name, "via_pointer", viaPointer)
		}
	}
	return relations
}

// implements reports whether T or *T satisfies iface, and whether only *T does.
func implements(named *types.Named, iface *types.Interface, cache *typeutil.MethodSetCache) (viaPointer, ok bool) {
	if types.Implements(named, iface) || matchesMethodSet(cache.MethodSet(named), iface) {
		return false, true
	}
	ptr := types.NewPointer(named)
	if types.Implements(ptr, iface) || matchesMethodSet(cache.MethodSet(ptr), iface) {
		return true, true
	}
	return false, false
}

// detectAdapters finds types that hold an interface-typed field and satisfy a
// different interface while not satisfying the held one themselves. Types
// that wrap and re-expose the same interface are decorators, not adapters.
func detectAdapters(namedTypes []TypeDef, ifaces []InterfaceDef, relations []Relation, logger *slog.Logger) []Adapter {
	byKey := make(map[string]*InterfaceDef, len(ifaces))
	for i := range ifaces {
		byKey[IfaceKey(&ifaces[i])] = &ifaces[i]
	}

	targets := make(map[*TypeDef][]*InterfaceDef)
	for _, rel := range relations {
		targets[rel.Type] = append(targets[rel.Type], rel.Interface)
	}

	var methodSetCache typeutil.MethodSetCache
	var adapters []Adapter

	for i := range namedTypes {
		t := &namedTypes[i]
		for _, field := range t.Fields {
			adaptee, ok := byKey[field.IfaceKey]
			if !ok || adaptee.TypeObj.NumMethods() == 0 {
				continue
			}
			if _, self := implements(t.TypeObj, adaptee.TypeObj, &methodSetCache); self {
				continue
			}
			for _, target := range targets[t] {
				if target == adaptee {
					continue
				}
				adapters = append(adapters, Adapter{
					Type:    t,
					Target:  target,
					Adaptee: adaptee,
					Field:   field.Name,
				})
				logger.Debug("adapter found", "type", t.Name, "target", target.Name,
					"adaptee", adaptee.Name, "field", field.Name)
			}
		}
	}
	return adapters
}

func extractIfaceMethods(iface *types.Interface) []MethodSig {
	methods := make([]MethodSig, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		methods[i] = MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		}
	}
	return methods
}

func extractTypeMethods(named *types.Named) []MethodSig {
	var methods []MethodSig
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, MethodSig{
			Name:      m.Name(),
			Signature: formatSignature(m),
		})
	}
	return methods
}

// extractIfaceFields returns the struct fields of named whose type is a
// named interface. Embedded interfaces promote their methods, so the type
// already satisfies them and they never form an adapter; they are skipped.
func extractIfaceFields(named *types.Named) []FieldDef {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}
	var fields []FieldDef
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() {
			continue
		}
		fieldNamed, ok := f.Type().(*types.Named)
		if !ok {
			continue
		}
		if _, ok := fieldNamed.Underlying().(*types.Interface); !ok {
			continue
		}
		obj := fieldNamed.Obj()
		if obj.Pkg() == nil {
			continue // universe types such as error
		}
		fields = append(fields, FieldDef{
			Name:     f.Name(),
			Type:     shortType(fieldNamed),
			IfaceKey: obj.Pkg().Path() + "." + obj.Name(),
		})
	}
	return fields
}

func formatSignature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(shortType(params.At(i).Type()))
	}
	b.WriteString(")")
	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" ")
		b.WriteString(shortType(results.At(0).Type()))
	default:
		b.WriteString(" (")
		for i := 0; i < results.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(shortType(results.At(i).Type()))
		}
		b.WriteString(")")
	}
	return b.String()
}

func shortType(t types.Type) string {
	return types.TypeString(t, func(pkg *types.Package) string {
		return pkg.Name()
	})
}

func isStruct(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Struct)
	return ok
}

func matchesMethodSet(mset *types.MethodSet, iface *types.Interface) bool {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if mset.Lookup(m.Pkg(), m.Name()) == nil {
			return false
		}
	}
	return true
}

// resolveSourceFile resolves a token position to a file path relative to moduleRoot.
func resolveSourceFile(fset *token.FileSet, pos token.Pos, moduleRoot string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if !position.IsValid() || position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(moduleRoot, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
