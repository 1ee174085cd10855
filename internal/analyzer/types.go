package analyzer

import "go/types"

// InterfaceDef represents a discovered Go interface.
type InterfaceDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []MethodSig
	TypeObj    *types.Interface
	SourceFile string
}

// TypeDef represents a discovered named, non-interface Go type.
type TypeDef struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []MethodSig
	Fields     []FieldDef // interface-typed struct fields only
	TypeObj    *types.Named
	SourceFile string
}

// FieldDef is a struct field whose type is a named interface.
type FieldDef struct {
	Name     string
	Type     string // short type string, e.g. "bird.Bird"
	IfaceKey string // pkgPath.Name of the field's interface
}

// MethodSig captures a method name and its signature string.
type MethodSig struct {
	Name      string
	Signature string
}

// Relation captures that a concrete type implements an interface.
type Relation struct {
	Type       *TypeDef
	Interface  *InterfaceDef
	ViaPointer bool // true if only *T (not T) satisfies the interface
}

// Adapter captures a struct that holds an Adaptee in Field and exposes it
// as Target, without itself satisfying Adaptee.
type Adapter struct {
	Type    *TypeDef
	Target  *InterfaceDef
	Adaptee *InterfaceDef
	Field   string
}

// Result holds the complete analysis output.
type Result struct {
	Interfaces []InterfaceDef
	Types      []TypeDef
	Relations  []Relation
	Adapters   []Adapter
}

// AnalyzeOptions controls analysis and filtering behavior.
type AnalyzeOptions struct {
	Filter            string // package path prefix filter
	IncludeStdlib     bool
	IncludeUnexported bool
	AdaptersOnly      bool // keep only types and interfaces that take part in an adapter
}

// IfaceKey returns the pkgPath.Name key of an interface.
func IfaceKey(iface *InterfaceDef) string {
	return iface.PkgPath + "." + iface.Name
}

// TypeKey returns the pkgPath.Name key of a type.
func TypeKey(typ *TypeDef) string {
	return typ.PkgPath + "." + typ.Name
}
