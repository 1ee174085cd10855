package diagram

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/birdadapter/internal/analyzer"
)

// DiagramOptions controls Mermaid diagram generation.
type DiagramOptions struct {
	MaxMethodsPerBox int  // default 5, 0 means unlimited
	IncludeInit      bool // include %%{init:}%% directive (for standalone .mmd files)
}

// DefaultDiagramOptions returns sensible defaults for diagram generation.
func DefaultDiagramOptions() DiagramOptions {
	return DiagramOptions{MaxMethodsPerBox: 5}
}

// GenerateMermaid produces a Mermaid classDiagram string from analysis results.
// Implementations are drawn as realization edges and adapters as dependency
// edges labelled with the field that holds the adaptee.
func GenerateMermaid(result *analyzer.Result, opts DiagramOptions) string {
	var b strings.Builder

	ifaces := sortedInterfaces(result.Interfaces)
	typs := sortedTypes(result.Types)
	rels := sortedRelations(result.Relations)
	adapters := SortedAdapters(result.Adapters)

	adapterTypes := make(map[string]bool, len(adapters))
	for _, ad := range adapters {
		adapterTypes[analyzer.TypeKey(ad.Type)] = true
	}

	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'primaryTextColor': '#000000', 'lineColor': '#555555'}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(ifaces) > 0 || len(typs) > 0 {
		b.WriteString("\n")
		b.WriteString("    direction LR\n")
		b.WriteString("    classDef interfaceStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold\n")
		b.WriteString("    classDef implStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px\n")
		b.WriteString("    classDef adapterStyle fill:#d9822b,stroke:#a8621e,color:#fff,stroke-width:2px")
	}

	for _, iface := range ifaces {
		b.WriteString("\n")
		writeInterfaceBlock(&b, iface, opts)
	}

	if len(ifaces) > 0 && len(typs) > 0 {
		b.WriteString("\n")
	}
	for _, typ := range typs {
		b.WriteString("\n")
		writeTypeBlock(&b, typ)
	}

	if (len(ifaces) > 0 || len(typs) > 0) && (len(rels) > 0 || len(adapters) > 0) {
		b.WriteString("\n")
	}
	for _, rel := range rels {
		b.WriteString("\n")
		writeRelation(&b, rel)
	}
	for _, ad := range adapters {
		b.WriteString("\n")
		writeAdapter(&b, ad)
	}

	if len(ifaces) > 0 || len(typs) > 0 {
		b.WriteString("\n")
		for _, iface := range ifaces {
			fmt.Fprintf(&b, "\n    cssClass \"%s\" interfaceStyle", NodeID(iface.PkgName, iface.Name))
		}
		for _, typ := range typs {
			style := "implStyle"
			if adapterTypes[analyzer.TypeKey(&typ)] {
				style = "adapterStyle"
			}
			fmt.Fprintf(&b, "\n    cssClass \"%s\" %s", NodeID(typ.PkgName, typ.Name), style)
		}
	}

	return b.String()
}

func sortedInterfaces(in []analyzer.InterfaceDef) []analyzer.InterfaceDef {
	out := make([]analyzer.InterfaceDef, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		if out[i].PkgName != out[j].PkgName {
			return out[i].PkgName < out[j].PkgName
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedTypes(in []analyzer.TypeDef) []analyzer.TypeDef {
	out := make([]analyzer.TypeDef, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		if out[i].PkgName != out[j].PkgName {
			return out[i].PkgName < out[j].PkgName
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedRelations(in []analyzer.Relation) []analyzer.Relation {
	out := make([]analyzer.Relation, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		ti := NodeID(out[i].Type.PkgName, out[i].Type.Name)
		tj := NodeID(out[j].Type.PkgName, out[j].Type.Name)
		if ti != tj {
			return ti < tj
		}
		return NodeID(out[i].Interface.PkgName, out[i].Interface.Name) <
			NodeID(out[j].Interface.PkgName, out[j].Interface.Name)
	})
	return out
}

// SortedAdapters orders adapters by (type, adaptee, target) node IDs.
func SortedAdapters(in []analyzer.Adapter) []analyzer.Adapter {
	out := make([]analyzer.Adapter, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if ka, kb := NodeID(a.Type.PkgName, a.Type.Name), NodeID(b.Type.PkgName, b.Type.Name); ka != kb {
			return ka < kb
		}
		if ka, kb := NodeID(a.Adaptee.PkgName, a.Adaptee.Name), NodeID(b.Adaptee.PkgName, b.Adaptee.Name); ka != kb {
			return ka < kb
		}
		return NodeID(a.Target.PkgName, a.Target.Name) < NodeID(b.Target.PkgName, b.Target.Name)
	})
	return out
}

// SanitizeSignature removes characters in method signatures that break Mermaid syntax.
// Mermaid treats {}, <>, and ~ as special in class diagram labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	// "interface" is reserved by Mermaid's <<interface>> parsing.
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	sig = strings.ReplaceAll(sig, "{}", "")
	return sig
}

// sanitizeID replaces /, ., - with _ in node identifiers.
func sanitizeID(s string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_")
	return r.Replace(s)
}

// NodeID builds a sanitized node ID from pkgName and type/interface name.
func NodeID(pkgName, name string) string {
	return sanitizeID(pkgName + "_" + name)
}

func writeInterfaceBlock(b *strings.Builder, iface analyzer.InterfaceDef, opts DiagramOptions) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(iface.PkgName, iface.Name))
	b.WriteString("        <<interface>>\n")
	if iface.SourceFile != "" {
		b.WriteString("        %% file: " + iface.SourceFile + "\n")
	}
	writeMethodLines(b, iface.Methods, opts)
	b.WriteString("    }")
}

// writeTypeBlock writes a Mermaid class block for a concrete type. Methods
// are omitted; they are already listed on the interfaces the type implements.
func writeTypeBlock(b *strings.Builder, typ analyzer.TypeDef) {
	fmt.Fprintf(b, "    class %s {\n", NodeID(typ.PkgName, typ.Name))
	if typ.SourceFile != "" {
		b.WriteString("        %% file: " + typ.SourceFile + "\n")
	}
	b.WriteString("    }")
}

func writeMethodLines(b *strings.Builder, methods []analyzer.MethodSig, opts DiagramOptions) {
	limit := len(methods)
	truncated := false
	if opts.MaxMethodsPerBox > 0 && limit > opts.MaxMethodsPerBox {
		limit = opts.MaxMethodsPerBox
		truncated = true
	}

	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(methods[i].Signature))
	}
	if truncated {
		b.WriteString("        ...\n")
	}
}

func writeRelation(b *strings.Builder, rel analyzer.Relation) {
	fmt.Fprintf(b, "    %s --|> %s",
		NodeID(rel.Type.PkgName, rel.Type.Name),
		NodeID(rel.Interface.PkgName, rel.Interface.Name))
}

func writeAdapter(b *strings.Builder, ad analyzer.Adapter) {
	fmt.Fprintf(b, "    %s ..> %s : adapts via %s",
		NodeID(ad.Type.PkgName, ad.Type.Name),
		NodeID(ad.Adaptee.PkgName, ad.Adaptee.Name),
		ad.Field)
}
