package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleResult() *Result {
	r := &Result{
		Interfaces: []InterfaceDef{
			{Name: "Bird", PkgPath: "example.com/zoo"},
			{Name: "ToyDuck", PkgPath: "example.com/zoo"},
			{Name: "Writer", PkgPath: "io"},
		},
		Types: []TypeDef{
			{Name: "Sparrow", PkgPath: "example.com/zoo"},
			{Name: "BirdAdapter", PkgPath: "example.com/zoo"},
			{Name: "logSink", PkgPath: "example.com/zoo/internal"},
		},
	}
	bird, toy, writer := &r.Interfaces[0], &r.Interfaces[1], &r.Interfaces[2]
	sparrow, adapter, sink := &r.Types[0], &r.Types[1], &r.Types[2]

	r.Relations = []Relation{
		{Type: sparrow, Interface: bird},
		{Type: adapter, Interface: toy},
		{Type: sink, Interface: bird},
	}
	r.Adapters = []Adapter{
		{Type: adapter, Target: toy, Adaptee: bird, Field: "bird"},
		{Type: sink, Target: bird, Adaptee: writer, Field: "w"},
	}
	return r
}

func names[T any](items []T, name func(T) string) []string {
	var out []string
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

func TestFilter_Defaults(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{})

	assert.Len(t, got.Adapters, 1)
	assert.Equal(t, "BirdAdapter", got.Adapters[0].Type.Name)
	assert.Len(t, got.Relations, 2)
	assert.ElementsMatch(t, []string{"Bird", "ToyDuck"}, names(got.Interfaces, func(i InterfaceDef) string { return i.Name }))
	assert.ElementsMatch(t, []string{"Sparrow", "BirdAdapter"}, names(got.Types, func(ty TypeDef) string { return ty.Name }))
}

func TestFilter_IncludeStdlibAndUnexported(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{IncludeStdlib: true, IncludeUnexported: true})

	assert.Len(t, got.Adapters, 2)
	assert.Len(t, got.Relations, 3)
	assert.Len(t, got.Interfaces, 3)
	assert.Len(t, got.Types, 3)
}

func TestFilter_AdaptersOnly(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{AdaptersOnly: true})

	assert.Len(t, got.Adapters, 1)
	assert.Equal(t, []string{"BirdAdapter"}, names(got.Types, func(ty TypeDef) string { return ty.Name }))
	assert.ElementsMatch(t, []string{"Bird", "ToyDuck"}, names(got.Interfaces, func(i InterfaceDef) string { return i.Name }))
	// Sparrow -> Bird does not involve the adapter type.
	assert.Len(t, got.Relations, 1)
	assert.Equal(t, "BirdAdapter", got.Relations[0].Type.Name)
}

func TestFilter_PackagePrefix(t *testing.T) {
	got := Filter(sampleResult(), AnalyzeOptions{Filter: "example.com/other"})
	assert.Empty(t, got.Adapters)
	assert.Empty(t, got.Relations)
	assert.Empty(t, got.Types)
}

func TestIsStdlib(t *testing.T) {
	assert.True(t, isStdlib("io"))
	assert.True(t, isStdlib("encoding/json"))
	assert.False(t, isStdlib("example.com/zoo"))
	assert.False(t, isStdlib("github.com/olehluchkiv/birdadapter/internal/bird"))
}

func TestIsUnexported(t *testing.T) {
	assert.True(t, isUnexported(""))
	assert.True(t, isUnexported("logSink"))
	assert.False(t, isUnexported("Sparrow"))
}
