// Package sceneinfo summarizes parsed VRML scenes. It walks the scene graph
// through the vrmlparser visitor contract, the same way a renderer-side
// importer would, and is the reference consumer for that contract.
package sceneinfo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cyril12/Tr3Smoothing/vrmlparser"
)

// Summary aggregates counts over one parsed scene.
type Summary struct {
	NodeCount   int            // distinct node instances
	UseCount    int            // references beyond each node's first
	NodesByType map[string]int // instance counts per node type
	FieldCount  int            // field statements across all nodes
	FieldKinds  map[vrmlparser.FieldType]int
	DefCount    int
	ProtoCount  int
	RouteCount  int
}

// Summarize walks the scene and returns its Summary. A DEF'd node shared via
// USE is counted once as an instance; every extra reference bumps UseCount.
func Summarize(scene *vrmlparser.Scene) *Summary {
	sum := &Summary{
		NodesByType: make(map[string]int),
		FieldKinds:  make(map[vrmlparser.FieldType]int),
		DefCount:    len(scene.DefNames()),
		ProtoCount:  len(scene.ProtoNames()),
		RouteCount:  len(scene.Routes),
	}

	c := &counter{sum: sum, seen: make(map[*vrmlparser.Node]bool)}
	for _, n := range scene.Nodes {
		c.visitNode(n)
	}
	for _, name := range scene.ProtoNames() {
		for _, n := range scene.Protos[name].Body {
			c.visitNode(n)
		}
	}
	return sum
}

// String renders the summary as a short human-readable report.
func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d nodes (%d shared references), %d fields, %d DEF names, %d prototypes, %d routes\n",
		s.NodeCount, s.UseCount, s.FieldCount, s.DefCount, s.ProtoCount, s.RouteCount)

	types := make([]string, 0, len(s.NodesByType))
	for t := range s.NodesByType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(&b, "  %-24s %d\n", t, s.NodesByType[t])
	}
	return b.String()
}

// counter tallies field kinds and recurses into node-valued fields.
type counter struct {
	vrmlparser.NopFieldVisitor
	sum  *Summary
	seen map[*vrmlparser.Node]bool
}

func (c *counter) visitNode(n *vrmlparser.Node) {
	if n == nil {
		return
	}
	if c.seen[n] {
		c.sum.UseCount++
		return
	}
	c.seen[n] = true
	c.sum.NodeCount++
	c.sum.NodesByType[n.Type]++
	for _, f := range n.Fields {
		c.sum.FieldCount++
		c.sum.FieldKinds[f.Value.Type()]++
		f.Value.Accept(c)
	}
}

func (c *counter) VisitSFNode(f *vrmlparser.SFNode) { c.visitNode(f.Node) }

func (c *counter) VisitMFNode(f *vrmlparser.MFNode) {
	for _, e := range f.Values {
		c.visitNode(e.Node)
	}
}
