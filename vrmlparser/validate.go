package vrmlparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the scene violates a rule a downstream importer cannot
	// work around.
	Error Severity = iota
	// Warning means the scene will import but something looks unintended.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g. "unused_def")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Name     string   // related DEF or PROTO name (optional)
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Name != "" {
		fmt.Fprintf(&b, " (name: %s)", d.Name)
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(s *Scene) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity
// diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against a parsed
// scene. Returns all diagnostics regardless of severity. The parser itself
// is strict-fail; these rules cover constructs that parse fine but rarely
// mean what the author intended.
func Validate(s *Scene, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(s)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(s *Scene, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(s, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		emptySceneRule{},
		unusedDefRule{},
		unusedProtoRule{},
		externProtoURLRule{},
		routeProtoEventRule{},
	}
}

// empty_scene: a document with no top-level nodes renders nothing.
type emptySceneRule struct{}

func (emptySceneRule) Name() string { return "empty_scene" }

func (emptySceneRule) Apply(s *Scene) []Diagnostic {
	if len(s.Nodes) > 0 {
		return nil
	}
	return []Diagnostic{{
		Rule:     "empty_scene",
		Severity: Warning,
		Message:  "document contains no top-level nodes",
	}}
}

// unused_def: a DEF name never referenced by USE or ROUTE.
type unusedDefRule struct{}

func (unusedDefRule) Name() string { return "unused_def" }

func (unusedDefRule) Apply(s *Scene) []Diagnostic {
	var diags []Diagnostic
	for _, name := range s.DefNames() {
		if !s.DefUsed(name) {
			diags = append(diags, Diagnostic{
				Rule:     "unused_def",
				Severity: Info,
				Message:  fmt.Sprintf("DEF name %q is never referenced by USE or ROUTE", name),
				Name:     name,
				Fix:      "remove the DEF name or reference the node",
			})
		}
	}
	return diags
}

// unused_proto: a PROTO/EXTERNPROTO declared but never instantiated.
type unusedProtoRule struct{}

func (unusedProtoRule) Name() string { return "unused_proto" }

func (unusedProtoRule) Apply(s *Scene) []Diagnostic {
	instantiated := make(map[string]bool)
	WalkNodes(s, func(n *Node) {
		instantiated[n.Type] = true
	})

	var diags []Diagnostic
	for _, name := range s.ProtoNames() {
		if !instantiated[name] {
			diags = append(diags, Diagnostic{
				Rule:     "unused_proto",
				Severity: Info,
				Message:  fmt.Sprintf("prototype %q is declared but never instantiated", name),
				Name:     name,
			})
		}
	}
	return diags
}

// externproto_url: an EXTERNPROTO whose URL list is empty can never be
// resolved.
type externProtoURLRule struct{}

func (externProtoURLRule) Name() string { return "externproto_url" }

func (externProtoURLRule) Apply(s *Scene) []Diagnostic {
	var diags []Diagnostic
	for _, name := range s.ProtoNames() {
		p := s.Protos[name]
		if p.External && (p.URL == nil || len(p.URL.Values) == 0) {
			diags = append(diags, Diagnostic{
				Rule:     "externproto_url",
				Severity: Warning,
				Message:  fmt.Sprintf("EXTERNPROTO %q has an empty url list", name),
				Name:     name,
				Fix:      "add at least one location to the url list",
			})
		}
	}
	return diags
}

// route_proto_event: a ROUTE endpoint on a PROTO-typed node should name a
// declared event (or an exposedField's implied set_/_changed events).
// Built-in node events are not tabulated, so only PROTO types are checked.
type routeProtoEventRule struct{}

func (routeProtoEventRule) Name() string { return "route_proto_event" }

func (routeProtoEventRule) Apply(s *Scene) []Diagnostic {
	var diags []Diagnostic
	for _, r := range s.Routes {
		if d := checkRouteEvent(s, r.FromNode, r.FromEvent, false); d != nil {
			diags = append(diags, *d)
		}
		if d := checkRouteEvent(s, r.ToNode, r.ToEvent, true); d != nil {
			diags = append(diags, *d)
		}
	}
	return diags
}

func checkRouteEvent(s *Scene, nodeName, event string, in bool) *Diagnostic {
	node, ok := s.Defs[nodeName]
	if !ok {
		return nil // parser already resolved endpoints; name may be rebound
	}
	proto, ok := s.Protos[node.Type]
	if !ok {
		return nil
	}

	base := event
	direction := "eventOut"
	if in {
		direction = "eventIn"
		base = strings.TrimPrefix(base, "set_")
		if _, ok := proto.EventIn(event); ok {
			return nil
		}
	} else {
		base = strings.TrimSuffix(base, "_changed")
		if _, ok := proto.EventOut(event); ok {
			return nil
		}
	}
	for _, f := range proto.Fields {
		if f.Exposed && f.Name == base {
			return nil
		}
	}
	return &Diagnostic{
		Rule:     "route_proto_event",
		Severity: Warning,
		Message:  fmt.Sprintf("node %q (type %s) declares no %s %q", nodeName, node.Type, direction, event),
		Name:     nodeName,
		Fix:      fmt.Sprintf("declare the %s in the prototype interface", direction),
	}
}
