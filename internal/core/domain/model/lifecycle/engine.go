package lifecycle

import (
	"fmt"
	"slices"
	"strings"
)

const reasonRequiresAdmin = "requires administrator role"

// Decision is the outcome of Authorize.
type Decision struct {
	Allowed bool
	Reason  string
}

// FieldValidation is the outcome of ValidateFields.
type FieldValidation struct {
	MissingFields []string
}

// Valid reports whether no required field is missing.
func (v FieldValidation) Valid() bool {
	return len(v.MissingFields) == 0
}

// Engine answers every question about the product lifecycle: which edges
// exist, what each edge demands, and whether a given actor and payload meet
// those demands. It is immutable after construction and safe for concurrent use.
type Engine struct {
	graph    map[Status][]Status
	policies map[Edge]Policy
}

// NewEngine builds an engine and checks the tables against each other:
// the graph must cover every status, contain only valid statuses, have no
// self-loops or duplicate edges, and every policy must sit on a graph edge.
func NewEngine(graph map[Status][]Status, policies map[Edge]Policy) (*Engine, error) {
	for _, s := range AllStatuses() {
		if _, ok := graph[s]; !ok {
			return nil, fmt.Errorf("lifecycle: status %s has no edge set", s)
		}
	}

	edges := make(map[Edge]struct{})
	for from, targets := range graph {
		if err := from.Validate(); err != nil {
			return nil, fmt.Errorf("lifecycle: graph source: %w", err)
		}
		for _, to := range targets {
			if err := to.Validate(); err != nil {
				return nil, fmt.Errorf("lifecycle: graph target of %s: %w", from, err)
			}
			if from == to {
				return nil, fmt.Errorf("lifecycle: self-loop on %s", from)
			}
			edge := Edge{From: from, To: to}
			if _, dup := edges[edge]; dup {
				return nil, fmt.Errorf("lifecycle: duplicate edge %s -> %s", from, to)
			}
			edges[edge] = struct{}{}
		}
	}

	for edge := range policies {
		if _, ok := edges[edge]; !ok {
			return nil, fmt.Errorf("lifecycle: policy declared for non-edge %s -> %s", edge.From, edge.To)
		}
	}

	e := &Engine{
		graph:    make(map[Status][]Status, len(graph)),
		policies: make(map[Edge]Policy, len(policies)),
	}
	for from, targets := range graph {
		e.graph[from] = slices.Clone(targets)
	}
	for edge, p := range policies {
		p.RequiredFields = slices.Clone(p.RequiredFields)
		e.policies[edge] = p
	}

	return e, nil
}

var defaultEngine = mustEngine(defaultGraph(), defaultPolicies())

func mustEngine(graph map[Status][]Status, policies map[Edge]Policy) *Engine {
	e, err := NewEngine(graph, policies)
	if err != nil {
		panic(err)
	}
	return e
}

// Default returns the warehouse lifecycle built from the static tables.
func Default() *Engine {
	return defaultEngine
}

// EdgesFrom returns the legal destinations of s, empty for terminal or invalid statuses.
func (e *Engine) EdgesFrom(s Status) []Status {
	return slices.Clone(e.graph[s])
}

// IsTerminal reports whether s has no outgoing edge.
func (e *Engine) IsTerminal(s Status) bool {
	return len(e.graph[s]) == 0
}

// PolicyFor returns the policy of the (from, to) edge; the zero Policy when none is declared.
func (e *Engine) PolicyFor(from, to Status) Policy {
	p := e.policies[Edge{From: from, To: to}]
	p.RequiredFields = slices.Clone(p.RequiredFields)
	return p
}

// IsLegal reports whether to is a direct successor of from.
func (e *Engine) IsLegal(from, to Status) bool {
	return slices.Contains(e.graph[from], to)
}

// Authorize checks legality before the role gate so that non-edges never
// disclose their role requirements.
func (e *Engine) Authorize(from, to Status, caps Capabilities) Decision {
	if !e.IsLegal(from, to) {
		return Decision{Reason: fmt.Sprintf("transition not permitted from %s to %s", from, to)}
	}
	if e.PolicyFor(from, to).RequiresAdminRole && !caps.CanActAsAdmin {
		return Decision{Reason: reasonRequiresAdmin}
	}
	return Decision{Allowed: true}
}

// ValidateFields reports the required fields of the edge that data lacks.
// A field is missing when absent, nil, or a string that is blank after
// trimming. A nil map counts as every field missing.
func (e *Engine) ValidateFields(from, to Status, data map[string]any) FieldValidation {
	var missing []string
	for _, field := range e.PolicyFor(from, to).Fields() {
		if !isPresent(data[field]) {
			missing = append(missing, field)
		}
	}
	return FieldValidation{MissingFields: missing}
}

func isPresent(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case *string:
		return val != nil && strings.TrimSpace(*val) != ""
	default:
		return true
	}
}

// NextPossibleStates is the query surface behind "what can I do next".
func (e *Engine) NextPossibleStates(s Status) []Status {
	return e.EdgesFrom(s)
}

// IsFinal reports whether s ends the lifecycle.
func (e *Engine) IsFinal(s Status) bool {
	return e.IsTerminal(s)
}
