// Package cql implements a small component query language. Query text like
//
//	CONTAINS(position, velocity) & !EXACT(dead)
//
// is parsed and compiled into the memoized predicate combinators, so repeated
// parses of structurally equivalent queries evaluate through the same
// predicate instances.
package cql

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"

	"pkg.world.dev/archon/filter"
)

type cqlOperator int

const (
	opAnd cqlOperator = iota
	opOr
)

var operatorMap = map[string]cqlOperator{"&": opAnd, "|": opOr}

// Capture basically tells the parser library how to transform a string token
// that's parsed into the operator type.
func (o *cqlOperator) Capture(s []string) error {
	if len(s) == 0 {
		return eris.New("invalid operator")
	}
	operator, ok := operatorMap[s[0]]
	if !ok {
		return eris.New("invalid operator")
	}
	*o = operator
	return nil
}

type cqlComponent struct {
	Name string `@Ident`
}

type cqlAll struct{}

func (a *cqlAll) Capture(values []string) error {
	if values[0] == "ALL" && values[1] == "(" && values[2] == ")" {
		*a = cqlAll{}
	}
	return nil
}

type cqlNot struct {
	SubExpression *cqlValue `"!" @@`
}

type cqlExact struct {
	Components []*cqlComponent `"EXACT" "(" (@@ ",")* @@ ")"`
}

type cqlContains struct {
	Components []*cqlComponent `"CONTAINS" "(" (@@ ",")* @@ ")"`
}

type cqlAnyOf struct {
	Components []*cqlComponent `"ANY" "(" (@@ ",")* @@ ")"`
}

type cqlNoneOf struct {
	Components []*cqlComponent `"NONE" "(" (@@ ",")* @@ ")"`
}

type cqlValue struct {
	All           *cqlAll      `@("ALL" "(" ")")`
	Exact         *cqlExact    `| @@`
	Contains      *cqlContains `| @@`
	AnyOf         *cqlAnyOf    `| @@`
	NoneOf        *cqlNoneOf   `| @@`
	Not           *cqlNot      `| @@`
	Subexpression *cqlTerm     `| "(" @@ ")"`
}

type cqlFactor struct {
	Base *cqlValue `@@`
}

type cqlOpFactor struct {
	Operator cqlOperator `@("&" | "|")`
	Factor   *cqlFactor  `@@`
}

type cqlTerm struct {
	Left  *cqlFactor     `@@`
	Right []*cqlOpFactor `@@*`
}

// Display

func (o cqlOperator) String() string {
	switch o {
	case opAnd:
		return "&"
	case opOr:
		return "|"
	}
	panic("unsupported operator")
}

func componentList(comps []*cqlComponent) string {
	parameters := ""
	for i, comp := range comps {
		parameters += comp.Name
		if i < len(comps)-1 {
			parameters += ", "
		}
	}
	return parameters
}

func (a *cqlAll) String() string {
	return "ALL()"
}

func (e *cqlExact) String() string {
	return "EXACT(" + componentList(e.Components) + ")"
}

func (e *cqlContains) String() string {
	return "CONTAINS(" + componentList(e.Components) + ")"
}

func (e *cqlAnyOf) String() string {
	return "ANY(" + componentList(e.Components) + ")"
}

func (e *cqlNoneOf) String() string {
	return "NONE(" + componentList(e.Components) + ")"
}

func (v *cqlValue) String() string {
	switch {
	case v.All != nil:
		return v.All.String()
	case v.Exact != nil:
		return v.Exact.String()
	case v.Contains != nil:
		return v.Contains.String()
	case v.AnyOf != nil:
		return v.AnyOf.String()
	case v.NoneOf != nil:
		return v.NoneOf.String()
	case v.Not != nil:
		return "!(" + v.Not.SubExpression.String() + ")"
	case v.Subexpression != nil:
		return "(" + v.Subexpression.String() + ")"
	default:
		panic("logic error displaying CQL ast. Check the code in cql.go")
	}
}

func (f *cqlFactor) String() string {
	return f.Base.String()
}

func (o *cqlOpFactor) String() string {
	return fmt.Sprintf("%s %s", o.Operator, o.Factor)
}

func (t *cqlTerm) String() string {
	out := []string{t.Left.String()}
	for _, r := range t.Right {
		out = append(out, r.String())
	}
	return strings.Join(out, " ")
}

var internalCQLParser = participle.MustBuild[cqlTerm]()

func componentNames(comps []*cqlComponent) []string {
	names := make([]string, 0, len(comps))
	for _, comp := range comps {
		names = append(names, comp.Name)
	}
	return names
}

func valueToPredicate(value *cqlValue, registry *filter.Registry) (*filter.Predicate, error) {
	switch {
	case value.Not != nil:
		result, err := valueToPredicate(value.Not.SubExpression, registry)
		if err != nil {
			return nil, err
		}
		return registry.Not(result), nil
	case value.All != nil:
		return registry.All(), nil
	case value.Exact != nil:
		if len(value.Exact.Components) == 0 {
			return nil, eris.New("EXACT cannot have zero parameters")
		}
		return registry.Exact(componentNames(value.Exact.Components)...), nil
	case value.Contains != nil:
		if len(value.Contains.Components) == 0 {
			return nil, eris.New("CONTAINS cannot have zero parameters")
		}
		return registry.All(componentNames(value.Contains.Components)...), nil
	case value.AnyOf != nil:
		if len(value.AnyOf.Components) == 0 {
			return nil, eris.New("ANY cannot have zero parameters")
		}
		return registry.Any(componentNames(value.AnyOf.Components)...), nil
	case value.NoneOf != nil:
		if len(value.NoneOf.Components) == 0 {
			return nil, eris.New("NONE cannot have zero parameters")
		}
		return registry.None(componentNames(value.NoneOf.Components)...), nil
	case value.Subexpression != nil:
		return termToPredicate(value.Subexpression, registry)
	default:
		return nil, eris.New("unknown error during conversion from CQL AST to predicate")
	}
}

func factorToPredicate(factor *cqlFactor, registry *filter.Registry) (*filter.Predicate, error) {
	return valueToPredicate(factor.Base, registry)
}

func opFactorToPredicate(
	opFactor *cqlOpFactor, registry *filter.Registry,
) (*cqlOperator, *filter.Predicate, error) {
	result, err := factorToPredicate(opFactor.Factor, registry)
	if err != nil {
		return nil, nil, err
	}
	return &opFactor.Operator, result, nil
}

func termToPredicate(term *cqlTerm, registry *filter.Registry) (*filter.Predicate, error) {
	if term.Left == nil {
		return nil, eris.New("not enough values in expression")
	}
	acc, err := factorToPredicate(term.Left, registry)
	if err != nil {
		return nil, err
	}
	for _, opFactor := range term.Right {
		operator, result, err := opFactorToPredicate(opFactor, registry)
		if err != nil {
			return nil, err
		}
		switch *operator {
		case opAnd:
			acc = registry.And(acc, result)
		case opOr:
			acc = registry.Or(acc, result)
		default:
			return nil, eris.New("invalid operator")
		}
	}
	return acc, nil
}

// Parse compiles the query text into a predicate built from the given
// registry's memoized combinators.
func Parse(cqlText string, registry *filter.Registry) (*filter.Predicate, error) {
	term, err := internalCQLParser.ParseString("", cqlText)
	if err != nil {
		return nil, eris.Wrap(err, "")
	}
	result, err := termToPredicate(term, registry)
	if err != nil {
		return nil, err
	}
	return result, nil
}
