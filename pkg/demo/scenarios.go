package demo

import (
	"strconv"

	"github.com/elves/conslist/pkg/persistent/list"
)

// A scenario is a named group of sample invocations.
type scenario struct {
	name  string
	evals []eval
}

// An eval is one sample invocation, with its expression rendered as text and
// a function computing its result.
type eval struct {
	expr string
	f    func() any
}

var (
	l123 = list.Of(1, 2, 3)
	abc  = list.Of("a", "b", "c")
)

var scenarios = []scenario{
	{"flatmap", []eval{
		{"FlatMap([1 2 3], x -> [str(x) str(x+2)])", func() any {
			return list.FlatMap(l123, func(x int) list.List[string] {
				return list.Of(strconv.Itoa(x), strconv.Itoa(x+2))
			})
		}},
	}},
	{"get", []eval{
		{"Get([1 2 3], 1)", func() any { return l123.Get(1) }},
		{"Get([1 2 3], 3)", func() any { return l123.Get(3) }},
	}},
	{"take-drop", []eval{
		{"Take([1 2 3], 2)", func() any { return l123.Take(2) }},
		{"Drop([1 2 3], 2)", func() any { return l123.Drop(2) }},
	}},
	{"contains", []eval{
		{"Contains([1 2 3], 2)", func() any { return list.Contains(l123, 2) }},
		{"Contains([1 2 3], 4)", func() any { return list.Contains(l123, 4) }},
	}},
	{"head", []eval{
		{"Head([1 2 3])", func() any { return l123.Head() }},
		{"Head([])", func() any { return list.Empty[int]().Head() }},
	}},
	{"zip", []eval{
		{"ZipWith([1 2 3], [a b c], pair)", func() any {
			return list.ZipWith(l123, abc, list.MakePair[int, string])
		}},
	}},
	{"map-filter", []eval{
		{"Map([1 2 3], x -> x*x)", func() any {
			return list.Map(l123, func(x int) int { return x * x })
		}},
		{"Filter([1 2 3], odd)", func() any {
			return l123.Filter(func(x int) bool { return x%2 == 1 })
		}},
	}},
	{"concat-reverse", []eval{
		{"Concat([1 2 3], [4 5])", func() any { return l123.Concat(list.Of(4, 5)) }},
		{"Reverse([1 2 3])", func() any { return l123.Reverse() }},
		{"Len([1 2 3])", func() any { return l123.Len() }},
	}},
	{"fold", []eval{
		{"FoldLeft([a b c], z, (acc, s) -> acc+s)", func() any {
			return list.FoldLeft(abc, "z", func(acc, s string) string { return acc + s })
		}},
		{"FoldRight([a b c], z, (s, acc) -> s+acc)", func() any {
			return list.FoldRight(abc, "z", func(s, acc string) string { return s + acc })
		}},
	}},
}

// findScenarios returns the scenarios with the given names, in the given
// order, or all scenarios if names is empty. The second return value is the
// first name that is not found, if any.
func findScenarios(names []string) ([]scenario, string) {
	if len(names) == 0 {
		return scenarios, ""
	}
	byName := make(map[string]scenario, len(scenarios))
	for _, s := range scenarios {
		byName[s.name] = s
	}
	found := make([]scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, name
		}
		found = append(found, s)
	}
	return found, ""
}
