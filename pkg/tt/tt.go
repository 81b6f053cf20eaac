// Package tt supports table-driven tests with little boilerplate.
//
// A typical use of this package looks like this:
//
//	// Function being tested
//	func Neg(i int) int { return -i }
//
//	func TestNeg(t *testing.T) {
//		tt.Test(t, Neg,
//			// Unnamed test case
//			Args(1).Rets(-1),
//			// Named test case
//			Args(2).Rets(-2),
//		)
//	}
//
// Return values are compared with [cmp.Equal]. Unexported fields are compared
// too, so values of opaque types such as persistent lists can be compared
// directly.
package tt

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself; those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Equal is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnDescriptor describes a function to test. It has the same fields as Fn,
// except for the body.
type FnDescriptor struct {
	Name    string
	ArgsFmt string
	RetsFmt string
}

// Fn describes a function to test and the name used in error messages.
type Fn struct {
	FnDescriptor
	Body any
}

// Named returns a Fn for body with the given name.
func Named(name string, body any) Fn {
	return Fn{FnDescriptor{Name: name}, body}
}

// WithArgsFmt sets the string for formatting arguments in test error
// messages, and returns the modified Fn.
func (fn Fn) WithArgsFmt(s string) Fn {
	fn.ArgsFmt = s
	return fn
}

// WithRetsFmt sets the string for formatting return values in test error
// messages, and returns the modified Fn.
func (fn Fn) WithRetsFmt(s string) Fn {
	fn.RetsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The function may be given as a
// Fn, or as a plain function value, in which case its name is derived with
// reflection.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	f, ok := fn.(Fn)
	if !ok {
		f = Fn{FnDescriptor{Name: funcName(fn)}, fn}
	}
	for _, test := range tests {
		rets := call(f.Body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				var args string
				if f.ArgsFmt == "" {
					args = sprintCommaDelimited(test.args...)
				} else {
					args = fmt.Sprintf(f.ArgsFmt, test.args...)
				}
				var diff string
				if f.RetsFmt == "" {
					diff = cmp.Diff(
						sprintRets(retsMatcher), sprintRets(rets), cmpOpt)
					if diff == "" {
						// The string forms are the same; fall back to a
						// structural diff.
						diff = cmp.Diff(retsMatcher, rets, cmpOpt)
					}
				} else {
					diff = cmp.Diff(
						fmt.Sprintf(f.RetsFmt, retsMatcher...),
						fmt.Sprintf(f.RetsFmt, rets...), cmpOpt)
				}
				t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s", f.Name, args, diff)
			}
		}
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

var cmpOpt = cmp.Exporter(func(reflect.Type) bool { return true })

func match(matchers, actual []any) bool {
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, cmpOpt)
}

func sprintRets(rets []any) string {
	if len(rets) == 1 {
		return fmt.Sprint(rets[0])
	}
	return "(" + sprintCommaDelimited(rets...) + ")"
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func funcName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	// Instantiated generic functions are named like "pkg.Map[...]".
	name = strings.TrimSuffix(strings.TrimSuffix(name, "-fm"), "[...]")
	if i := strings.LastIndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, but this is not what
			// we want. Use the zero value of the parameter type instead.
			var paramType reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				paramType = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				paramType = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(paramType)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
