package demo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/elves/conslist/pkg/env"
	"github.com/elves/conslist/pkg/must"
	"github.com/elves/conslist/pkg/prog/progtest"
	"github.com/elves/conslist/pkg/testutil"
)

var (
	Test        = progtest.Test
	ThatProgram = progtest.ThatProgram
)

var allText = testutil.Dedent(`
	flatmap:
	  FlatMap([1 2 3], x -> [str(x) str(x+2)]) => [1 3 2 4 3 5]
	get:
	  Get([1 2 3], 1) => Some(2)
	  Get([1 2 3], 3) => None
	take-drop:
	  Take([1 2 3], 2) => [1 2]
	  Drop([1 2 3], 2) => [3]
	contains:
	  Contains([1 2 3], 2) => true
	  Contains([1 2 3], 4) => false
	head:
	  Head([1 2 3]) => Some(1)
	  Head([]) => None
	zip:
	  ZipWith([1 2 3], [a b c], pair) => [(1, a) (2, b) (3, c)]
	map-filter:
	  Map([1 2 3], x -> x*x) => [1 4 9]
	  Filter([1 2 3], odd) => [1 3]
	concat-reverse:
	  Concat([1 2 3], [4 5]) => [1 2 3 4 5]
	  Reverse([1 2 3]) => [3 2 1]
	  Len([1 2 3]) => 3
	fold:
	  FoldLeft([a b c], z, (acc, s) -> acc+s) => zabc
	  FoldRight([a b c], z, (s, acc) -> s+acc) => abcz
	`)

func TestText(t *testing.T) {
	Test(t, Program{},
		ThatProgram().WritesStdout(allText),
		ThatProgram("-color", "never").WritesStdout(allText),
		ThatProgram("take-drop", "head").WritesStdout(testutil.Dedent(`
			take-drop:
			  Take([1 2 3], 2) => [1 2]
			  Drop([1 2 3], 2) => [3]
			head:
			  Head([1 2 3]) => Some(1)
			  Head([]) => None
			`)),
		ThatProgram("-color", "always", "head").WritesStdout(
			"\033[1mhead:\033[m\n" +
				"  Head([1 2 3]) \033[2m=>\033[m \033[32mSome(1)\033[m\n" +
				"  Head([]) \033[2m=>\033[m \033[32mNone\033[m\n"),
	)
}

func TestBadUsage(t *testing.T) {
	Test(t, Program{},
		ThatProgram("no-such-scenario").ExitsWith(2).
			WritesStderrContaining(`unknown scenario "no-such-scenario"; available scenarios: flatmap, get,`),
		ThatProgram("-format", "xml").ExitsWith(2).
			WritesStderrContaining("unknown format \"xml\"\nUsage:"),
		ThatProgram("-color", "sometimes").ExitsWith(2).
			WritesStderrContaining("unknown color mode \"sometimes\"\nUsage:"),
	)
}

var wantGetAndZip = []map[string]any{
	{"scenario": "get", "expr": "Get([1 2 3], 1)", "result": 2.0},
	{"scenario": "get", "expr": "Get([1 2 3], 3)", "result": nil},
	{"scenario": "zip", "expr": "ZipWith([1 2 3], [a b c], pair)", "result": []any{
		map[string]any{"first": 1.0, "second": "a"},
		map[string]any{"first": 2.0, "second": "b"},
		map[string]any{"first": 3.0, "second": "c"},
	}},
}

func TestJSON(t *testing.T) {
	exit, stdout, stderr := progtest.Run(Program{}, "-format", "json", "get", "zip")
	if exit != 0 || stderr != "" {
		t.Fatalf("exit %d, stderr %q", exit, stderr)
	}
	var got []map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if diff := cmp.Diff(wantGetAndZip, got); diff != "" {
		t.Errorf("JSON output (-want +got):\n%s", diff)
	}
}

func TestYAML(t *testing.T) {
	exit, stdout, stderr := progtest.Run(Program{}, "-format", "yaml", "get", "zip")
	if exit != 0 || stderr != "" {
		t.Fatalf("exit %d, stderr %q", exit, stderr)
	}
	var got []map[string]any
	if err := yaml.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, stdout)
	}
	// YAML decodes integers as int rather than float64.
	want := []map[string]any{
		{"scenario": "get", "expr": "Get([1 2 3], 1)", "result": 2},
		{"scenario": "get", "expr": "Get([1 2 3], 3)", "result": nil},
		{"scenario": "zip", "expr": "ZipWith([1 2 3], [a b c], pair)", "result": []any{
			map[string]any{"first": 1, "second": "a"},
			map[string]any{"first": 2, "second": "b"},
			map[string]any{"first": 3, "second": "c"},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML output (-want +got):\n%s", diff)
	}
}

func TestJSON_AllScenariosEncode(t *testing.T) {
	exit, stdout, _ := progtest.Run(Program{}, "-format", "json")
	var got []record
	if exit != 0 || json.Unmarshal([]byte(stdout), &got) != nil {
		t.Fatalf("exit %d, output %q", exit, stdout)
	}
	if n := len(evaluate(scenarios)); len(got) != n {
		t.Errorf("got %d records, want %d", len(got), n)
	}
}

func TestNewStyler(t *testing.T) {
	f := must.OK1(os.Create(filepath.Join(t.TempDir(), "out")))
	defer f.Close()

	testutil.Unsetenv(t, env.NO_COLOR)
	for _, test := range []struct {
		mode string
		want bool
	}{
		{"always", true},
		{"never", false},
		// Not a terminal.
		{"auto", false},
		{"", false},
	} {
		st, err := newStyler(test.mode, f)
		if err != nil || st.Enabled != test.want {
			t.Errorf("newStyler(%q) -> (%v, %v), want (%v, nil)", test.mode, st.Enabled, err, test.want)
		}
	}

	testutil.Setenv(t, env.NO_COLOR, "1")
	if st, _ := newStyler("always", f); !st.Enabled {
		t.Errorf("-color always is overridden by NO_COLOR")
	}
}

func TestFindScenarios(t *testing.T) {
	all, unknown := findScenarios(nil)
	if len(all) != len(scenarios) || unknown != "" {
		t.Errorf("findScenarios(nil) -> (%d scenarios, %q)", len(all), unknown)
	}
	found, unknown := findScenarios([]string{"fold", "get"})
	if len(found) != 2 || found[0].name != "fold" || found[1].name != "get" || unknown != "" {
		t.Errorf("findScenarios(fold, get) -> (%v, %q)", found, unknown)
	}
	if _, unknown := findScenarios([]string{"get", "bad"}); unknown != "bad" {
		t.Errorf("findScenarios(get, bad) -> unknown %q, want bad", unknown)
	}
}
