// Package demo implements the showcase subprogram, which prints sample
// invocations of the persistent list operations together with their results.
package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elves/conslist/pkg/env"
	"github.com/elves/conslist/pkg/logutil"
	"github.com/elves/conslist/pkg/prog"
	"github.com/elves/conslist/pkg/sys"
	"github.com/elves/conslist/pkg/ui"
)

var logger = logutil.GetLogger("[demo] ")

// Program is the showcase subprogram. It is always suitable, so it should be
// the last one in a composite program.
type Program struct{}

// Run runs the scenarios named in args, or all of them if args is empty, and
// writes the results to fds[1] in the format chosen by f.Format.
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	write, err := writerFor(f.Format)
	if err != nil {
		return err
	}
	styler, err := newStyler(f.Color, fds[1])
	if err != nil {
		return err
	}
	selected, unknown := findScenarios(args)
	if unknown != "" {
		return prog.BadUsage(fmt.Sprintf(
			"unknown scenario %q; available scenarios: %s", unknown, scenarioNames()))
	}
	logger.Printf("running %d scenarios, format %q, styled %v",
		len(selected), f.Format, styler.Enabled)
	return write(fds[1], evaluate(selected), styler)
}

// A record is the result of one sample invocation.
type record struct {
	Scenario string `json:"scenario" yaml:"scenario"`
	Expr     string `json:"expr" yaml:"expr"`
	Result   any    `json:"result" yaml:"result"`
}

func evaluate(ss []scenario) []record {
	var records []record
	for _, s := range ss {
		for _, e := range s.evals {
			records = append(records, record{s.name, e.expr, e.f()})
		}
	}
	return records
}

type writer func(io.Writer, []record, ui.Styler) error

func writerFor(format string) (writer, error) {
	switch format {
	case "", "text":
		return writeText, nil
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	default:
		return nil, prog.BadUsage(fmt.Sprintf("unknown format %q", format))
	}
}

var (
	nameStyle   = ui.Style{Bold: true}
	arrowStyle  = ui.Style{Dim: true}
	resultStyle = ui.Fg(ui.Green)
)

func writeText(w io.Writer, records []record, st ui.Styler) error {
	var sb strings.Builder
	for i, r := range records {
		if i == 0 || records[i-1].Scenario != r.Scenario {
			sb.WriteString(st.Apply(r.Scenario+":", nameStyle) + "\n")
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", r.Expr,
			st.Apply("=>", arrowStyle), st.Apply(fmt.Sprint(r.Result), resultStyle))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeJSON(w io.Writer, records []record, _ ui.Styler) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, records []record, _ ui.Styler) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}

func newStyler(mode string, out *os.File) (ui.Styler, error) {
	switch mode {
	case "always":
		return ui.Styler{Enabled: true}, nil
	case "never":
		return ui.Styler{Enabled: false}, nil
	case "", "auto":
		enabled := os.Getenv(env.NO_COLOR) == "" &&
			os.Getenv(env.TERM) != "dumb" && sys.IsATTYFile(out)
		return ui.Styler{Enabled: enabled}, nil
	default:
		return ui.Styler{}, prog.BadUsage(fmt.Sprintf("unknown color mode %q", mode))
	}
}

func scenarioNames() string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return strings.Join(names, ", ")
}
