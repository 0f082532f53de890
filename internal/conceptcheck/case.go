package conceptcheck

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"slices"
	"strings"
	"text/template"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConceptsPath is the import path every probe can refer to as "concepts".
const ConceptsPath = "github.com/marcodamonte/concepts/concepts"

// ErrInvalidCase is returned for a case that can't be turned into a probe.
var ErrInvalidCase = errors.New("invalid case")

//go:embed cases.yaml
var defaultCases []byte

// Case is one acceptance question put to the type checker. It is either a
// constraint question (does Type satisfy Constraint?) or an expression
// question (does Expr type-check?). Decls are package-level declarations the
// probe needs, Imports are extra packages it uses.
type Case struct {
	Name       string   `yaml:"name"`
	Constraint string   `yaml:"constraint,omitempty"`
	Type       string   `yaml:"type,omitempty"`
	Expr       string   `yaml:"expr,omitempty"`
	Decls      string   `yaml:"decls,omitempty"`
	Imports    []string `yaml:"imports,omitempty"`
	Accept     bool     `yaml:"accept"`
}

func (c Case) Validate() error {
	if c.Name == "" {
		return errors.Wrap(ErrInvalidCase, "missing name")
	}
	typed := c.Constraint != "" || c.Type != ""
	switch {
	case typed && c.Expr != "":
		return errors.Wrapf(ErrInvalidCase, "%s: constraint/type and expr are exclusive", c.Name)
	case typed && (c.Constraint == "" || c.Type == ""):
		return errors.Wrapf(ErrInvalidCase, "%s: constraint and type go together", c.Name)
	case !typed && c.Expr == "":
		return errors.Wrapf(ErrInvalidCase, "%s: nothing to check", c.Name)
	}
	return nil
}

var probeTemplate = template.Must(template.New("probe").Parse(`package probe

import (
	{{printf "%q" .ConceptsPath}}
{{- range .Imports}}
	{{printf "%q" .}}
{{- end}}
)

var _ concepts.Sizer
{{- if .Decls}}

{{.Decls}}
{{- end}}
{{if .Expr}}
func _() {
	_ = {{.Expr}}
}
{{- else}}
func satisfies[T {{.Constraint}}]() {}

var _ = satisfies[{{.Type}}]
{{- end}}
`))

// Probe renders the Go source file that is type-checked for c.
func (c Case) Probe() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err := probeTemplate.Execute(&buf, struct {
		Case
		ConceptsPath string
	}{c, ConceptsPath})
	if err != nil {
		return nil, errors.Wrapf(err, "render probe %s", c.Name)
	}
	return buf.Bytes(), nil
}

// LoadCases decodes a YAML list of cases and validates each one.
func LoadCases(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode cases")
	}
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, errors.Wrapf(ErrInvalidCase, "%s: duplicate name", c.Name)
		}
		seen[c.Name] = true
	}
	return cases, nil
}

func LoadCaseFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open cases")
	}
	defer f.Close()
	cases, err := LoadCases(f)
	return cases, errors.Wrap(err, path)
}

// DefaultCases returns the built-in table of acceptance facts.
func DefaultCases() []Case {
	cases, err := LoadCases(bytes.NewReader(defaultCases))
	if err != nil {
		panic(err)
	}
	return cases
}

// Filter keeps the cases whose name matches the doublestar pattern. An empty
// pattern keeps everything.
func Filter(cases []Case, pattern string) ([]Case, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return cases, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("bad pattern %q", pattern)
	}
	var out []Case
	for _, c := range cases {
		if ok, _ := doublestar.Match(pattern, c.Name); ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// Imports lists, sorted and without duplicates, the extra packages the cases
// need loaded.
func Imports(cases []Case) []string {
	var out []string
	for _, c := range cases {
		out = append(out, c.Imports...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
