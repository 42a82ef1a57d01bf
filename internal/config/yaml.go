package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of an analyzer configuration document, e.g.:
//
//	tolerant: true
//	strict: false
//	builtins:
//	  - name: fetch
//	    returns: String
type file struct {
	Tolerant bool           `yaml:"tolerant"`
	Strict   bool           `yaml:"strict"`
	Builtins []builtinEntry `yaml:"builtins"`
}

type builtinEntry struct {
	Name    string `yaml:"name"`
	Returns string `yaml:"returns"`
}

// LoadOptions reads {tolerant, strict} from a YAML document, mirroring the
// teacher's own use of yaml.v3 as its structured-data format
// (internal/evaluator/builtins_yaml.go) but applied here to the analyzer's
// own configuration surface rather than a runtime builtin.
func LoadOptions(path string) (Options, error) {
	f, err := readFile(path)
	if err != nil {
		return Options{}, err
	}
	return Options{Tolerant: f.Tolerant, Strict: f.Strict}, nil
}

// LoadExtraBuiltins reads a supplemental builtin-name/return-type table
// from the same YAML document and returns it as a new map; it does not
// modify BuiltinReturnTypes. A host application seeds each entry (e.g.
// through pkg/tova's Runner.SeedBuiltin) to extend the analyzer's builtin
// surface (spec.md §2 step 1: "the set of builtin names" is the analyzer's
// contract with the lexer/parser) without touching Go source.
func LoadExtraBuiltins(path string) (map[string]string, error) {
	f, err := readFile(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(f.Builtins))
	for _, b := range f.Builtins {
		out[b.Name] = b.Returns
	}
	return out, nil
}

func readFile(path string) (file, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return file{}, err
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return file{}, err
	}
	return f, nil
}
