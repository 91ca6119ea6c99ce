package machines

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/reusee/tmsim/turing"
)

//go:embed examples/*.yaml
var examplesFS embed.FS

type Example struct {
	Name   string
	Source []byte
}

var exampleFiles = []struct {
	name string
	file string
}{
	{"BinaryAdd", "binary_add.yaml"},
	{"NonDetSubstring", "non_det_substring.yaml"},
	{"vvWord", "vv_word.yaml"},
	{"NonDetSubSetSum", "non_det_subset_sum.yaml"},
	{"CheckEven", "check_even.yaml"},
	{"GCD", "gcd.yaml"},
	{"AllStrings", "all_strings.yaml"},
	{"SelfLoops", "self_loops.yaml"},
	{"DAG", "dag.yaml"},
	{"Circle", "circle.yaml"},
}

// Examples returns the bundled machine descriptions in listing order.
func Examples() []Example {
	ret := make([]Example, 0, len(exampleFiles))
	for _, info := range exampleFiles {
		src, err := examplesFS.ReadFile(path.Join("examples", info.file))
		if err != nil {
			panic(err)
		}
		ret = append(ret, Example{
			Name:   info.name,
			Source: src,
		})
	}
	return ret
}

var ErrExampleNotFound = errors.New("example not found")

// LoadExample decodes the bundled example with the given name, compared case-insensitively.
func LoadExample(name string) (*turing.Machine, error) {
	for _, example := range Examples() {
		if strings.EqualFold(example.Name, name) {
			return Decode(example.Name, example.Source)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrExampleNotFound, name)
}
