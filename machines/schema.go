package machines

import (
	_ "embed"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSrc string

var (
	// values of one cue context are not used concurrently
	schemaLock sync.Mutex

	getSchema = sync.OnceValues(func() (cue.Value, error) {
		ctx := cuecontext.New()
		value := ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
		if err := value.Err(); err != nil {
			return value, err
		}
		return value.LookupPath(cue.ParsePath("#Machine")), nil
	})
)

// Validate checks the shape of a YAML machine description against the embedded CUE schema.
func Validate(name string, src []byte) error {
	schemaLock.Lock()
	defer schemaLock.Unlock()

	schema, err := getSchema()
	if err != nil {
		return err
	}

	file, err := cueyaml.Extract(name, src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMachine, err)
	}
	value := schema.Context().BuildFile(file)
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMachine, err)
	}
	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMachine, err)
	}
	return nil
}
