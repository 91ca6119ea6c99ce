package renders

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

func (Module) Renderer(
	out Output,
) *Renderer {
	return New(IsTerminal(out))
}
