package machines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/turing"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Source names a machine description, either a file or a bundled example.
type Source struct {
	Path    string
	Example string
}

func (s Source) String() string {
	if s.Example != "" {
		return "example " + s.Example
	}
	return s.Path
}

type LoadMachine func(source Source) (*turing.Machine, error)

func (Module) LoadMachine(
	logger logs.Logger,
) LoadMachine {
	return func(source Source) (m *turing.Machine, err error) {
		if source.Example != "" {
			m, err = LoadExample(source.Example)
		} else {
			m, err = Load(source.Path)
		}
		if err != nil {
			logger.Error("load machine", "source", source.String(), "error", err)
			return nil, err
		}
		logger.Debug("machine loaded",
			"name", m.Name,
			"states", m.Table.Len(),
			"tapes", m.TapeCount,
		)
		return m, nil
	}
}
