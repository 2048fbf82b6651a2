package levels

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Layout decides how far each floor is shifted from the canvas centre.
type Layout interface {
	Offset(level int) (float64, error)
}

// FlatLayout stacks every floor on the centre line.
type FlatLayout struct{}

func (FlatLayout) Offset(int) (float64, error) {
	return 0, nil
}

// ScriptLayout evaluates an `offset(level)` function defined by a tengo
// script.
type ScriptLayout struct {
	name     string
	compiled *tengo.Compiled
}

const layoutDispatchScript = `
__offset := offset(__level)
`

func NewScriptLayout(name string, src []byte) (*ScriptLayout, error) {
	if strings.TrimSpace(string(src)) == "" {
		return nil, fmt.Errorf("levels: layout script %q is empty", name)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + layoutDispatchScript))
	if err := script.Add("__level", 0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("levels: compile layout script %q: %w", name, err)
	}
	return &ScriptLayout{name: name, compiled: compiled}, nil
}

func (l *ScriptLayout) Offset(level int) (float64, error) {
	if l == nil || l.compiled == nil {
		return 0, nil
	}
	if err := l.compiled.Set("__level", level); err != nil {
		return 0, err
	}
	if err := l.compiled.Run(); err != nil {
		return 0, fmt.Errorf("levels: run layout script %q: %w", l.name, err)
	}
	v := l.compiled.Get("__offset")
	switch v.ValueType() {
	case "int", "float":
		return v.Float(), nil
	case "undefined":
		return 0, nil
	default:
		return 0, fmt.Errorf("levels: layout script %q returned %s for level %d", l.name, v.ValueType(), level)
	}
}
