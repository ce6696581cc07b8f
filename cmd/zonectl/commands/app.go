package commands

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/fieldzone/pkg/engine"
	"github.com/chazu/fieldzone/pkg/kernel"
	"github.com/chazu/fieldzone/pkg/kernel/sdfx"
	"github.com/chazu/fieldzone/pkg/layout"
)

// App ties the engine, the GeoJSON codec and a field kernel together for
// the subcommands.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// NewApp creates an App using the named kernel.
func NewApp(kernelName string) (*App, error) {
	k, err := kernelByName(kernelName)
	if err != nil {
		return nil, err
	}
	return &App{engine: engine.NewEngine(), kernel: k}, nil
}

func kernelByName(name string) (kernel.Kernel, error) {
	switch strings.ToLower(name) {
	case kernel.NativeName, "":
		return kernel.Native{}, nil
	case sdfx.Name:
		return sdfx.New(), nil
	}
	return nil, fmt.Errorf("unknown kernel %q (want %s or %s)", name, kernel.NativeName, sdfx.Name)
}

// LoadError collects the evaluation errors of a DSL program.
type LoadError struct {
	Path   string
	Errors []engine.EvalError
}

func (e *LoadError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ee := range e.Errors {
		msgs[i] = ee.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, strings.Join(msgs, "; "))
}

// Load reads a layout from path. DSL programs are evaluated; .geojson and
// .json files are decoded.
func (a *App) Load(path string) (*layout.Layout, error) {
	if path == "" {
		return nil, fmt.Errorf("no layout file given (use --file)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return layout.Decode(data)
	}

	l, evalErrs, err := a.engine.Evaluate(string(data))
	if err != nil {
		log.Printf("evaluate %s: %v", path, err)
		return nil, err
	}
	if len(evalErrs) > 0 {
		return nil, &LoadError{Path: path, Errors: evalErrs}
	}
	return l, nil
}

// LoadValid is Load followed by validation. Warnings are logged; any
// validation error fails the load.
func (a *App) LoadValid(path string) (*layout.Layout, error) {
	l, err := a.Load(path)
	if err != nil {
		return nil, err
	}
	res := layout.ValidateAll(l)
	for _, w := range res.Warnings {
		log.Printf("%s: %v", path, w)
	}
	if !res.OK() {
		return nil, fmt.Errorf("%s: %d validation error(s), first: %v", path, len(res.Errors), res.Errors[0])
	}
	return l, nil
}
