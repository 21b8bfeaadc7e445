package inet

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"testing/fstest"

	"github.com/cottand/inet/frontend/ast"
	"github.com/cottand/inet/frontend/compose"
	"github.com/cottand/inet/frontend/ilerr"
	"github.com/cottand/inet/internal/log"
	"github.com/cottand/inet/internal/settings"
	"github.com/cottand/inet/parser"
)

var moduleLogger = log.DefaultLogger.With("section", "module")

// FileExtension is the extension of module source files.
const FileExtension = ".inet"

// Module is a single loaded source file, with everything its statements declared.
type Module struct {
	name   string
	text   string
	syntax ast.File
	mod    *compose.Mod
	errors *ilerr.Errors
}

func (m *Module) Name() string          { return m.name }
func (m *Module) Text() string          { return m.text }
func (m *Module) Syntax() ast.File      { return m.syntax }
func (m *Module) Mod() *compose.Mod     { return m.mod }
func (m *Module) Errors() *ilerr.Errors { return m.errors }

// FormatErrors renders every error of the module with a snippet of its source.
func (m *Module) FormatErrors() string {
	sb := &strings.Builder{}
	for _, err := range m.errors.Errors() {
		sb.WriteString(ilerr.FormatWithSource(err, m.name, m.text))
		sb.WriteString("\n")
	}
	return sb.String()
}

type LoadSettings struct {
	// Dir is the path of the folder in the filesystem where the module is located
	// the default is `.`
	Dir string
	// File is the module file within Dir. When empty, the first file with
	// FileExtension in Dir is loaded
	File string
	// MaxSteps bounds every reduction of the module, when positive.
	// 0 means unlimited, see settings.DefaultMaxSteps for a sensible bound
	MaxSteps int
	// Output receives what the module outputs. It is discarded when nil
	Output io.Writer
}

type readFileDirFS interface {
	fs.ReadFileFS
	fs.ReadDirFS
}

// LoadModule parses the module and executes all of its statements in order.
//
// Statements that fail are recorded in Module.Errors and do not stop the
// ones after them. The returned error is only set when the module could not be read.
func LoadModule(dir readFileDirFS, opts LoadSettings) (*Module, error) {
	dirPath := opts.Dir
	if dirPath == "" {
		dirPath = "."
	}
	fileName := opts.File
	if fileName == "" {
		found, err := findModuleFile(dir, dirPath)
		if err != nil {
			return nil, err
		}
		fileName = found
	}
	data, err := dir.ReadFile(path.Join(dirPath, fileName))
	if err != nil {
		return nil, err
	}

	module := &Module{
		name: fileName,
		text: string(data),
	}
	var loader compose.Loader = compose.DiscardLoader{}
	if opts.Output != nil {
		loader = &WriterLoader{W: opts.Output}
	}
	module.mod = compose.NewMod(module.text, loader)
	module.mod.MaxSteps = opts.MaxSteps

	// parse phase
	file, parseErrors := parser.ParseToAST(module.text)
	module.errors = module.errors.Merge(parseErrors)
	module.syntax = file

	// execution phase
	for _, stmt := range file.Stmts {
		if err := compose.ExecuteStmt(module.mod, stmt); err != nil {
			moduleLogger.Debug("statement failed", "kind", ast.StmtKind(stmt), "error", err)
			module.errors = module.errors.With(err)
		}
	}
	moduleLogger.Info("loaded module", "name", module.name, "statements", len(file.Stmts), "errors", module.errors)
	return module, nil
}

func findModuleFile(dir fs.ReadDirFS, dirPath string) (string, error) {
	entries, err := dir.ReadDir(dirPath)
	if err != nil {
		return "", err
	}
	var found []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), FileExtension) {
			found = append(found, entry.Name())
		}
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no %s file in %s", FileExtension, dirPath)
	}
	if len(found) > 1 {
		moduleLogger.Warn("multiple module files found, but only one is loaded - using the first one", "files", found)
	}
	return found[0], nil
}

// NewModuleFromBytes loads a single module from memory, meant for testing
func NewModuleFromBytes(data []byte, output io.Writer) (*Module, *ilerr.Errors, error) {
	filesystem := fstest.MapFS{
		"test" + FileExtension: &fstest.MapFile{
			Data: data,
		},
	}
	module, err := LoadModule(filesystem, LoadSettings{Output: output, MaxSteps: settings.DefaultMaxSteps})
	if err != nil {
		return nil, nil, err
	}
	return module, module.errors, nil
}

// WriterLoader writes every output of a module to W, one per line.
type WriterLoader struct {
	W io.Writer
}

func (l *WriterLoader) OnOutput(text string) {
	_, _ = fmt.Fprintln(l.W, text)
}
