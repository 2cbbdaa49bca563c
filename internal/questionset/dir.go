package questionset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/praclab/internal/quiz"
)

// ErrUnsupportedFormat is returned for files without a registered parser.
var ErrUnsupportedFormat = errors.New("unsupported question set format")

// ErrInvalidID is returned for identifiers that escape the question directory.
var ErrInvalidID = errors.New("invalid question set identifier")

// parser reads the file at path and records its rows into rep.
type parser func(ctx context.Context, path string, rep *Report) error

// formats maps lower-cased file extensions to parsers.
var formats = map[string]parser{
	".csv":     parseCSVFile,
	".json":    parseJSONFile,
	".yaml":    parseYAMLFile,
	".yml":     parseYAMLFile,
	".db":      parseSQLiteFile,
	".sqlite":  parseSQLiteFile,
	".sqlite3": parseSQLiteFile,
}

// Supported reports whether name has a registered question set format.
func Supported(name string) bool {
	_, ok := formats[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Extensions returns the registered file extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Dir serves question sets from files in a single directory.
// A set's identifier is its base file name.
type Dir struct {
	root        string
	placeholder string
}

// Option configures a Dir.
type Option func(*Dir)

// WithPlaceholder sets the explanation used for rows that have none.
func WithPlaceholder(text string) Option {
	return func(d *Dir) {
		if strings.TrimSpace(text) != "" {
			d.placeholder = text
		}
	}
}

// NewDir creates a Dir rooted at root.
func NewDir(root string, opts ...Option) *Dir {
	d := &Dir{root: root, placeholder: quiz.DefaultExplanation}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the question directory.
func (d *Dir) Root() string {
	return d.root
}

// List returns the identifiers of the available question sets, sorted by name.
func (d *Dir) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("list question sets: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !Supported(e.Name()) {
			continue
		}
		ids = append(ids, e.Name())
	}
	return ids, nil
}

// Load returns the usable questions of set id.
// A set with zero usable rows fails with a LoadError wrapping quiz.ErrNoRecords.
func (d *Dir) Load(ctx context.Context, id string) ([]quiz.Question, error) {
	rep, err := d.Inspect(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(rep.Skipped) > 0 {
		log.Printf("questionset: %s: skipped %d malformed rows", id, len(rep.Skipped))
	}
	if len(rep.Questions) == 0 {
		return nil, &quiz.LoadError{SetID: id, Err: quiz.ErrNoRecords}
	}
	return rep.Questions, nil
}

// Inspect parses set id and reports both kept and skipped rows.
func (d *Dir) Inspect(ctx context.Context, id string) (*Report, error) {
	path, parse, err := d.resolve(id)
	if err != nil {
		return nil, &quiz.LoadError{SetID: id, Err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, &quiz.LoadError{SetID: id, Err: err}
	}
	if info.IsDir() {
		return nil, &quiz.LoadError{SetID: id, Err: fmt.Errorf("%s is a directory", path)}
	}

	rep := &Report{SetID: id, placeholder: d.placeholder}
	if err := parse(ctx, path, rep); err != nil {
		return nil, &quiz.LoadError{SetID: id, Err: err}
	}
	return rep, nil
}

// resolve maps id to a file path under root and its parser.
func (d *Dir) resolve(id string) (string, parser, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	parse, ok := formats[strings.ToLower(filepath.Ext(id))]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(id))
	}
	return filepath.Join(d.root, id), parse, nil
}
