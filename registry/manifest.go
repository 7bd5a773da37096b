package registry

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/paths/errors"
	"github.com/jmgilman/go/paths/internal/logging"
)

// manifestSchema constrains every manifest regardless of its format.
const manifestSchema = `
#Manifest: {
	paths: [string]: string & !=""
}
`

// Manifest is the decoded form of a registry manifest.
type Manifest struct {
	Paths map[string]string `json:"paths" yaml:"paths"`
}

// LoadManifest registers every entry of the manifest file at name.
//
// The format is chosen by extension: .yaml and .yml are decoded as YAML,
// .cue and .json are compiled as CUE. Relative entries are resolved against
// the manifest's directory. The manifest is validated in full before any
// entry is registered.
//
// A missing file is reported as errors.CodeNotFound; a malformed manifest as
// errors.CodeInvalidConfig.
func (r *Registry) LoadManifest(name string) error {
	started := time.Now()
	err := r.loadManifest(name)
	logging.LogOperation(r.logger, logging.OpLoadConfig, name, started, err)
	return err
}

func (r *Registry) loadManifest(name string) error {
	path, err := r.resolver.Resolve(name)
	if err != nil {
		return err
	}

	content, err := r.resolver.NewLazyFile(path).Read()
	if err != nil {
		return err
	}

	manifest, err := decodeManifest(path, []byte(content))
	if err != nil {
		return errors.WithContext(err, "path", path)
	}

	keys := make([]string, 0, len(manifest.Paths))
	for k := range manifest.Paths {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dir := filepath.Dir(path)
	resolved := make(map[string]string, len(keys))
	for _, key := range keys {
		if key == "" {
			return errors.WithContext(errors.New(errors.CodeInvalidConfig, "manifest contains an empty key"), "path", path)
		}

		entry := manifest.Paths[key]
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(dir, entry)
		}
		if resolved[key], err = r.resolver.Resolve(entry); err != nil {
			return errors.WithContext(err, "key", key)
		}
	}

	r.setAll(resolved)
	return nil
}

// decodeManifest decodes data according to the extension of name and
// validates it against manifestSchema.
func decodeManifest(name string, data []byte) (*Manifest, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(manifestSchema).LookupPath(cue.ParsePath("#Manifest"))
	if err := schema.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "manifest schema does not compile")
	}

	var value cue.Value
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		m, err := decodeYAML(data)
		if err != nil {
			return nil, err
		}
		value = ctx.Encode(m)
	case ".cue", ".json":
		value = ctx.CompileBytes(data, cue.Filename(name))
	default:
		return nil, errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "unsupported manifest format"), "extension", ext)
	}

	if err := value.Err(); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to parse manifest",
			map[string]any{"details": cueerrors.Details(err, nil)})
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true), cue.All()); err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "manifest does not match schema",
			map[string]any{"issues": manifestIssues(err)})
	}

	var m Manifest
	if err := unified.Decode(&m); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode manifest")
	}
	return &m, nil
}

func decodeYAML(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	m := &Manifest{}
	if err := dec.Decode(m); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse manifest")
	}
	if m.Paths == nil {
		m.Paths = map[string]string{}
	}
	return m, nil
}

// manifestIssues flattens a CUE error into "path: message" lines.
func manifestIssues(err error) []string {
	var issues []string
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path := strings.Join(e.Path(), "."); path != "" {
			msg = path + ": " + msg
		}
		issues = append(issues, msg)
	}
	return issues
}
