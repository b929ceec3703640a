package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/juju/errors"
	"github.com/spf13/afero"
)

// Source is something which can return a configuration value by its
// name. Values are returned as is, Load is responsible for trimming and
// parsing.
type Source interface {
	Get(name string) (string, bool)
}

// MapSource is an in-memory source.
type MapSource map[string]string

func (m MapSource) Get(name string) (string, bool) {
	value, ok := m[name]

	return value, ok
}

// EnvSource reads environment variables. A name is uppercased and
// prefixed, so with DIGGEO_ prefix api_key becomes DIGGEO_API_KEY.
type EnvSource struct {
	Prefix string
}

func (e EnvSource) Get(name string) (string, bool) {
	return os.LookupEnv(e.Prefix + strings.ToUpper(name))
}

// Chain asks its sources in order and returns the first known value.
type Chain []Source

func (c Chain) Get(name string) (string, bool) {
	for _, v := range c {
		if value, ok := v.Get(name); ok {
			return value, true
		}
	}

	return "", false
}

// FileSource is a source backed by a configuration file. The whole file
// is read and parsed at construction time.
type FileSource struct {
	path   string
	values map[string]string
}

func (f *FileSource) Get(name string) (string, bool) {
	value, ok := f.values[name]

	return value, ok
}

func (f *FileSource) Path() string {
	return f.path
}

// NewFileSource reads a file from a given filesystem. Files with .toml
// extension are decoded as TOML documents, everything else is treated
// as a set of 'key = value' lines with # comments. Lines which are not
// assignments are skipped and the first non-empty value of a key wins.
func NewFileSource(fs afero.Fs, path string) (*FileSource, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &ConfigError{
			Path: path,
			Err:  errors.Annotate(err, "cannot read config"),
		}
	}

	var values map[string]string

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		values, err = parseTOML(content)
	} else {
		values = parseLines(content)
	}

	if err != nil {
		return nil, &ConfigError{
			Path: path,
			Err:  errors.Annotate(err, "cannot parse config"),
		}
	}

	return &FileSource{
		path:   path,
		values: values,
	}, nil
}

func parseLines(content []byte) map[string]string {
	values := map[string]string{}
	scanner := bufio.NewScanner(bytes.NewReader(content))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}

		parsed, err := godotenv.Unmarshal(line)
		if err != nil {
			continue
		}

		for k, v := range parsed {
			if existing, ok := values[k]; !ok || strings.TrimSpace(existing) == "" {
				values[k] = v
			}
		}
	}

	return values
}

func parseTOML(content []byte) (map[string]string, error) {
	raw := map[string]interface{}{}

	if _, err := toml.Decode(string(content), &raw); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(raw))

	for k, v := range raw {
		switch vv := v.(type) {
		case string:
			values[k] = vv
		case map[string]interface{}, []map[string]interface{}:
			return nil, errors.Errorf("tables are not supported: %s", k)
		default:
			values[k] = fmt.Sprint(vv)
		}
	}

	return values, nil
}
