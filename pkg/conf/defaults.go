package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfDir names the environment variable that overrides the directory the
// default conf files are read from.
const EnvConfDir = "LIVY_CLIENT_CONF_DIR"

// DefaultConfFiles lists the conf resources read by LoadDefaults, in
// precedence order: entries later in the list override earlier ones on key
// collision, so client-specific settings win over the generic Spark defaults.
var DefaultConfFiles = []string{
	"spark-defaults.yaml",
	"livy-client.yaml",
}

// DefaultConfDir returns the directory the default conf files are read from:
// $LIVY_CLIENT_CONF_DIR when set, the current directory otherwise.
func DefaultConfDir() string {
	if dir := os.Getenv(EnvConfDir); dir != "" {
		return dir
	}
	return "."
}

// LoadDefaults merges the DefaultConfFiles found under dir into c, in listed
// order. A file that does not exist is silently skipped; any other read
// error, and any parse error, is returned as-is and aborts loading.
func (c *Configuration) LoadDefaults(dir string) error {
	for _, name := range DefaultConfFiles {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading conf file %s: %w", name, err)
		}
		if err := c.LoadYAML(name, data); err != nil {
			return err
		}
	}
	return nil
}

// LoadYAML merges one named YAML source into c. The document must be a flat
// mapping of scalar keys to scalar values; values keep their literal text, so
// numbers and booleans arrive as the strings they were written as. An empty
// document is a no-op.
func (c *Configuration) LoadYAML(name string, data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("parsing conf source %s: %w", name, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("conf source %s: expected a key/value mapping, got %s", name, nodeKind(doc))
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("conf source %s: line %d: non-scalar key", name, key.Line)
		}
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("conf source %s: line %d: value of %q must be a scalar", name, value.Line, key.Value)
		}
		c.Set(key.Value, value.Value)
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
