package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the scheme file looked up inside a project directory.
const DefaultFileName = "scheme.yaml"

// Load reads a scheme from a YAML file. Fields absent from the file keep
// the values from Default.
func Load(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme file: %w", err)
	}

	scheme := Default()
	if err := yaml.Unmarshal(data, scheme); err != nil {
		return nil, fmt.Errorf("parsing scheme YAML: %w", err)
	}

	for i := range scheme.Network.Segments {
		if scheme.Network.Segments[i].ID == "" {
			scheme.Network.Segments[i].ID = fmt.Sprintf("%d", i+1)
		}
	}

	return scheme, nil
}

// LoadProject loads a scheme from a project directory.
// fileName defaults to DefaultFileName when empty.
func LoadProject(projectDir, fileName string) (*Scheme, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return Load(filepath.Join(projectDir, fileName))
}
