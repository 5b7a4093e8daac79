// Package scaffold writes a fixed module directory tree with templated
// manifests from user-provided answers.
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Answers holds the user-provided inputs for one scaffold run.
type Answers struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	WithSpecs   bool   `yaml:"with_specs"`
}

// Validate checks the answers before anything touches disk.
func (a Answers) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("module name is required")
	}
	if strings.ContainsAny(a.Name, `/\`) {
		return fmt.Errorf("module name must not contain path separators: %q", a.Name)
	}
	return nil
}

// LoadAnswers reads a YAML answers file for non-interactive runs.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, fmt.Errorf("failed to read answers file: %w", err)
	}
	var answers Answers
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return Answers{}, fmt.Errorf("failed to parse answers file: %w", err)
	}
	return answers, nil
}

// manifestData is the template context for every generated file.
type manifestData struct {
	ID          string
	Name        string
	Description string
	Author      string
	Created     string
	WithSpecs   bool
}

// Generate writes the module tree under root/<name>. It refuses to overwrite
// an existing target directory and returns the path it created.
func Generate(root string, answers Answers) (string, error) {
	if err := answers.Validate(); err != nil {
		return "", err
	}

	target := filepath.Join(root, answers.Name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("target already exists: %s", target)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check target: %w", err)
	}

	data := manifestData{
		ID:          uuid.NewString(),
		Name:        answers.Name,
		Description: answers.Description,
		Author:      answers.Author,
		Created:     time.Now().UTC().Format(time.RFC3339),
		WithSpecs:   answers.WithSpecs,
	}

	dirs := []string{target, filepath.Join(target, "src"), filepath.Join(target, "docs")}
	if answers.WithSpecs {
		dirs = append(dirs, filepath.Join(target, "specs"))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"module.yaml":  moduleManifestTemplate,
		"package.json": packageManifestTemplate,
		"README.md":    readmeTemplate,
	}
	if answers.WithSpecs {
		files[filepath.Join("specs", "requirements.md")] = requirementsTemplate
		files[filepath.Join("specs", "design.md")] = designTemplate
	}

	for name, tmpl := range files {
		if err := renderFile(filepath.Join(target, name), name, tmpl, data); err != nil {
			return "", err
		}
	}

	return target, nil
}

func renderFile(path, name, tmpl string, data manifestData) error {
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("bad template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
