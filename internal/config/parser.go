package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	panelkiterrors "github.com/panelkit/panelkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse loads a panel definition file from disk, validates it, and returns
// the resulting document.
func Parse(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, panelkiterrors.NewParseError(path, 0, err)
	}
	return ParseBytes(path, data)
}

// ParseBytes parses and validates an in-memory definition document. The path
// is only used for error messages.
func ParseBytes(path string, data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, panelkiterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
