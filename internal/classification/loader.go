package classification

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/chart-mapper/internal/catalog"
	"gopkg.in/yaml.v3"
)

// LoadRuleSet reads a YAML rule file and validates it against the catalogue.
func LoadRuleSet(path string, cat *catalog.Catalog) (*RuleSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	rs, err := ParseRuleSet(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rule file %s: %w", path, err)
	}

	if err := rs.Validate(cat); err != nil {
		return nil, err
	}

	return rs, nil
}

// ParseRuleSet decodes a YAML rule document. Unknown keys are rejected.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rs RuleSet
	if err := dec.Decode(&rs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRuleSet)
		}
		return nil, err
	}

	return &rs, nil
}

// WriteRuleSet encodes a rule set as YAML.
func WriteRuleSet(w io.Writer, rs *RuleSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(rs); err != nil {
		return fmt.Errorf("failed to encode rule set: %w", err)
	}

	return enc.Close()
}
