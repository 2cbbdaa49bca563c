package questionset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	Question    string `yaml:"question"`
	Answer      string `yaml:"answer"`
	Explanation string `yaml:"explanation"`
}

func parseYAMLFile(_ context.Context, path string, rep *Report) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read yaml: %w", err)
	}
	return parseYAML(data, rep)
}

// parseYAML reads a single document holding a sequence of mappings.
// Entries that are not mappings or fail to decode are skipped.
func parseYAML(data []byte, rep *Report) error {
	var nodes []yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&nodes); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}

	for i := range nodes {
		n := &nodes[i]
		loc := fmt.Sprintf("line %d", n.Line)
		if n.Kind != yaml.MappingNode {
			rep.skip(loc, "expected a mapping")
			continue
		}
		var rec yamlRecord
		if err := n.Decode(&rec); err != nil {
			rep.skip(loc, err.Error())
			continue
		}
		rep.add(loc, rec.Question, rec.Answer, rec.Explanation)
	}
	return nil
}
