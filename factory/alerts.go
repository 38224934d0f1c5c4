/*
Package factory converts alert-routine configuration into garrison structs.

PURPOSE:
  An organization's duty routines can be configured without code changes:
  as a JSON document (admin API, database storage) or as a YAML file on
  disk (server deployment). The factory validates either form and produces
  a garrison.AlertConfig with routine order preserved.

JSON SCHEMA:
  {
    "routines": ["Off duty", "Staggered training", "Constant training", "Ready"]
  }

YAML SCHEMA:
  routines:
    - Off duty
    - Staggered training
    - Constant training
    - Ready

DEFAULTS:
  An absent or empty routine list yields the standard four-routine
  configuration. Routine names are free-form - unknown names schedule as
  off-duty defaults - but blank names are rejected.

SEE ALSO:
  - garrison/types.go: AlertConfig and the built-in routine names
  - cmd/server/main.go: loads the YAML form via -routines
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/warp/garrison-engine/garrison"
)

// AlertConfigDoc is the serialized form of an alert configuration.
type AlertConfigDoc struct {
	Routines []string `json:"routines" yaml:"routines"`
}

// ParseAlertConfig parses the JSON form.
func ParseAlertConfig(jsonStr string) (garrison.AlertConfig, error) {
	var doc AlertConfigDoc
	if err := json.Unmarshal([]byte(jsonStr), &doc); err != nil {
		return garrison.AlertConfig{}, fmt.Errorf("failed to parse alert config JSON: %w", err)
	}
	return fromDoc(doc)
}

// LoadAlertConfigYAML loads the YAML form from disk.
func LoadAlertConfigYAML(path string) (garrison.AlertConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return garrison.AlertConfig{}, fmt.Errorf("failed to read alert config: %w", err)
	}
	var doc AlertConfigDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return garrison.AlertConfig{}, fmt.Errorf("failed to parse alert config YAML: %w", err)
	}
	return fromDoc(doc)
}

func fromDoc(doc AlertConfigDoc) (garrison.AlertConfig, error) {
	if len(doc.Routines) == 0 {
		return garrison.DefaultAlertConfig(), nil
	}
	for i, name := range doc.Routines {
		if name == "" {
			return garrison.AlertConfig{}, fmt.Errorf("routine %d has an empty name", i)
		}
	}
	cfg := garrison.AlertConfig{Routines: make([]string, len(doc.Routines))}
	copy(cfg.Routines, doc.Routines)
	return cfg, nil
}
