package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema is the structural contract for external catalog files. The
// schema check runs before unmarshalling so a malformed file fails with field
// paths instead of a zero-valued catalog.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "skills", "careers"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "skills": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "description", "salary_premium", "demand_trend", "courses"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "description": {"type": "string", "minLength": 1},
          "salary_premium": {"type": "integer", "minimum": 0},
          "demand_trend": {"type": "string", "minLength": 1},
          "courses": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name", "cost", "duration", "roi"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "cost": {"type": "integer", "minimum": 0},
                "duration": {"type": "string", "minLength": 1},
                "roi": {"type": "integer", "minimum": 0}
              }
            }
          }
        }
      }
    },
    "careers": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "category", "required_skills", "median_salary", "growth_rate", "education", "entry_paths", "time_to_entry"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"type": "string", "minLength": 1},
          "required_skills": {
            "type": "object",
            "minProperties": 1,
            "additionalProperties": {"type": "integer", "minimum": 0, "maximum": 100}
          },
          "median_salary": {"type": "integer", "minimum": 1},
          "growth_rate": {"type": "integer"},
          "education": {"type": "string", "minLength": 1},
          "entry_paths": {"type": "array", "minItems": 1, "items": {"type": "string"}},
          "time_to_entry": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// Load reads a catalog revision from a JSON file, checks it against the
// catalog schema, then runs the full structural validation from New.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("catalog schema check failed: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("catalog does not match schema: %v", msgs)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	validated, err := New(c.Version, c.Skills, c.Careers)
	if err != nil {
		return nil, err
	}
	return validated, nil
}
