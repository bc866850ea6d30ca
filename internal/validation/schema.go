package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// recommendationSchema describes the shape the generator is instructed to
// produce. Validation is advisory: the extractor tolerates deviations, but a
// mismatch is worth surfacing in the logs.
const recommendationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["Investment Portfolio Recommendation"],
  "properties": {
    "Investment Portfolio Recommendation": {
      "type": "object",
      "required": ["Monthly Investment"],
      "properties": {
        "Monthly Investment": { "$ref": "#/definitions/track" },
        "Lumpsum Investment": { "$ref": "#/definitions/track" }
      }
    }
  },
  "definitions": {
    "track": {
      "type": "object",
      "properties": {
        "Allocation": {
          "type": "object",
          "additionalProperties": { "type": "number" }
        },
        "Mutual Funds Details": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "Fund Name": { "type": "string" },
              "Category": { "type": "string" }
            }
          }
        },
        "ETFs Details": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "ETF Name": { "type": "string" },
              "Category": { "type": "string" }
            }
          }
        },
        "Bonds Details": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "Bond Name": { "type": "string" }
            }
          }
        },
        "SGBs Details": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "Bond Name": { "type": "string" }
            }
          }
        }
      }
    }
  }
}`

var compiledSchema *gojsonschema.Schema

func init() {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(recommendationSchema))
	if err != nil {
		panic(fmt.Sprintf("invalid recommendation schema: %v", err))
	}
	compiledSchema = schema
}

// ValidateRecommendation validates a recommendation JSON string against the
// expected schema. Returns a descriptive error when validation fails.
func ValidateRecommendation(recommendationJSON string) error {
	result, err := compiledSchema.Validate(gojsonschema.NewStringLoader(recommendationJSON))
	if err != nil {
		return fmt.Errorf("failed to validate: %w", err)
	}

	if !result.Valid() {
		var errors []string
		for _, desc := range result.Errors() {
			errors = append(errors, desc.String())
		}
		return fmt.Errorf("validation failed: %v", errors)
	}

	return nil
}
