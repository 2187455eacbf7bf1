package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// catalogSchema constrains the shape of a property catalog file before
// the typed loader runs: required fields, string and numeric bounds.
// Property type and status are open sets, and value rules (price
// presence per listing type) are left to core validation.
const catalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["regions"],
  "properties": {
    "regions": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["name", "properties"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "properties": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "type", "status", "area_sqft", "listing_type"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "type": {"type": "string", "minLength": 1},
                "status": {"type": "string", "minLength": 1},
                "area_sqft": {"type": "integer", "minimum": 1},
                "description": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "listing_type": {"enum": ["Sale", "Rent", "Lease"]},
                "price_aed": {"type": "integer", "minimum": 0},
                "rent_annual_aed": {"type": "integer", "minimum": 0},
                "lease_annual_aed": {"type": "integer", "minimum": 0},
                "bedrooms": {"type": "integer", "minimum": 0}
              }
            }
          }
        }
      }
    }
  }
}`

const catalogSchemaURL = "catalog.schema.json"

var compiledCatalogSchema = jsonschema.MustCompileString(catalogSchemaURL, catalogSchema)

// validateCatalogDocument checks raw catalog JSON against the schema.
func validateCatalogDocument(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	if err := compiledCatalogSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
	}
	return nil
}
