package schema

// ManifestSchemaJSON is the JSON Schema for Stremio addon manifests.
// Embedded as a constant to avoid filesystem dependencies. The strict
// variant is derived from this document at compile time (see strictify).
const ManifestSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://addonlint.dev/schemas/manifest.json",
  "title": "Stremio addon manifest",
  "type": "object",
  "required": ["id", "version", "name", "resources", "types", "catalogs"],
  "properties": {
    "id": {
      "type": "string",
      "minLength": 1,
      "pattern": "^[a-zA-Z0-9][a-zA-Z0-9._-]*$"
    },
    "version": {
      "type": "string",
      "pattern": "^\\d+\\.\\d+\\.\\d+(-[0-9A-Za-z.-]+)?(\\+[0-9A-Za-z.-]+)?$"
    },
    "name": { "type": "string", "minLength": 1 },
    "description": { "type": "string" },
    "logo": { "type": "string", "format": "uri" },
    "background": { "type": "string", "format": "uri" },
    "contactEmail": { "type": "string", "format": "email" },
    "types": {
      "type": "array",
      "items": { "type": "string" }
    },
    "idPrefixes": {
      "type": ["array", "null"],
      "items": { "type": "string" }
    },
    "resources": {
      "type": "array",
      "items": { "$ref": "#/$defs/resource" }
    },
    "catalogs": {
      "type": "array",
      "items": { "$ref": "#/$defs/catalog" }
    },
    "addonCatalogs": {
      "type": "array",
      "items": { "$ref": "#/$defs/catalog" }
    },
    "behaviorHints": { "$ref": "#/$defs/behaviorHints" },
    "config": {
      "type": "array",
      "items": { "$ref": "#/$defs/configField" }
    }
  },
  "$defs": {
    "resource": {
      "anyOf": [
        { "type": "string", "minLength": 1 },
        {
          "type": "object",
          "required": ["name", "types"],
          "properties": {
            "name": { "type": "string", "minLength": 1 },
            "types": {
              "type": "array",
              "items": { "type": "string" }
            },
            "idPrefixes": {
              "type": ["array", "null"],
              "items": { "type": "string" }
            }
          }
        }
      ]
    },
    "catalog": {
      "type": "object",
      "required": ["type", "id"],
      "properties": {
        "type": { "type": "string", "minLength": 1 },
        "id": { "type": "string", "minLength": 1 },
        "name": { "type": "string" },
        "extra": {
          "type": "array",
          "items": { "$ref": "#/$defs/extra" }
        },
        "genres": {
          "type": "array",
          "items": { "type": "string" }
        },
        "extraSupported": {
          "type": "array",
          "items": { "type": "string" }
        },
        "extraRequired": {
          "type": "array",
          "items": { "type": "string" }
        }
      }
    },
    "extra": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string", "minLength": 1 },
        "isRequired": { "type": "boolean" },
        "options": {
          "type": "array",
          "items": { "type": ["string", "null"] }
        },
        "optionsLimit": { "type": "integer", "minimum": 1 }
      }
    },
    "behaviorHints": {
      "type": "object",
      "properties": {
        "adult": { "type": "boolean" },
        "p2p": { "type": "boolean" },
        "configurable": { "type": "boolean" },
        "configurationRequired": { "type": "boolean" }
      }
    },
    "configField": {
      "type": "object",
      "required": ["key", "type"],
      "properties": {
        "key": { "type": "string", "minLength": 1 },
        "type": {
          "type": "string",
          "enum": ["text", "number", "password", "checkbox", "select"]
        },
        "default": { "type": "string" },
        "title": { "type": "string" },
        "options": {
          "type": "array",
          "items": { "type": "string" }
        },
        "required": { "type": "boolean" }
      }
    }
  }
}`
