package artifactstore

// JSON schemas the artifact documents must satisfy before decoding. Keeping
// validation ahead of decode means a malformed artifact fails the load with a
// schema error instead of a half-populated struct.

const modelSchema = `{
  "type": "object",
  "required": ["model_type", "feature_names"],
  "properties": {
    "model_type": {"type": "string", "enum": ["decision_tree", "linear"]},
    "feature_names": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string"}
    },
    "classes": {"type": "array", "items": {"type": "string"}},
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["feature_idx", "threshold", "left", "right", "class", "leaf"]
      }
    },
    "weights": {
      "type": "array",
      "items": {"type": "array", "items": {"type": "number"}}
    },
    "intercepts": {"type": "array", "items": {"type": "number"}}
  }
}`

const baselineSchema = `{
  "type": "object",
  "required": ["features"],
  "properties": {
    "features": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "mean", "std"],
        "properties": {
          "name": {"type": "string"},
          "mean": {"type": "number"},
          "std": {"type": "number", "minimum": 0},
          "count": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

const expectationsSchema = `{
  "type": "object",
  "required": ["rules"],
  "properties": {
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["feature"],
        "properties": {
          "feature": {"type": "string"},
          "min": {"type": "number"},
          "max": {"type": "number"},
          "type": {"type": "string", "enum": ["float", "int"]}
        }
      }
    }
  }
}`
