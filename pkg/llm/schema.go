package llm

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ResponseSchema asks the provider for schema-constrained JSON output.
// Providers without structured-output support ignore it; the caller must still
// tolerate free-form replies.
type ResponseSchema struct {
	Name   string
	Schema map[string]interface{}
}

func WithResponseSchema(name string, schema map[string]interface{}) Option {
	return func(o *Options) {
		o.Schema = &ResponseSchema{Name: name, Schema: schema}
	}
}

// GenerateSchema reflects a JSON schema for T in the strict form OpenAI
// structured outputs require (no refs, no additional properties, all fields
// required).
func GenerateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)
	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	ensureStrictObject(m)
	return m
}

func ensureStrictObject(schema map[string]interface{}) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		props, _ := schema["properties"].(map[string]interface{})
		required := make([]interface{}, 0, len(props))
		for name, sub := range props {
			required = append(required, name)
			if subObj, ok := sub.(map[string]interface{}); ok {
				ensureStrictObject(subObj)
			}
		}
		if len(required) > 0 {
			schema["required"] = required
		}
	}
	if items, ok := schema["items"].(map[string]interface{}); ok {
		ensureStrictObject(items)
	}
}
