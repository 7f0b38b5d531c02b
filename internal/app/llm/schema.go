package llm

import (
	"sort"

	"github.com/samber/lo"
)

// SchemaType is the JSON type of a schema node
type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeString SchemaType = "string"
	TypeArray  SchemaType = "array"
)

// Schema is the provider-neutral subset of JSON schema used to declare flow outputs.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

// String returns a string schema with a description
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// ArrayOf returns an array schema of the given items
func ArrayOf(items *Schema, description string) *Schema {
	return &Schema{Type: TypeArray, Items: items, Description: description}
}

// Object returns an object schema in which every property is required.
func Object(properties map[string]*Schema) *Schema {
	required := lo.Keys(properties)
	sort.Strings(required)
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}
