package dto

import (
	"reflect"
	"strings"
)

// ToolDescriptor describes one capability for discovery by an external
// agent or orchestrator.
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ToolParameter `json:"parameters"`
}

type ToolParameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type ToolCatalogResponse struct {
	Tools []ToolDescriptor `json:"tools"`
}

// ParamsFromStruct derives tool parameter descriptors from a request
// struct's json, validate and desc tags. Generating the catalog from the
// same structs the handlers validate keeps the required flags from
// drifting out of sync with the actual validation.
func ParamsFromStruct(req interface{}) []ToolParameter {
	t := reflect.TypeOf(req)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	params := make([]ToolParameter, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		params = append(params, ToolParameter{
			Name:        name,
			Type:        jsonType(field.Type),
			Description: field.Tag.Get("desc"),
			Required:    hasRequiredTag(field.Tag.Get("validate")),
		})
	}

	return params
}

func hasRequiredTag(validateTag string) bool {
	for _, rule := range strings.Split(validateTag, ",") {
		if strings.TrimSpace(rule) == "required" {
			return true
		}
	}

	return false
}

func jsonType(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
