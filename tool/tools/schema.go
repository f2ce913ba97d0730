// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package tools

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/go-a2a/plotmcp/plotting"
	"github.com/go-a2a/plotmcp/types"
)

// objectSchema returns the schema of a tool's arguments: props plus the
// data_input, style and output options.
func objectSchema(props map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	all := map[string]*jsonschema.Schema{
		"data_input": dataInputSchema(),
		"style":      styleSchema(),
		"output":     outputSchema(),
	}
	for name, p := range props {
		all[name] = p
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: all,
		Required:   required,
	}
}

// columnSchema accepts a column name or a list of values.
func columnSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: description,
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array"},
		},
	}
}

// columnsSchema accepts one or more column names, or lists of values.
func columnsSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: description,
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{
				AnyOf: []*jsonschema.Schema{
					{Type: "string"},
					{Type: "number"},
					{Type: "array", Items: &jsonschema.Schema{Type: "number"}},
				},
			}},
		},
	}
}

// matrixSchema accepts a column name, a list of lists or a flat list of square length.
func matrixSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: description,
		AnyOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "number"}}},
			{Type: "array", Items: &jsonschema.Schema{Type: "number"}},
		},
	}
}

func stringsSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}

func boolSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: description}
}

func positiveIntSchema(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description, Minimum: types.ToPtr(1.0)}
}

func enumSchema(description string, values ...string) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{Type: "string", Description: description, Enum: enum}
}

func dataInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Table that column names refer to. Give either file_path or data.",
		Properties: map[string]*jsonschema.Schema{
			"file_path": {Type: "string", Description: "Path of a .csv or .json file."},
			"data": {
				Type:                 "object",
				Description:          "Mapping of column names to equal-length lists of values.",
				AdditionalProperties: &jsonschema.Schema{Type: "array"},
			},
		},
	}
}

func styleSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Cosmetic options.",
		Properties: map[string]*jsonschema.Schema{
			"title":    {Type: "string", Description: "Plot title."},
			"xlabel":   {Type: "string", Description: "X axis label."},
			"ylabel":   {Type: "string", Description: "Y axis label."},
			"grid":     boolSchema("Draw gridlines (default: true)."),
			"colormap": {Type: "string", Description: "Colormap name, e.g. viridis, plasma, coolwarm, RdBu. Append _r to reverse (default: " + types.DefaultColormap + ")."},
			"alpha":    {Type: "number", Description: "Opacity between 0 and 1.", Minimum: types.ToPtr(0.0), Maximum: types.ToPtr(1.0)},
		},
	}
}

func outputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Encoding and size of the image.",
		Properties: map[string]*jsonschema.Schema{
			"format": enumSchema("Image format (default: png).", types.SupportedFormats...),
			"width":  {Type: "number", Description: "Width in centimeters (default: 15).", ExclusiveMinimum: types.ToPtr(0.0)},
			"height": {Type: "number", Description: "Height in centimeters (default: 10).", ExclusiveMinimum: types.ToPtr(0.0)},
			"dpi":    positiveIntSchema("Resolution of png output (default: 300)."),
		},
	}
}

// shadingValues lists the accepted pcolormesh shading modes.
var shadingValues = []string{plotting.ShadingAuto, plotting.ShadingFlat, plotting.ShadingNearest, plotting.ShadingGouraud}
