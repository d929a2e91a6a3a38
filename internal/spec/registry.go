// Package spec holds the embedded OpenAPI contract of the Swydo API and
// the operation registry built from it. The registry maps operation
// identifiers to their HTTP method, path template, and parameter
// locations, which is everything the invoker needs to issue a call.
package spec

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed swydo_api.yml
var document []byte

// bodyNameExtension names the body parameter of an operation, the way
// Swagger code generators annotate it.
const bodyNameExtension = "x-body-name"

// Operation describes one remote endpoint capability.
type Operation struct {
	// ID is the operation identifier from the contract, e.g. "getTeams".
	ID string
	// Method is the HTTP method.
	Method string
	// Path is the path template with {param} placeholders.
	Path string
	// PathParams are the required path parameter names in the template.
	PathParams []string
	// QueryParams are the accepted query parameter names.
	QueryParams []string
	// BodyParam is the name of the body parameter, empty when the
	// operation carries no body.
	BodyParam string
}

// Registry resolves operation identifiers against the loaded contract.
type Registry struct {
	operations map[string]Operation
}

// Load parses the embedded contract and builds the registry.
func Load() (*Registry, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("parsing API contract: %w", err)
	}

	operations := make(map[string]Operation)

	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			if op.OperationID == "" {
				continue
			}

			entry := Operation{
				ID:     op.OperationID,
				Method: method,
				Path:   path,
			}

			for _, ref := range op.Parameters {
				if ref.Value == nil {
					continue
				}

				switch {
				case strings.EqualFold(ref.Value.In, openapi3.ParameterInPath):
					entry.PathParams = append(entry.PathParams, ref.Value.Name)
				case strings.EqualFold(ref.Value.In, openapi3.ParameterInQuery):
					entry.QueryParams = append(entry.QueryParams, ref.Value.Name)
				}
			}

			if op.RequestBody != nil && op.RequestBody.Value != nil {
				entry.BodyParam = bodyName(op.RequestBody.Value)
			}

			operations[op.OperationID] = entry
		}
	}

	return &Registry{operations: operations}, nil
}

// Operation returns the operation registered under id.
func (r *Registry) Operation(id string) (Operation, bool) {
	op, ok := r.operations[id]

	return op, ok
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return len(r.operations)
}

// bodyName reads the x-body-name extension, falling back to "body" for
// contracts that do not annotate their body parameters.
func bodyName(body *openapi3.RequestBody) string {
	if ext, ok := body.Extensions[bodyNameExtension]; ok {
		if name, ok := ext.(string); ok && name != "" {
			return name
		}
	}

	return "body"
}
