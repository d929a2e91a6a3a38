package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mayple/swydo/internal/http"
	"github.com/mayple/swydo/internal/spec"
	"github.com/mayple/swydo/pkg/swydo"
)

// invoker resolves operation identifiers against the embedded contract
// and issues the corresponding HTTP request. It is the bare layer: no
// rate limiting, no retry.
type invoker struct {
	registry   *spec.Registry
	httpClient *http.Client
}

func newInvoker(registry *spec.Registry, httpClient *http.Client) *invoker {
	return &invoker{
		registry:   registry,
		httpClient: httpClient,
	}
}

// Invoke implements swydo.Invoker.
func (inv *invoker) Invoke(ctx context.Context, operationID string, params swydo.Params) (json.RawMessage, error) {
	op, ok := inv.registry.Operation(operationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", swydo.ErrUnknownOperation, operationID)
	}

	path := op.Path

	for _, name := range op.PathParams {
		value, ok := params[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s (operation %s)", swydo.ErrMissingParameter, name, operationID)
		}

		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(paramString(value)))
	}

	query := url.Values{}

	for _, name := range op.QueryParams {
		if value, ok := params[name]; ok {
			query.Set(name, paramString(value))
		}
	}

	var body any

	if op.BodyParam != "" {
		// Absent body params stay absent; the service treats a missing
		// body the same as an empty update.
		body = params[op.BodyParam]
	}

	resp, err := inv.httpClient.Do(ctx, op.Method, path, query, body)
	if err != nil {
		return nil, fmt.Errorf("invoking %s: %w", operationID, err)
	}

	return resp.Body, nil
}

// paramString renders a path or query parameter value. Enumeration values
// are plain string types and render as their symbolic name.
func paramString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
