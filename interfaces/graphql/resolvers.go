package graphql

import (
	"context"
	"encoding/json"
	"fmt"

	gql "github.com/graphql-go/graphql"

	"survey-backend/application/dto"
	apperrors "survey-backend/pkg/errors"
)

// present converts a service result into the plain maps the default field
// resolver reads. Property types are renamed to their external name and
// settings documents are rendered as JSON text.
func present(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return normalize(out), nil
}

func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			if k == "SettingsData" {
				t[k] = jsonText(val)
				continue
			}
			t[k] = normalize(val)
		}
		return dto.PropertyTypeOut(t)
	case []interface{}:
		for i := range t {
			t[i] = normalize(t[i])
		}
	}
	return v
}

func jsonText(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(data)
}

// result presents v, or passes err through.
func result(v interface{}, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return present(v)
}

// wrapped presents v under field, the shape of mutation payloads.
func wrapped(field string, v interface{}, err error) (interface{}, error) {
	obj, err := result(v, err)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{field: obj}, nil
}

func deleted(existed bool, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"success": existed}, nil
}

func stringArg(p gql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func intArg(p gql.ResolveParams, name string) int {
	n, _ := p.Args[name].(int)
	return n
}

func listArgs(p gql.ResolveParams) dto.ListParams {
	return dto.NewListParams(intArg(p, "skip"), intArg(p, "limit"), stringArg(p, "search"))
}

// decodeInput copies the input argument into v. rename, when set, maps
// external attribute names back to internal ones first.
func decodeInput(p gql.ResolveParams, v interface{}, rename func(map[string]interface{}) map[string]interface{}) error {
	in, _ := p.Args["input"].(map[string]interface{})
	if rename != nil {
		in = rename(in)
	}
	data, err := json.Marshal(in)
	if err != nil {
		return apperrors.NewValidationError("invalid input: " + err.Error())
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.NewValidationError("invalid input: " + err.Error())
	}
	return nil
}

// create adapts a typed create call to a resolver returning {field: entity}.
func create[C any, E any](field string, rename func(map[string]interface{}) map[string]interface{}, fn func(context.Context, *C) (*E, error)) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		var in C
		if err := decodeInput(p, &in, rename); err != nil {
			return nil, err
		}
		e, err := fn(p.Context, &in)
		return wrapped(field, e, err)
	}
}

func update[U any, E any](field, idArg string, rename func(map[string]interface{}) map[string]interface{}, fn func(context.Context, string, *U) (*E, error)) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		var in U
		if err := decodeInput(p, &in, rename); err != nil {
			return nil, err
		}
		e, err := fn(p.Context, stringArg(p, idArg), &in)
		return wrapped(field, e, err)
	}
}

func remove(idArg string, fn func(context.Context, string) (bool, error)) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		return deleted(fn(p.Context, stringArg(p, idArg)))
	}
}

func get[E any](idArg string, fn func(context.Context, string) (*E, error)) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		return result(fn(p.Context, stringArg(p, idArg)))
	}
}

func page[E any](fn func(context.Context, dto.ListParams) (*dto.Page[E], error)) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		return result(fn(p.Context, listArgs(p)))
	}
}

func all[E any](fn func(context.Context) ([]*E, error)) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		return result(fn(p.Context))
	}
}
