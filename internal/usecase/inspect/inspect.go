// Package inspect evaluates JSONPath expressions against the JSON form of a mall.
package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/mallctl/internal/domain"
)

// Eval returns the value selected by expr, e.g.
// $.floors["Ground Floor"].stores.Footzo.square_meters.
//
// An expression that matches nothing is reported as KindNotFound so
// callers can tell a typo in the hierarchy from a malformed expression.
func Eval(m domain.Mall, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "inspect.eval",
			Kind: domain.KindInvalidQuery,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidQuery),
		}
	}

	doc, err := toDocument(m)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "inspect.encode",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		if isUnknownKey(err) {
			return nil, &domain.OpError{
				Op:   "inspect.eval",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("%s: %w", expr, domain.ErrNotFound),
			}
		}
		return nil, &domain.OpError{
			Op:   "inspect.eval",
			Kind: domain.KindInvalidQuery,
			Err:  fmt.Errorf("%s: %v: %w", expr, err, domain.ErrInvalidQuery),
		}
	}

	if isEmptyValue(val) {
		return nil, &domain.OpError{
			Op:   "inspect.eval",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("%s: %w", expr, domain.ErrNotFound),
		}
	}
	return val, nil
}

// Format renders a value returned by Eval: scalars as-is, structures as indented JSON.
func Format(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64, bool, int, int64, uint64:
		return fmt.Sprint(t)
	default:
		b, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// toDocument round-trips through encoding/json so jsonpath sees the same
// generic map/slice shapes it would get from a JSON file.
func toDocument(m domain.Mall) (any, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func isUnknownKey(err error) bool {
	return strings.Contains(err.Error(), "unknown key")
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
