package hclconfig

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/specialistvlad/floorplan/internal/typeload"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. The decoder populates omitted optional fields with zero-width
// placeholder expressions, so a nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Expression is nil, considering it undefined.", "attribute", attrName)
		return false
	}

	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)
	return isDefined
}

// typeOf converts an optional type expression. An omitted expression yields
// cty.NilType.
func typeOf(ctx context.Context, expr hcl.Expression, attrName string) (cty.Type, error) {
	if !isExprDefined(ctx, expr, attrName) {
		return cty.NilType, nil
	}
	return typeload.TypeFromExpr(ctx, expr)
}

// location renders where a block body starts as `file:line`.
func location(body hcl.Body) string {
	if body == nil {
		return ""
	}
	r := body.MissingItemRange()
	if r.Filename == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}

// checkRemain rejects attributes and blocks the schema does not know.
func checkRemain(body hcl.Body, what string) error {
	if body == nil {
		return nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("in %s: %w", what, diags)
	}
	if len(attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf("in %s at %s: unsupported attribute %q", what, attrs[names[0]].Range.String(), names[0])
}
