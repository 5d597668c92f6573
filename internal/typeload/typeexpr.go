// This file contains the logic for parsing type expressions (e.g. `string`,
// `list(number)`, `object({url = string})`) into their cty.Type equivalents.
// HCL configuration hands over the expression directly; other formats hand
// over its source text.

package typeload

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/floorplan/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// ParseTypeExpr parses the source text of a type expression. An empty
// string yields cty.NilType, meaning "no type".
func ParseTypeExpr(ctx context.Context, src string) (cty.Type, error) {
	if strings.TrimSpace(src) == "" {
		return cty.NilType, nil
	}
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<type>", hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilType, fmt.Errorf("invalid type expression %q: %w", src, diags)
	}
	return TypeFromExpr(ctx, expr)
}

// TypeFromExpr converts an HCL type expression into its cty.Type equivalent.
// A nil expression means `any`.
func TypeFromExpr(ctx context.Context, expr hcl.Expression) (cty.Type, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Type expression is nil, defaulting to any.")
		return cty.DynamicPseudoType, nil
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a function call.", "call", v.Name)

		if v.Name == "object" {
			return objectTypeFromCall(ctx, v)
		}

		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type constructors (list, map, set) require exactly one argument, got %d", len(v.Args))
		}

		elementType, err := TypeFromExpr(ctx, v.Args[0])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		if elementType == cty.DynamicPseudoType {
			return cty.DynamicPseudoType, fmt.Errorf("collection types cannot contain type 'any'")
		}

		switch v.Name {
		case "list":
			return cty.List(elementType), nil
		case "map":
			return cty.Map(elementType), nil
		case "set":
			return cty.Set(elementType), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor function %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		logger.Debug("Parsing type expression as a primitive.", "keyword", rootName)
		switch rootName {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", rootName)
		}

	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

func objectTypeFromCall(ctx context.Context, call *hclsyntax.FunctionCallExpr) (cty.Type, error) {
	if len(call.Args) != 1 {
		return cty.DynamicPseudoType, fmt.Errorf("the object() type constructor requires exactly one argument (the object definition), got %d", len(call.Args))
	}

	objExpr, ok := call.Args[0].(*hclsyntax.ObjectConsExpr)
	if !ok {
		return cty.DynamicPseudoType, fmt.Errorf("the argument to object() must be an object literal like { key = type, ... }, got %T", call.Args[0])
	}

	attrTypes := make(map[string]cty.Type, len(objExpr.Items))
	for _, item := range objExpr.Items {
		key := objectKey(item.KeyExpr)
		if key == "" {
			return cty.DynamicPseudoType, fmt.Errorf("invalid key in object type definition: keys must be simple identifiers or quoted strings, not complex expressions")
		}

		valueType, err := TypeFromExpr(ctx, item.ValueExpr)
		if err != nil {
			return cty.DynamicPseudoType, fmt.Errorf("in object attribute '%s': %w", key, err)
		}
		attrTypes[key] = valueType
	}

	return cty.Object(attrTypes), nil
}

// objectKey unwraps the key of an object constructor item. Keys are either
// bare identifiers or single-part quoted strings.
func objectKey(expr hclsyntax.Expression) string {
	keyExpr, ok := expr.(*hclsyntax.ObjectConsKeyExpr)
	if !ok {
		return ""
	}
	switch k := keyExpr.Wrapped.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(k.Traversal) == 1 {
			return k.Traversal.RootName()
		}
	case *hclsyntax.TemplateExpr:
		if len(k.Parts) == 1 {
			if lit, isLit := k.Parts[0].(*hclsyntax.LiteralValueExpr); isLit && lit.Val.Type().Equals(cty.String) {
				return lit.Val.AsString()
			}
		}
	}
	return ""
}
