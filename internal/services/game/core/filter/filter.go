// Package filter provides AIP-160 filter expression parsing and SQL translation.
package filter

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// NPCDeclarations returns the field declarations for NPC filtering.
func NPCDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("key", filtering.TypeString),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("level", filtering.TypeInt),
		filtering.DeclareIdent("hp", filtering.TypeInt),
		filtering.DeclareIdent("attack", filtering.TypeInt),
		filtering.DeclareIdent("defense", filtering.TypeInt),
		filtering.DeclareIdent("sp_attack", filtering.TypeInt),
		filtering.DeclareIdent("sp_defense", filtering.TypeInt),
		filtering.DeclareIdent("speed", filtering.TypeInt),
	)
}

// SQLCondition represents a SQL WHERE clause fragment with parameters.
type SQLCondition struct {
	// Clause is the SQL WHERE clause (e.g., "level >= ?").
	Clause string
	// Params are the positional parameters for the clause.
	Params []any
}

// Empty reports whether the condition filters nothing.
func (c SQLCondition) Empty() bool {
	return strings.TrimSpace(c.Clause) == ""
}

// npcColumns maps filter field names to npcs table columns.
var npcColumns = map[string]string{
	"key":        "npc_key",
	"name":       "name",
	"level":      "level",
	"hp":         "hp",
	"attack":     "attack",
	"defense":    "defense",
	"sp_attack":  "sp_attack",
	"sp_defense": "sp_defense",
	"speed":      "speed",
}

var comparisons = map[string]string{
	"_==_": "=", "=": "=",
	"_!=_": "!=", "!=": "!=",
	"_<_": "<", "<": "<",
	"_<=_": "<=", "<=": "<=",
	"_>_": ">", ">": ">",
	"_>=_": ">=", ">=": ">=",
}

// ParseNPCFilter parses an AIP-160 filter over NPC fields and returns a SQL
// condition. An empty filter yields an empty condition. Failures are
// FILTER_INVALID domain errors.
func ParseNPCFilter(filterStr string) (SQLCondition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return SQLCondition{}, nil
	}

	decls, err := NPCDeclarations()
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}

	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return SQLCondition{}, invalid(filterStr, err)
	}

	cond, err := translateExpr(filter.CheckedExpr.GetExpr())
	if err != nil {
		return SQLCondition{}, invalid(filterStr, err)
	}
	return cond, nil
}

func invalid(filterStr string, err error) error {
	return apperrors.Wrap(apperrors.CodeFilterInvalid, fmt.Sprintf("invalid filter %q: %v", filterStr, err), err)
}

func translateExpr(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, nil
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return translateCall(kind.CallExpr)
	default:
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func translateCall(call *expr.Expr_Call) (SQLCondition, error) {
	switch call.Function {
	case "_&&_", "AND":
		return translateJunction(call.Args, "AND")
	case "_||_", "OR":
		return translateJunction(call.Args, "OR")
	case "!_", "NOT":
		return translateNot(call.Args)
	}
	if op, ok := comparisons[call.Function]; ok {
		return translateComparison(call.Args, op)
	}
	return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.Function)
}

func translateJunction(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("%s requires 2 arguments", op)
	}

	left, err := translateExpr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return SQLCondition{}, err
	}

	return SQLCondition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateNot(args []*expr.Expr) (SQLCondition, error) {
	if len(args) != 1 {
		return SQLCondition{}, fmt.Errorf("NOT requires 1 argument")
	}
	inner, err := translateExpr(args[0])
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("(NOT %s)", inner.Clause),
		Params: inner.Params,
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, fmt.Errorf("comparison requires 2 arguments")
	}

	field, err := extractFieldName(args[0])
	if err != nil {
		return SQLCondition{}, err
	}

	column, ok := npcColumns[field]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", field)
	}

	value, err := extractValue(args[1])
	if err != nil {
		return SQLCondition{}, err
	}
	// Keys are stored normalized.
	if field == "key" {
		if s, ok := value.(string); ok {
			value = strings.ToLower(strings.TrimSpace(s))
		}
	}

	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

func extractFieldName(e *expr.Expr) (string, error) {
	if e == nil {
		return "", fmt.Errorf("nil expression")
	}

	switch kind := e.ExprKind.(type) {
	case *expr.Expr_IdentExpr:
		return kind.IdentExpr.Name, nil
	default:
		return "", fmt.Errorf("expected identifier, got %T", kind)
	}
}

func extractValue(e *expr.Expr) (any, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}

	kind, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return nil, fmt.Errorf("expected constant, got %T", e.ExprKind)
	}

	switch c := kind.ConstExpr.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return c.StringValue, nil
	case *expr.Constant_Int64Value:
		return c.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return c.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return c.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return c.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", c)
	}
}
