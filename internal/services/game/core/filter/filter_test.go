package filter

import (
	"reflect"
	"testing"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
)

func TestParseNPCFilterEmpty(t *testing.T) {
	cond, err := ParseNPCFilter("   ")
	if err != nil {
		t.Fatalf("parse empty filter: %v", err)
	}
	if !cond.Empty() {
		t.Fatalf("expected empty condition, got %+v", cond)
	}
}

func TestParseNPCFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		clause string
		params []any
	}{
		{name: "int comparison", filter: "speed > 80", clause: "speed > ?", params: []any{int64(80)}},
		{name: "string equality", filter: `name = "WindBlade"`, clause: "name = ?", params: []any{"WindBlade"}},
		{name: "key normalized", filter: `key = "EmberMage"`, clause: "npc_key = ?", params: []any{"embermage"}},
		{
			name:   "and",
			filter: `level >= 45 AND hp < 100`,
			clause: "(level >= ? AND hp < ?)",
			params: []any{int64(45), int64(100)},
		},
		{
			name:   "or",
			filter: `attack != 50 OR sp_attack <= 70`,
			clause: "(attack != ? OR sp_attack <= ?)",
			params: []any{int64(50), int64(70)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cond, err := ParseNPCFilter(tc.filter)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.filter, err)
			}
			if cond.Clause != tc.clause {
				t.Fatalf("clause = %q, want %q", cond.Clause, tc.clause)
			}
			if !reflect.DeepEqual(cond.Params, tc.params) {
				t.Fatalf("params = %#v, want %#v", cond.Params, tc.params)
			}
		})
	}
}

func TestParseNPCFilterRejectsUnknownField(t *testing.T) {
	_, err := ParseNPCFilter(`mana > 3`)
	if err == nil {
		t.Fatal("expected error for undeclared field")
	}
	if apperrors.GetCode(err) != apperrors.CodeFilterInvalid {
		t.Fatalf("code = %s, want FILTER_INVALID", apperrors.GetCode(err))
	}
}

func TestParseNPCFilterRejectsSyntaxError(t *testing.T) {
	if _, err := ParseNPCFilter(`level >=`); apperrors.GetCode(err) != apperrors.CodeFilterInvalid {
		t.Fatalf("expected FILTER_INVALID, got %v", err)
	}
}
