package tools

import (
	"context"
	"errors"
	"testing"
)

func addParams() []Param {
	return []Param{
		{Name: "x", Type: TypeInteger, Description: "First addend"},
		{Name: "y", Type: TypeInteger, Description: "Second addend"},
	}
}

func addFn(_ context.Context, args map[string]any) (any, error) {
	x, _ := args["x"].(float64)
	y, _ := args["y"].(float64)
	return x + y, nil
}

func TestFunc_Derivation(t *testing.T) {
	tool, err := Func("add", "Adds two integers", addParams(), addFn)
	if err != nil {
		t.Fatalf("Expected derivation to succeed, got %v", err)
	}

	def := tool.Definition()
	if def.Name != "add" {
		t.Errorf("Expected name 'add', got %q", def.Name)
	}
	if def.Description != "Adds two integers" {
		t.Errorf("Unexpected description %q", def.Description)
	}
	if def.InputSchema.Type != TypeObject {
		t.Errorf("Expected object schema, got %q", def.InputSchema.Type)
	}
	if len(def.InputSchema.Required) != 2 || def.InputSchema.Required[0] != "x" || def.InputSchema.Required[1] != "y" {
		t.Errorf("Expected required [x y], got %v", def.InputSchema.Required)
	}
	for _, name := range []string{"x", "y"} {
		p, ok := def.InputSchema.Properties[name]
		if !ok {
			t.Fatalf("Expected property %q", name)
		}
		if p.Type != TypeInteger {
			t.Errorf("Expected %q to be integer, got %q", name, p.Type)
		}
	}
}

func TestFunc_OptionalParam(t *testing.T) {
	params := []Param{
		{Name: "query", Type: TypeString, Description: "Search query"},
		{Name: "limit", Type: TypeInteger, Description: "Max results", Optional: true, Default: 10},
	}
	tool, err := Func("search", "Searches the corpus", params, addFn)
	if err != nil {
		t.Fatalf("Expected derivation to succeed, got %v", err)
	}

	def := tool.Definition()
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "query" {
		t.Errorf("Expected required [query], got %v", def.InputSchema.Required)
	}
	if def.InputSchema.Properties["limit"].Default != 10 {
		t.Errorf("Expected default 10 on optional param, got %v", def.InputSchema.Properties["limit"].Default)
	}
}

func TestFunc_Enum(t *testing.T) {
	params := []Param{
		{Name: "mood", Type: TypeString, Description: "Tone of voice", Enum: []string{"formal", "casual"}},
	}
	tool, err := Func("set_tone", "Sets the writing tone", params, addFn)
	if err != nil {
		t.Fatalf("Expected derivation to succeed, got %v", err)
	}
	got := tool.Definition().InputSchema.Properties["mood"].Enum
	if len(got) != 2 || got[0] != "formal" || got[1] != "casual" {
		t.Errorf("Expected enum [formal casual], got %v", got)
	}
}

func TestFunc_MissingDescription(t *testing.T) {
	_, err := Func("add", "", addParams(), addFn)
	if !errors.Is(err, ErrMissingDescription) {
		t.Errorf("Expected ErrMissingDescription, got %v", err)
	}
}

func TestFunc_EmptyName(t *testing.T) {
	if _, err := Func("", "Adds two integers", addParams(), addFn); err == nil {
		t.Fatal("Expected error for empty tool name")
	}
}

func TestFunc_NilFunc(t *testing.T) {
	if _, err := Func("add", "Adds two integers", addParams(), nil); err == nil {
		t.Fatal("Expected error for nil function")
	}
}

func TestFunc_BadParams(t *testing.T) {
	cases := []struct {
		name   string
		params []Param
	}{
		{"empty param name", []Param{{Type: TypeString, Description: "d"}}},
		{"unknown type", []Param{{Name: "p", Type: "text", Description: "d"}}},
		{"missing type", []Param{{Name: "p", Description: "d"}}},
		{"duplicate name", []Param{
			{Name: "p", Type: TypeString, Description: "d"},
			{Name: "p", Type: TypeInteger, Description: "d"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Func("tool", "A tool", tc.params, addFn)
			if !errors.Is(err, ErrInvalidParam) {
				t.Errorf("Expected ErrInvalidParam, got %v", err)
			}
		})
	}
}

func TestFunc_NoParams(t *testing.T) {
	tool, err := Func("ping", "Checks liveness", nil, addFn)
	if err != nil {
		t.Fatalf("Expected derivation to succeed, got %v", err)
	}
	def := tool.Definition()
	if len(def.InputSchema.Properties) != 0 {
		t.Errorf("Expected no properties, got %v", def.InputSchema.Properties)
	}
	if len(def.InputSchema.Required) != 0 {
		t.Errorf("Expected no required params, got %v", def.InputSchema.Required)
	}
}

func TestMustFunc_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustFunc to panic on bad declaration")
		}
	}()
	MustFunc("bad", "", nil, addFn)
}

func TestFuncTool_Exec(t *testing.T) {
	tool := MustFunc("add", "Adds two integers", addParams(), addFn)
	got, err := tool.Exec(context.Background(), map[string]any{"x": 2.0, "y": 3.0})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if got != 5.0 {
		t.Errorf("Expected 5, got %v", got)
	}
}
