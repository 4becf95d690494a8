package main

import (
	"strings"
	"testing"

	"github.com/alignlab/structlayout"
)

func TestParseFields(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []structlayout.FieldSpec
		wantErr bool
	}{
		{
			name:  "explicit alignment",
			input: "a:1:1,b:8:8",
			want: []structlayout.FieldSpec{
				{Name: "a", Size: 1, Align: 1},
				{Name: "b", Size: 8, Align: 8},
			},
		},
		{
			name:  "natural alignment",
			input: "a:1,b:8",
			want: []structlayout.FieldSpec{
				{Name: "a", Size: 1, Align: 1},
				{Name: "b", Size: 8, Align: 8},
			},
		},
		{
			name:  "natural alignment capped",
			input: "blob:16",
			want: []structlayout.FieldSpec{
				{Name: "blob", Size: 16, Align: 8},
			},
		},
		{
			name:  "spaces and trailing comma",
			input: " a:1 , b:2:2 ,",
			want: []structlayout.FieldSpec{
				{Name: "a", Size: 1, Align: 1},
				{Name: "b", Size: 2, Align: 2},
			},
		},
		{
			name:    "missing size",
			input:   "a",
			wantErr: true,
		},
		{
			name:    "too many parts",
			input:   "a:1:1:1",
			wantErr: true,
		},
		{
			name:    "size not a number",
			input:   "a:big",
			wantErr: true,
		},
		{
			name:    "align not a number",
			input:   "a:4:wide",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFields(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseFields(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFields(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d fields, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d: got %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRenderByteMap(t *testing.T) {
	layout, err := structlayout.Compute([]structlayout.FieldSpec{
		structlayout.Int8("a"),
		structlayout.Int32("b"),
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	got := renderByteMap(layout)
	if !strings.Contains(got, "a...bbbb") {
		t.Errorf("byte map %q should show a, 3 pad bytes, then b", got)
	}
}

func TestRenderLayoutTotals(t *testing.T) {
	layout, err := structlayout.Compute([]structlayout.FieldSpec{
		structlayout.Int8("a"),
		structlayout.Int64("b"),
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	got := renderLayout(layout, false)
	if !strings.Contains(got, "total size 16, alignment 8, padding 7") {
		t.Errorf("rendered layout missing totals:\n%s", got)
	}
}
