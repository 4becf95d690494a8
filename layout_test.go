package structlayout

import (
	stderrors "errors"
	"testing"

	"github.com/alignlab/structlayout/errors"
)

// unorderedFields mirrors a struct declared without regard for alignment:
// int8, int64, int8, int16, int64, float32.
func unorderedFields() []FieldSpec {
	return []FieldSpec{
		Int8("a"),
		Int64("b"),
		Int8("c"),
		Int16("d"),
		Int64("e"),
		Float32("f"),
	}
}

func TestComputeOffsets(t *testing.T) {
	layout, err := Compute(unorderedFields())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	wantOffsets := map[string]uint32{
		"a": 0, "b": 8, "c": 16, "d": 18, "e": 24, "f": 32,
	}
	for name, want := range wantOffsets {
		got, ok := layout.Offset(name)
		if !ok {
			t.Fatalf("field %s not found", name)
		}
		if got != want {
			t.Errorf("field %s offset: got %d, want %d", name, got, want)
		}
	}

	if layout.Size != 40 {
		t.Errorf("size: got %d, want 40", layout.Size)
	}
	if layout.Align != 8 {
		t.Errorf("align: got %d, want 8", layout.Align)
	}
	if got := layout.TrailingPadding(); got != 4 {
		t.Errorf("trailing padding: got %d, want 4", got)
	}
	if got := layout.TotalPadding(); got != 16 {
		t.Errorf("total padding: got %d, want 16", got)
	}
}

func TestComputeDeclarationOrder(t *testing.T) {
	layout, err := Compute(unorderedFields())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	wantOrder := []string{"a", "b", "c", "d", "e", "f"}
	for i, f := range layout.Fields {
		if f.Name != wantOrder[i] {
			t.Errorf("field %d: got %s, want %s", i, f.Name, wantOrder[i])
		}
	}
}

func TestOffsetUnknownField(t *testing.T) {
	layout, err := Compute([]FieldSpec{Int32("x")})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if _, ok := layout.Offset("y"); ok {
		t.Error("lookup of unknown field should report not found")
	}
}

func TestComputeInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldSpec
	}{
		{"empty list", nil},
		{"zero size", []FieldSpec{Field("a", 0, 1)}},
		{"alignment not power of two", []FieldSpec{Field("a", 4, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compute(tt.fields); !errors.IsInvalidField(err) {
				t.Errorf("got error %v, want invalid_field", err)
			}
		})
	}
}

func TestComputeErrorPhase(t *testing.T) {
	_, err := Compute([]FieldSpec{Field("a", 4, 3)})
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseValidate, Kind: errors.KindInvalidField}) {
		t.Errorf("error %v should match validate/invalid_field", err)
	}
}

func TestRepack(t *testing.T) {
	packed := Repack(unorderedFields())

	wantOrder := []string{"b", "e", "f", "d", "a", "c"}
	for i, f := range packed {
		if f.Name != wantOrder[i] {
			t.Errorf("packed field %d: got %s, want %s", i, f.Name, wantOrder[i])
		}
	}

	layout, err := Compute(packed)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if layout.Size != 24 {
		t.Errorf("packed size: got %d, want 24", layout.Size)
	}
	if layout.Align != 8 {
		t.Errorf("packed align: got %d, want 8", layout.Align)
	}
	if got := layout.TotalPadding(); got != 0 {
		t.Errorf("packed padding: got %d, want 0", got)
	}

	wantOffsets := map[string]uint32{
		"b": 0, "e": 8, "f": 16, "d": 20, "a": 22, "c": 23,
	}
	for name, want := range wantOffsets {
		got, _ := layout.Offset(name)
		if got != want {
			t.Errorf("field %s offset: got %d, want %d", name, got, want)
		}
	}
}

func TestRepackNeverGrows(t *testing.T) {
	cases := [][]FieldSpec{
		unorderedFields(),
		{Int8("a"), Int32("b"), Int8("c")},
		{Int64("a"), Int8("b")},
		{Int32("x")},
		{Field("w", 3, 2), Int8("y"), Field("z", 5, 4)},
	}

	for _, fields := range cases {
		before, err := Compute(fields)
		if err != nil {
			t.Fatalf("Compute failed: %v", err)
		}
		after, err := Compute(Repack(fields))
		if err != nil {
			t.Fatalf("Compute repacked failed: %v", err)
		}
		if after.Size > before.Size {
			t.Errorf("repack grew layout from %d to %d bytes", before.Size, after.Size)
		}
	}
}

func TestRepackDoesNotMutateInput(t *testing.T) {
	fields := unorderedFields()
	Repack(fields)
	if fields[0].Name != "a" || fields[1].Name != "b" {
		t.Error("Repack mutated its input")
	}
}

func TestArrayElements(t *testing.T) {
	layout, err := Compute(unorderedFields())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if layout.Stride() != 40 {
		t.Errorf("stride: got %d, want 40", layout.Stride())
	}
	for i := uint32(0); i < 4; i++ {
		off := layout.ElemOffset(i)
		if off != uint64(i)*40 {
			t.Errorf("element %d offset: got %d, want %d", i, off, i*40)
		}
		if !IsAligned(off, layout.Align) {
			t.Errorf("element %d at offset %d breaks alignment %d", i, off, layout.Align)
		}
	}
}

func TestIsAligned(t *testing.T) {
	tests := []struct {
		name  string
		addr  uint64
		align uint32
		want  bool
	}{
		{"16 on 8", 16, 8, true},
		{"18 on 8", 18, 8, false},
		{"0 on 4", 0, 4, true},
		{"7 on 1", 7, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAligned(tt.addr, tt.align); got != tt.want {
				t.Errorf("IsAligned(%d, %d) = %v, want %v", tt.addr, tt.align, got, tt.want)
			}
		})
	}
}

func TestNaturalAlign(t *testing.T) {
	tests := []struct {
		size uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 4},
		{6, 4},
		{8, 8},
		{16, 8}, // capped at MaxNaturalAlign
		{100, 8},
	}

	for _, tt := range tests {
		if got := NaturalAlign(tt.size); got != tt.want {
			t.Errorf("NaturalAlign(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestNaturalField(t *testing.T) {
	f := NaturalField("blob", 12)
	if f.Size != 12 || f.Align != 8 {
		t.Errorf("NaturalField: got size %d align %d, want 12/8", f.Size, f.Align)
	}
}

func TestPrimitiveConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field FieldSpec
		size  uint32
		align uint32
	}{
		{"bool", Bool("v"), 1, 1},
		{"int8", Int8("v"), 1, 1},
		{"int16", Int16("v"), 2, 2},
		{"int32", Int32("v"), 4, 4},
		{"int64", Int64("v"), 8, 8},
		{"float32", Float32("v"), 4, 4},
		{"float64", Float64("v"), 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Size != tt.size {
				t.Errorf("size: got %d, want %d", tt.field.Size, tt.size)
			}
			if tt.field.Align != tt.align {
				t.Errorf("align: got %d, want %d", tt.field.Align, tt.align)
			}
		})
	}
}
