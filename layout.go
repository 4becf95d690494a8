package structlayout

import (
	"github.com/alignlab/structlayout/internal/abi"
	"github.com/alignlab/structlayout/internal/calc"
)

// FieldSpec describes one structure member. Size is in bytes and must be
// positive; Align must be a power of two. Align may exceed Size, in which
// case the field is still placed on the larger boundary.
type FieldSpec struct {
	Name  string
	Size  uint32
	Align uint32
}

// FieldLayout is a field with its computed placement. Padding is the
// number of bytes inserted immediately before the field.
type FieldLayout struct {
	Name    string
	Offset  uint32
	Size    uint32
	Align   uint32
	Padding uint32
}

// Layout is the computed layout of a structure. It is immutable once
// returned; Fields preserves declaration order.
type Layout struct {
	Size   uint32
	Align  uint32
	Fields []FieldLayout
	offs   map[string]uint32
}

// Compute lays out fields in declaration order. Each field is placed at
// the lowest offset on its alignment boundary at or past the end of the
// previous field, the structure alignment is the maximum field alignment,
// and the total size is rounded up to that alignment.
//
// It returns an invalid_field error for an empty list, a zero size, an
// alignment that is not a power of two, or a duplicate field name.
func Compute(fields []FieldSpec) (*Layout, error) {
	cf := make([]calc.Field, len(fields))
	for i, f := range fields {
		cf[i] = calc.Field{Name: f.Name, Size: f.Size, Align: f.Align}
	}

	info, err := calc.Compute(cf)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Size:   info.Size,
		Align:  info.Align,
		Fields: make([]FieldLayout, len(info.Fields)),
		offs:   make(map[string]uint32, len(info.Fields)),
	}
	for i, p := range info.Fields {
		l.Fields[i] = FieldLayout{
			Name:    p.Name,
			Offset:  p.Offset,
			Size:    p.Size,
			Align:   p.Align,
			Padding: p.Padding,
		}
		l.offs[p.Name] = p.Offset
	}
	return l, nil
}

// Offset returns the byte offset of the named field.
func (l *Layout) Offset(name string) (uint32, bool) {
	off, ok := l.offs[name]
	return off, ok
}

// TrailingPadding returns the bytes added after the last field so that
// array elements stay aligned.
func (l *Layout) TrailingPadding() uint32 {
	last := l.Fields[len(l.Fields)-1]
	return l.Size - (last.Offset + last.Size)
}

// TotalPadding returns all padding bytes, interior and trailing.
func (l *Layout) TotalPadding() uint32 {
	total := l.TrailingPadding()
	for _, f := range l.Fields {
		total += f.Padding
	}
	return total
}

// Stride returns the distance in bytes between consecutive elements of an
// array of this structure. It equals Size, which is already a multiple of
// the structure alignment.
func (l *Layout) Stride() uint32 {
	return l.Size
}

// ElemOffset returns the byte offset of element i in an array of this
// structure. Every element offset satisfies the structure alignment.
func (l *Layout) ElemOffset(i uint32) uint64 {
	return uint64(i) * uint64(l.Size)
}

// IsAligned reports whether addr sits on an align-byte boundary.
// An alignment of 0 never matches.
func IsAligned(addr uint64, align uint32) bool {
	return abi.IsAligned(addr, align)
}
