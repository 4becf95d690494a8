package structlayout

// MaxNaturalAlign caps the alignment derived from a field's size. Natural
// alignment equals the size for fundamental types, but no hardware in
// this model demands more than an 8-byte boundary.
const MaxNaturalAlign = 8

// Field constructs a FieldSpec with an explicit alignment requirement.
func Field(name string, size, align uint32) FieldSpec {
	return FieldSpec{Name: name, Size: size, Align: align}
}

// NaturalField derives the alignment from the size: the largest power of
// two not exceeding it, capped at MaxNaturalAlign.
func NaturalField(name string, size uint32) FieldSpec {
	return FieldSpec{Name: name, Size: size, Align: NaturalAlign(size)}
}

// NaturalAlign returns the natural alignment for a field of the given
// size: the largest power of two not exceeding it, capped at
// MaxNaturalAlign. A size of 0 yields 1.
func NaturalAlign(size uint32) uint32 {
	align := uint32(1)
	for align < MaxNaturalAlign && align*2 <= size {
		align *= 2
	}
	return align
}

// Constructors for fundamental types, sized per the natural alignment
// model: alignment equals size.

func Bool(name string) FieldSpec    { return FieldSpec{Name: name, Size: 1, Align: 1} }
func Int8(name string) FieldSpec    { return FieldSpec{Name: name, Size: 1, Align: 1} }
func Int16(name string) FieldSpec   { return FieldSpec{Name: name, Size: 2, Align: 2} }
func Int32(name string) FieldSpec   { return FieldSpec{Name: name, Size: 4, Align: 4} }
func Int64(name string) FieldSpec   { return FieldSpec{Name: name, Size: 8, Align: 8} }
func Float32(name string) FieldSpec { return FieldSpec{Name: name, Size: 4, Align: 4} }
func Float64(name string) FieldSpec { return FieldSpec{Name: name, Size: 8, Align: 8} }
