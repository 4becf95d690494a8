package calc

import (
	"go.uber.org/zap"

	"github.com/alignlab/structlayout/errors"
	"github.com/alignlab/structlayout/internal/abi"
)

// Field describes one structure member: a name, a byte size, and a
// power-of-two alignment requirement.
type Field struct {
	Name  string
	Size  uint32
	Align uint32
}

// Placed is a field with its computed position. Padding is the number of
// bytes inserted immediately before the field to satisfy its alignment.
type Placed struct {
	Name    string
	Offset  uint32
	Size    uint32
	Align   uint32
	Padding uint32
}

// Info is the computed layout of a structure.
type Info struct {
	Size   uint32 // total size, a multiple of Align
	Align  uint32 // max alignment over all fields
	Fields []Placed
}

// Validate checks a field list before computation. All violations are
// reported as invalid_field errors: empty list, zero size, alignment that
// is not a power of two, or a duplicate name.
func Validate(fields []Field) error {
	if len(fields) == 0 {
		return errors.InvalidField(nil, "field list is empty")
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.Size == 0 {
			return errors.InvalidField([]string{f.Name}, "size must be positive")
		}
		if !abi.IsPowerOfTwo(f.Align) {
			return errors.New(errors.PhaseValidate, errors.KindInvalidField).
				Path(f.Name).
				Value(f.Align).
				Detail("alignment %d is not a power of two", f.Align).
				Build()
		}
		if _, dup := seen[f.Name]; dup {
			return errors.InvalidField([]string{f.Name}, "duplicate field name")
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// Compute lays out fields in declaration order. Each field is placed at
// the lowest offset on its alignment boundary at or past the end of the
// previous field. The structure alignment is the maximum field alignment,
// and the total size is the end of the last field rounded up to that
// alignment.
func Compute(fields []Field) (*Info, error) {
	if err := Validate(fields); err != nil {
		return nil, err
	}

	placed := make([]Placed, 0, len(fields))
	maxAlign := uint32(1)
	offset := uint32(0)

	for _, f := range fields {
		if _, ok := abi.SafeAddU32(offset, f.Align-1); !ok {
			return nil, errors.Overflow([]string{f.Name}, "aligned offset overflows uint32")
		}
		aligned := abi.AlignTo(offset, f.Align)

		placed = append(placed, Placed{
			Name:    f.Name,
			Offset:  aligned,
			Size:    f.Size,
			Align:   f.Align,
			Padding: aligned - offset,
		})

		if f.Align > maxAlign {
			maxAlign = f.Align
		}

		end, ok := abi.SafeAddU32(aligned, f.Size)
		if !ok {
			return nil, errors.Overflow([]string{f.Name}, "field end overflows uint32")
		}
		offset = end
	}

	if _, ok := abi.SafeAddU32(offset, maxAlign-1); !ok {
		return nil, errors.Overflow(nil, "total size overflows uint32")
	}
	totalSize := abi.AlignTo(offset, maxAlign)

	Logger().Debug("layout computed",
		zap.Int("fields", len(fields)),
		zap.Uint32("size", totalSize),
		zap.Uint32("align", maxAlign))

	return &Info{
		Size:   totalSize,
		Align:  maxAlign,
		Fields: placed,
	}, nil
}
