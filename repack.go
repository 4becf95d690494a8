package structlayout

import "sort"

// Repack returns a copy of fields reordered from most- to least-aligned,
// ties broken by descending size and then by declaration order. The
// resulting layout never needs more space than the original order and
// usually needs less.
func Repack(fields []FieldSpec) []FieldSpec {
	out := make([]FieldSpec, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Align != out[j].Align {
			return out[i].Align > out[j].Align
		}
		return out[i].Size > out[j].Size
	})
	return out
}
