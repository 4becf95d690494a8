package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/alignlab/structlayout"
	"github.com/alignlab/structlayout/errors"
)

func main() {
	var (
		fieldsArg   = flag.String("fields", "", "Field specs as name:size[:align],... (align defaults to natural)")
		jsonFile    = flag.String("json", "", "Path to a JSON file with [{\"name\":...,\"size\":...,\"align\":...}]")
		repack      = flag.Bool("repack", false, "Also show the layout with fields reordered to minimize padding")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		structlayout.SetLogger(logger)
	}

	fields, err := loadFields(*fieldsArg, *jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(fields); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(fields) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: structlayout -fields a:1,b:8,c:1 [-repack]")
		fmt.Fprintln(os.Stderr, "       structlayout -json fields.json")
		fmt.Fprintln(os.Stderr, "       structlayout -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(fields, *repack); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fields []structlayout.FieldSpec, repack bool) error {
	layout, err := structlayout.Compute(fields)
	if err != nil {
		return err
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(renderLayout(layout, color))

	if repack {
		packed, err := structlayout.Compute(structlayout.Repack(fields))
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("Repacked (most- to least-aligned):")
		fmt.Print(renderLayout(packed, color))
		if saved := layout.Size - packed.Size; saved > 0 {
			fmt.Printf("Saves %d bytes per element (%d -> %d)\n", saved, layout.Size, packed.Size)
		} else {
			fmt.Println("No savings: the declaration order is already packed")
		}
	}

	return nil
}

func renderLayout(l *structlayout.Layout, color bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-12s %8s %6s %6s %8s\n", "FIELD", "OFFSET", "SIZE", "ALIGN", "PADDING")
	for _, f := range l.Fields {
		line := fmt.Sprintf("%-12s %8d %6d %6d %8d", f.Name, f.Offset, f.Size, f.Align, f.Padding)
		if color && f.Padding > 0 {
			line = warnStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "total size %d, alignment %d, padding %d (trailing %d)\n",
		l.Size, l.Align, l.TotalPadding(), l.TrailingPadding())

	if l.Size <= byteMapLimit {
		b.WriteString(renderByteMap(l))
	}
	return b.String()
}

const byteMapLimit = 256

// renderByteMap draws one rune per byte, the field's first rune for data
// and '.' for padding, wrapped at 8 bytes per row.
func renderByteMap(l *structlayout.Layout) string {
	bytes := make([]rune, l.Size)
	for i := range bytes {
		bytes[i] = '.'
	}
	for _, f := range l.Fields {
		marker := '?'
		if f.Name != "" {
			marker = []rune(f.Name)[0]
		}
		for i := uint32(0); i < f.Size; i++ {
			bytes[f.Offset+i] = marker
		}
	}

	var b strings.Builder
	for row := uint32(0); row < l.Size; row += 8 {
		end := row + 8
		if end > l.Size {
			end = l.Size
		}
		fmt.Fprintf(&b, "%4d  %s\n", row, string(bytes[row:end]))
	}
	return b.String()
}

func loadFields(fieldsArg, jsonFile string) ([]structlayout.FieldSpec, error) {
	if fieldsArg != "" && jsonFile != "" {
		return nil, errors.ParseFailed("flags", fmt.Errorf("-fields and -json are mutually exclusive"))
	}
	if jsonFile != "" {
		return loadJSON(jsonFile)
	}
	if fieldsArg != "" {
		return parseFields(fieldsArg)
	}
	return nil, nil
}

// parseFields parses "name:size[:align],..." specs. A missing align
// defaults to the natural alignment for the size.
func parseFields(s string) ([]structlayout.FieldSpec, error) {
	var fields []structlayout.FieldSpec
	for _, spec := range strings.Split(s, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		parts := strings.Split(spec, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, errors.ParseFailed("field spec", fmt.Errorf("%q is not name:size[:align]", spec))
		}

		size, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, errors.ParseFailed("field size", err)
		}

		if len(parts) == 2 {
			fields = append(fields, structlayout.NaturalField(parts[0], uint32(size)))
			continue
		}

		align, err := strconv.ParseUint(parts[2], 10, 32)
		if err != nil {
			return nil, errors.ParseFailed("field alignment", err)
		}
		fields = append(fields, structlayout.Field(parts[0], uint32(size), uint32(align)))
	}
	return fields, nil
}

type fieldJSON struct {
	Name  string  `json:"name"`
	Size  uint32  `json:"size"`
	Align *uint32 `json:"align,omitempty"`
}

func loadJSON(path string) ([]structlayout.FieldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ParseFailed("json file", err)
	}

	var specs []fieldJSON
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, errors.ParseFailed("json fields", err)
	}

	fields := make([]structlayout.FieldSpec, 0, len(specs))
	for _, s := range specs {
		if s.Align == nil {
			fields = append(fields, structlayout.NaturalField(s.Name, s.Size))
		} else {
			fields = append(fields, structlayout.Field(s.Name, s.Size, *s.Align))
		}
	}
	return fields, nil
}
