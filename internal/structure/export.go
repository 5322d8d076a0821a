package structure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an export encoding for Encode.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned for export formats Encode does not know.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode writes rec to w in the requested format.
func Encode(w io.Writer, rec Record, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record as json: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flushing yaml encoder: %w", err)
		}
		return nil

	case FormatMarkdown:
		if _, err := io.WriteString(w, Markdown(rec)); err != nil {
			return fmt.Errorf("writing markdown dossier: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// Markdown renders the record as a dossier document.
func Markdown(rec Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", rec.Identity.Name))
	b.WriteString(fmt.Sprintf("- **Designation:** `%s`\n", rec.Identity.Designation))
	b.WriteString(fmt.Sprintf("- **Class:** %s\n", rec.Identity.Class))
	b.WriteString(fmt.Sprintf("- **Formula:** `%s`\n\n", rec.Identity.Formula))
	b.WriteString(fmt.Sprintf("> %s\n\n", rec.Identity.Description))

	b.WriteString("## Structure\n\n")
	b.WriteString("| Descriptor | Value |\n")
	b.WriteString("|------------|-------|\n")
	b.WriteString(fmt.Sprintf("| Geometry | %s |\n", rec.Structure.Geometry))
	b.WriteString(fmt.Sprintf("| Coordination Center | %s |\n", rec.Structure.CoordinationCenter))
	b.WriteString(fmt.Sprintf("| Peripheral Nodes | %s |\n\n", rec.Structure.PeripheralNodes))
	b.WriteString("```\n")
	b.WriteString(rec.Structure.SMILES)
	b.WriteString("\n```\n\n")

	b.WriteString("## Properties\n\n")
	b.WriteString(fmt.Sprintf("- **Stability:** %s\n", rec.Properties.Stability))
	b.WriteString(fmt.Sprintf("- **Electronic Profile:** %s\n", rec.Properties.ElectronicProfile))
	b.WriteString(fmt.Sprintf("- **Synthesis Feasibility:** %s\n", rec.Properties.SynthesisFeasibility))
	b.WriteString(fmt.Sprintf("- **Drug Likeness:** %s\n\n", rec.Properties.DrugLikeness))

	b.WriteString(fmt.Sprintf("_Aesthetic sync: %s_\n", rec.Metadata.AestheticSync))

	return b.String()
}
