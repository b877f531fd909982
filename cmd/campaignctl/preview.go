package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiblymohammed/electionServices/pkg/form"
	"github.com/shiblymohammed/electionServices/pkg/openapi"
	"github.com/shiblymohammed/electionServices/pkg/order"
	"github.com/shiblymohammed/electionServices/pkg/renderers/html"
	"github.com/shiblymohammed/electionServices/pkg/resource"
)

var previewHTMLPath string

var previewCmd = &cobra.Command{
	Use:   "preview <openapi-file> [schema]",
	Short: "Preview a resource form from an OpenAPI schema",
	Long: `Derives field definitions from a component schema in an OpenAPI
document and shows the form they produce, without touching the API. With
no schema argument the available schemas are listed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read spec: %w", err)
		}
		doc, err := openapi.New().Load(cmd.Context(), raw)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			for _, name := range doc.SchemaNames() {
				fmt.Println(name)
			}
			return nil
		}

		fields, err := doc.Fields(args[1])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FIELD\tTYPE\tREQUIRED\tCONSTRAINTS")
		for _, def := range fields {
			required := ""
			if def.Required {
				required = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.Name, def.Type, required, constraintSummary(def))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if previewHTMLPath == "" {
			return nil
		}

		item := order.Item{ID: 1, ItemType: order.ItemTypePackage, Quantity: 1}
		f := form.New(1, item, fields)
		f.Last = true
		renderer, err := html.New()
		if err != nil {
			return err
		}
		out, err := renderer.Render(form.NewSession(f, nil))
		if err != nil {
			return err
		}
		if err := os.WriteFile(previewHTMLPath, out, 0o644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
		fmt.Printf("Wrote %s\n", previewHTMLPath)
		return nil
	},
}

func constraintSummary(def resource.FieldDefinition) string {
	var parts []string
	if def.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("max %d chars", def.MaxLength))
	}
	if def.MinValue != nil {
		parts = append(parts, fmt.Sprintf("min %g", *def.MinValue))
	}
	if def.MaxValue != nil {
		parts = append(parts, fmt.Sprintf("max %g", *def.MaxValue))
	}
	if def.MaxFileSizeMB > 0 {
		parts = append(parts, fmt.Sprintf("%dMB limit", def.MaxFileSizeMB))
	}
	if len(def.AllowedExtensions) > 0 {
		parts = append(parts, fmt.Sprintf("formats %v", def.AllowedExtensions))
	}
	if len(parts) == 0 {
		return "-"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}

func init() {
	previewCmd.Flags().StringVar(&previewHTMLPath, "html", "", "also render the form to an HTML file")
	rootCmd.AddCommand(previewCmd)
}
