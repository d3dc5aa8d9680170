package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
	infradocx "github.com/jhoicas/Mandatos-api/internal/infrastructure/docx"
	"github.com/jhoicas/Mandatos-api/pkg/config"
)

func checkTemplateCmd() *cobra.Command {
	var templatePath string
	cmd := &cobra.Command{
		Use:   "check-template",
		Short: "Valida la plantilla .docx y lista los tags que no tienen dato",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templatePath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				templatePath = cfg.Docs.MandateTemplate
			}
			raw, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("leer plantilla: %w", err)
			}
			return checkTemplate(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "plantilla .docx (default DOCS_MANDATE_TEMPLATE)")
	return cmd
}

// checkTemplate informa errores de sintaxis y tags que se van a renderizar vacíos.
func checkTemplate(w io.Writer, raw []byte) error {
	names, err := infradocx.Inspect(raw)
	if err != nil {
		printTemplateIssues(w, err)
		return err
	}
	known := make(map[string]bool, len(mandato.Fields))
	for _, f := range mandato.Fields {
		known[f.Key] = true
	}
	var unknown []string
	for _, n := range names {
		if !known[n] {
			unknown = append(unknown, n)
		}
	}
	fmt.Fprintf(w, "%d tags en la plantilla\n", len(names))
	for _, n := range unknown {
		fmt.Fprintf(w, "  aviso: {{%s}} no corresponde a ningún dato, se renderiza vacío\n", n)
	}
	return nil
}
