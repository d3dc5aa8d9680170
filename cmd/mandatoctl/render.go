package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Mandatos-api/internal/application/documents"
	"github.com/jhoicas/Mandatos-api/internal/domain"
	"github.com/jhoicas/Mandatos-api/internal/domain/mandato"
	infradocx "github.com/jhoicas/Mandatos-api/internal/infrastructure/docx"
	infrapdf "github.com/jhoicas/Mandatos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Mandatos-api/pkg/config"
)

func renderCmd() *cobra.Command {
	var fixturePath, format, templatePath, outDir string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Genera el mandato (docx o pdf) a partir de un fixture JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if templatePath == "" {
				templatePath = cfg.Docs.MandateTemplate
			}
			property, mandate, err := loadFixture(fixturePath)
			if err != nil {
				return err
			}

			now := time.Now()
			owners := mandato.ParseOwners(property.OwnersJSON)
			tc := mandato.Assemble(property, mandate, owners, now)

			var content []byte
			switch format {
			case "docx":
				content, err = infradocx.NewTemplateRenderer(templatePath).Render(cmd.Context(), tc.Values())
			case "pdf":
				content, err = infrapdf.NewMarotoPDFGenerator(cfg.App.Agency).GenerateMandatePDF(cmd.Context(), documents.MandatePDFData{
					Property:    property,
					Mandate:     mandate,
					Owners:      owners,
					Context:     tc,
					GeneratedAt: now,
				})
			default:
				return fmt.Errorf("formato desconocido %q (docx|pdf)", format)
			}
			if err != nil {
				printTemplateIssues(cmd.ErrOrStderr(), err)
				return err
			}

			out := filepath.Join(outDir, documents.MandateFilename(property.Title, property.ID, format))
			if err := os.WriteFile(out, content, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", out, len(content))
			return nil
		},
	}
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "fixture JSON con propiedad y mandato")
	cmd.Flags().StringVar(&format, "format", "docx", "docx | pdf")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "plantilla .docx (default DOCS_MANDATE_TEMPLATE)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directorio de salida")
	_ = cmd.MarkFlagRequired("fixture")
	return cmd
}

// printTemplateIssues muestra cada error de la plantilla en una línea.
func printTemplateIssues(w io.Writer, err error) {
	var renderErr *domain.TemplateRenderError
	if !errors.As(err, &renderErr) {
		return
	}
	for _, is := range renderErr.Issues {
		fmt.Fprintf(w, "  %s: %s (%s)\n", is.Part, is.Message, is.Tag)
	}
}
