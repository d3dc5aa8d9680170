// mandatoctl es la herramienta de línea de comandos para trabajar con la
// plantilla del mandato sin levantar la API ni la base de datos.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "mandatoctl",
		Short:         "Herramientas para plantillas y documentos de mandato",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		checkTemplateCmd(),
		tokenCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
