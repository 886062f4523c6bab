// tienda es la CLI de mantenimiento: importa el catálogo desde CSV y muestra el
// resumen de ventas usando el mismo almacén que la API (STORE_DRIVER).
//
// Uso:
//
//	go run ./cmd/tienda import-products productos.csv [--latin1]
//	go run ./cmd/tienda report
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appsales "github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/bootstrap"
	"github.com/jhoicas/Tienda-api/pkg/config"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

var (
	rootCmd = &cobra.Command{
		Use:           "tienda",
		Short:         "Herramientas de mantenimiento de Mi Tienda",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	importCmd = &cobra.Command{
		Use:   "import-products [archivo.csv]",
		Short: "Crea productos desde un CSV (name,description,stock,costPrice,salePrice,image)",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportProducts,
	}
	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Imprime el resumen de ventas en JSON",
		Args:  cobra.NoArgs,
		RunE:  runReport,
	}
	latin1 bool
)

func init() {
	importCmd.Flags().BoolVar(&latin1, "latin1", false, "el CSV viene en ISO-8859-1 (exportado desde Excel)")
	rootCmd.AddCommand(importCmd, reportCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openStores carga configuración, logger y stores; devuelve la función de cierre.
func openStores(ctx context.Context) (*bootstrap.Stores, *logger.Logger, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	doc, err := bootstrap.OpenDocumentStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	stores, err := bootstrap.LoadStores(ctx, doc, log)
	if err != nil {
		doc.Close()
		return nil, nil, nil, err
	}
	return stores, log, func() { doc.Close() }, nil
}

func runImportProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	rows, err := parseProductsCSV(f, latin1)
	if err != nil {
		return err
	}

	stores, log, closeFn, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	uc := usecase.NewProductUseCase(stores.Products, nil)
	for i, in := range rows {
		p, err := uc.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("fila %d (%s): %w", i+2, in.Name, err)
		}
		log.Info().Str("id", p.ID).Str("name", p.Name).Int("stock", p.Stock).Msg("producto importado")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d productos importados\n", len(rows))
	return nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	stores, _, closeFn, err := openStores(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	q := appsales.NewQueryUseCase(stores.Sales, stores.Clients, stores.Users, nil)
	rep, err := q.Report()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
