package main

import (
	"context"
	"io"
	"log"
	"os"

	"countrynames/internal/application"
	"countrynames/internal/config"
	"countrynames/internal/domain"
	"countrynames/internal/infrastructure/cldr"
	"countrynames/internal/infrastructure/i18n"
	"countrynames/internal/infrastructure/jsonenc"
	"countrynames/internal/ports/input"
	"countrynames/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ Configuration invalide: %v", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Printf("❌ Export des noms de pays échoué (code=%s): %v", domain.Code(err), err)
		os.Exit(1)
	}
}

// run wires the source chain and writes the export to w.
func run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	base, err := cldr.NewSource(cfg.Locales)
	if err != nil {
		return err
	}

	var source output.CountryNameSource = base
	if cfg.Overrides {
		catalog, err := i18n.NewCatalog(cfg.DefaultLocale)
		if err != nil {
			return err
		}
		source = application.NewOverlaySource(base, catalog)
	}

	var exporter input.ExportUseCase = application.NewExportService(source, jsonenc.Encoder{})
	if err := exporter.Export(ctx, w); err != nil {
		return err
	}
	log.Println("✅ Noms de pays exportés.")
	return nil
}
