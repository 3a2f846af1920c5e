package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/importing"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

func main() {
	ifEmpty := flag.Bool("if-empty", false, "only import when product_sales is empty")
	timeout := flag.Duration("timeout", 30*time.Minute, "maximum duration of the import")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	ctx, _ = log.WithCorrelationID(ctx)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database error: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "schema error: %v\n", err)
		os.Exit(1)
	}

	importer := importing.NewService(
		repository.NewSalesRepository(conn),
		repository.NewAdMetricsRepository(conn),
		repository.NewEligibilityRepository(conn),
		cfg.Import,
		nil,
	)

	var report *domain.ImportReport
	if *ifEmpty {
		report, err = importer.LoadIfEmpty(ctx)
	} else {
		report, err = importer.Run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	if report == nil {
		fmt.Println("data already loaded, nothing to do")
		return
	}

	for _, table := range report.Tables {
		if table.Missing {
			fmt.Printf("%-22s missing file %s\n", table.Table, table.File)
			continue
		}
		fmt.Printf("%-22s loaded=%d skipped=%d\n", table.Table, table.Loaded, table.Skipped)
	}
	fmt.Printf("run %s finished in %s\n", report.RunID, report.CompletedAt.Sub(report.StartedAt).Round(time.Millisecond))
}
