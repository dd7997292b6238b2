// Command import loads a CSV export of one client's orders.
//
//	go run ./cmd/import -client cupetit -file transactions.csv
//	go run ./cmd/import -client cupetit -file transactions.csv -dry-run
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"smebig-warroom/internal/platform/config"
	"smebig-warroom/internal/platform/logging"
	"smebig-warroom/internal/platform/messaging"
	"smebig-warroom/internal/platform/postgres"
	txAmqp "smebig-warroom/internal/transactions/adapters/amqp"
	"smebig-warroom/internal/transactions/adapters/csvfile"
	txRepoPg "smebig-warroom/internal/transactions/adapters/postgres"
	"smebig-warroom/internal/transactions/core/domain"
	"smebig-warroom/internal/transactions/core/ports"
	"smebig-warroom/internal/transactions/core/usecase"
)

var (
	clientFlag   = flag.String("client", "", "Client name the rows belong to.")
	fileFlag     = flag.String("file", "", "CSV file to import.")
	batchFlag    = flag.Int("batch", usecase.DefaultBatchSize, "Rows per insert statement.")
	batchIDFlag  = flag.String("batch-id", "", "Resume an earlier import with its batch id.")
	mappingFlag  = flag.String("mapping", "", `Column overrides as JSON, e.g. {"amount":"Total"}.`)
	timezoneFlag = flag.String("tz", "", "Zone for dates without an offset; defaults to TIMEZONE and must match it unless -dry-run.")
	dryRunFlag   = flag.Bool("dry-run", false, "Parse and validate only, write nothing.")
)

func main() {
	flag.Parse()

	if *clientFlag == "" || *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: import -client NAME -file transactions.csv [-batch 1000] [-batch-id ID] [-dry-run]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logging.Setup(cfg.LogLevel)
	logger := logging.Component("import")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *timezoneFlag != "" && *timezoneFlag != cfg.Timezone {
		if !*dryRunFlag {
			logger.WithFields(log.Fields{"tz": *timezoneFlag, "timezone": cfg.Timezone}).
				Fatal("-tz differs from TIMEZONE; reports would bucket these rows on other days")
		}
		cfg.Timezone = *timezoneFlag
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.WithError(err).Fatal("invalid timezone")
	}

	var mapping domain.Mapping
	if *mappingFlag != "" {
		if err := json.Unmarshal([]byte(*mappingFlag), &mapping); err != nil {
			logger.WithError(err).Fatal("invalid -mapping")
		}
	}

	f, err := os.Open(*fileFlag)
	if err != nil {
		logger.WithError(err).Fatal("failed to open csv")
	}
	sheet, err := csvfile.Read(f)
	f.Close()
	if err != nil {
		logger.WithError(err).Fatal("failed to read csv")
	}
	logger.WithFields(log.Fields{"file": *fileFlag, "rows": len(sheet.Rows)}).Info("csv loaded")

	var (
		writer   ports.TransactionWriterPort = dryRunWriter{}
		notifier ports.ImportNotifierPort
	)
	if !*dryRunFlag {
		if err := cfg.Validate(); err != nil {
			logger.Fatal(err)
		}

		db, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.PoolOptions{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		})
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to postgres")
		}
		defer db.Close()

		if cfg.MigrateOnStart {
			if err := postgres.RunMigrations(db); err != nil {
				logger.WithError(err).Fatal("failed to run migrations")
			}
		}
		writer = txRepoPg.NewTransactionRepository(txRepoPg.NewSQLDB(db))

		if cfg.AMQPEnabled() {
			broker, err := messaging.Dial(cfg.AMQPURL, cfg.AMQPExchange)
			if err != nil {
				logger.WithError(err).Fatal("failed to connect to rabbitmq")
			}
			defer broker.Close()
			notifier = txAmqp.NewImportNotifier(broker)
		}
	}

	var bar *progressbar.ProgressBar
	uc := usecase.NewImportTransactionsUseCase(writer, notifier, usecase.ImportOptions{
		BatchSize: *batchFlag,
		Location:  loc,
	})

	res, err := uc.Import(ctx, usecase.ImportInput{
		ClientName: *clientFlag,
		Sheet:      *sheet,
		Mapping:    mapping,
		BatchID:    *batchIDFlag,
		Progress: func(done, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "importing")
			}
			_ = bar.Set(done)
		},
	})
	if bar != nil {
		_ = bar.Finish()
	}
	if res != nil {
		for _, r := range res.Rejected {
			logger.WithFields(log.Fields{"line": r.Line, "reason": r.Reason}).Warn("row rejected")
		}
	}
	if err != nil {
		entry := logger.WithError(err)
		if res != nil && res.Inserted > 0 {
			entry = entry.WithField("retry", fmt.Sprintf("-batch-id %s", res.BatchID))
		}
		entry.Fatal("import failed")
	}

	logger.WithFields(log.Fields{
		"batch_id":   res.BatchID,
		"inserted":   res.Inserted,
		"duplicates": res.Duplicates,
		"rejected":   len(res.Rejected),
		"dry_run":    *dryRunFlag,
	}).Info("import finished")
}

// dryRunWriter accepts every row without touching the database.
type dryRunWriter struct{}

func (dryRunWriter) InsertBatch(_ context.Context, txs []domain.Transaction) (int, error) {
	return len(txs), nil
}
