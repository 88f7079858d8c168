package main

import (
	"ares-gme/repositories"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	Limit          int    `envconfig:"VIEWER_LIMIT" default:"50"`
}

// The viewer renders the most recent audit records (moderation warnings and
// roster notices) as a terminal table while the bot keeps running.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while the bot process holds the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	repo := repositories.NewAuditRepository(db, logs.GetLoggerFromString("WARN"))
	records, err := repo.Recent(config.Limit)
	if err != nil {
		log.Fatalf("Failed to read audit records: %v", err)
	}

	color.Cyan.Printf("ARES GME audit trail: %d record(s)\n\n", len(records))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Kind", "Chat", "Actor", "Lang", "Detail"})
	table.SetAutoWrapText(false)
	for _, rec := range records {
		detail := rec.Detail
		if len(detail) > 60 {
			detail = detail[:57] + "..."
		}
		table.Append([]string{
			rec.At.Format(time.RFC822),
			string(rec.Kind),
			rec.Chat,
			rec.Actor,
			rec.Lang,
			detail,
		})
	}
	table.Render()

	fmt.Println()
}
