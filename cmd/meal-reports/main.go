package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"school-meal-reports/internal/config"
	"school-meal-reports/internal/database"
	"school-meal-reports/internal/directory"
	"school-meal-reports/internal/ledger"
	"school-meal-reports/internal/report"
)

func main() {
	ctx := context.Background()
	cfg := config.NewFromEnv()

	if len(os.Args) < 2 {
		// Default run: diagnostic totals, then both report kinds.
		runAll(ctx, cfg)
		return
	}

	switch os.Args[1] {
	case "weekly":
		l := mustLoadLedger(cfg)
		composer := newComposer(ctx, cfg)
		path, err := composer.WeeklyReport(ctx, l)
		if err != nil {
			log.Fatalf("Weekly report failed: %v", err)
		}
		fmt.Println("Weekly report:", path)
	case "daily":
		dailyCmd := flag.NewFlagSet("daily", flag.ExitOnError)
		day := dailyCmd.String("day", "", "Generate a single day (monday..sunday) instead of the whole week")
		dailyCmd.Parse(os.Args[2:])

		var days []string
		if *day != "" {
			days = []string{*day}
		}

		l := mustLoadLedger(cfg)
		composer := newComposer(ctx, cfg)
		path, err := composer.DailyReports(ctx, l, days)
		if err != nil {
			log.Fatalf("Daily reports failed: %v", err)
		}
		fmt.Println("Daily reports:", path)
	case "seed":
		seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
		dbPath := seedCmd.String("db", cfg.SchoolDBPath, "Path of the database to create and seed")
		seedCmd.Parse(os.Args[2:])

		db, err := database.NewDB(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		if err := db.Seed(ctx); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		fmt.Println("Seeded demo database:", *dbPath)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runAll(ctx context.Context, cfg *config.Config) {
	l := mustLoadLedger(cfg)

	totals := report.WeeklyTotals(l)
	fmt.Println("Total servings for the week:")
	for _, name := range totals.Names() {
		fmt.Printf("  %s: %d\n", name, totals.Count(name))
	}
	for _, dayName := range l.DayNames() {
		dayTotals := report.DailyTotals(l, dayName)
		fmt.Printf("%s product totals:\n", dayName)
		for _, name := range dayTotals.Names() {
			fmt.Printf("  %s: %d\n", name, dayTotals.Count(name))
		}
	}

	composer := newComposer(ctx, cfg)
	weeklyPath, err := composer.WeeklyReport(ctx, l)
	if err != nil {
		log.Fatalf("Weekly report failed: %v", err)
	}
	fmt.Println("Weekly report:", weeklyPath)

	dailyPath, err := composer.DailyReports(ctx, l, nil)
	if err != nil {
		log.Fatalf("Daily reports failed: %v", err)
	}
	fmt.Println("Daily reports:", dailyPath)
}

func mustLoadLedger(cfg *config.Config) *ledger.Ledger {
	l, err := ledger.Load(cfg.LedgerPath)
	if err != nil {
		log.Fatalf("Failed to load ledger: %v", err)
	}
	return l
}

func newComposer(ctx context.Context, cfg *config.Config) *report.Composer {
	dir := directory.New(cfg.SchoolDBPath)
	return report.NewComposer(dir, resolvePrices(ctx, cfg, dir), cfg.ReportsDir)
}

// resolvePrices picks the price table: an explicitly configured JSON file
// wins, then the menu_item table of the school database, then the built-in
// demo table.
func resolvePrices(ctx context.Context, cfg *config.Config, dir *directory.Directory) report.PriceTable {
	if cfg.PricesPath != "" {
		prices, err := report.LoadPriceTable(cfg.PricesPath)
		if err != nil {
			log.Fatalf("Failed to load price table: %v", err)
		}
		return prices
	}

	menuPrices, err := dir.LoadPrices(ctx)
	if err != nil || len(menuPrices) == 0 {
		if err != nil {
			log.Printf("Menu prices unavailable (%v); using the built-in demo table", err)
		}
		return report.DefaultPriceTable()
	}
	return report.PriceTable(menuPrices)
}

func printUsage() {
	fmt.Println("Usage: meal-reports [command]")
	fmt.Println("\nWith no command, prints order totals and generates both report kinds.")
	fmt.Println("\nCommands:")
	fmt.Println("  weekly   Generate the weekly summary report")
	fmt.Println("  daily    Generate daily roster reports (-day for a single day)")
	fmt.Println("  seed     Create and seed a demo school database")
}
