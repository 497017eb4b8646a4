package cmd

import (
	"flag"
	"fmt"

	"feedwatch/adapter/boltdb"
	"feedwatch/internal/config"
)

func List(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("list", flag.ContinueOnError)
	var dbPath string
	fset.StringVar(&dbPath, "db", cfg.DBPath, "feeds database file")
	if err := fset.Parse(args); err != nil {
		return err
	}

	reg, err := boltdb.OpenRegistry(dbPath)
	if err != nil {
		return err
	}
	defer reg.Close()

	feeds, err := reg.List()
	if err != nil {
		return fmt.Errorf("could not list feeds: %w", err)
	}

	if len(feeds) == 0 {
		fmt.Println("No feeds found.")
		return nil
	}

	fmt.Println("Current feeds:")
	for _, f := range feeds {
		fmt.Printf(" - %s: %s\n", f.Name, f.URL)
	}
	return nil
}
