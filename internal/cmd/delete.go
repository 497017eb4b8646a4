package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"feedwatch/adapter/boltdb"
	"feedwatch/domain"
	"feedwatch/internal/config"
)

func Delete(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("delete", flag.ContinueOnError)
	var name string
	var dbPath string
	fset.StringVar(&name, "name", "", "feed name")
	fset.StringVar(&dbPath, "db", cfg.DBPath, "feeds database file")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("--name is required")
	}

	reg, err := boltdb.OpenRegistry(dbPath)
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := reg.Delete(name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no feed found with the name %q", name)
		}
		return fmt.Errorf("could not delete feed %q: %w", name, err)
	}

	fmt.Printf("Feed %q deleted\n", name)
	return nil
}
