package cmd

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"feedwatch/adapter/boltdb"
	"feedwatch/domain"
	"feedwatch/internal/config"
	"feedwatch/internal/helper"
)

func Update(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("update", flag.ContinueOnError)
	var name string
	var feedURL string
	var dbPath string
	fset.StringVar(&name, "name", "", "feed name")
	fset.StringVar(&feedURL, "url", "", "new feed URL")
	fset.StringVar(&dbPath, "db", cfg.DBPath, "feeds database file")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(name) == "" || strings.TrimSpace(feedURL) == "" {
		return fmt.Errorf("both --name and --url are required")
	}
	if err := helper.IsValidURL(feedURL); err != nil {
		return err
	}

	reg, err := boltdb.OpenRegistry(dbPath)
	if err != nil {
		return err
	}
	defer reg.Close()

	if err := reg.UpdateURL(name, feedURL); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no feed found with the name %q", name)
		}
		return fmt.Errorf("could not update feed: %w", err)
	}

	fmt.Printf("Feed %q updated with new URL: %s\n", name, feedURL)
	return nil
}
