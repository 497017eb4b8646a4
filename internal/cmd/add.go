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

func Add(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("add", flag.ContinueOnError)
	var name string
	var feedURL string
	var dbPath string
	fset.StringVar(&name, "name", "", "feed name")
	fset.StringVar(&feedURL, "url", "", "feed URL")
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

	if err := reg.Add(name, feedURL); err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return fmt.Errorf("a feed with the name %q already exists", name)
		}
		return fmt.Errorf("could not add feed: %w", err)
	}

	fmt.Printf("Feed %q added with URL: %s\n", name, feedURL)
	return nil
}
