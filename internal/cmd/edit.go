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

func Edit(args []string) error {
	cfg := config.Load()

	fset := flag.NewFlagSet("edit", flag.ContinueOnError)
	var name string
	var newName string
	var newURL string
	var dbPath string
	fset.StringVar(&name, "name", "", "current name of the feed")
	fset.StringVar(&newName, "new-name", "", "new name for the feed")
	fset.StringVar(&newURL, "url", "", "new URL for the feed")
	fset.StringVar(&dbPath, "db", cfg.DBPath, "feeds database file")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("--name is required")
	}
	// Checked before the store is opened so a bad invocation never
	// creates or touches the database file.
	if newName == "" && newURL == "" {
		return fmt.Errorf("provide at least one option to update (--new-name and/or --url)")
	}
	if newURL != "" {
		if err := helper.IsValidURL(newURL); err != nil {
			return err
		}
	}

	reg, err := boltdb.OpenRegistry(dbPath)
	if err != nil {
		return err
	}
	defer reg.Close()

	feed, err := reg.Rename(name, newName, newURL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("no feed found with the name %q", name)
		case errors.Is(err, domain.ErrDuplicateName):
			return fmt.Errorf("a feed with the name %q already exists", newName)
		}
		return fmt.Errorf("could not edit feed: %w", err)
	}

	fmt.Printf("Feed updated: name=%q url=%s\n", feed.Name, feed.URL)
	return nil
}
