package main

import (
	"fmt"
	"log"
	"os"

	"feedwatch/internal/cmd"
	"feedwatch/internal/helper"
)

func main() {
	if len(os.Args) < 2 {
		helper.PrintHelp()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "--help", "-h", "help":
		helper.PrintHelp()
		return
	case "add":
		err = cmd.Add(args)
	case "edit":
		err = cmd.Edit(args)
	case "update":
		err = cmd.Update(args)
	case "delete":
		err = cmd.Delete(args)
	case "list":
		err = cmd.List(args)
	case "watch":
		err = cmd.Watch(args)
	default:
		fmt.Printf("unknown command: %s\n\n", command)
		helper.PrintHelp()
		os.Exit(1)
	}

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
