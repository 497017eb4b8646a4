package helper

import "fmt"

func PrintHelp() {
	fmt.Print(`Usage:
  feedwatch COMMAND [OPTIONS]

Commands:
   add      add a new feed (--name, --url)
   edit     rename a feed and/or change its URL (--name, [--new-name], [--url])
   update   change the URL of a feed (--name, --url)
   delete   delete a feed (--name)
   list     list configured feeds
   watch    check every feed once and notify a webhook
            (--discord-webhook, [--feed-config], [--cache])
   help     show this help

Options:
   --db PATH   feeds database file (default feeds.db)
`)
}
