package domain

// Feed is one registry record: a unique name pointing at a feed URL.
type Feed struct {
	Name string
	URL  string
}

// Entry is a single fetched feed item. An empty field means the feed
// did not provide it.
type Entry struct {
	ID    string
	Title string
	Link  string
}

// NewEntry is one notification line for an entry that has not been seen
// before. It is built during a watch run and never persisted.
type NewEntry struct {
	Feed  string
	Title string
	Link  string
}
