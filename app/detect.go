package app

import "feedwatch/domain"

// DetectNew classifies fetched entries against the ids already seen for
// a feed. An entry's identity is its native id, or its link when the id
// is missing; entries with neither are ignored entirely. Output keeps
// the input order. The returned id list is what must be added to the
// feed's seen-set.
func DetectNew(feedName string, entries []domain.Entry, seen map[string]struct{}) ([]domain.NewEntry, []string) {
	var fresh []domain.NewEntry
	var ids []string
	added := make(map[string]struct{})

	for _, e := range entries {
		id := e.ID
		if id == "" {
			id = e.Link
		}
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}
		if _, ok := added[id]; ok {
			continue
		}
		added[id] = struct{}{}

		title := e.Title
		if title == "" {
			title = "No title"
		}
		link := e.Link
		if link == "" {
			link = "No link"
		}

		fresh = append(fresh, domain.NewEntry{Feed: feedName, Title: title, Link: link})
		ids = append(ids, id)
	}

	return fresh, ids
}
