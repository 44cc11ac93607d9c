package radasync

import "strings"

// PendingEditions returns the editions that follow the checkpoint.
//
// An empty checkpoint yields the whole listing. Otherwise the checkpoint is
// matched by substring against edition keys, so "20150304" finds
// "ed20150304". The match must be unique; zero or several matches fail with
// ECHECKPOINT. A checkpoint at the last edition fails with EUPTODATE.
func PendingEditions(editions []Edition, checkpoint string) ([]Edition, error) {
	if checkpoint == "" {
		pending := make([]Edition, len(editions))
		copy(pending, editions)
		return pending, nil
	}

	index := -1
	matches := 0
	for i, e := range editions {
		if strings.Contains(e.Key, checkpoint) {
			if matches == 0 {
				index = i
			}
			matches++
		}
	}

	switch {
	case matches == 0:
		return nil, Errorf(ECHECKPOINT, "edition %q not found among %d editions", checkpoint, len(editions))
	case matches > 1:
		return nil, Errorf(ECHECKPOINT, "edition %q is ambiguous: matches %d editions", checkpoint, matches)
	case index == len(editions)-1:
		return nil, Errorf(EUPTODATE, "edition %q is the latest edition", checkpoint)
	}

	pending := make([]Edition, len(editions)-index-1)
	copy(pending, editions[index+1:])
	return pending, nil
}
