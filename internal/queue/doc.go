// Package queue provides a generic bounded priority queue used for
// streaming top-K selection during file searches.
//
// The queue holds at most maxSize items in comparator order, best
// first. Inserting into a full queue displaces the worst member when
// the new item ranks higher, and is a no-op otherwise:
//
//	q, _ := queue.New(10, func(a, b types.SearchResult) bool {
//	    return a.Score > b.Score
//	})
//	for candidate := range candidates {
//	    q.Add(candidate)
//	}
//	best := q.Items() // at most 10, sorted by descending score
//
// MinAcceptableScore exposes the current admission floor so producers
// can prune work before building a candidate at all. This is what keeps
// a search over an arbitrarily large tree at O(maxSize) memory rather
// than O(files scanned).
package queue
