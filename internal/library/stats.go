package library

import "sort"

// StatusCounts backs the three counters of the statistics view.
type StatusCounts struct {
	Read    int
	Reading int
	ToRead  int
}

func (c StatusCounts) Total() int {
	return c.Read + c.Reading + c.ToRead
}

func CountByStatus(books []Book) StatusCounts {
	var c StatusCounts
	for _, b := range books {
		switch b.Status {
		case StatusRead:
			c.Read++
		case StatusReading:
			c.Reading++
		case StatusToRead:
			c.ToRead++
		}
	}
	return c
}

// RecomputeStats rebuilds d.Stats from the categories of read books, most
// read first and ties broken alphabetically. It only runs when called.
func (d *AppData) RecomputeStats() {
	counts := make(map[string]int)
	for _, b := range d.Books {
		if b.Status != StatusRead {
			continue
		}
		for _, cat := range b.Categories {
			counts[cat]++
		}
	}

	stats := make([]ReadingStats, 0, len(counts))
	for cat, n := range counts {
		stats = append(stats, ReadingStats{Category: cat, BooksRead: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].BooksRead != stats[j].BooksRead {
			return stats[i].BooksRead > stats[j].BooksRead
		}
		return stats[i].Category < stats[j].Category
	})
	d.Stats = stats
}
