// Package aggregate computes the derived read views over notebook documents:
// profile stats, the note date index, and the ranked public search. All
// functions are pure over loaded entities; nothing here mutates state.
package aggregate

import (
	"sort"
	"strings"
	"time"

	"notevision-be/internal/entity"
)

const SearchResultLimit = 50

// Stats is the per-user analytics block shown on the profile.
type Stats struct {
	NotebooksCreated        int `json:"notebooks_created"`
	NotesCreated            int `json:"notes_created"`
	NotebooksSharedByUser   int `json:"notebooks_shared_by_user"`
	NotebooksSharedWithUser int `json:"notebooks_shared_with_user"`
	TotalLikesReceived      int `json:"total_likes_received"`
}

// ComputeStats derives the profile stats from the caller's owned notebooks
// plus the notebooks shared with them (owned by others, caller in the
// access list).
func ComputeStats(owned []*entity.Notebook, sharedWith []*entity.Notebook) Stats {
	stats := Stats{
		NotebooksCreated:        len(owned),
		NotebooksSharedWithUser: len(sharedWith),
	}
	for _, nb := range owned {
		stats.NotesCreated += len(nb.Notes)
		if len(nb.AccessList) > 0 {
			stats.NotebooksSharedByUser++
		}
		if nb.IsPublic {
			stats.TotalLikesReceived += len(nb.Likes)
		}
	}
	return stats
}

// NoteDates returns the distinct UTC calendar dates (YYYY-MM-DD) of every
// note across the given notebooks, sorted ascending.
func NoteDates(notebooks []*entity.Notebook) []string {
	seen := make(map[string]struct{})
	for _, nb := range notebooks {
		for _, note := range nb.Notes {
			seen[note.CreatedAt.UTC().Format("2006-01-02")] = struct{}{}
		}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// NotesOn flattens the notes whose creation time falls within the UTC day
// [day 00:00, day+24h), sorted ascending by creation time.
func NotesOn(notebooks []*entity.Notebook, day time.Time) []entity.Note {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	notes := make([]entity.Note, 0)
	for _, nb := range notebooks {
		for _, note := range nb.Notes {
			at := note.CreatedAt.UTC()
			if !at.Before(start) && at.Before(end) {
				notes = append(notes, note)
			}
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes
}

// PublicResult is a search hit. Notes are deliberately absent: result
// payloads stay small and note content is never exposed through discovery.
type PublicResult struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	OwnerEmail string    `json:"owner_email"`
	Tags       []string  `json:"tags"`
	LikeCount  int       `json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// RankPublic filters and ranks public notebooks. An empty query matches
// everything; otherwise the name or any tag must contain the query as a
// case-insensitive substring. Results sort by like count descending, ties
// by name ascending, capped at SearchResultLimit.
func RankPublic(notebooks []*entity.Notebook, query string) []PublicResult {
	query = strings.ToLower(strings.TrimSpace(query))

	results := make([]PublicResult, 0, len(notebooks))
	for _, nb := range notebooks {
		if !nb.IsPublic {
			continue
		}
		if query != "" && !matchesQuery(nb, query) {
			continue
		}
		results = append(results, PublicResult{
			Id:         nb.Id.String(),
			Name:       nb.Name,
			OwnerEmail: nb.OwnerEmail,
			Tags:       nb.Tags,
			LikeCount:  len(nb.Likes),
			CreatedAt:  nb.CreatedAt,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].LikeCount != results[j].LikeCount {
			return results[i].LikeCount > results[j].LikeCount
		}
		return results[i].Name < results[j].Name
	})

	if len(results) > SearchResultLimit {
		results = results[:SearchResultLimit]
	}
	return results
}

func matchesQuery(nb *entity.Notebook, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(nb.Name), loweredQuery) {
		return true
	}
	for _, tag := range nb.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}
