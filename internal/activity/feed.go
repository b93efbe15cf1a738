// Package activity builds the merged activity timeline shown on a
// profile page: recipes, cook records, comments and posts normalized
// into one reverse-chronological, paginated list.
package activity

import (
	"sort"
	"time"

	"github.com/xgyuan/cookshare/backend/internal/models"
)

// PageSize is the fixed number of items per feed page.
const PageSize = 10

// Activity kinds.
const (
	KindRecipe     = "recipe"
	KindCookRecord = "cook_record"
	KindComment    = "comment"
	KindPost       = "post"
)

// Item is one entry in the merged timeline. Payload holds the
// underlying entity for the given Kind.
type Item struct {
	Kind      string      `json:"kind"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Page is one slice of the merged timeline.
type Page struct {
	Items      []Item `json:"items"`
	Page       int    `json:"page"`
	Pages      int    `json:"pages"`
	TotalItems int    `json:"total_items"`
}

// Merge flattens the four activity collections into one list sorted
// descending by timestamp. The sort is stable, so items sharing a
// timestamp keep concatenation order: recipes, cook records, comments,
// posts.
func Merge(recipes []models.Recipe, records []models.CookRecord, comments []models.Comment, posts []models.Post) []Item {
	items := make([]Item, 0, len(recipes)+len(records)+len(comments)+len(posts))
	for _, r := range recipes {
		items = append(items, Item{Kind: KindRecipe, Timestamp: r.CreatedAt, Payload: r})
	}
	for _, cr := range records {
		items = append(items, Item{Kind: KindCookRecord, Timestamp: cr.CreatedAt, Payload: cr})
	}
	for _, c := range comments {
		items = append(items, Item{Kind: KindComment, Timestamp: c.CreatedAt, Payload: c})
	}
	for _, p := range posts {
		items = append(items, Item{Kind: KindPost, Timestamp: p.CreatedAt, Payload: p})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items
}

// Paginate slices the merged list into the requested page. Pages
// before the first clamp to page 1; pages past the end come back
// empty.
func Paginate(items []Item, page int) Page {
	if page < 1 {
		page = 1
	}
	total := len(items)
	pages := Pages(total)

	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      items[start:end],
		Page:       page,
		Pages:      pages,
		TotalItems: total,
	}
}

// Pages returns ceil(total / PageSize).
func Pages(total int) int {
	return (total + PageSize - 1) / PageSize
}
