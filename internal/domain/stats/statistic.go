package stats

import (
	"fmt"
	"sort"
	"time"
)

// Item is one headline figure shown on the landing page. Value is free
// text (a number or percentage string); Order defines display sequence
// and is reassigned to consecutive integers on reorder.
type Item struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
}

// Defaults is the hardcoded set restorable via reset.
func Defaults() []Item {
	return []Item{
		{ID: "1", Value: "247", Label: "Довольных клиентов", Order: 1},
		{ID: "2", Value: "89", Label: "Активных объектов", Order: 2},
		{ID: "3", Value: "12", Label: "Районов города", Order: 3},
		{ID: "4", Value: "4.8", Label: "Средняя оценка", Order: 4},
	}
}

// NewID generates a timestamp-based identifier for added items.
func NewID(now time.Time) string {
	return fmt.Sprintf("stat-%d", now.UnixMilli())
}

// SortByOrder sorts items ascending by Order, keeping insertion order
// for equal values.
func SortByOrder(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})
}
