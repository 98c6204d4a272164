// Package item provides an element type for partitioned lists: an item of a
// channel schedule, identified by a unique ID and routed by its start time.
package item

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is a scheduled item of a channel sequence.
//
// Items are comparable values, two items are equal when both their ID and
// start time are equal. Start times are stored without monotonic clock
// reading so that copies of an item compare equal.
type Item struct {
	ID    uuid.UUID
	Start time.Time
}

// New constructs an item starting at start, with a random ID.
func New(start time.Time) Item {
	return Item{ID: uuid.New(), Start: start.Round(0)}
}

// Key returns the start time of the item, which partitioned lists use to
// route the item to a partition.
func (it Item) Key() time.Time { return it.Start }

func (it Item) String() string {
	return fmt.Sprintf("%s@%s", it.ID, it.Start.Format(time.RFC3339))
}
