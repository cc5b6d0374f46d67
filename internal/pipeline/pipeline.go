// Package pipeline reads grocery items from a stream and writes them back out
// in a chosen order.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fairyhunter13/grocery-reverse/internal/model"
	"github.com/fairyhunter13/grocery-reverse/internal/obs"
	"github.com/fairyhunter13/grocery-reverse/internal/store"
)

// Order selects how collected items are emitted.
type Order int

const (
	// OrderReverse emits newest first.
	OrderReverse Order = iota
	// OrderSorted emits by ascending model.CompareItems.
	OrderSorted
)

func (o Order) String() string {
	switch o {
	case OrderReverse:
		return "reverse"
	case OrderSorted:
		return "sorted"
	default:
		return fmt.Sprintf("order(%d)", int(o))
	}
}

// ParseOrder maps "reverse" or "sorted" (any case) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reverse":
		return OrderReverse, nil
	case "sorted":
		return OrderSorted, nil
	default:
		return 0, fmt.Errorf("unknown order %q (want reverse or sorted)", s)
	}
}

// Stats summarizes a run.
type Stats struct {
	Collected int
	Emitted   int
	// StoppedOnMalformed is set when collection ended at a malformed record
	// instead of end of input.
	StoppedOnMalformed bool
}

// Collect decodes items from r into st in arrival order. It stops at end of
// input or at the first malformed record; the latter is logged, not returned.
// Read errors and context cancellation are returned.
func Collect(ctx context.Context, r io.Reader, st *store.Store) (Stats, error) {
	var stats Stats
	dec := model.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		var g model.GroceryItem
		err := dec.Decode(&g)
		switch {
		case err == nil:
			st.Append(g)
			stats.Collected++
		case errors.Is(err, io.EOF):
			return stats, nil
		case errors.Is(err, model.ErrMalformedRecordText):
			obs.Logger.Warn("record_malformed",
				"error", err,
				"collected", stats.Collected,
				"offset", dec.InputOffset(),
			)
			stats.StoppedOnMalformed = true
			return stats, nil
		default:
			return stats, err
		}
	}
}

// Emit writes items one per line and returns how many were written.
func Emit(w io.Writer, items []model.GroceryItem) (int, error) {
	bw := bufio.NewWriter(w)
	enc := model.NewEncoder(bw)
	n := 0
	for _, g := range items {
		if err := enc.Encode(g); err != nil {
			return n, err
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flush output: %w", err)
	}
	return n, nil
}

// Run collects every item from r and emits them to w in the given order.
func Run(ctx context.Context, r io.Reader, w io.Writer, order Order) (Stats, error) {
	st := store.New()
	stats, err := Collect(ctx, r, st)
	if err != nil {
		return stats, fmt.Errorf("collect records: %w", err)
	}
	obs.Logger.Info("records_collected",
		"count", stats.Collected,
		"stopped_on_malformed", stats.StoppedOnMalformed,
	)

	var items []model.GroceryItem
	switch order {
	case OrderSorted:
		items = st.Sorted()
	default:
		items = st.Reversed()
	}
	n, err := Emit(w, items)
	stats.Emitted = n
	if err != nil {
		return stats, fmt.Errorf("emit records: %w", err)
	}
	obs.Logger.Info("records_emitted", "count", n, "order", order.String())
	return stats, nil
}
