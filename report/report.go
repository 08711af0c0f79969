package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/roomgraph/core"
	"github.com/katalvlaran/roomgraph/critical"
	"github.com/katalvlaran/roomgraph/room"
	"github.com/katalvlaran/roomgraph/weights"
)

// Arrow joins chain elements.
const Arrow = " -> "

// Chain renders ids as "101 -> 102 -> 201". An empty slice renders "".
func Chain(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, Arrow)
}

// Activity renders one activity as "source -> target, duration: weight".
func Activity(a critical.Activity) string {
	return fmt.Sprintf("%d%s%d, duration: %d", a.From, Arrow, a.To, a.Weight)
}

// WriteOrder prints the topological order.
func WriteOrder(w io.Writer, order []int) error {
	_, err := fmt.Fprintf(w, "topological order:\n%s\n", Chain(order))
	return err
}

// WriteCritical prints the completion time, each critical activity, and one
// critical path.
func WriteCritical(w io.Writer, res *critical.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "completion time: %d\n", res.CompletionTime)
	if len(res.Critical) == 0 {
		b.WriteString("no critical activities\n")
	} else {
		b.WriteString("critical activities:\n")
		for _, a := range res.Critical {
			fmt.Fprintf(&b, "  %s\n", Activity(a))
		}
		fmt.Fprintf(&b, "critical path: %s\n", Chain(res.CriticalPath()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteWeightTable prints edges as a Source/Target/Weight table, sorted by
// source then target. Callers pass core.Graph.Edges(), which is already sorted.
func WriteWeightTable(w io.Writer, edges []core.Edge) error {
	if len(edges) == 0 {
		_, err := io.WriteString(w, "no positive-weight edges in the current graph\n")
		return err
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Source", "Target", "Weight"})
	for _, e := range edges {
		t.AppendRow(table.Row{e.From, e.To, e.Weight})
	}
	t.AppendFooter(table.Row{"", "Edges", len(edges)})
	t.Render()
	return nil
}

// WriteCacheTable prints every cached pair, including the ones whose weight
// suppressed an edge.
func WriteCacheTable(w io.Writer, entries []weights.Entry) error {
	if len(entries) == 0 {
		_, err := io.WriteString(w, "weight cache is empty\n")
		return err
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Source", "Target", "Weight", "Edge"})
	for _, e := range entries {
		edge := "yes"
		if e.Weight <= 0 {
			edge = "no"
		}
		t.AppendRow(table.Row{e.From, e.To, e.Weight, edge})
	}
	t.Render()
	return nil
}

// WriteRooms prints the room inventory.
func WriteRooms(w io.Writer, rooms []room.Room) error {
	if len(rooms) == 0 {
		_, err := io.WriteString(w, "no rooms\n")
		return err
	}
	t := newTable(w)
	t.AppendHeader(table.Row{"Room", "Floor", "Category", "Area"})
	for _, r := range rooms {
		t.AppendRow(table.Row{r.ID, r.Floor(), r.Category, fmt.Sprintf("%.2f", r.Area)})
	}
	t.Render()
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}
