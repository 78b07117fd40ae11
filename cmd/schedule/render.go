package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"service-schedule/internal/domain"
	"service-schedule/internal/schedule"
)

func renderBoard(w io.Writer, board domain.Board) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", strings.ToUpper(board.Day), board.Clock)

	switch {
	case board.CurrentClass != nil:
		fmt.Fprintf(&b, "ACTIVE CLASS: %s\n", board.CurrentClass.CourseName)
		fmt.Fprintf(&b, "ROOM: %s | ENDS: %s\n", board.CurrentClass.Location, schedule.ClockLabel(board.CurrentClass.EndTime))
		if board.NextClass != nil {
			fmt.Fprintf(&b, "UP NEXT: %s at %s (%s)\n",
				board.NextClass.CourseName,
				schedule.ClockLabel(board.NextClass.StartTime),
				board.Countdown,
			)
		}
	case board.NextClass != nil:
		fmt.Fprintf(&b, "NEXT CLASS: %s\n", board.NextClass.CourseName)
		fmt.Fprintf(&b, "START AT: %s (%s)\n", schedule.ClockLabel(board.NextClass.StartTime), board.Countdown)
	default:
		b.WriteString("NO ACTIVE CLASSES\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderList(w io.Writer, entries []domain.EntryView) error {
	if len(entries) == 0 {
		_, err := io.WriteString(w, "no schedule entries found\n")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DAY\tTIME\tCOURSE\tINSTRUCTOR\tROOM\t")
	for _, e := range entries {
		marker := ""
		if e.Active {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s-%s\t%s\t%s\t%s\t%s\n",
			strings.ToUpper(e.Day),
			schedule.ClockLabel(e.StartTime),
			schedule.ClockLabel(e.EndTime),
			e.CourseName,
			e.Instructor,
			e.Location,
			marker,
		)
	}
	return tw.Flush()
}
