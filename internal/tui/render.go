package tui

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

const timestampLayout = "2006-01-02 15:04"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timestampLayout)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (s *Shell) renderFile(f domain.File) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "  ID:              %s\n", f.ID)
	fmt.Fprintf(s.out, "  Title:           %s\n", f.Title)
	fmt.Fprintf(s.out, "  Status:          %s\n", f.Status)
	fmt.Fprintf(s.out, "  Current officer: %s\n", f.CurrentOfficer)
	fmt.Fprintf(s.out, "  Course code:     %s\n", orDash(f.CourseCode))
	fmt.Fprintf(s.out, "  Exam session:    %s\n", orDash(f.ExamSession))
	fmt.Fprintf(s.out, "  Created by:      %s\n", orDash(f.CreatedBy))
	fmt.Fprintf(s.out, "  Last change:     %s\n", formatTime(f.Timestamp))
}

func (s *Shell) renderFileTable(files []domain.File) {
	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tOFFICER\tCOURSE\tSESSION")
	for _, f := range files {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.Title, f.Status, f.CurrentOfficer, orDash(f.CourseCode), orDash(f.ExamSession))
	}
	w.Flush()
}

func (s *Shell) renderAuditTable(logs []domain.AuditLog) {
	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tACTION\tUSER\tDETAILS")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", formatTime(l.Timestamp), l.Action, l.UserID, orDash(l.Details))
	}
	w.Flush()
}
