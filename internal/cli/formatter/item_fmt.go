package formatter

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/jobtrack/internal/domain"
)

// FormatPhaseList renders phases in order with their cached start dates.
func FormatPhaseList(phases []*domain.Phase) string {
	headers := []string{"#", "ID", "TITLE", "START"}
	rows := make([][]string, 0, len(phases))
	for i, p := range phases {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			TruncID(p.ID),
			Bold(p.Title),
			FormatDate(p.StartDate),
		})
	}
	return RenderTableAligned(headers, rows, 0)
}

// FormatTaskList renders tasks with start, duration and end dates. Due
// coloring is relative to today.
func FormatTaskList(tasks []*domain.Task, today time.Time, windowDays int) string {
	headers := []string{"ID", "TITLE", "START", "DAYS", "END", "STATUS"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		end := FormatDate(t.EndDate())
		if !t.IsComplete() {
			end = DueStyled(t.EndDate(), today, windowDays)
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Title,
			FormatDate(t.StartDate),
			strconv.Itoa(t.Duration),
			end,
			ItemStatusPill(t.Status),
		})
	}
	return RenderTableAligned(headers, rows, 3)
}

// FormatMaterialList renders materials with due dates colored by urgency.
func FormatMaterialList(materials []*domain.Material, today time.Time, windowDays int) string {
	headers := []string{"ID", "TITLE", "DUE", "STATUS"}
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		due := FormatDate(m.DueDate)
		if !m.IsComplete() {
			due = DueStyled(m.DueDate, today, windowDays)
		}
		rows = append(rows, []string{
			TruncID(m.ID),
			m.Title,
			due,
			ItemStatusPill(m.Status),
		})
	}
	return RenderTable(headers, rows)
}

// FormatNoteList renders notes oldest first. authors maps user IDs to names;
// notes without a known author show "--".
func FormatNoteList(notes []*domain.Note, authors map[string]string) string {
	var b strings.Builder
	for _, n := range notes {
		author := authors[n.AuthorID]
		if author == "" {
			author = "--"
		}
		b.WriteString(Dim(n.CreatedAt.Format("2006-01-02 15:04")) + "  " + StylePurple.Render(author) + "\n")
		b.WriteString("  " + n.Content + "\n")
	}
	return b.String()
}

// FormatUserList renders users as a table.
func FormatUserList(users []*domain.User) string {
	headers := []string{"ID", "NAME", "TYPE", "PHONE", "EMAIL"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			TruncID(u.ID),
			Bold(u.Name),
			StylePurple.Render(string(u.Type)),
			orDash(u.Phone),
			orDash(u.Email),
		})
	}
	return RenderTable(headers, rows)
}

// FormatUser renders a single user with their open assignments.
func FormatUser(u *domain.User, tasks []*domain.Task, materials []*domain.Material) string {
	var b strings.Builder
	b.WriteString(Header(u.Name) + "\n")
	b.WriteString(Dim("ID") + " " + u.ID + "   " + StylePurple.Render(string(u.Type)) + "\n")
	if u.Phone != "" {
		b.WriteString(Dim("Phone") + " " + u.Phone + "\n")
	}
	if u.Email != "" {
		b.WriteString(Dim("Email") + " " + u.Email + "\n")
	}
	b.WriteString("\n")
	b.WriteString(Bold("Assigned tasks") + " " + Dim(strconv.Itoa(len(tasks))) + "\n")
	for _, t := range tasks {
		b.WriteString("  " + TruncID(t.ID) + " " + t.Title + "  " + Dim(FormatDate(t.EndDate())) + "\n")
	}
	b.WriteString(Bold("Assigned materials") + " " + Dim(strconv.Itoa(len(materials))) + "\n")
	for _, m := range materials {
		b.WriteString("  " + TruncID(m.ID) + " " + m.Title + "  " + Dim(FormatDate(m.DueDate)) + "\n")
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}
