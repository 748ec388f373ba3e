package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttviz/internal/domain"
)

// FormatRunList renders archived runs as a styled table inside a bordered box.
func FormatRunList(runs []*domain.Run) string {
	if len(runs) == 0 {
		return RenderBox("Runs", Dim("No archived runs"))
	}

	headers := []string{"ID", "TITLE", "SOURCE", "TASKS", "MAKESPAN", "COST", "CREATED"}
	rows := make([][]string, 0, len(runs))

	for _, r := range runs {
		title := r.Title
		if strings.TrimSpace(title) == "" {
			title = Dim("--")
		} else {
			title = Bold(title)
		}

		rows = append(rows, []string{
			TruncID(r.ID),
			title,
			SourceBadge(r.Source),
			fmt.Sprintf("%d", r.TaskCount),
			fmt.Sprintf("%g", r.Makespan),
			fmt.Sprintf("%g", r.PriorityCost),
			Dim(HumanTimestamp(r.CreatedAt)),
		})
	}

	return RenderBox("Runs", RenderTable(headers, rows))
}

// FormatRunDetail renders a single run's metadata card.
func FormatRunDetail(r *domain.Run) string {
	var b strings.Builder

	title := r.Title
	if strings.TrimSpace(title) == "" {
		title = "(untitled)"
	}
	b.WriteString(StyleBold.Render(title) + "\n")
	b.WriteString(SourceBadge(r.Source) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID      "), Dim(r.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("TASKS   "), StyleFg.Render(fmt.Sprintf("%d", r.TaskCount))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("MAKESPAN"), StyleFg.Render(fmt.Sprintf("%g", r.Makespan))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COST    "), StyleFg.Render(fmt.Sprintf("%g", r.PriorityCost))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED "), StyleFg.Render(HumanDate(r.CreatedAt))))

	return RenderBox("", b.String())
}
