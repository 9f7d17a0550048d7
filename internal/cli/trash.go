package cli

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jimschubert/answer/confirm"
	"github.com/k1LoW/duration"
	"github.com/olekukonko/tablewriter"
)

// ListTrash prints the holding-area contents as a table, newest first.
func (c CLI) ListTrash() error {
	entries, err := c.storage.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Holding area is empty.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Deleted At", "Name", "Size", "Original Path"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, entry := range entries {
		size := humanize.Bytes(uint64(entry.Size))
		if entry.IsDir {
			size = "-"
		}
		table.Append([]string{
			entry.DeletedAt.Format("2006-01-02 15:04:05"),
			entry.Name,
			size,
			entry.OriginalPath,
		})
	}
	table.Render()

	fmt.Printf("\n%d item(s) in %s\n", len(entries), c.storage.Root())
	return nil
}

// Prune permanently removes held entries older than the given age.
func (c CLI) Prune(arg string) error {
	slog.Debug("pruning holding area started", "age", arg)
	defer slog.Debug("pruning holding area finished")

	age, err := duration.Parse(arg)
	if err != nil {
		return fmt.Errorf("invalid age %q: %w", arg, err)
	}

	if !ask(fmt.Sprintf("Permanently remove entries older than %s?", arg)) {
		fmt.Println("Pruning canceled.")
		return nil
	}

	pruned, err := c.storage.PruneOlderThan(age)
	if err != nil {
		return err
	}

	if len(pruned) == 0 {
		fmt.Println("Nothing to prune.")
		return nil
	}

	green := color.New(color.FgHiGreen).SprintfFunc()
	fmt.Println(green("Removed %d item(s):", len(pruned)))
	for _, entry := range pruned {
		fmt.Printf("  %s (deleted %s)\n",
			entry.Name,
			humanize.Time(entry.DeletedAt),
		)
	}
	return nil
}

// autoPrune applies the configured retention at startup. Failures only log;
// an unprunable holding area must not block the browser.
func (c CLI) autoPrune() {
	retention := c.config.Core.Trash.Retention
	if retention == "" {
		return
	}
	age, err := duration.Parse(retention)
	if err != nil {
		slog.Warn("invalid trash retention, skipping auto-prune", "retention", retention, "error", err)
		return
	}
	pruned, err := c.storage.PruneOlderThan(age)
	if err != nil {
		slog.Warn("auto-prune failed", "error", err)
		return
	}
	if len(pruned) > 0 {
		slog.Info("pruned expired holding-area entries", "count", len(pruned), "retention", retention)
	}
}

func ask(prompt string) bool {
	m := confirm.New()
	m.Prompt = prompt
	m.DefaultValue = confirm.Denied

	p := tea.NewProgram(&m)
	if _, err := p.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false
	}

	return m.IsAccepted()
}
