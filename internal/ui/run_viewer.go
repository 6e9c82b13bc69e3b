package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"caselists/internal/domain"
	"caselists/internal/parser"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rotisserie/eris"
)

// previewLimit caps how many case names the details pane shows
const previewLimit = 200

// RunViewer displays the results of a generate run in an interactive TUI
type RunViewer struct {
	parser parser.Parser
}

// NewRunViewer creates a new RunViewer
func NewRunViewer(p parser.Parser) *RunViewer {
	return &RunViewer{parser: p}
}

// View displays the run results in an interactive TUI
func (rv *RunViewer) View(manifest *domain.RunManifest) error {
	if manifest == nil || len(manifest.Results) == 0 {
		color.Yellow("No case list results recorded")
		return nil
	}

	app := tview.NewApplication()
	results := manifest.Results

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range results {
		list.AddItem(rv.listItemText(results[i], i), "", 0, nil)
	}

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	statsView.SetBorder(true).SetTitle(" Result ")

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Cases ")

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 9, 0, false).
		AddItem(detailsView, 0, 1, false)

	// list on left (1/3), details on right (2/3)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Run %s: %d case lists, [green]%d ok[white], [red]%d failed[white] | ↑↓ navigate, → details, ← back, Ctrl+C exit ",
			manifest.Meta.RunID, manifest.Meta.Total, manifest.Meta.Succeeded, manifest.Meta.Failed))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results) {
			return
		}
		statsView.SetText(rv.formatResultStats(results[index]))
		detailsView.SetText(rv.formatCasePreview(results[index]))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return eris.Wrap(err, "failed to run TUI")
	}
	return nil
}

func (rv *RunViewer) listItemText(r domain.GenerationResult, index int) string {
	if r.Success {
		return fmt.Sprintf("[green]✓[white] [yellow]%d.[white] %s [gray](%s)[white]", index+1, tview.Escape(r.Module), r.Type)
	}
	return fmt.Sprintf("[red]✗[white] [yellow]%d.[white] %s [gray](%s)[white]", index+1, tview.Escape(r.Module), r.Type)
}

// formatResultStats formats the header pane using tview color tags
func (rv *RunViewer) formatResultStats(r domain.GenerationResult) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	status := "[green]generated[white]"
	if !r.Success {
		status = "[red]failed[white]"
	}
	fmt.Fprintf(w, "[cyan]Module:[white]\t%s (%s)\n", tview.Escape(r.Module), tview.Escape(r.API))
	fmt.Fprintf(w, "[cyan]Status:[white]\t%s\n", status)
	fmt.Fprintf(w, "[cyan]Source:[white]\t%s\n", tview.Escape(r.SourcePath))
	if r.DestPath != "" {
		fmt.Fprintf(w, "[cyan]Copied to:[white]\t%s\n", tview.Escape(r.DestPath))
		fmt.Fprintf(w, "[cyan]Size:[white]\t%s, %d cases\n", humanBytes(r.Bytes), r.Cases)
		fmt.Fprintf(w, "[cyan]SHA-256:[white]\t%s\n", r.SHA256)
	}
	fmt.Fprintf(w, "[cyan]Duration:[white]\t%.2fs\n", r.DurationSeconds)

	w.Flush()
	return builder.String()
}

// formatCasePreview lists the first cases of the copied file, or the error of a failed result
func (rv *RunViewer) formatCasePreview(r domain.GenerationResult) string {
	if !r.Success {
		return fmt.Sprintf("[red]✗ %s[white]\n", tview.Escape(r.Error))
	}
	if rv.parser == nil {
		return ""
	}

	cases, err := rv.parser.ReadCases(r.DestPath, r.Type)
	if err != nil {
		return fmt.Sprintf("[yellow]Could not read %s:[white]\n%s\n", tview.Escape(r.DestPath), tview.Escape(err.Error()))
	}
	if len(cases) == 0 {
		return "[gray](no test cases)[white]\n"
	}

	var builder strings.Builder
	for i, name := range cases {
		if i == previewLimit {
			fmt.Fprintf(&builder, "[gray]... and %d more cases[white]\n", len(cases)-previewLimit)
			break
		}
		builder.WriteString(tview.Escape(name))
		builder.WriteString("\n")
	}
	return builder.String()
}
