package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/mkpdf/pkg/app"
	"github.com/kerbaras/mkpdf/pkg/app/components"
	"github.com/kerbaras/mkpdf/pkg/data"
	"github.com/kerbaras/mkpdf/pkg/pdf"
	"github.com/kerbaras/mkpdf/pkg/services"
	"github.com/kerbaras/mkpdf/pkg/walker"
)

var qualityDPI = map[string]int{
	"low":    150,
	"medium": 300,
	"high":   600,
}

var rootCmd = &cobra.Command{
	Use:   "mkpdf [folder]",
	Short: "Merge folders of PDFs and images into a single structured PDF",
	Long: `Merge PDF and image files found in a folder tree into one output PDF,
deriving the bookmark outline from the folder hierarchy.

Folder conventions (dot-files):
  .title   Custom name for this folder in the PDF outline (plain text)
  .ignore  Empty: skip this folder entirely. Otherwise: skip the listed entries
  .order   Filenames or subfolders in custom order, one per line
  .label   Label overrides for files (filename = Label)
  .dpi     DPI override for this folder's images (e.g. 150 or 300)`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runMerge(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().StringP("output", "o", "output.pdf", "Output PDF file")
	rootCmd.Flags().StringArrayP("include", "i", nil, "Include paths matching a regular expression (can repeat)")
	rootCmd.Flags().StringArrayP("exclude", "x", nil, "Exclude paths matching a regular expression (can repeat)")
	rootCmd.Flags().String("page", "letter", "Image page size: letter, a4 or none")
	rootCmd.Flags().StringP("quality", "q", "", "Image quality: low, medium or high")
	rootCmd.Flags().Int("dpi", 0, "Image DPI resolution (overrides --quality)")
	rootCmd.Flags().BoolP("pretty", "p", false, "Replace underscores and capitalize labels")
	rootCmd.Flags().Bool("dry-run", false, "Show what would be merged without creating output")
	rootCmd.Flags().Bool("interactive", false, "Browse the merge plan in a TUI instead of merging")
	rootCmd.Flags().String("log", "", "Save output messages to this file")
	rootCmd.Flags().StringP("title", "t", "", "Set the PDF title")
	rootCmd.Flags().StringP("author", "a", "", "Set the PDF author")
	rootCmd.Flags().StringP("subject", "s", "", "Set the PDF subject")
	rootCmd.Flags().StringP("keywords", "k", "", "Set the PDF keywords (comma-separated)")

	rootCmd.AddCommand(versionCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMerge(cmd *cobra.Command, root string) {
	logPath, _ := cmd.Flags().GetString("log")
	console, err := newConsole(logPath)
	cobra.CheckErr(err)
	defer console.Close()

	page, _ := cmd.Flags().GetString("page")
	if page != "letter" && page != "a4" && page != "none" {
		cobra.CheckErr(fmt.Errorf("invalid --page value %q (use letter, a4 or none)", page))
	}

	includes, err := compileFilters(cmd, "include")
	cobra.CheckErr(err)
	excludes, err := compileFilters(cmd, "exclude")
	cobra.CheckErr(err)

	pretty, _ := cmd.Flags().GetBool("pretty")
	plan, err := walker.Walk(root, walker.Options{
		Include: includes,
		Exclude: excludes,
		Pretty:  pretty,
		Warn:    console.Warnf,
	})
	cobra.CheckErr(err)

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		cobra.CheckErr(app.NewApp(plan).Run())
		return
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		console.Infof("Dry run mode. The following files would be merged:")
		printPlan(plan)
		return
	}

	composer := services.NewComposer(services.Options{
		Output:     outputPath(cmd),
		PageFormat: page,
		DPI:        resolveDPI(cmd),
		Metadata:   metadataFrom(cmd),
		Warn:       console.Warnf,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		tracker := components.NewMergeTracker(34)
		for progress := range composer.Progress() {
			tracker.Update(progress)
			if console.styled && tracker.Active() && progress.Total > 0 {
				fmt.Printf("\r  %s %s (%d/%d)   ",
					components.SimpleProgress(progress.Current, progress.Total, 30),
					progress.Stage, progress.Current, progress.Total)
			}
		}
		if console.styled {
			fmt.Print("\r\033[K")
		}
	}()

	out, err := composer.Compose(plan)
	<-done
	cobra.CheckErr(err)

	console.Successf("PDF successfully written to: %s", out)
}

func compileFilters(cmd *cobra.Command, name string) ([]*regexp.Regexp, error) {
	patterns, _ := cmd.Flags().GetStringArray(name)
	var filters []*regexp.Regexp
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s pattern %q: %w", name, pattern, err)
		}
		filters = append(filters, re)
	}
	return filters, nil
}

func resolveDPI(cmd *cobra.Command) int {
	if dpi, _ := cmd.Flags().GetInt("dpi"); dpi > 0 {
		return dpi
	}
	quality, _ := cmd.Flags().GetString("quality")
	if dpi, ok := qualityDPI[quality]; ok {
		return dpi
	}
	return qualityDPI["low"]
}

func outputPath(cmd *cobra.Command) string {
	output, _ := cmd.Flags().GetString("output")
	return output
}

func metadataFrom(cmd *cobra.Command) pdf.Metadata {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	subject, _ := cmd.Flags().GetString("subject")
	keywords, _ := cmd.Flags().GetString("keywords")

	return pdf.Metadata{
		Title:    title,
		Author:   author,
		Subject:  subject,
		Keywords: keywords,
		Creator:  fmt.Sprintf("mkpdf %s", Version),
	}
}

// printPlan renders the merge plan as a table, one row per source file.
func printPlan(plan *data.Plan) {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Type", Width: 6},
		{Title: "Label", Width: 30},
		{Title: "Path", Width: 50},
	}

	var rows []table.Row
	for i, e := range plan.Files() {
		rel, err := filepath.Rel(plan.Root, e.Path)
		if err != nil {
			rel = e.Path
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			string(e.Type),
			truncateString(e.Label, 28),
			truncateString(rel, 48),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	fmt.Println(t.View())
	fmt.Printf("\n%d files in %s\n", len(rows), plan.Root)
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
