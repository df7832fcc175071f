package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/rshade/endpointview/internal/config"
	"github.com/rshade/endpointview/internal/pagination"
	"github.com/rshade/endpointview/internal/record"
	"github.com/rshade/endpointview/internal/tui"
)

// ErrWatchStdin is returned when --watch is combined with records read from stdin.
var ErrWatchStdin = errors.New("--watch cannot be used when reading records from stdin")

// ShowFlags holds the flags of the show command.
type ShowFlags struct {
	Files         []string
	Output        string
	Plain         bool
	NoColor       bool
	NoInteractive bool
	Watch         bool
	Params        pagination.Params
}

// NewShowCmd creates the show command that renders records as a table.
func NewShowCmd() *cobra.Command {
	var flags ShowFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show endpoint records as a filterable, paginated table",
		Long: `Loads endpoint records from one or more JSON or YAML files and renders them
as a table filtered by name and split into pages.

On a terminal the table is interactive: type "/" to filter, use the arrow keys
to change page and press q to quit. When output is redirected, or with
--no-interactive, a single page is printed.`,
		Example: `  endpointview show -f endpoints.json
  endpointview show -f endpoints.yaml --filter order --page 2 --page-size 10 --no-interactive
  endpointview show -f endpoints.json --sort service:desc --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.Files, "file", "f", nil, "record file (JSON or YAML); repeatable, '-' reads stdin")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output format: table, json, yaml (default from config)")
	cmd.Flags().StringVar(&flags.Params.Filter, "filter", "", "show only records whose name contains this text (case-insensitive)")
	cmd.Flags().IntVar(&flags.Params.Page, "page", 0, "1-based page to show")
	cmd.Flags().IntVar(&flags.Params.PageSize, "page-size", 0, "rows per page (default from config)")
	cmd.Flags().StringVar(&flags.Params.Sort, "sort", "",
		"sort as field[:asc|desc]; fields: "+strings.Join(pagination.ValidSortFields(), ", "))
	cmd.Flags().BoolVar(&flags.Plain, "plain", false, "print plain text without styling")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "disable colours")
	cmd.Flags().BoolVar(&flags.NoInteractive, "no-interactive", false, "print one page instead of starting the interactive view")
	cmd.Flags().BoolVar(&flags.Watch, "watch", false, "reload the interactive view when record files change")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runShow(cmd *cobra.Command, flags ShowFlags) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	if err := flags.Params.Validate(); err != nil {
		return err
	}
	if flags.Watch && slices.Contains(flags.Files, record.StdinPath) {
		return ErrWatchStdin
	}

	format := strings.ToLower(flags.Output)
	if format == "" {
		format = strings.ToLower(cfg.Output.Format)
	}
	if !isValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	records, err := record.Loader{Stdin: cmd.InOrStdin()}.Load(ctx, flags.Files...)
	if err != nil {
		return err
	}
	records, err = pagination.ApplySort(records, flags.Params.Sort)
	if err != nil {
		return err
	}

	pageSize := flags.Params.EffectivePageSize(cfg.Output.PageSize)
	page := flags.Params.PageIndex()
	logger.Debug().Ctx(ctx).
		Int("records", len(records)).
		Str("filter", flags.Params.Filter).
		Int("page", page).
		Int("page_size", pageSize).
		Str("format", format).
		Msg("rendering table")

	if format == config.FormatJSON || format == config.FormatYAML {
		tbl := newTable(records, pageSize, flags.Params.Filter, page)
		return RenderStructured(cmd.OutOrStdout(), format, tbl)
	}

	out := cmd.OutOrStdout()
	mode := tui.DetectOutputMode(isTerminalWriter(out), tui.ModeOptions{
		Plain:         flags.Plain,
		NoColor:       flags.NoColor || !cfg.Output.Color,
		NoInteractive: flags.NoInteractive,
	})

	if flags.Watch && mode != tui.OutputModeInteractive {
		logger.Warn().Ctx(ctx).Msg("--watch only applies to the interactive view; ignoring")
	}

	switch mode {
	case tui.OutputModeInteractive:
		m := tui.NewTableModel(ctx, records, pageSize)
		m.SetFilter(flags.Params.Filter)
		m.SetPage(page)
		return runInteractiveTUI(ctx, cmd, m, flags)
	case tui.OutputModeStyled:
		tbl := newTable(records, pageSize, flags.Params.Filter, page)
		_, err = fmt.Fprint(out, tui.StyledRenderer{Width: tui.TerminalWidth()}.Render(tbl.Snapshot()))
		return err
	default:
		tbl := newTable(records, pageSize, flags.Params.Filter, page)
		_, err = fmt.Fprint(out, tui.PlainRenderer{}.Render(tbl.Snapshot()))
		return err
	}
}

// newTable builds a table with the filter applied before the page, since
// setting a filter resets the page.
func newTable(records []*record.Record, pageSize int, filter string, page int) *pagination.Table[*record.Record] {
	tbl := pagination.NewTable(records, pageSize)
	tbl.SetFilter(filter)
	tbl.SetPage(page)
	return tbl
}

func runInteractiveTUI(ctx context.Context, cmd *cobra.Command, m *tui.TableModel, flags ShowFlags) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if flags.Watch {
		w, err := record.NewWatcher(flags.Files, reloadFunc(flags))
		if err != nil {
			return err
		}
		m.WithReloads(w.Results())
		g.Go(func() error { return w.Run(gctx) })
	}

	opts := []tea.ProgramOption{tea.WithContext(gctx), tea.WithOutput(cmd.OutOrStdout())}
	if slices.Contains(flags.Files, record.StdinPath) {
		// Stdin carried the records, so keys have to come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}

	g.Go(func() error {
		defer cancel()
		if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
			return fmt.Errorf("failed to run interactive TUI: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// reloadFunc re-reads and re-sorts the record files.
func reloadFunc(flags ShowFlags) record.ReloadFunc {
	return func(ctx context.Context) ([]*record.Record, error) {
		records, err := record.Loader{}.Load(ctx, flags.Files...)
		if err != nil {
			return nil, err
		}
		return pagination.ApplySort(records, flags.Params.Sort)
	}
}

// isTerminalWriter reports whether w is a terminal.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isValidOutputFormat checks if the provided format is one of the supported output formats.
func isValidOutputFormat(format string) bool {
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
		return true
	default:
		return false
	}
}
