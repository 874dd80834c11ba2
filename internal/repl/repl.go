package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Vec-io/RAGs.FYI/internal/engine"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/render"
)

const helpText = `Commands:
  show                          render the current view
  filter <column> <kind> <value> stage a filter (kinds: equals, not_equals, contains, not_contains, =, !=, ~, !~)
  unfilter <column>             stage removal of a column's filter
  clear                         stage removal of all filters
  draft                         list staged and active filters
  apply                         commit staged filters and render
  discard                       drop staged filters
  sort <column>                 sort by column (again to flip direction)
  cols <k1,k2,...|all>          set visible columns
  toggle <column>               show or hide one column
  search [query]                list columns matching query
  reset                         restore the initial view
  help                          show this text
  exit | \q                     quit
`

var errQuit = errors.New("quit")

// Start reads commands from in until EOF or exit, writing output to out
func Start(in io.Reader, out io.Writer, session *engine.Session) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to ragstable")
	fmt.Fprintln(out, "Type 'help' for commands, 'exit' or '\\q' to quit.")

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		err := Execute(out, session, line)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

// Execute runs a single command line against session
func Execute(out io.Writer, session *engine.Session, line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	table := session.View

	switch strings.ToLower(cmd) {
	case "exit", "quit", "\\q":
		return errQuit

	case "help", "?":
		_, err := io.WriteString(out, helpText)
		return err

	case "show", "ls":
		return render.Table(out, table(), session.State().Sort)

	case "filter", "f":
		column, args, _ := strings.Cut(rest, " ")
		kindStr, value, _ := strings.Cut(strings.TrimSpace(args), " ")
		if column == "" || kindStr == "" {
			return fmt.Errorf("usage: filter <column> <kind> <value>")
		}
		kind, err := filter.ParseKind(kindStr)
		if err != nil {
			return err
		}
		value = strings.TrimSpace(value)
		if err := session.SetFilter(column, kind, value); err != nil {
			return err
		}
		fmt.Fprintf(out, "staged: %s %s %q (type 'apply' to commit)\n", column, kind, value)
		return nil

	case "unfilter":
		if rest == "" {
			return fmt.Errorf("usage: unfilter <column>")
		}
		if err := session.RemoveFilter(rest); err != nil {
			return err
		}
		fmt.Fprintf(out, "staged: remove filter on %s\n", rest)
		return nil

	case "clear":
		session.ClearFilters()
		fmt.Fprintln(out, "staged: remove all filters")
		return nil

	case "draft":
		state := session.State()
		if state.Editing() {
			if err := render.Filters(out, "Staged", *state.Draft); err != nil {
				return err
			}
		}
		return render.Filters(out, "Active", state.Active)

	case "apply", "commit":
		result := session.CommitFilters()
		return render.Table(out, result, session.State().Sort)

	case "discard":
		session.DiscardDraft()
		fmt.Fprintln(out, "staged filters discarded")
		return nil

	case "sort":
		if rest == "" {
			return fmt.Errorf("usage: sort <column>")
		}
		if err := session.SetSort(rest); err != nil {
			return err
		}
		return render.Table(out, table(), session.State().Sort)

	case "cols", "columns":
		if rest == "" {
			return fmt.Errorf("usage: cols <k1,k2,...|all>")
		}
		if strings.EqualFold(rest, "all") {
			session.ShowAllColumns()
		} else if err := session.SetColumnSelection(splitKeys(rest)); err != nil {
			return err
		}
		return render.Table(out, table(), session.State().Sort)

	case "toggle":
		if rest == "" {
			return fmt.Errorf("usage: toggle <column>")
		}
		if err := session.ToggleColumn(rest); err != nil {
			return err
		}
		return render.Table(out, table(), session.State().Sort)

	case "search":
		matches := projection.SearchColumns(session.Columns(), rest)
		if len(matches) == 0 {
			fmt.Fprintln(out, "no matching columns")
			return nil
		}
		return render.Columns(out, matches, session.State().Selection)

	case "reset":
		session.Reset()
		return render.Table(out, table(), session.State().Sort)

	default:
		return fmt.Errorf("unknown command %q (type 'help')", cmd)
	}
}

func splitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
