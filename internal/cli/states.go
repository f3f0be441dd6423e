package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/statable/internal/anim"
	"github.com/rileyhilliard/statable/internal/config"
	"github.com/rileyhilliard/statable/internal/ui"
)

// stateInfo is the JSON form of a state.
type stateInfo struct {
	ID     string `json:"id"`
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

// transition is one cell of the controller's table.
type transition struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action"`
}

var stateDescriptions = map[anim.State]string{
	anim.Spinning: "loop a full sweep from the current angle",
	anim.Paused:   "freeze at the in-flight angle",
	anim.Stopped:  "reset to the rest angle",
}

func statesCommand(w io.Writer, transitions bool) error {
	if transitions {
		return printTransitions(w, transitionTable(currentConfig()))
	}

	if machineMode {
		infos := make([]stateInfo, 0, len(anim.States()))
		for i, s := range anim.States() {
			infos = append(infos, stateInfo{ID: s.ID(), Index: i, Symbol: ui.StateSymbol(s.String())})
		}
		return WriteJSONSuccess(w, infos)
	}

	muted := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	for _, s := range anim.States() {
		style := lipgloss.NewStyle().Foreground(ui.StateColor(s.String()))
		fmt.Fprintf(w, "%s %-8s %s\n",
			style.Render(ui.StateSymbol(s.String())),
			s,
			muted.Render(stateDescriptions[s]))
	}
	return nil
}

// commandLog is an anim.Animator that describes the commands it receives.
type commandLog struct {
	last string
}

func (c *commandLog) Set(v float64) {
	c.last = fmt.Sprintf("set %.0f", v)
}

func (c *commandLog) Animate(to float64, d time.Duration, loop bool) {
	c.last = fmt.Sprintf("animate to %.0f over %s", to, d)
	if loop {
		c.last += ", looping"
	}
}

func (c *commandLog) Cancel() float64 {
	c.last = "cancel (freeze)"
	return 0
}

// transitionTable runs every previous/next pair through a real controller
// configured like the loader, recording the command each one issues.
func transitionTable(c *config.Config) []transition {
	l := c.Loader
	var rows []transition
	for _, from := range anim.States() {
		for _, to := range anim.States() {
			rec := &commandLog{last: "none"}
			ctrl := anim.NewController(rec, anim.ControllerConfig{
				End:   l.Start + l.Sweep,
				Stop:  l.Stop,
				Cycle: l.Cycle,
			})
			ctrl.Sync(from)
			ctrl.Transition(to)
			rows = append(rows, transition{From: from.String(), To: to.String(), Action: rec.last})
		}
	}
	return rows
}

func printTransitions(w io.Writer, rows []transition) error {
	if machineMode {
		return WriteJSONSuccess(w, rows)
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.From, r.To, r.Action}
	}
	_, err := fmt.Fprintln(w, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "FROM", Width: 10},
		{Title: "TO", Width: 10},
		{Title: "ACTION", Width: 34},
	}, cells))
	return err
}
