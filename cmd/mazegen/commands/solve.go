// SPDX-License-Identifier: MIT
package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmaze/dijkstra"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
)

// solveReport is the YAML document printed by solve.
type solveReport struct {
	carveReport `yaml:",inline"`
	Queue       string   `yaml:"queue"`
	Status      string   `yaml:"status"`
	Length      int      `yaml:"length"`
	Path        [][2]int `yaml:"path,flow"`
}

func newSolveCommand(a *app) *cobra.Command {
	var (
		from, to []int
		longest  bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Carve a maze and print the route between two rooms",
		Long: `Carve a maze with the same settings as "carve", then find the shortest
route between --from and --to (default: top-left to bottom-right corner).
With --longest the route is the longest one in the maze instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := a.room("from", from, gridgraph.Room{})
			if err != nil {
				return err
			}
			end, err := a.room("to", to, gridgraph.Room{X: a.cfg.Width - 1, Y: a.cfg.Height - 1})
			if err != nil {
				return err
			}

			m, err := a.carve()
			if err != nil {
				return err
			}
			if longest {
				route, err := m.LongestRoute()
				if err != nil {
					return err
				}
				start, end = route[0], route[len(route)-1]
			}
			sp := m.Solve(start, end, dijkstra.WithQueue[gridgraph.Room](a.cfg.Queue))
			if !sp.Exists() {
				return sp.Err()
			}
			a.logger.Info("maze solved",
				zap.Stringer("from", start),
				zap.Stringer("to", end),
				zap.Int("length", len(sp.Edges())))

			return a.printSolve(cmd.OutOrStdout(), m, sp)
		},
	}
	cmd.Flags().IntSliceVar(&from, "from", nil, "start room as x,y (default 0,0)")
	cmd.Flags().IntSliceVar(&to, "to", nil, "end room as x,y (default bottom-right)")
	cmd.Flags().BoolVar(&longest, "longest", false, "solve between the two rooms farthest apart")
	cmd.MarkFlagsMutuallyExclusive("longest", "from")
	cmd.MarkFlagsMutuallyExclusive("longest", "to")

	return cmd
}

// room parses an x,y flag value, falling back to def when unset.
func (a *app) room(name string, xy []int, def gridgraph.Room) (gridgraph.Room, error) {
	if len(xy) == 0 {
		return def, nil
	}
	if len(xy) != 2 {
		return gridgraph.Room{}, fmt.Errorf("%w: --%s wants x,y, got %v", ErrBadConfig, name, xy)
	}
	r := gridgraph.Room{X: xy[0], Y: xy[1]}
	if r.X < 0 || r.X >= a.cfg.Width || r.Y < 0 || r.Y >= a.cfg.Height {
		return gridgraph.Room{}, fmt.Errorf("%w: --%s %v outside %dx%d", ErrBadConfig, name, r, a.cfg.Width, a.cfg.Height)
	}

	return r, nil
}

func (a *app) printSolve(w io.Writer, m *maze.Maze, sp dijkstra.ShortestPath[gridgraph.Room, maze.Passage]) error {
	path := sp.Vertices()
	var drawing bytes.Buffer
	if err := m.Render(&drawing, path); err != nil {
		return err
	}
	if a.cfg.Format == FormatText {
		_, err := fmt.Fprintf(w, "%s%slength: %d\n", a.header(), drawing.String(), len(sp.Edges()))
		return err
	}

	report := solveReport{
		carveReport: carveReport{
			Width:   a.cfg.Width,
			Height:  a.cfg.Height,
			Seed:    a.cfg.Seed,
			Finder:  a.cfg.Finder,
			Drawing: drawing.String(),
		},
		Queue:  string(a.cfg.Queue),
		Status: sp.Status().String(),
		Length: len(sp.Edges()),
	}
	for _, r := range path {
		report.Path = append(report.Path, [2]int{r.X, r.Y})
	}

	return writeYAML(w, report)
}
