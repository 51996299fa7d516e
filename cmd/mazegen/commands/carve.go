// SPDX-License-Identifier: MIT
package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/minpq"
	"github.com/katalvlaran/lvmaze/prim_kruskal"
)

// wallReport is the YAML shape of a removed wall.
type wallReport struct {
	ID   int    `yaml:"id"`
	From [2]int `yaml:"from,flow"`
	To   [2]int `yaml:"to,flow"`
}

// carveReport is the YAML document printed by carve.
type carveReport struct {
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	Seed         int64        `yaml:"seed"`
	Finder       string       `yaml:"finder"`
	RemovedWalls []wallReport `yaml:"removed_walls"`
	Drawing      string       `yaml:"drawing"`
}

func newCarveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "carve",
		Short: "Carve a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.carve()
			if err != nil {
				return err
			}

			return a.printCarve(cmd.OutOrStdout(), m)
		},
	}
}

// carve builds the grid and carves it with the configured finder and queue.
func (a *app) carve() (*maze.Maze, error) {
	grid, err := gridgraph.NewGrid(a.cfg.Width, a.cfg.Height)
	if err != nil {
		return nil, err
	}
	queue, err := minpq.FactoryFor[gridgraph.Room](a.cfg.Queue)
	if err != nil {
		return nil, err
	}

	var carver maze.Carver
	if a.cfg.Finder == FinderBacktrack {
		carver = maze.NewBacktrackCarver(
			maze.WithSeed(a.cfg.Seed),
			maze.WithLogger(a.logger.Named("carver")),
		)
	} else {
		finder, err := prim_kruskal.NewFinder[gridgraph.Room, maze.Passage](a.cfg.Finder, prim_kruskal.WithQueueFactory(queue))
		if err != nil {
			return nil, err
		}
		carver = maze.NewKruskalCarver(
			maze.WithSeed(a.cfg.Seed),
			maze.WithFinder(finder),
			maze.WithLogger(a.logger.Named("carver")),
		)
	}
	m, err := maze.Carve(grid, carver)
	if err != nil {
		return nil, err
	}
	a.logger.Info("maze carved",
		zap.Int("rooms", grid.RoomCount()),
		zap.Int("removed", m.RemovedCount()))

	return m, nil
}

func (a *app) header() string {
	return fmt.Sprintf("# mazegen %dx%d seed=%d finder=%s\n", a.cfg.Width, a.cfg.Height, a.cfg.Seed, a.cfg.Finder)
}

func (a *app) printCarve(w io.Writer, m *maze.Maze) error {
	var drawing bytes.Buffer
	if err := m.Render(&drawing, nil); err != nil {
		return err
	}
	if a.cfg.Format == FormatText {
		_, err := io.WriteString(w, a.header()+drawing.String())
		return err
	}

	report := carveReport{
		Width:   a.cfg.Width,
		Height:  a.cfg.Height,
		Seed:    a.cfg.Seed,
		Finder:  a.cfg.Finder,
		Drawing: drawing.String(),
	}
	for _, wall := range m.RemovedWalls() {
		report.RemovedWalls = append(report.RemovedWalls, wallReport{
			ID:   wall.ID,
			From: [2]int{wall.Room1.X, wall.Room1.Y},
			To:   [2]int{wall.Room2.X, wall.Room2.Y},
		})
	}

	return writeYAML(w, report)
}

func writeYAML(w io.Writer, doc any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("mazegen: encode yaml: %w", err)
	}

	return enc.Close()
}
