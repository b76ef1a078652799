package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/muesli/termenv"

	scene "github.com/grindlemire/go-scene"
)

// runBench implements the bench subcommand.
// It builds a wide tree of grid containers, then ticks it with a manual
// clock while invalidating random leaves, and reports per-tick cost.
func runBench(args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	nodes := fs.Int("nodes", 2000, "leaf sprites")
	ticks := fs.Int("ticks", 300, "ticks to run")
	churn := fs.Int("churn", 50, "leaves invalidated per tick")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *nodes < 1 || *ticks < 1 {
		return fmt.Errorf("nodes and ticks must be at least 1")
	}

	sys, err := scene.NewSystem()
	if err != nil {
		return err
	}
	root, leaves := benchTree(*nodes)
	if _, err := sys.NewBase(root, scene.FixedViewport{Width: 1920, Height: 1080}); err != nil {
		return err
	}

	now := time.Now()
	frame := sys.FrameDuration()
	settleStart := time.Now()
	sys.Tick(now)
	settled := time.Since(settleStart)

	var total time.Duration
	var worst time.Duration
	for range *ticks {
		for range *churn {
			leaf := leaves[rand.IntN(len(leaves))]
			leaf.SetSize(16+float64(rand.IntN(32)), 16)
		}
		now = now.Add(frame)
		start := time.Now()
		sys.Tick(now)
		d := time.Since(start)
		total += d
		worst = max(worst, d)
	}

	st := sys.Stats()
	out := termenv.NewOutput(os.Stdout)
	fmt.Println(out.String("bench").Bold())
	fmt.Printf("  nodes        %d\n", *nodes)
	fmt.Printf("  first tick   %s\n", settled.Round(time.Microsecond))
	fmt.Printf("  mean tick    %s\n", (total / time.Duration(*ticks)).Round(time.Microsecond))
	fmt.Printf("  worst tick   %s\n", worst.Round(time.Microsecond))
	fmt.Printf("  validations  %d\n", st.Validations)
	fmt.Printf("  pending      %d\n", st.Pending)
	if worst > frame {
		fmt.Println(out.String(fmt.Sprintf("  worst tick exceeds the %s frame budget", frame)).Foreground(out.Color("3")))
	}
	return nil
}

// benchTree returns a vertical root of grid rows holding n fixed-size leaves.
func benchTree(n int) (*scene.Node, []*scene.Node) {
	const perRow = 50
	root := scene.NewContainer(scene.Vertical, scene.WithName("bench"), scene.WithWidth(scene.Percent(100)))
	leaves := make([]*scene.Node, 0, n)
	var row *scene.Node
	for i := range n {
		if i%perRow == 0 {
			row = scene.NewContainer(scene.Grid, scene.WithWidth(scene.Percent(100)), scene.WithMaxColumns(25))
			root.AddChild(row)
		}
		leaf := scene.NewSprite(scene.WithSize(24, 16), scene.WithMargin(scene.EdgeAll(1)))
		row.AddChild(leaf)
		leaves = append(leaves, leaf)
	}
	return root, leaves
}
