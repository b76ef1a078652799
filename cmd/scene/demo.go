package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	scene "github.com/grindlemire/go-scene"
)

// page is one System with a few dashboards mounted as bases.
type page struct {
	name     string
	sys      *scene.System
	bases    []*scene.Base
	datasets []*scene.Dataset[float64]
	failures int
}

func newPage(name string, cfg scene.Config, logger *slog.Logger, bases int) (*page, error) {
	p := &page{name: name}
	opts := append(cfg.Options(),
		scene.WithLogger(logger.With("page", name)),
		scene.WithErrorHandler(func(*scene.NodeError) { p.failures++ }),
	)
	sys, err := scene.NewSystem(opts...)
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", name, err)
	}
	p.sys = sys

	for i := range bases {
		b, ds, err := mountDashboard(sys, fmt.Sprintf("%s/dash-%d", name, i), i)
		if err != nil {
			return nil, err
		}
		p.bases = append(p.bases, b)
		p.datasets = append(p.datasets, ds)
	}
	return p, nil
}

// mountDashboard builds a header over a sidebar and a grid of tiles. The
// tiles are created from a dataset that loads in chunks, the header height
// is animated and the viewport width breathes so that remeasures happen.
func mountDashboard(sys *scene.System, name string, index int) (*scene.Base, *scene.Dataset[float64], error) {
	header := scene.NewSprite(
		scene.WithName("header"),
		scene.WithWidth(scene.Percent(100)),
		scene.WithHeight(scene.Fixed(40)),
	)
	sidebar := scene.NewContainer(scene.Vertical,
		scene.WithName("sidebar"),
		scene.WithWidth(scene.Percent(20)),
		scene.WithHeight(scene.Percent(100)),
		scene.WithPadding(scene.EdgeAll(4)),
		scene.WithBackground(scene.NewSprite(scene.WithName("sidebar-bg"))),
	)
	for i := range 5 {
		sidebar.AddChild(scene.NewSprite(
			scene.WithName(fmt.Sprintf("nav-%d", i)),
			scene.WithWidth(scene.Percent(100)),
			scene.WithHeight(scene.Fixed(24)),
			scene.WithMargin(scene.EdgeSymmetric(2, 0)),
		))
	}
	tiles := scene.NewContainer(scene.Grid,
		scene.WithName("tiles"),
		scene.WithWidth(scene.Percent(80)),
		scene.WithPadding(scene.EdgeAll(4)),
		scene.WithContentAlign(scene.AlignCenter),
	)
	body := scene.NewContainer(scene.Horizontal,
		scene.WithName("body"),
		scene.WithWidth(scene.Percent(100)),
		scene.WithHeight(scene.Percent(100)),
		scene.WithChildren(sidebar, tiles),
	)
	root := scene.NewContainer(scene.Vertical,
		scene.WithName(name),
		scene.WithWidth(scene.Percent(100)),
		scene.WithHeight(scene.Percent(100)),
		scene.WithChildren(header, body),
	)

	start := time.Now()
	phase := float64(index)
	vp := scene.ViewportFunc(func() (float64, float64) {
		t := time.Since(start).Seconds()
		return math.Round(800 + 160*math.Sin(t+phase)), 600
	})
	base, err := sys.NewBase(root, vp)
	if err != nil {
		return nil, nil, fmt.Errorf("mount %s: %w", name, err)
	}

	ds := scene.NewDataset(sys,
		scene.WithDatasetName[float64](name),
		scene.WithTarget[float64](tiles),
		scene.WithChunkSize[float64](16),
		scene.WithTransform(func(values []float64) ([]float64, error) {
			for i, v := range values {
				values[i] = math.Abs(v)
			}
			return values, nil
		}),
		scene.WithItemsHook(func(values []float64) error {
			syncTiles(tiles, values)
			return nil
		}),
	)
	ds.SetData(randomSeries(120))

	if err := header.Animate(&scene.Tween{
		From:     40,
		To:       64,
		Duration: 1500 * time.Millisecond,
		Easing:   easeInOut,
		Set:      func(v float64) { header.SetHeight(scene.Fixed(math.Round(v))) },
	}); err != nil {
		return nil, nil, err
	}
	return base, ds, nil
}

// syncTiles makes the grid hold one tile per value, sized by the value.
func syncTiles(tiles *scene.Node, values []float64) {
	children := tiles.Children()
	for i := len(values); i < len(children); i++ {
		children[i].Dispose()
	}
	for i, v := range values {
		w := 32 + math.Round(v*32)
		if i < len(children) {
			children[i].SetSize(w, 32)
			continue
		}
		tiles.AddChild(scene.NewSprite(
			scene.WithName(fmt.Sprintf("tile-%d", i)),
			scene.WithSize(w, 32),
			scene.WithMargin(scene.EdgeAll(2)),
			scene.WithAlign(scene.AlignCenter),
			scene.WithValign(scene.ValignMiddle),
		))
	}
}

func randomSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rand.NormFloat64()
	}
	return out
}

func easeInOut(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// refresh swaps in new data for one dashboard. It must run on the page's
// tick goroutine.
func (p *page) refresh(i int) {
	ds := p.datasets[i%len(p.datasets)]
	ds.SetData(randomSeries(60 + rand.IntN(120)))
	ds.SetRange(0, 0.5+rand.Float64()/2, false)
}
