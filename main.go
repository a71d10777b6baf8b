package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gookit/color"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/input"
	"roguelike3d/pkg/engine/pset"
	"roguelike3d/pkg/game/config"
	"roguelike3d/pkg/game/devtools"
	"roguelike3d/pkg/game/gameplay"
	"roguelike3d/pkg/game/generator"
	"roguelike3d/pkg/game/i18n"
	"roguelike3d/pkg/game/reference"
	"roguelike3d/pkg/game/renderer"
	"roguelike3d/pkg/game/renderer/tui"
	"roguelike3d/pkg/game/report"
	"roguelike3d/pkg/game/runindex"
	"roguelike3d/pkg/game/state"
	"roguelike3d/pkg/game/transport"
)

var (
	seedFlag       = flag.Int64("seed", 0, "dungeon seed (default: current time)")
	configFlag     = flag.String("config", "", "path to a dungeon.yaml config file")
	viewFlag       = flag.Bool("view", false, "print dungeon layers to the terminal")
	layersFlag     = flag.String("layers", "", "comma separated Y layers to view, or \"all\" (default: spawn layer)")
	dumpFlag       = flag.String("dump", "", "write a human-readable map dump to this file")
	htmlFlag       = flag.Bool("html", false, "save the viewed layers as an HTML screenshot")
	canonicalFlag  = flag.String("canonical", "", "write the canonical tile dump to this file")
	reportFlag     = flag.String("report", "", "write a JSON report to this file (- for stdout)")
	refFlag        = flag.String("ref", "", "directory of reference dumps to verify against")
	recordFlag     = flag.Bool("record", false, "store a reference dump when none exists for the seed")
	indexFlag      = flag.String("index", "", "SQLite run index to record this run in")
	serveFlag      = flag.String("serve", "", "serve dungeons over websocket on this address instead of generating one")
	browseFlag     = flag.Bool("browse", false, "browse the dungeon interactively")
	spawnRoomFlag  = flag.Int("spawn-room", -1, "force the spawn room index")
	skipFlag       = flag.Bool("skip-unroutable", false, "skip room pairs no corridor can connect instead of failing")
	setBackendFlag = flag.String("set-backend", "", "persistent set backend: patricia or copying")
	setStatsFlag   = flag.Bool("set-stats", false, "collect path-set operation statistics")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() (code int) {
	logger := log.New(os.Stdout, "[dungeon] ", log.LstdFlags|log.Lmicroseconds)
	defer func() {
		if v := assert.Recover(recover()); v != nil {
			logger.Print(v.Error())
			code = 1
		}
	}()

	cfg, err := loadConfig()
	if err != nil {
		logger.Printf("config: %v", err)
		return 1
	}

	gen, err := generator.New(cfg, logger)
	if err != nil {
		logger.Printf("generator: %v", err)
		return 1
	}
	if *refFlag != "" {
		store, err := reference.NewStore(*refFlag, *recordFlag)
		if err != nil {
			logger.Printf("reference: %v", err)
			return 1
		}
		gen.SetVerifier(store)
	}

	if *serveFlag != "" {
		return serve(gen, logger)
	}

	seed := *seedFlag
	if !flagSet("seed") {
		seed = time.Now().UnixNano()
	}
	if *browseFlag {
		return browse(gen, seed, logger)
	}

	d := gen.Generate(seed)
	printSummary(d)

	layers, err := parseLayers(*layersFlag, d)
	if err != nil {
		logger.Printf("layers: %v", err)
		return 1
	}
	if *viewFlag {
		renderer.SetRenderer(tui.New(os.Stdout))
		renderer.Init()
		renderer.RenderFrame(d, layers)
	}
	if *htmlFlag {
		name, err := devtools.SaveScreenshotHTML(d, layers)
		if err != nil {
			logger.Printf("screenshot: %v", err)
			return 1
		}
		fmt.Println(i18n.Get("WROTE_FILE", name))
	}
	if *dumpFlag != "" {
		path, err := devtools.DumpDungeonToFile(d, *dumpFlag)
		if err != nil {
			logger.Printf("map dump: %v", err)
			return 1
		}
		fmt.Println(i18n.Get("WROTE_FILE", path))
	}
	if *canonicalFlag != "" {
		if err := os.WriteFile(*canonicalFlag, d.Dump(), 0o644); err != nil {
			logger.Printf("canonical dump: %v", err)
			return 1
		}
		fmt.Println(i18n.Get("WROTE_FILE", *canonicalFlag))
	}

	hash, err := config.Hash(cfg)
	if err != nil {
		logger.Printf("config hash: %v", err)
		return 1
	}
	if *reportFlag != "" {
		if err := writeReport(d, hash); err != nil {
			logger.Printf("report: %v", err)
			return 1
		}
	}
	if *indexFlag != "" {
		if err := recordRun(d, hash); err != nil {
			if errors.Is(err, runindex.ErrDigestChanged) {
				color.Error.Println(i18n.Get("DIGEST_CHANGED"))
			}
			logger.Printf("run index: %v", err)
			return 1
		}
	}
	return 0
}

// flagSet reports whether the named flag was given on the command line
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadConfig reads the config file and applies command line overrides
func loadConfig() (generator.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return cfg, err
	}
	if flagSet("spawn-room") {
		cfg.SpawnRoom = *spawnRoomFlag
	}
	if *skipFlag {
		cfg.CorridorPolicy = generator.CorridorSkip
	}
	if *setBackendFlag != "" {
		cfg.SetBackend = pset.Backend(*setBackendFlag)
	}
	if *setStatsFlag {
		cfg.SetStats = true
	}
	return cfg, cfg.Validate()
}

// parseLayers turns the -layers flag into Y indices. Empty means the spawn layer.
func parseLayers(s string, d *generator.Dungeon) ([]int, error) {
	switch strings.TrimSpace(s) {
	case "":
		return nil, nil
	case "all":
		layers := make([]int, d.Dims().Height)
		for y := range layers {
			layers[y] = y
		}
		return layers, nil
	}
	var layers []int
	for _, part := range strings.Split(s, ",") {
		y, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad layer %q", part)
		}
		layers = append(layers, y)
	}
	return layers, nil
}

func printSummary(d *generator.Dungeon) {
	dims := d.Dims()
	color.Magenta.Println(i18n.Get("DUNGEON_HEADER", d.Seed, dims.Width, dims.Height, dims.Length))
	fmt.Println(i18n.Get("DUNGEON_SUMMARY", len(d.Rooms), len(d.Corridors), d.StaircaseCount(), len(d.Skipped)))
	fmt.Println(i18n.Get("PLACEMENT_SUMMARY", d.Placement.Tries, d.Placement.OutOfBounds, d.Placement.Overlaps))
	fmt.Println(i18n.Get("TIMINGS", d.Timings.Placement, d.Timings.Planning, d.Timings.Corridors, d.Timings.Total))
	if d.SetStats != nil {
		fmt.Printf("%s: %v\n", i18n.Get("SET_STATS"), *d.SetStats)
	}
	fmt.Printf("%s: %v (%s %d)\n", i18n.Get("SPAWN"), d.Spawn, i18n.Get("ROOM"), d.SpawnRoom)
	fmt.Printf("%s: %s\n", i18n.Get("DIGEST"), d.Digest())
}

func writeReport(d *generator.Dungeon, hash string) error {
	r := report.Build(d, hash)
	if *reportFlag == "-" {
		return report.Write(os.Stdout, r)
	}
	f, err := os.Create(*reportFlag)
	if err != nil {
		return err
	}
	if err := report.Write(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Println(i18n.Get("WROTE_FILE", *reportFlag))
	return nil
}

func recordRun(d *generator.Dungeon, hash string) error {
	idx, err := runindex.Open(*indexFlag)
	if err != nil {
		return err
	}
	defer idx.Close()

	dims := d.Dims()
	return idx.Record(context.Background(), runindex.Run{
		Seed:       d.Seed,
		ConfigHash: hash,
		Width:      dims.Width,
		Height:     dims.Height,
		Length:     dims.Length,
		Rooms:      len(d.Rooms),
		Corridors:  len(d.Corridors),
		Staircases: d.StaircaseCount(),
		Skipped:    len(d.Skipped),
		Digest:     d.Digest(),
		Duration:   d.Timings.Total,
	})
}

func serve(gen *generator.Generator, logger *log.Logger) int {
	mux := http.NewServeMux()
	mux.Handle("/ws", transport.NewServer(gen, logger).Handler())

	srv := &http.Server{
		Addr:              *serveFlag,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	fmt.Println(i18n.Get("SERVING", *serveFlag))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Printf("serve: %v", err)
		return 1
	}
	return 0
}

// browse runs the interactive browser on stdin. Generation logs are silenced
// so they do not scroll the map away.
func browse(gen *generator.Generator, seed int64, logger *log.Logger) int {
	out := logger.Writer()
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(out)

	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()

	s := state.NewSession(gen, seed)
	if err := gameplay.Run(s, input.NewKeyReader(os.Stdin, os.Stdout)); err != nil {
		logger.SetOutput(out)
		logger.Printf("browse: %v", err)
		return 1
	}
	return 0
}
