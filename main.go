package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"territory/pkg/engine/avl"
	"territory/pkg/engine/graph"
	"territory/pkg/engine/input"
	"territory/pkg/engine/terminal"
	"territory/pkg/game/config"
	"territory/pkg/game/devtools"
	"territory/pkg/game/gameplay"
	"territory/pkg/game/logger"
	"territory/pkg/game/renderer"
	"territory/pkg/game/renderer/tui"
	"territory/pkg/game/savegame"
	"territory/pkg/game/setup"
	"territory/pkg/game/state"
)

type flags struct {
	seed        int64
	configPath  string
	moves       string
	interactive bool
	hint        bool
	route       bool
	dfs         bool
	save        bool
	load        bool
	dump        string
	dot         string
	screenshot  string
	verbose     bool
}

func parseFlags() flags {
	var f flags
	flag.Int64Var(&f.seed, "seed", 0, "world seed (0 picks one from the clock)")
	flag.StringVar(&f.configPath, "config", "config.yaml", "path to the YAML settings file")
	flag.StringVar(&f.moves, "moves", "", "comma separated commands to replay, e.g. d,d,s,goto Bau_1")
	flag.BoolVar(&f.interactive, "interactive", false, "read commands from stdin after any replay")
	flag.BoolVar(&f.hint, "hint", false, "print the shortest path from the player to the exit")
	flag.BoolVar(&f.route, "route", false, "print the greedy collection route")
	flag.BoolVar(&f.dfs, "dfs", false, "print the depth-first sweep from the player")
	flag.BoolVar(&f.save, "save", false, "save the game before exiting")
	flag.BoolVar(&f.load, "load", false, "load the saved game before playing")
	flag.StringVar(&f.dump, "dump", "", "write a map dump to this directory")
	flag.StringVar(&f.dot, "dot", "", "write the room graph in DOT format to this file")
	flag.StringVar(&f.screenshot, "screenshot", "", "write an HTML screenshot of the fogged view to this directory")
	flag.BoolVar(&f.verbose, "verbose", false, "log graph and inventory events")
	flag.Parse()
	return f
}

// watch wires the diagnostic hooks of a session to the debug log
func watch(g *state.Game) {
	if !logger.Verbose() {
		return
	}
	g.World.Graph.SetObserver(func(e graph.Event[state.NodeID]) {
		switch e.Kind {
		case graph.EventPathFound:
			logger.Debug("GRAPH", fmt.Sprintf("%s %s -> %s (%d nodes)", e.Kind, e.From, e.To, e.Length))
		default:
			logger.Debug("GRAPH", fmt.Sprintf("%s %s -> %s", e.Kind, e.From, e.To))
		}
	})
	g.Player.Inventory.SetObserver(func(e avl.Event[string]) {
		logger.Debug("INVENTORY", fmt.Sprintf("%s %s", e.Kind, e.Key))
	})
}

func describeWorld(w *state.World) {
	logger.Info("MAP", fmt.Sprintf("seed %d, generator %s, %d nodes, %d chests", w.Seed, w.Generator, w.Graph.Len(), len(w.ChestRooms)))
	if w.Fallback {
		logger.Warn("MAP", fmt.Sprintf("no solvable layout after %d attempts, using the fixed map", w.Attempts))
	} else {
		logger.Debug("MAP", fmt.Sprintf("accepted after %d attempts", w.Attempts))
	}
}

func printPath(label string, path []state.NodeID) {
	if len(path) == 0 {
		logger.Warn(label, gotext.Get("No possible path."))
		return
	}
	logger.Info(label, fmt.Sprintf("%d steps: %s", graph.RouteLength(path), strings.Join(state.NodeStrings(path), " -> ")))
}

func printStats(g *state.Game) {
	stats := gameplay.GameStats(g)
	logger.Section(gotext.Get("Victory statistics"))
	logger.Stats(gotext.Get("Steps:"), stats.Steps)
	logger.Stats(gotext.Get("Items:"), stats.Items)
	logger.Stats("Route", stats.OptimalSteps)
	logger.Stats(gotext.Get("Efficiency"), fmt.Sprintf("%.0f%%", stats.Efficiency*100))
}

// play feeds intents to the controller until they run out, the player quits
// or the game is won. It reports whether the player quit.
func play(c *gameplay.Controller, next func() (input.Intent, bool, error), show bool) (bool, error) {
	for !c.Game.Over {
		intent, ok, err := next()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}

		switch intent.Action {
		case input.ActionMap:
			renderer.RenderMap(c.Game)
			continue
		case input.ActionInventory:
			renderer.RenderInventory(c.Game)
			continue
		}

		if c.ProcessIntent(intent) {
			return true, nil
		}
		if show {
			renderer.Clear()
			renderer.RenderFrame(c.Game)
		} else {
			logger.Debug("MOVE", fmt.Sprintf("%s -> %s: %s", input.ActionName(intent.Action), c.Game.Player.Position, c.Game.LastMessage()))
		}
	}
	return false, nil
}

func scriptSource(moves string) func() (input.Intent, bool, error) {
	intents := input.SplitScript(moves)
	return func() (input.Intent, bool, error) {
		if len(intents) == 0 {
			return input.Intent{}, false, nil
		}
		next := intents[0]
		intents = intents[1:]
		return next, true, nil
	}
}

func run(f flags) error {
	logger.SetVerbose(f.verbose)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	for _, field := range cfg.Validate() {
		logger.Warn("CONFIG", fmt.Sprintf("invalid %s, using the default", field))
	}
	gotext.Configure(cfg.LocalesDir, cfg.Locale, "default")

	store, err := savegame.Open(cfg.SaveBackend, cfg.SavePath)
	if err != nil {
		return err
	}
	defer store.Close()

	seed := f.seed
	if seed == 0 {
		seed = gameplay.NewSeed()
	}
	opts := cfg.SetupOptions()
	w := setup.NewWorld(opts, seed)
	describeWorld(w)

	g := gameplay.StartGame(w, gameplay.DefaultPlayerName, cfg.RevealRadius)
	watch(g)

	c := gameplay.NewController(g, store, opts)
	c.OnNewGame = func(g *state.Game) {
		watch(g)
		describeWorld(g.World)
	}

	renderer.SetRenderer(tui.New(os.Stdout))
	renderer.Init()

	if f.load {
		if err := c.Load(); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		logger.Info("SAVE", c.Game.LastMessage())
	}

	quit := false
	if f.moves != "" {
		if quit, err = play(c, scriptSource(f.moves), false); err != nil {
			return err
		}
	}

	interactive := f.interactive || (f.moves == "" && !f.hint && !f.route && !f.dfs &&
		f.dump == "" && f.dot == "" && f.screenshot == "" && !f.save && terminal.IsTerminal(os.Stdin))
	if interactive && !quit && !c.Game.Over {
		renderer.Clear()
		renderer.RenderFrame(c.Game)
		reader := input.NewReader(os.Stdin, input.DeviceTerminal)
		if _, err := play(c, reader.Next, true); err != nil {
			return err
		}
	}

	g = c.Game
	if f.hint {
		printPath("HINT", gameplay.Hint(g))
	}
	if f.route {
		printPath("ROUTE", gameplay.ShowRoute(g))
		printPath("OPTIMAL", gameplay.OptimalRoute(g.World))
	}
	if f.dfs {
		printPath("DFS", gameplay.Sweep(g))
	}
	if f.dump != "" {
		path, err := devtools.DumpMapToFile(g, f.dump)
		if err != nil {
			return err
		}
		logger.Success("DUMP", path)
	}
	if f.screenshot != "" {
		path, err := devtools.SaveScreenshotHTML(g, f.screenshot)
		if err != nil {
			return err
		}
		logger.Success("SCREENSHOT", path)
	}
	if f.dot != "" {
		if err := writeDOT(f.dot, g.World); err != nil {
			return err
		}
		logger.Success("DOT", f.dot)
	}
	if f.save {
		if err := c.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		logger.Success("SAVE", cfg.SavePath)
	}

	if g.Over {
		logger.Success("GAME", g.LastMessage())
		printStats(g)
	}
	return nil
}

func writeDOT(path string, w *state.World) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return devtools.WriteDOT(out, w)
}

func main() {
	if err := run(parseFlags()); err != nil {
		logger.Error("MAIN", err.Error())
		os.Exit(1)
	}
}
