// Package setup turns a generated grid into a playable world: it retries
// generation until the layout is solvable, names the rooms, builds the room
// graph and fills the chests.
package setup

import (
	"math/rand"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"territory/pkg/engine/world"
	"territory/pkg/game/generator"
	"territory/pkg/game/state"
)

// DefaultItemPool is the set of non-key treasures a chest can hold
var DefaultItemPool = []string{
	"Poção Azul", "Poção Vermelha", "Ouro", "Diamante",
	"Rubi", "Esmeralda", "Pergaminho", "Cálice",
	"Anel", "Colar", "Coroa", "Espada Velha",
}

// DefaultKeyItem is the item that opens the exit
const DefaultKeyItem = "Chave"

// DefaultMaxAttempts caps how many random candidates are tried before the
// fixed layout is used.
const DefaultMaxAttempts = 100

// Options controls world creation
type Options struct {
	Generator   generator.GridGenerator
	MaxAttempts int
	ItemPool    []string
	KeyItem     string
}

// DefaultOptions returns the standard 15x15, six chest setup
func DefaultOptions() Options {
	return Options{
		Generator:   generator.DefaultGenerator,
		MaxAttempts: DefaultMaxAttempts,
		ItemPool:    DefaultItemPool,
		KeyItem:     DefaultKeyItem,
	}
}

// GenerateGrid asks gen for candidates until one is solvable, trying at most
// maxAttempts times. When none is accepted the fixed fallback layout is
// returned and fallback is true. attempts counts the candidates tried.
func GenerateGrid(gen generator.GridGenerator, rng *rand.Rand, maxAttempts int) (grid *world.Grid, attempts int, fallback bool) {
	for attempts = 1; attempts <= maxAttempts; attempts++ {
		candidate := gen.Generate(rng)
		if IsSolvable(candidate) {
			return candidate, attempts, false
		}
	}
	return generator.Fallback.Generate(rng), maxAttempts, true
}

// NewWorld generates a world from seed. The same seed and options always
// give the same world.
func NewWorld(opts Options, seed int64) *state.World {
	if opts.Generator == nil {
		opts.Generator = generator.DefaultGenerator
	}
	if opts.KeyItem == "" {
		opts.KeyItem = DefaultKeyItem
	}

	rng := rand.New(rand.NewSource(seed))
	grid, attempts, fallback := GenerateGrid(opts.Generator, rng, opts.MaxAttempts)

	w := WorldFromGrid(grid, rng, opts.ItemPool, opts.KeyItem)
	w.Seed = seed
	w.Generator = opts.Generator.Name()
	w.Attempts = attempts
	w.Fallback = fallback
	if fallback {
		w.Generator = generator.Fallback.Name()
	}
	return w
}

// WorldFromGrid names the rooms of an accepted grid, wires the room graph and
// assigns chest contents.
func WorldFromGrid(grid *world.Grid, rng *rand.Rand, pool []string, keyItem string) *state.World {
	w := state.NewWorld(grid, keyItem)
	extractRooms(w)
	buildGraph(w)
	assignItems(w, rng, pool)
	return w
}

// extractRooms scans the grid row by row and registers the entrance, the exit
// and every chest, numbering chests in scan order.
func extractRooms(w *state.World) {
	chests := 0
	w.Grid.ForEachTile(func(p world.Point, t world.Tile) {
		switch t {
		case world.Entrance:
			w.Start = w.AddRoom(state.EntranceRoom, p)
		case world.Exit:
			w.Exit = w.AddRoom(state.ExitRoom, p)
		case world.Chest:
			chests++
			w.AddChest(state.ChestRoomName(chests), p)
		}
	})
}

// edgeOrder is the order neighbours are linked in, which fixes the order of
// every adjacency list and so the tie-breaking of path searches.
var edgeOrder = []world.Direction{world.East, world.West, world.South, world.North}

// buildGraph links every passable tile to its passable neighbours. Tiles that
// are not rooms become corridor nodes.
func buildGraph(w *state.World) {
	w.Grid.ForEachTile(func(p world.Point, t world.Tile) {
		if !t.Passable() {
			return
		}
		from, _ := w.NodeAt(p)
		w.Graph.AddVertex(from)

		for _, dir := range edgeOrder {
			to, ok := w.NodeAt(p.Add(dir))
			if !ok {
				continue
			}
			w.Graph.AddEdge(from, to)
		}
	})
}

// assignItems hides the key in one chest chosen at random and fills the rest
// from pool without repeats. The key item and repeated pool entries are
// dropped before drawing. A pool too small for the chests is reused
// cyclically; an empty pool leaves the other chests empty.
func assignItems(w *state.World, rng *rand.Rand, pool []string) {
	if len(w.ChestRooms) == 0 {
		return
	}

	chests := slices.Clone(w.ChestRooms)
	rng.Shuffle(len(chests), func(i, j int) { chests[i], chests[j] = chests[j], chests[i] })

	w.KeyRoom = chests[0]
	w.Contents[w.KeyRoom] = w.KeyItem

	seen := mapset.New[string]()
	items := slices.DeleteFunc(slices.Clone(pool), func(item string) bool {
		if item == w.KeyItem || seen.Has(item) {
			return true
		}
		seen.Put(item)
		return false
	})
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	if len(items) == 0 {
		return
	}

	for i, chest := range chests[1:] {
		w.Contents[chest] = items[i%len(items)]
	}
}
