package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"territory/pkg/game/renderer"
	"territory/pkg/game/state"
)

// styleClass maps a glyph style to its CSS class
var styleClass = map[renderer.TextStyle]string{
	renderer.StyleWall:       "wall",
	renderer.StyleFloor:      "floor",
	renderer.StyleFog:        "void",
	renderer.StyleChest:      "chest",
	renderer.StyleChestOpen:  "chest-open",
	renderer.StyleExitLocked: "exit-locked",
	renderer.StyleExitOpen:   "exit-unlocked",
	renderer.StylePlayer:     "player",
	renderer.StylePath:       "path",
	renderer.StyleSubtle:     "entrance",
}

const screenshotHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Maze - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .room-name { color: #888; margin-bottom: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .entrance { color: #aaa; }
        .path { color: #00ffff; font-weight: bold; }
        .chest { color: #ffff00; font-weight: bold; }
        .chest-open { color: #aaaa00; }
        .exit-locked { color: #ff4444; font-weight: bold; }
        .exit-unlocked { color: #00aa00; }
        .void { color: #1a1a2e; }
        .inventory { margin-top: 20px; color: #888; }
        .inventory-item { color: #bb86fc; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`

// WriteScreenshotHTML writes the player's fogged view of the maze as an
// HTML page, with the highlighted path, inventory and message log.
func WriteScreenshotHTML(out io.Writer, g *state.Game) error {
	var b strings.Builder
	b.WriteString(screenshotHead)

	fmt.Fprintf(&b, `    <div class="header">Seed %d (%s)</div>`+"\n", g.World.Seed, html.EscapeString(g.World.Generator))
	fmt.Fprintf(&b, `    <div class="room-name">In: %s, steps: %d</div>`+"\n", html.EscapeString(g.Player.Position.String()), g.Player.Steps)

	b.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range renderer.Glyphs(g, renderer.Options{Fog: true, Path: true}) {
		b.WriteString(`        <div class="map-row">`)
		for _, gl := range row {
			class, ok := styleClass[gl.Style]
			if !ok {
				class = "floor"
			}
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, html.EscapeString(gl.Icon))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString(`    </div>` + "\n")

	b.WriteString(`    <div class="inventory">Inventory: `)
	items := g.Player.Items()
	if len(items) == 0 {
		b.WriteString(`<span style="color:#666">(empty)</span>`)
	}
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, `<span class="inventory-item">%s</span>`, html.EscapeString(item))
	}
	b.WriteString(`</div>` + "\n")

	if len(g.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")
	_, err := io.WriteString(out, b.String())
	return err
}

// SaveScreenshotHTML writes a timestamped screenshot page into dir and
// returns its path.
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path, err := filepath.Abs(filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp)))
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	if err := WriteScreenshotHTML(f, g); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
