package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
	"roguelike3d/pkg/game/renderer/tui"
)

// cssColor converts a render color to a CSS rgb() value
func cssColor(c world.Color) string {
	clamp := func(v float32) int {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 255
		}
		return int(v * 255)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", clamp(c.R), clamp(c.G), clamp(c.B))
}

// tileHTMLInfo returns the icon, CSS class and optional inline color for a tile
func tileHTMLInfo(d *generator.Dungeon, c world.Coordinates) (icon, class, style string) {
	if c == d.Spawn && d.SpawnRoom >= 0 {
		return tui.IconSpawn, "spawn", ""
	}
	t := d.Grid.Get(c)
	icon = tui.Glyph(t)
	switch t.Type {
	case world.Void:
		return icon, "void", ""
	case world.Air:
		return icon, "air", ""
	case world.Block:
		return icon, "wall", "color:" + cssColor(t.Color)
	case world.CorridorAir, world.CorridorBlock:
		return icon, "corridor", ""
	default:
		return icon, "stairs", ""
	}
}

// RenderLayersHTML returns an HTML page showing the given Y layers of d.
// A nil layers slice shows the layer holding the spawn point.
func RenderLayersHTML(d *generator.Dungeon, layers []int) string {
	if layers == nil {
		layers = []int{d.Spawn.Y}
	}
	dims := d.Dims()

	var page strings.Builder
	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .layer-name {
            color: #888;
            margin-top: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 10px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .spawn { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .air { color: #888; }
        .corridor { color: #aaaa00; }
        .stairs { color: #00ffff; font-weight: bold; }
        .void { color: #1a1a2e; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">Dungeon %d (%s)</div>`+"\n", d.Seed, dims))

	for _, y := range layers {
		if y < 0 || y >= dims.Height {
			continue
		}
		page.WriteString(fmt.Sprintf(`    <div class="layer-name">Layer %d</div>`+"\n", y))
		page.WriteString(`    <div class="map-container">` + "\n")
		for z := dims.Length - 1; z >= 0; z-- {
			page.WriteString(`        <div class="map-row">`)
			for x := 0; x < dims.Width; x++ {
				icon, class, style := tileHTMLInfo(d, world.Coordinates{X: x, Y: y, Z: z})
				if style != "" {
					page.WriteString(fmt.Sprintf(`<span class="%s" style="%s">%s</span>`, class, style, html.EscapeString(icon)))
				} else {
					page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, html.EscapeString(icon)))
				}
			}
			page.WriteString("</div>\n")
		}
		page.WriteString(`    </div>` + "\n")
	}

	page.WriteString("</body>\n</html>\n")
	return page.String()
}

// SaveScreenshotHTML writes RenderLayersHTML output to a timestamped file and returns its name
func SaveScreenshotHTML(d *generator.Dungeon, layers []int) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("dungeon-%d-%s.html", d.Seed, timestamp)
	if err := os.WriteFile(filename, []byte(RenderLayersHTML(d, layers)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}
