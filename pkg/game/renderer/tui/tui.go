package tui

import (
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"roguelike3d/pkg/engine/terminal"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
	"roguelike3d/pkg/game/i18n"
	"roguelike3d/pkg/game/renderer"
)

// Icon constants for the layer view
const (
	IconCursor       = "X"
	IconSpawn        = "@"
	IconVoid         = " "
	IconAir          = "·"
	IconWall         = "▒"
	IconCorridorWall = "░"
	IconCorridor     = "+"
	IconShaft        = ":"
	IconStairsGuard  = "▓"
	IconFakeAir      = "?"
)

// Staircase icons by orientation: upper part, lower part
var stairsIcons = map[world.Orientation][2]string{
	world.North: {"▲", "△"},
	world.South: {"▼", "▽"},
	world.East:  {"▶", "▷"},
	world.West:  {"◀", "◁"},
}

// Viewport margins and minimum sizes
const (
	ViewportMinRows    = 5
	ViewportMinCols    = 15
	ViewportSideMargin = 2
	// Header, summary, layer title and legend lines
	ViewportTopMargin = 8
)

// TUIRenderer draws horizontal slices of a dungeon to a terminal
type TUIRenderer struct {
	out io.Writer

	colorRoom     color.Style
	colorCorridor color.Style
	colorStairs   color.Style
	colorWall     color.Style
	colorSubtle   color.Style
	colorSpawn    color.Style
	colorDenied   color.Style
	colorHeading  color.Style
	colorCursor   color.Style

	cursor                *world.Coordinates
	trueColor             bool
	regexpStringFunctions *regexp.Regexp
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgGray}
	t.colorCorridor = color.Style{color.FgYellow}
	t.colorStairs = color.Style{color.FgCyan, color.OpBold}
	t.colorWall = color.Style{color.FgWhite}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorSpawn = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorCursor = color.Style{color.FgBlack, color.BgYellow, color.OpBold}

	t.trueColor = color.SupportTrueColor()
	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// SetCursor highlights c and centers the viewport on it
func (t *TUIRenderer) SetCursor(c world.Coordinates) {
	t.cursor = &c
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	_ = c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleCorridor:
		return t.colorCorridor.Sprint(text)
	case renderer.StyleStairs:
		return t.colorStairs.Sprint(text)
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleSpawn:
		return t.colorSpawn.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system: GT{KEY} translates,
// TILE{Type} names a tile type and ROOM{n} highlights a room index.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = i18n.Get(operand)
		case "TILE":
			val = t.colorSubtle.Sprint(i18n.Get(operand))
		case "ROOM":
			val = t.colorRoom.Sprint(i18n.Get("ROOM") + " " + operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth - (ViewportSideMargin * 2)
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}
	return rows, cols
}

// RenderFrame renders the header, the requested layers and a legend
func (t *TUIRenderer) RenderFrame(d *generator.Dungeon, layers []int) {
	dims := d.Dims()
	fmt.Fprintln(t.out, t.colorHeading.Sprint(i18n.Get("DUNGEON_HEADER", d.Seed, dims.Width, dims.Height, dims.Length)))
	fmt.Fprintln(t.out, i18n.Get("DUNGEON_SUMMARY", len(d.Rooms), len(d.Corridors), d.StaircaseCount(), len(d.Skipped)))
	if d.SpawnRoom >= 0 {
		fmt.Fprintln(t.out, t.FormatText("GT{SPAWN} %v, ROOM{%d}", d.Spawn, d.SpawnRoom))
	}

	if layers == nil {
		layers = []int{d.Spawn.Y}
	}
	rows, cols := t.GetViewportSize()
	for _, y := range layers {
		if y < 0 || y >= dims.Height {
			fmt.Fprintln(t.out, t.colorDenied.Sprintf("%s %d: out of range", i18n.Get("LAYER"), y))
			continue
		}
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.colorHeading.Sprintf("%s %d", i18n.Get("LAYER"), y))
		t.renderLayer(d, y, rows, cols)
	}

	fmt.Fprintln(t.out)
	t.printLegend()
}

// window returns the first index of a span of size n inside [0, total) centered on focus
func window(focus, n, total int) int {
	if n >= total {
		return 0
	}
	start := focus - n/2
	if start < 0 {
		start = 0
	}
	if start+n > total {
		start = total - n
	}
	return start
}

// renderLayer prints one Y slice with north (+z) at the top and east (+x) to the right
func (t *TUIRenderer) renderLayer(d *generator.Dungeon, y, rows, cols int) {
	dims := d.Dims()
	focus := d.Spawn
	if t.cursor != nil {
		focus = *t.cursor
	}
	x0 := window(focus.X, cols, dims.Width)
	z0 := window(focus.Z, rows, dims.Length)
	x1 := min(dims.Width, x0+cols)
	z1 := min(dims.Length, z0+rows)

	var b strings.Builder
	for z := z1 - 1; z >= z0; z-- {
		for x := x0; x < x1; x++ {
			b.WriteString(t.renderTile(d, world.Coordinates{X: x, Y: y, Z: z}))
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(t.out, b.String())
}

// Glyph returns the unstyled icon of a tile
func Glyph(tile world.Tile) string {
	switch tile.Type {
	case world.Air:
		return IconAir
	case world.Block:
		return IconWall
	case world.CorridorBlock:
		return IconCorridorWall
	case world.CorridorAir:
		return IconCorridor
	case world.StairsAir:
		return IconShaft
	case world.StairsTopPart:
		return stairsIcons[tile.Orientation][0]
	case world.StairsBottomPart:
		return stairsIcons[tile.Orientation][1]
	case world.StairsBlock, world.StairsBlock2:
		return IconStairsGuard
	case world.FakeAir:
		return IconFakeAir
	default:
		return IconVoid
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// renderTile returns the styled icon for the tile at c
func (t *TUIRenderer) renderTile(d *generator.Dungeon, c world.Coordinates) string {
	if t.cursor != nil && c == *t.cursor {
		return t.colorCursor.Sprint(IconCursor)
	}
	if c == d.Spawn && d.SpawnRoom >= 0 {
		return t.colorSpawn.Sprint(IconSpawn)
	}

	tile := d.Grid.Get(c)
	glyph := Glyph(tile)
	switch tile.Type {
	case world.Void:
		return glyph
	case world.Block:
		if t.trueColor {
			return color.RGB(channel(tile.Color.R), channel(tile.Color.G), channel(tile.Color.B)).Sprint(glyph)
		}
		return t.colorWall.Sprint(glyph)
	case world.Air:
		return t.colorRoom.Sprint(glyph)
	case world.CorridorAir, world.CorridorBlock:
		return t.colorCorridor.Sprint(glyph)
	case world.FakeAir:
		return t.colorDenied.Sprint(glyph)
	default:
		return t.colorStairs.Sprint(glyph)
	}
}

// printLegend lists the icon of every tile type that can appear in a dungeon
func (t *TUIRenderer) printLegend() {
	fmt.Fprintln(t.out, t.colorHeading.Sprint(i18n.Get("LEGEND")))
	items := []struct {
		icon string
		typ  world.TileType
	}{
		{IconAir, world.Air},
		{IconWall, world.Block},
		{IconCorridorWall, world.CorridorBlock},
		{IconCorridor, world.CorridorAir},
		{IconShaft, world.StairsAir},
		{stairsIcons[world.North][0], world.StairsTopPart},
		{stairsIcons[world.North][1], world.StairsBottomPart},
		{IconStairsGuard, world.StairsBlock},
	}
	parts := make([]string, 0, len(items)+1)
	parts = append(parts, t.colorSpawn.Sprint(IconSpawn)+" "+i18n.Get("SPAWN"))
	for _, it := range items {
		parts = append(parts, it.icon+" "+t.FormatText("TILE{%s}", it.typ))
	}
	fmt.Fprintln(t.out, strings.Join(parts, "  "))
}
