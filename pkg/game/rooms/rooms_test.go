package rooms

import (
	"testing"

	"roguelike3d/pkg/engine/rng"
	"roguelike3d/pkg/engine/world"
)

func generate(t *testing.T, kind Kind, seed int64) *Room {
	t.Helper()
	r := rng.New(seed)
	return Generate(kind, r, seed, DefaultSizes())
}

func TestGenerate_SizeWithinRange(t *testing.T) {
	sizes := DefaultSizes()
	for _, kind := range AllKinds() {
		sr := sizes.For(kind)
		for seed := int64(0); seed < 20; seed++ {
			room := generate(t, kind, seed)
			s := room.Size
			if s.Width < sr.Min.Width || s.Width > sr.Max.Width ||
				s.Height < sr.Min.Height || s.Height > sr.Max.Height ||
				s.Length < sr.Min.Length || s.Length > sr.Max.Length {
				t.Errorf("%s seed %d: size %v outside %v..%v", kind, seed, s, sr.Min, sr.Max)
			}
			if len(room.Tiles) != s.Volume() {
				t.Errorf("%s seed %d: %d tiles for volume %d", kind, seed, len(room.Tiles), s.Volume())
			}
			if room.Kind != kind || room.Seed != seed {
				t.Errorf("room tagged %s/%d, want %s/%d", room.Kind, room.Seed, kind, seed)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, kind := range AllKinds() {
		a, b := generate(t, kind, 77), generate(t, kind, 77)
		if a.Size != b.Size || a.WallColor != b.WallColor || len(a.EdgeTiles) != len(b.EdgeTiles) {
			t.Fatalf("%s: same seed produced different rooms", kind)
		}
		for i := range a.Tiles {
			if a.Tiles[i] != b.Tiles[i] {
				t.Fatalf("%s: tile %d differs", kind, i)
			}
		}
	}
}

func TestGenerate_MarginIsNeverSolid(t *testing.T) {
	for _, kind := range AllKinds() {
		room := generate(t, kind, 5)
		world.Box{Size: room.Size}.ForEach(func(c world.Coordinates) {
			if inBody(c, room.Size) {
				return
			}
			if tt := room.Local(c).Type; tt != world.Void && tt != world.FakeAir {
				t.Errorf("%s: margin cell %v = %v", kind, c, tt)
			}
		})
	}
}

func TestGenerate_AirIsEnclosed(t *testing.T) {
	for _, kind := range AllKinds() {
		for seed := int64(0); seed < 5; seed++ {
			room := generate(t, kind, seed)
			world.Box{Size: room.Size}.ForEach(func(c world.Coordinates) {
				if room.Local(c).Type != world.Air {
					return
				}
				for _, n := range c.Neighbours() {
					if outside(room, n) {
						t.Errorf("%s seed %d: Air cell %v touches the outside at %v", kind, seed, c, n)
					}
				}
			})
		}
	}
}

func TestGenerate_NoIsolatedWalls(t *testing.T) {
	for _, kind := range []Kind{Oval, Ellipsoid} {
		room := generate(t, kind, 9)
		world.Box{Size: room.Size}.ForEach(func(c world.Coordinates) {
			if room.Local(c).Type == world.Block && !touchesAir(room, c) {
				t.Errorf("%s: wall %v has no Air neighbour", kind, c)
			}
		})
	}
}

func TestGenerate_EdgeTiles(t *testing.T) {
	for _, kind := range AllKinds() {
		for seed := int64(0); seed < 10; seed++ {
			room := generate(t, kind, seed)
			if len(room.EdgeTiles) == 0 {
				t.Fatalf("%s seed %d: no edge tiles", kind, seed)
			}
			y := room.EdgeTiles[0].Y
			for _, c := range room.EdgeTiles {
				if c.Y != y {
					t.Errorf("%s seed %d: edge tiles on layers %d and %d", kind, seed, y, c.Y)
				}
				if room.Local(c).Type != world.Block {
					t.Errorf("%s seed %d: edge tile %v is %v", kind, seed, c, room.Local(c).Type)
				}
			}
		}
	}
}

func TestGenerateRect_MatchesBoxLayout(t *testing.T) {
	room := generate(t, Rect, 1)
	s := room.Size
	if got := room.Local(world.Coordinates{}).Type; got != world.FakeAir {
		t.Errorf("corner margin = %v, want FakeAir", got)
	}
	if got := room.Local(world.Coordinates{X: 1, Y: 1, Z: 1}).Type; got != world.Block {
		t.Errorf("shell corner = %v, want Block", got)
	}
	if got := room.Local(world.Coordinates{X: s.Width / 2, Y: s.Height / 2, Z: s.Length / 2}).Type; got != world.Air {
		t.Errorf("center = %v, want Air", got)
	}
	// Two walls per interior column on each axis, all on the first interior layer.
	want := 2*(s.Width-4) + 2*(s.Length-4)
	if len(room.EdgeTiles) != want {
		t.Errorf("len(EdgeTiles) = %d, want %d", len(room.EdgeTiles), want)
	}
	for _, c := range room.EdgeTiles {
		if c.Y != Margin+1 {
			t.Errorf("edge tile %v not on layer %d", c, Margin+1)
		}
	}
}

func TestPlace_SkipsFakeAir(t *testing.T) {
	room := generate(t, Rect, 3)
	room.Offset = world.Coordinates{X: 2, Y: 1, Z: 3}
	dims := world.Dimensions{Width: 40, Height: 20, Length: 40}
	grid := world.NewGrid(dims)
	room.Place(grid)

	if grid.Count(world.FakeAir) != 0 {
		t.Error("FakeAir leaked into the grid")
	}
	if got := grid.Type(room.Offset); got != world.Void {
		t.Errorf("margin corner in grid = %v, want Void", got)
	}
	for _, e := range room.WorldEdgeTiles() {
		if got := grid.Type(e); got != world.Block {
			t.Errorf("edge tile %v in grid = %v, want Block", e, got)
		}
	}
	if !room.Box().Contains(room.Center()) {
		t.Error("room center outside its box")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range AllKinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("cave"); err == nil {
		t.Error("ParseKind accepted an unknown kind")
	}
}

func TestSizes_Validate(t *testing.T) {
	if err := DefaultSizes().Validate(); err != nil {
		t.Fatalf("DefaultSizes().Validate() = %v", err)
	}
	s := DefaultSizes()
	s.Oval.Min.Width = 30
	if err := s.Validate(); err == nil {
		t.Error("inverted range accepted")
	}
	s = DefaultSizes()
	s.Rect.Min.Height = 3
	if err := s.Validate(); err == nil {
		t.Error("too small room accepted")
	}
}
