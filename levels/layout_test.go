package levels

import (
	"math/rand"
	"testing"
)

func TestScriptLayoutOffsets(t *testing.T) {
	layout, err := NewScriptLayout("test", []byte(`
offset := func(level) {
	if level < 3 {
		return 0
	}
	return level * 2.5
}
`))
	if err != nil {
		t.Fatalf("NewScriptLayout: %v", err)
	}

	cases := []struct {
		level int
		want  float64
	}{
		{1, 0},
		{2, 0},
		{4, 10},
		{10, 25},
	}
	for _, c := range cases {
		got, err := layout.Offset(c.level)
		if err != nil {
			t.Fatalf("Offset(%d): %v", c.level, err)
		}
		if got != c.want {
			t.Fatalf("Offset(%d) = %v, want %v", c.level, got, c.want)
		}
	}

	cfg := testConfig()
	lvls, err := Generate(cfg, rand.New(rand.NewSource(1)), layout)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := cfg.CanvasWidth/2 + 10; lvls[4].Floor.X != want {
		t.Fatalf("level 4 floor x %v, want %v", lvls[4].Floor.X, want)
	}
	if lvls[4].Floor.MinX != 40 || lvls[4].Floor.MaxX != 355 {
		t.Fatalf("level 4 span not shifted: [%v, %v]", lvls[4].Floor.MinX, lvls[4].Floor.MaxX)
	}
}

func TestScriptLayoutErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", "   "},
		{"no_offset_func", "x := 1"},
		{"syntax", "offset := func(level) {"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewScriptLayout(c.name, []byte(c.src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	t.Run("non_numeric", func(t *testing.T) {
		layout, err := NewScriptLayout("str", []byte(`offset := func(level) { return "left" }`))
		if err != nil {
			t.Fatalf("NewScriptLayout: %v", err)
		}
		if _, err := layout.Offset(1); err == nil {
			t.Fatalf("expected error for string offset")
		}
	})
}
