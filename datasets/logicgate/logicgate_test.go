package logicgate

import "testing"

func TestTruthTables(t *testing.T) {
	var want = map[Gate][4]int{
		AND:  {0, 0, 0, 1},
		OR:   {0, 1, 1, 1},
		NAND: {1, 1, 1, 0},
		NOR:  {1, 0, 0, 0},
		XOR:  {0, 1, 1, 0},
	}
	for g, outputs := range want {
		if g.Len() != 4 {
			t.Fatalf("%s: Len() == %d", g, g.Len())
		}
		for n := 0; n < g.Len(); n++ {
			s := g.Get(n)
			if s.Len() != 2 {
				t.Errorf("%s row %d has %d features", g, n, s.Len())
			}
			if got := s.Output(); got != outputs[n] {
				t.Errorf("%s(%v, %v) == %d, want %d", g, s.Feature(0), s.Feature(1), got, outputs[n])
			}
		}
	}
}

func TestParse(t *testing.T) {
	for _, name := range []string{"and", "OR", "Nand", "nor", "xor"} {
		g, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q): %v", name, err)
			continue
		}
		if g.String() != names[g] {
			t.Errorf("Parse(%q) == %s", name, g)
		}
	}
	if _, err := Parse("xnor"); err == nil {
		t.Error("Parse(xnor) should fail")
	}
	if XOR.Separable() || !AND.Separable() {
		t.Error("only XOR is not linearly separable")
	}
}
