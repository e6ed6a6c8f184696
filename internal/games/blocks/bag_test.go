package blocks

import "testing"

func TestBagYieldsEachTypeOncePerWindow(t *testing.T) {
	bag := NewBag(42)

	for window := 0; window < 5; window++ {
		seen := make(map[PieceType]int)
		for i := 0; i < int(PieceTypeCount); i++ {
			seen[bag.Next()]++
		}
		for typ := PieceType(0); typ < PieceTypeCount; typ++ {
			if seen[typ] != 1 {
				t.Fatalf("window %d: type %v drawn %d times", window, typ, seen[typ])
			}
		}
	}
}

func TestBagIsDeterministicPerSeed(t *testing.T) {
	a := NewBag(7)
	b := NewBag(7)

	for i := 0; i < 28; i++ {
		if got, want := a.Next(), b.Next(); got != want {
			t.Fatalf("draw %d: %v != %v for the same seed", i, got, want)
		}
	}
}
