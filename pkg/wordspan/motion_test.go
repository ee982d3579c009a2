package wordspan

import "testing"

func TestNextWordStart(t *testing.T) {
	l := NewLocator()
	text := "one two three"
	for _, c := range []struct{ in, want int }{{0, 4}, {2, 4}, {4, 8}, {8, 13}, {20, 13}} {
		if got := l.NextWordStart(text, c.in); got != c.want {
			t.Fatalf("NextWordStart(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestPrevWordStart(t *testing.T) {
	l := NewLocator()
	text := "one two three"
	for _, c := range []struct{ in, want int }{{0, 0}, {2, 0}, {5, 4}, {8, 4}, {13, 8}, {30, 8}} {
		if got := l.PrevWordStart(text, c.in); got != c.want {
			t.Fatalf("PrevWordStart(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
	if got := l.PrevWordStart("", 3); got != 0 {
		t.Fatalf("expected 0 for empty text, got %d", got)
	}
}
