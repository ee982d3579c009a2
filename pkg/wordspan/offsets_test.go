package wordspan

import "testing"

func TestRuneOffsetFromByte(t *testing.T) {
	text := "aéb" // é is two bytes
	cases := []struct{ in, want int }{
		{-3, 0}, {0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}, {10, 3},
	}
	for _, c := range cases {
		if got := RuneOffsetFromByte(text, c.in); got != c.want {
			t.Fatalf("RuneOffsetFromByte(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestByteOffsetFromRune(t *testing.T) {
	text := "aéb"
	cases := []struct{ in, want int }{
		{-1, 0}, {0, 0}, {1, 1}, {2, 3}, {3, 4}, {9, 4},
	}
	for _, c := range cases {
		if got := ByteOffsetFromRune(text, c.in); got != c.want {
			t.Fatalf("ByteOffsetFromRune(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestRuneOffsetFromUTF16(t *testing.T) {
	text := "a😀b" // the emoji is a surrogate pair
	if n := UTF16Len(text); n != 4 {
		t.Fatalf("expected UTF-16 length 4, got %d", n)
	}
	cases := []struct{ in, want int }{
		{-1, 0}, {0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 3}, {99, 3},
	}
	for _, c := range cases {
		if got := RuneOffsetFromUTF16(text, c.in); got != c.want {
			t.Fatalf("RuneOffsetFromUTF16(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}
