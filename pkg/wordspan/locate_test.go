package wordspan

import (
	"errors"
	"sync"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sentence = "This is a test."

func TestLocateSentence(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		offset int
		want   Span
		found  bool
	}{
		{name: "first word", text: sentence, offset: 0, want: Span{0, 4}, found: true},
		{name: "space after first word", text: sentence, offset: 4, found: false},
		{name: "inside test", text: sentence, offset: 10, want: Span{10, 14}, found: true},
		{name: "last letter of test", text: sentence, offset: 13, want: Span{10, 14}, found: true},
		{name: "trailing period", text: sentence, offset: 14, found: false},
		{name: "end of text after period", text: sentence, offset: 15, found: false},
		{name: "empty text", text: "", offset: 0, found: false},
		{name: "end of text after word", text: "test", offset: 4, want: Span{0, 4}, found: true},
		{name: "single letter word", text: sentence, offset: 8, want: Span{8, 9}, found: true},
		{name: "underscore joins", text: "snake_case id", offset: 6, want: Span{0, 10}, found: true},
		{name: "digits", text: "room 101.", offset: 6, want: Span{5, 8}, found: true},
		{name: "non-ascii letters", text: "héllo wörld", offset: 7, want: Span{6, 11}, found: true},
		{name: "apostrophe splits", text: "don't stop", offset: 1, want: Span{0, 3}, found: true},
		{name: "on apostrophe", text: "don't stop", offset: 3, found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Locate(tt.text, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Equal(t, Span{}, got)
			}
		})
	}
}

func TestLocateSentenceSubstrings(t *testing.T) {
	span, ok, err := Locate(sentence, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "This", span.Text(sentence))

	span, ok, err = Locate(sentence, 10)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "test", span.Text(sentence))
}

func TestLocateInvalidOffset(t *testing.T) {
	for _, offset := range []int{-1, 16, 100} {
		_, ok, err := Locate(sentence, offset)
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrInvalidOffset))

		var oe *OffsetError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, offset, oe.Offset)
		assert.Equal(t, 15, oe.Length)
	}
	_, _, err := Locate("", 1)
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestLocateSpanInvariants(t *testing.T) {
	texts := []string{
		sentence,
		"",
		"a",
		"  leading and trailing  ",
		"x_1 + y_2 = z",
		"naïve café, über-cool!",
		"tabs\tand\nnewlines",
		"日本語 テキスト",
	}
	for _, text := range texts {
		runes := []rune(text)
		for offset := 0; offset <= len(runes); offset++ {
			span, ok, err := Locate(text, offset)
			require.NoError(t, err)
			if !ok {
				continue
			}
			assert.LessOrEqual(t, span.Start, offset, "%q @%d", text, offset)
			assert.LessOrEqual(t, offset, span.End, "%q @%d", text, offset)
			assert.Less(t, span.Start, span.End)
			for _, r := range runes[span.Start:span.End] {
				assert.True(t, IsWordRune(r), "%q @%d: %q", text, offset, r)
			}
			if span.Start > 0 {
				assert.False(t, IsWordRune(runes[span.Start-1]))
			}
			if span.End < len(runes) {
				assert.False(t, IsWordRune(runes[span.End]))
			}

			again, ok2, err2 := Locate(text, offset)
			require.NoError(t, err2)
			assert.True(t, ok2)
			assert.Equal(t, span, again)
		}
	}
}

func TestLocatorWithClassifier(t *testing.T) {
	l := NewLocator(WithClassifier(ClassifierFunc(func(r rune) bool {
		return !unicode.IsSpace(r)
	})))
	span, ok, err := l.Locate("don't stop", 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Span{0, 5}, span)

	fallback := NewLocator(WithClassifier(nil)).Classifier()
	require.NotNil(t, fallback)
	assert.False(t, fallback.IsWordRune('\''))
}

func TestLocateConcurrent(t *testing.T) {
	l := NewLocator()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				span, ok, err := l.Locate(sentence, 11)
				if err != nil || !ok || span != (Span{10, 14}) {
					t.Errorf("unexpected result %v %v %v", span, ok, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestSpanHelpers(t *testing.T) {
	s := Span{Start: 2, End: 5}
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
	assert.Equal(t, "[2,5)", s.String())
	assert.Equal(t, "llo", s.Text("hello"))
	assert.Equal(t, "él", Span{Start: 1, End: 3}.Text("héllo"))
}
