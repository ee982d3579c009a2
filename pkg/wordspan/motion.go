package wordspan

// PrevWordStart returns the offset of the beginning of the word that ends
// at or before offset, like Vim's 'b' motion. Out-of-range offsets clamp.
func (l *Locator) PrevWordStart(text string, offset int) int {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	pos := clamp(offset, 0, len(runes))
	if pos > 0 {
		pos--
	}
	for pos > 0 && !l.class.IsWordRune(runes[pos]) {
		pos--
	}
	for pos > 0 && l.class.IsWordRune(runes[pos-1]) {
		pos--
	}
	return pos
}

// NextWordStart returns the offset of the start of the next word after
// offset, like Vim's 'w' motion. It returns the end of text when no word
// follows.
func (l *Locator) NextWordStart(text string, offset int) int {
	runes := []rune(text)
	pos := clamp(offset, 0, len(runes))
	for pos < len(runes) && l.class.IsWordRune(runes[pos]) {
		pos++
	}
	for pos < len(runes) && !l.class.IsWordRune(runes[pos]) {
		pos++
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
