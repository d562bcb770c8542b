package word

// Tokenize scans buf left to right, calling emit with the lowercased text
// of every maximal word run fully contained in buf. It implements spec
// §4.1's resumption contract:
//
//   - if the scan ends mid-word and eof is true, the trailing word is
//     emitted and len(buf) is returned (everything consumed);
//   - if the scan ends mid-word and eof is false, the trailing word is
//     withheld and the offset where it started is returned, so the caller
//     can relocate buf[consumed:] to the front of its buffer and retry
//     once more bytes are available;
//   - otherwise len(buf) is returned.
func Tokenize(buf []byte, eof bool, emit func(word string)) (consumed int) {
	inWord := false
	wordStart := 0

	for i := 0; i < len(buf); i++ {
		c := buf[i]
		switch {
		case !inWord && IsWordChar(c):
			inWord = true
			wordStart = i
		case inWord && !IsWordChar(c):
			emit(Lower(buf[wordStart:i]))
			inWord = false
		}
	}

	if inWord {
		if eof {
			emit(Lower(buf[wordStart:]))
			return len(buf)
		}
		return wordStart
	}
	return len(buf)
}
