package parser

// checkQuotes reports a quoted field that is still open at the end of content.
// It follows the field rules of the lenient csv reader: a quote opens a quoted
// field only at the start of a field, and closes it only when followed by the
// delimiter, a line break or the end of input. Quotes anywhere else are literal.
func checkQuotes(content string, delim, comment rune) error {
	runes := []rune(content)

	line := 1
	openedAt := 0
	inQuotes := false
	fieldStart, lineStart := true, true

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inQuotes {
			switch c {
			case '"':
				if i+1 == len(runes) {
					inQuotes = false
					continue
				}
				switch runes[i+1] {
				case '"':
					i++
				case delim, '\r', '\n':
					inQuotes = false
				}
			case '\n':
				line++
			}
			continue
		}

		switch {
		case c == '\n':
			line++
			fieldStart, lineStart = true, true
			continue
		case lineStart && comment != 0 && c == comment:
			for i+1 < len(runes) && runes[i+1] != '\n' {
				i++
			}
			continue
		case fieldStart && c == '"':
			inQuotes = true
			openedAt = line
		}

		fieldStart = c == delim
		lineStart = false
	}

	if inQuotes {
		return NewParseError(openedAt, 0, ErrQuote)
	}
	return nil
}
