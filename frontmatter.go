package ulmark

import "strings"

// frontMatterRegion reports the byte range of a leading front matter block,
// from the opening delimiter to the end of the closing delimiter line.
// Only a block whose first inner line looks like metadata counts.
func frontMatterRegion(text string) ([2]int, bool) {
	openLine, openNext, _, ok := nextLine(text, 0)
	if !ok {
		return [2]int{}, false
	}
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return [2]int{}, false
	}
	secondLine, _, _, ok := nextLine(text, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return [2]int{}, false
	}
	end, found := findClosingFrontMatterDelimiter(text, openNext, delim)
	if !found {
		return [2]int{}, false
	}
	return [2]int{0, end}, true
}

// nextLine returns the line starting at start without its line ending, the
// offset of the following line and the offset where the line content ends.
func nextLine(src string, start int) (string, int, int, bool) {
	if start >= len(src) {
		return "", 0, 0, false
	}
	i := strings.IndexByte(src[start:], '\n')
	if i < 0 {
		line := trimCR(src[start:])
		return line, len(src), start + len(line), true
	}
	lineEnd := start + i
	line := trimCR(src[start:lineEnd])
	return line, lineEnd + 1, start + len(line), true
}

func parseOpeningFrontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(trimBOM(line))
	switch trimmed {
	case "---", "+++", ";;;":
		return trimmed, true
	default:
		return "", false
	}
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.Contains(trimmed, ":") || strings.Contains(trimmed, "=")
}

func findClosingFrontMatterDelimiter(src string, start int, delim string) (int, bool) {
	for idx := start; idx < len(src); {
		line, next, end, ok := nextLine(src, idx)
		if !ok {
			return 0, false
		}
		if strings.TrimSpace(line) == delim {
			return end, true
		}
		idx = next
	}
	return 0, false
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}

func trimBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
