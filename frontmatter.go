package mdtabs

import "bytes"

var frontMatterDelimiters = [][]byte{[]byte("---"), []byte("+++"), []byte(";;;")}

// StripFrontMatter removes a YAML (---), TOML (+++) or JSON (;;;) front
// matter block from the start of src. The block is only removed when its
// first line looks like metadata and a closing delimiter exists.
func StripFrontMatter(src []byte) []byte {
	line, rest := cutLine(trimBOM(src))
	delim := frontMatterDelimiter(line)
	if delim == nil {
		return src
	}
	first, _ := cutLine(rest)
	if !metadataLikely(first) {
		return src
	}
	for len(rest) > 0 {
		line, rest = cutLine(rest)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return rest
		}
	}
	return src
}

func frontMatterDelimiter(line []byte) []byte {
	trimmed := bytes.TrimSpace(line)
	for _, d := range frontMatterDelimiters {
		if bytes.Equal(trimmed, d) {
			return d
		}
	}
	return nil
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

// cutLine splits src after the first newline. The returned line has no
// line terminator.
func cutLine(src []byte) (line, rest []byte) {
	i := bytes.IndexByte(src, '\n')
	if i < 0 {
		return bytes.TrimSuffix(src, []byte("\r")), nil
	}
	return bytes.TrimSuffix(src[:i], []byte("\r")), src[i+1:]
}

func trimBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
}
