package engine

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites mobius script source before zygomys sees it:
//
//  1. :keyword becomes the string literal "__kw_keyword", so keywords need
//     no global symbols and never collide with user variables.
//  2. A hyphen between identifier characters becomes an underscore
//     (surface-area -> surface_area); zygomys reads a bare hyphen as minus.
//  3. ; and ;; line comments become // comments.
//
// String literals (double-quoted and backtick) pass through untouched.
func preprocessSource(source string) string {
	s := &scanner{
		src: []byte(source),
		out: make([]byte, 0, len(source)+len(source)/4),
	}
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '"':
			s.copyString('"', true)
		case c == '`':
			s.copyString('`', false)
		case c == ';':
			s.comment()
		case c == ':' && s.keyword():
		case c == '-' && s.kebab():
		default:
			s.out = append(s.out, c)
			s.pos++
		}
	}
	return string(s.out)
}

type scanner struct {
	src []byte
	out []byte
	pos int
}

// copyString copies a quoted literal including both quotes. An unterminated
// literal is copied to the end of input.
func (s *scanner) copyString(quote byte, escapes bool) {
	s.out = append(s.out, quote)
	s.pos++
	for s.pos < len(s.src) && s.src[s.pos] != quote {
		if escapes && s.src[s.pos] == '\\' && s.pos+1 < len(s.src) {
			s.out = append(s.out, s.src[s.pos], s.src[s.pos+1])
			s.pos += 2
			continue
		}
		s.out = append(s.out, s.src[s.pos])
		s.pos++
	}
	if s.pos < len(s.src) {
		s.out = append(s.out, quote)
		s.pos++
	}
}

// comment rewrites a run of semicolons to // and copies the rest of the line.
func (s *scanner) comment() {
	s.out = append(s.out, '/', '/')
	for s.pos < len(s.src) && s.src[s.pos] == ';' {
		s.pos++
	}
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.out = append(s.out, s.src[s.pos])
		s.pos++
	}
}

// keyword rewrites :name at s.pos. It leaves := alone and reports false
// when the colon does not start a keyword.
func (s *scanner) keyword() bool {
	if s.pos+1 >= len(s.src) {
		return false
	}
	next := s.src[s.pos+1]
	if next == '=' {
		s.out = append(s.out, ':', '=')
		s.pos += 2
		return true
	}
	if !isLetter(next) {
		return false
	}
	end := s.pos + 1
	for end < len(s.src) && isKWChar(s.src[end]) {
		end++
	}
	s.out = append(s.out, '"')
	s.out = append(s.out, kwPrefix...)
	s.out = append(s.out, s.src[s.pos+1:end]...)
	s.out = append(s.out, '"')
	s.pos = end
	return true
}

// kebab turns an identifier-joining hyphen into an underscore.
func (s *scanner) kebab() bool {
	if s.pos == 0 || s.pos+1 >= len(s.src) {
		return false
	}
	if !isIdentChar(s.src[s.pos-1]) || !isLetter(s.src[s.pos+1]) {
		return false
	}
	s.out = append(s.out, '_')
	s.pos++
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}
