package scan

import "strings"

const (
	// DefaultWindowRadius bounds how far each direction the block scan reaches
	// from an endpoint's anchor offset.
	DefaultWindowRadius = 30000
	// DefaultMaxBlocks caps the candidates extracted per window.
	DefaultMaxBlocks = 12
	// DefaultMinBlockLen filters incidental brace noise: a block is kept only
	// if its trimmed length is strictly greater than this.
	DefaultMinBlockLen = 50
)

// Window bounds the per-endpoint block scan against documents of unbounded
// length.
type Window struct {
	Radius      int
	MaxBlocks   int
	MinBlockLen int
}

// DefaultWindow returns the standard scan bounds.
func DefaultWindow() Window {
	return Window{
		Radius:      DefaultWindowRadius,
		MaxBlocks:   DefaultMaxBlocks,
		MinBlockLen: DefaultMinBlockLen,
	}
}

// BlocksNear extracts balanced-brace candidate blocks from the window around
// center, in appearance order. Scanning resumes after each closing brace, so a
// consumed region is never re-scanned. An opening brace whose depth never
// returns to zero before the window ends is dropped and the scan stops there.
func BlocksNear(text string, center int, w Window) []string {
	start := center - w.Radius
	if start < 0 {
		start = 0
	}
	end := center + w.Radius
	if end > len(text) {
		end = len(text)
	}
	span := text[start:end]

	var out []string
	i := 0
	for len(out) < w.MaxBlocks {
		p := strings.IndexByte(span[i:], '{')
		if p == -1 {
			break
		}
		p += i

		depth := 0
		closed := false
		for j := p; j < len(span) && !closed; j++ {
			switch span[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					raw := strings.TrimSpace(span[p : j+1])
					if len(raw) > w.MinBlockLen {
						out = append(out, raw)
					}
					i = j + 1
					closed = true
				}
			}
		}
		if !closed {
			// Truncated object at the window edge: no further progress possible.
			break
		}
	}
	return out
}
