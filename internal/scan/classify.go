package scan

import "strings"

// Role keyword sets, matched as substrings of the lowercased block text. A
// block matching both sets is always treated as a response: response
// vocabulary takes precedence over request vocabulary.
var (
	responseKeywords = []string{"msgrshdr", "rspcode", "responsejson", "error"}
	requestKeywords  = []string{"securitycontext", "custid", "userid", "data", "body"}
)

// Classification is the request/response pair picked for one endpoint. The
// fallback flags record that no keyword matched and the longest-block rule
// chose the winner instead.
type Classification struct {
	Input          string
	Output         string
	InputFallback  bool
	OutputFallback bool
}

// Classify selects at most one input-role and one output-role block from
// candidates. The first request-like block becomes input and the first
// response-like block becomes output. When no block qualifies for a role, the
// longest candidate wins (ties to first occurrence), with the output fallback
// excluding the block already chosen as input.
func Classify(blocks []string) Classification {
	var c Classification

	inIdx, outIdx := -1, -1
	for i, b := range blocks {
		if inIdx == -1 && isRequestLike(b) {
			inIdx = i
		}
		if outIdx == -1 && isResponseLike(b) {
			outIdx = i
		}
	}

	if inIdx == -1 && len(blocks) > 0 {
		inIdx = longestBlock(blocks, -1)
		c.InputFallback = true
	}
	if outIdx == -1 {
		if idx := longestBlock(blocks, inIdx); idx != -1 {
			outIdx = idx
			c.OutputFallback = true
		}
	}

	if inIdx != -1 {
		c.Input = blocks[inIdx]
	}
	if outIdx != -1 {
		c.Output = blocks[outIdx]
	}
	return c
}

func isResponseLike(b string) bool {
	return containsAny(b, responseKeywords)
}

func isRequestLike(b string) bool {
	return containsAny(b, requestKeywords) && !isResponseLike(b)
}

func containsAny(s string, keys []string) bool {
	t := strings.ToLower(s)
	for _, k := range keys {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// longestBlock returns the index of the longest block, skipping exclude, with
// ties going to the earliest occurrence. Returns -1 when nothing remains.
func longestBlock(blocks []string, exclude int) int {
	best := -1
	for i, b := range blocks {
		if i == exclude {
			continue
		}
		if best == -1 || len(b) > len(blocks[best]) {
			best = i
		}
	}
	return best
}
