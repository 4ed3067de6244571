package seriallink

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

const floatPattern = `([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)`

// samplePattern matches "Roll(<f>) Pitch(<f>) Yaw(<f>)". Whitespace between
// the fields and before each number is optional, as with scanf.
var samplePattern = regexp.MustCompile(
	`Roll\(\s*` + floatPattern + `\)\s*Pitch\(\s*` + floatPattern + `\)\s*Yaw\(\s*` + floatPattern + `\)`)

// Parse returns the first complete sample found in b.
func Parse(b []byte) (orientation.Sample, bool) {
	m := samplePattern.FindSubmatch(b)
	if m == nil {
		return orientation.Sample{}, false
	}
	return sampleFromMatch(m)
}

func sampleFromMatch(m [][]byte) (orientation.Sample, bool) {
	var v [3]float32
	for i := range v {
		// Out of range values saturate to ±Inf, as scanf stores them.
		f, err := strconv.ParseFloat(string(m[i+1]), 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return orientation.Sample{}, false
		}
		v[i] = float32(f)
	}
	return orientation.Sample{Roll: v[0], Pitch: v[1], Yaw: v[2]}, true
}

// Parser turns successive reads into samples.
//
// Without reassembly each chunk is parsed on its own and a sample split
// across two reads is lost. With reassembly the bytes after the last match
// (at most max of them) are prepended to the next chunk, and the most recent
// match wins.
type Parser struct {
	reassemble bool
	max        int
	tail       []byte
}

func NewParser(reassemble bool, max int) *Parser {
	return &Parser{reassemble: reassemble, max: max}
}

// Feed parses one chunk. The boolean is false when the chunk (plus any
// carried tail) holds no complete sample.
func (p *Parser) Feed(chunk []byte) (orientation.Sample, bool) {
	if !p.reassemble {
		return Parse(chunk)
	}

	data := append(p.tail, chunk...)
	matches := samplePattern.FindAllSubmatchIndex(data, -1)

	rest := data
	var (
		s  orientation.Sample
		ok bool
	)
	if len(matches) > 0 {
		last := matches[len(matches)-1]
		sub := make([][]byte, len(last)/2)
		for i := range sub {
			sub[i] = data[last[2*i]:last[2*i+1]]
		}
		s, ok = sampleFromMatch(sub)
		rest = data[last[1]:]
	}
	if len(rest) > p.max {
		rest = rest[len(rest)-p.max:]
	}
	p.tail = append(p.tail[:0:0], rest...)
	return s, ok
}

// Pending reports how many bytes are carried over to the next Feed.
func (p *Parser) Pending() int {
	return len(p.tail)
}
