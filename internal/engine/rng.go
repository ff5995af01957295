package engine

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// Seeds key a reproducible run. Server is the committed secret, Client the
// public contribution; both are plain ASCII strings.
type Seeds struct {
	Server string `json:"server"`
	Client string `json:"client"`
}

// Source yields uniform floats in [0, 1). Implementations are not required
// to be safe for concurrent use.
type Source interface {
	Float64() float64
}

// Stream is the deterministic float source for a single round. Bytes come
// from HMAC-SHA256 keyed by the server seed over "client:round:block", 32 at
// a time, and every float consumes exactly 4 of them.
type Stream struct {
	seeds  Seeds
	round  uint64
	block  uint64
	pos    int
	buffer [32]byte
}

// NewStream creates the float stream for one round of a seeded run. Streams
// for different rounds of the same seed pair are independent.
func NewStream(seeds Seeds, round uint64) *Stream {
	s := &Stream{seeds: seeds, round: round}
	s.fillBlock()
	return s
}

// Float64 returns the next float in [0, 1).
func (s *Stream) Float64() float64 {
	b0 := s.next()
	b1 := s.next()
	b2 := s.next()
	b3 := s.next()

	return bytesToFloat([4]byte{b0, b1, b2, b3})
}

// next returns the next byte, advancing to a fresh HMAC block when the
// current one is exhausted.
func (s *Stream) next() byte {
	if s.pos >= len(s.buffer) {
		s.block++
		s.pos = 0
		s.fillBlock()
	}

	b := s.buffer[s.pos]
	s.pos++
	return b
}

func (s *Stream) fillBlock() {
	h := hmac.New(sha256.New, []byte(s.seeds.Server))
	message := fmt.Sprintf("%s:%d:%d", s.seeds.Client, s.round, s.block)
	h.Write([]byte(message))
	copy(s.buffer[:], h.Sum(nil))
}

// bytesToFloat converts exactly 4 bytes to a float64, each byte adding
// precision at the next power of 256. The result always lands in [0, 1).
func bytesToFloat(bytes [4]byte) float64 {
	result := 0.0
	for i, b := range bytes {
		divider := math.Pow(256, float64(i+1))
		result += float64(b) / divider
	}
	return result
}

// Floats generates count floats for the given round of a seeded run.
func Floats(seeds Seeds, round uint64, count int) []float64 {
	return FloatsInto(make([]float64, count), seeds, round, count)
}

// FloatsInto fills dst with count floats for the given round, reusing dst's
// backing array when it is large enough.
func FloatsInto(dst []float64, seeds Seeds, round uint64, count int) []float64 {
	if len(dst) < count {
		dst = make([]float64, count)
	}

	s := NewStream(seeds, round)
	for i := 0; i < count; i++ {
		dst[i] = s.Float64()
	}

	return dst[:count]
}

// EntropySource draws floats from crypto/rand. Draws are independent and not
// reproducible; it is the source for live (unseeded) runs.
type EntropySource struct{}

// NewEntropySource returns a crypto/rand backed source.
func NewEntropySource() EntropySource { return EntropySource{} }

// Float64 returns a uniform float in [0, 1) built from 53 random bits.
func (EntropySource) Float64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}

	u := binary.BigEndian.Uint64(b[:]) >> 11
	return float64(u) / (1 << 53)
}

// SeedHash returns the hex SHA-256 commitment for a server seed. Publishing
// the hash before a run and the seed after it lets anyone replay the batch.
func SeedHash(serverSeed string) string {
	sum := sha256.Sum256([]byte(serverSeed))
	return hex.EncodeToString(sum[:])
}
