package deck

import (
	"crypto/cipher"
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

// Source yields uniform integers in [0, n). Shuffle is only as uniform as
// its Source.
type Source interface {
	Intn(n int) int
}

var suite suites.Suite = suites.MustFind("Ed25519")

type streamSource struct {
	stream cipher.Stream
}

// NewStreamSource draws unbiased integers from a kyber random stream.
func NewStreamSource(stream cipher.Stream) Source {
	return streamSource{stream: stream}
}

// NewCryptoSource draws from the Ed25519 suite's random stream, which reads
// the system CSPRNG.
func NewCryptoSource() Source {
	return NewStreamSource(suite.RandomStream())
}

// Intn draws from [1, n] since random.Int never yields 0, then shifts down.
func (s streamSource) Intn(n int) int {
	return int(random.Int(big.NewInt(int64(n)+1), s.stream).Int64()) - 1
}

type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource gives reproducible shuffles for tests and replays.
func NewSeededSource(seed int64) Source {
	return seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s seededSource) Intn(n int) int {
	return s.rng.Intn(n)
}
