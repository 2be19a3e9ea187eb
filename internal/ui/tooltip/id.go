package tooltip

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// idLength matches the short base-36 tokens used as registry keys.
const idLength = 7

// IDGenerator returns a new opaque tooltip identifier.
type IDGenerator func() string

// RandomID returns a short random base-36 token. Collisions are not
// guarded against; with 36^7 values they are negligible for one page.
func RandomID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(36*36*36*36*36*36*36))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic("tooltip: random id: " + err.Error())
	}
	s := strconv.FormatInt(n.Int64(), 36)
	for len(s) < idLength {
		s = "0" + s
	}
	return s
}

// SequentialIDs returns a deterministic generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) IDGenerator {
	var n int
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}
