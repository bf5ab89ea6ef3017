package x402

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"
)

// nonceSource issues single-use values. A wall-clock component alone is
// not enough: calls within the same tick are disambiguated by a monotonic
// counter plus a crypto-random tail.
type nonceSource struct {
	counter atomic.Uint64
}

func (n *nonceSource) Next() string {
	seq := n.counter.Add(1)
	var tail [4]byte
	_, _ = rand.Read(tail[:])
	return fmt.Sprintf("%x-%d-%s", time.Now().UnixNano(), seq, hex.EncodeToString(tail[:]))
}
