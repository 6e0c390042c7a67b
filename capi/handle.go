// Command capi builds with -buildmode=c-shared (or c-archive) into a
// loadable library exposing the spz codec through a C ABI: opaque integer
// handles so that a C caller can load, inspect, convert, and save splats
// without touching a Go pointer directly. Go pointers can't safely cross
// the cgo boundary long-term, so every Splat and Header is kept alive
// behind a handle table guarded by a mutex. cgo's //export mechanism
// requires these functions to live in package main.
package main

import (
	"sync"
	"sync/atomic"

	"github.com/dhawkins/spz-go/spz"
)

// Handle is an opaque reference to a live Splat or Header, valid from the
// call that created it until the matching *_free call.
type Handle uint64

var nextHandle uint64

func newHandle() Handle {
	return Handle(atomic.AddUint64(&nextHandle, 1))
}

var (
	splatsMu sync.RWMutex
	splats   = make(map[Handle]*spz.Splat)

	headersMu sync.RWMutex
	headers   = make(map[Handle]*spz.Header)
)

// registerSplat stores s behind a freshly allocated handle.
func registerSplat(s *spz.Splat) Handle {
	h := newHandle()
	splatsMu.Lock()
	splats[h] = s
	splatsMu.Unlock()
	return h
}

// lookupSplat returns the Splat behind h, or nil if h is unknown or has
// already been freed.
func lookupSplat(h Handle) *spz.Splat {
	splatsMu.RLock()
	defer splatsMu.RUnlock()
	return splats[h]
}

// freeSplat releases h. Freeing an unknown or already-freed handle is a
// no-op, the usual idempotent *_free convention for a C ABI.
func freeSplat(h Handle) {
	splatsMu.Lock()
	delete(splats, h)
	splatsMu.Unlock()
}

func registerHeader(hdr spz.Header) Handle {
	h := newHandle()
	headersMu.Lock()
	headers[h] = &hdr
	headersMu.Unlock()
	return h
}

func lookupHeader(h Handle) *spz.Header {
	headersMu.RLock()
	defer headersMu.RUnlock()
	return headers[h]
}

func freeHeader(h Handle) {
	headersMu.Lock()
	delete(headers, h)
	headersMu.Unlock()
}

// main is required by the linker for package main but is never invoked:
// this package is built with -buildmode=c-shared/c-archive and entered
// only through the //export functions above.
func main() {}
