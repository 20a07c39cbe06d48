package lattice

import "errors"

// ErrEOSBOSDisconnect is returned by ConnectEOS when no predecessor in the
// final boundary's node list is reachable from BOS. The caller must
// discard the lattice's result for this analysis; the lattice itself
// remains valid for the next Reset.
var ErrEOSBOSDisconnect = errors.New("lattice: eos disconnected from bos")
