//go:build !playlistdebug

package playlist

// debugInvariants enables ring checks after every mutation.
// Build with -tags playlistdebug to turn them on.
const debugInvariants = false
