//go:build playlistdebug

package playlist

const debugInvariants = true
