//go:build bitfielddebug

package bitfield

const debug = true
