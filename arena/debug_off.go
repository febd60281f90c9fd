//go:build !ordmap_debug

package arena

const debugChecks = false
