package bsatn

import "fmt"

// Errorf adds the standard "bsatn:" prefix to formatted errors so helpers
// and callers remain consistent with the package's Err* sentinels.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf("bsatn: "+format, args...)
}
