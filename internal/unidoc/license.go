// Package unidoc registers the unidoc license key. unipdf refuses to read or
// write documents until a key is set, so both the report renderer and the PDF
// extraction path depend on this running first.
package unidoc

import (
	"sync"

	"github.com/unidoc/unipdf/v3/common/license"
)

var (
	once   sync.Once
	setErr error
)

// SetLicense registers a metered unidoc license key. The key is registered at
// most once per process; later calls return the first result.
func SetLicense(key string) error {
	once.Do(func() {
		setErr = license.SetMeteredKey(key)
	})
	return setErr
}
