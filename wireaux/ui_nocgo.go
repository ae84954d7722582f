//go:build tinygo || !cgo

package wireaux

import (
	"errors"
)

func ui(m viewerMesh, cfg UIConfig) error {
	return errors.New("require cgo for UI rendering")
}
