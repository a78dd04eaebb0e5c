// Package defaults resolves platform defaults for command state.
package defaults

import (
	"github.com/Wessie/appdirs"
)

var app = appdirs.New("commandry", "", "")

// DataDir returns the default location of the data directory.
func DataDir() string {
	return app.UserData()
}
