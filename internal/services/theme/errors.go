package theme

import "errors"

// ErrUnknownTheme is returned when selecting a theme that does not exist
var ErrUnknownTheme = errors.New("unknown theme")
