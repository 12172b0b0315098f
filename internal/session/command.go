package session

import "strings"

// command is the typed dispatch key for browsing-stage input. Anything
// that is not a recognized keyword falls through to the product selector.
type command int

const (
	cmdSelector command = iota
	cmdHelp
	cmdCancel
	cmdAdmin
	cmdFill
	cmdQuit
	cmdEnd
)

func parseCommand(token string) command {
	switch strings.ToUpper(token) {
	case "HELP":
		return cmdHelp
	case "CANCEL":
		return cmdCancel
	case "ADMIN":
		return cmdAdmin
	case "FILL":
		return cmdFill
	case "QUIT":
		return cmdQuit
	case "END":
		return cmdEnd
	default:
		return cmdSelector
	}
}
