package ui

import "countrypick/internal/picker"

// ResetMsg carries the host's reset token. A token different from the
// last one seen clears the picker.
type ResetMsg struct {
	Token string
}

// SelectedMsg is emitted after every commit, including resets.
type SelectedMsg struct {
	Selection picker.Selection
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
