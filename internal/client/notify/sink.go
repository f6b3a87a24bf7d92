// Package notify defines where user-facing feedback goes: a loading
// indicator, error and success banners that dismiss themselves, and short
// toasts. The request wrapper talks to a Sink and never to a terminal.
package notify

import "time"

// Kind selects the styling of a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Default auto-dismiss delays.
const (
	ErrorDelay   = 5 * time.Second
	SuccessDelay = 3 * time.Second
	ToastDelay   = 3 * time.Second
)

// Sink receives user-facing notifications.
//
// ShowLoading and HideLoading are paired; implementations may count nested
// calls so the indicator stays visible until the last pair completes.
type Sink interface {
	ShowLoading()
	HideLoading()
	ShowError(msg string)
	ShowSuccess(msg string)
	ClearError()
	ShowToast(msg string, kind Kind)
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) ShowLoading()           {}
func (Discard) HideLoading()           {}
func (Discard) ShowError(string)       {}
func (Discard) ShowSuccess(string)     {}
func (Discard) ClearError()            {}
func (Discard) ShowToast(string, Kind) {}
