package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// banner is a message area that hides itself after a delay.
type banner struct {
	text  string
	gen   int
	timer *time.Timer
}

// Console renders notifications as styled lines on a writer and keeps the
// state a page would show: whether the loading indicator is visible and
// which banner messages are currently displayed.
type Console struct {
	mu sync.Mutex
	w  io.Writer

	errStyle, okStyle, loadStyle lipgloss.Style
	toastStyles                  map[Kind]lipgloss.Style

	banners    bool
	errDelay   time.Duration
	okDelay    time.Duration
	toastDelay time.Duration

	loading int
	errBox  banner
	okBox   banner
	toasts  map[int]string
	toastID int
	timers  map[*time.Timer]struct{}
}

type ConsoleOption func(*Console)

// WithoutBanners makes the console behave like a page without error and
// success containers: errors become alert-style lines and nothing is kept
// on screen.
func WithoutBanners() ConsoleOption {
	return func(c *Console) { c.banners = false }
}

// WithDelays overrides the auto-dismiss delays.
func WithDelays(errDelay, okDelay, toastDelay time.Duration) ConsoleOption {
	return func(c *Console) {
		c.errDelay, c.okDelay, c.toastDelay = errDelay, okDelay, toastDelay
	}
}

func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	r := lipgloss.NewRenderer(w)
	c := &Console{
		w:          w,
		errStyle:   r.NewStyle().Foreground(lipgloss.Color("#dc3545")).Bold(true),
		okStyle:    r.NewStyle().Foreground(lipgloss.Color("#28a745")).Bold(true),
		loadStyle:  r.NewStyle().Foreground(lipgloss.Color("#6c757d")).Italic(true),
		banners:    true,
		errDelay:   ErrorDelay,
		okDelay:    SuccessDelay,
		toastDelay: ToastDelay,
		toasts:     make(map[int]string),
		timers:     make(map[*time.Timer]struct{}),
		toastStyles: map[Kind]lipgloss.Style{
			KindSuccess: r.NewStyle().Foreground(lipgloss.Color("#28a745")),
			KindError:   r.NewStyle().Foreground(lipgloss.Color("#dc3545")),
			KindWarning: r.NewStyle().Foreground(lipgloss.Color("#ffc107")),
			KindInfo:    r.NewStyle().Foreground(lipgloss.Color("#0dcaf0")),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) ShowLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading++
	if c.loading == 1 {
		fmt.Fprintln(c.w, c.loadStyle.Render("Loading..."))
	}
}

func (c *Console) HideLoading() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading > 0 {
		c.loading--
	}
}

// Loading reports whether the indicator is visible.
func (c *Console) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading > 0
}

func (c *Console) ShowError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.banners {
		fmt.Fprintln(c.w, c.errStyle.Render("Error: "+msg))
		return
	}
	fmt.Fprintln(c.w, c.errStyle.Render(msg))
	c.show(&c.errBox, msg, c.errDelay)
}

func (c *Console) ShowSuccess(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.banners {
		fmt.Fprintln(c.w, "Success: "+msg)
		return
	}
	fmt.Fprintln(c.w, c.okStyle.Render(msg))
	c.show(&c.okBox, msg, c.okDelay)
}

func (c *Console) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hide(&c.errBox)
}

func (c *Console) ShowToast(msg string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	style, ok := c.toastStyles[kind]
	if !ok {
		style = c.toastStyles[KindInfo]
	}
	fmt.Fprintln(c.w, style.Render(msg))

	c.toastID++
	id := c.toastID
	c.toasts[id] = msg
	c.after(c.toastDelay, func() { delete(c.toasts, id) })
}

// ErrorMessage is the text of the visible error banner, "" when hidden.
func (c *Console) ErrorMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errBox.text
}

// SuccessMessage is the text of the visible success banner, "" when hidden.
func (c *Console) SuccessMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.okBox.text
}

// Toasts returns the number of toasts still on screen.
func (c *Console) Toasts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.toasts)
}

// Close stops pending dismiss timers.
func (c *Console) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for t := range c.timers {
		t.Stop()
	}
	clear(c.timers)
}

// show must be called with c.mu held.
func (c *Console) show(b *banner, msg string, delay time.Duration) {
	c.hide(b)
	b.text = msg
	gen := b.gen
	b.timer = c.after(delay, func() {
		if b.gen == gen {
			b.text = ""
		}
	})
}

// hide must be called with c.mu held.
func (c *Console) hide(b *banner) {
	b.gen++
	b.text = ""
	if b.timer != nil {
		b.timer.Stop()
		delete(c.timers, b.timer)
		b.timer = nil
	}
}

// after must be called with c.mu held; fn runs with c.mu held.
func (c *Console) after(d time.Duration, fn func()) *time.Timer {
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.timers, t)
		fn()
	})
	c.timers[t] = struct{}{}
	return t
}
