package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the number of article pages rendered before the browser
// is replaced.
const DefaultMaxPages = 75

// BrowserManager owns the Chrome process behind a Fetcher and replaces it
// after a number of pages, since Chrome memory keeps growing across page
// loads even when every page is closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	bin      string
	headless bool

	pages    atomic.Int64
	maxPages int64
	closed   atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many pages are rendered before the browser is replaced.
func WithMaxPages(n int64) ManagerOption {
	return func(m *BrowserManager) {
		m.maxPages = n
	}
}

// WithBrowserBin uses the Chrome binary at path instead of looking one up.
func WithBrowserBin(path string) ManagerOption {
	return func(m *BrowserManager) {
		m.bin = path
	}
}

// WithHeadless toggles headless mode. Defaults to true.
func WithHeadless(headless bool) ManagerOption {
	return func(m *BrowserManager) {
		m.headless = headless
	}
}

// NewBrowserManager launches a browser. Close must be called when the
// manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	m := &BrowserManager{
		maxPages: DefaultMaxPages,
		headless: true,
	}
	for _, opt := range opts {
		opt(m)
	}

	browser, l, err := m.launch()
	if err != nil {
		return nil, err
	}
	m.browser, m.launcher = browser, l
	return m, nil
}

// Browser returns the live browser, replacing it first when the page budget
// is spent. Callers report each rendered page with IncrementPageCount.
func (m *BrowserManager) Browser() *rod.Browser {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxPages > 0 && m.pages.Load() >= m.maxPages {
		m.replace()
	}
	return m.browser
}

// IncrementPageCount records one rendered page.
func (m *BrowserManager) IncrementPageCount() {
	m.pages.Add(1)
}

// Close shuts the browser down. Close is safe to call multiple times.
func (m *BrowserManager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := shutdown(m.browser, m.launcher)
	m.browser, m.launcher = nil, nil
	return err
}

// LauncherPID returns the process ID of the browser launcher, or 0 once closed.
func (m *BrowserManager) LauncherPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.launcher == nil {
		return 0
	}
	return m.launcher.PID()
}

func (m *BrowserManager) launch() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(m.headless)
	if m.bin != "" {
		l = l.Bin(m.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("connecting to browser: %w", err)
	}
	return browser, l, nil
}

// replace swaps in a fresh browser. The old one is kept when the launch
// fails. Must be called with mu held.
func (m *BrowserManager) replace() {
	browser, l, err := m.launch()
	if err != nil {
		return
	}
	_ = shutdown(m.browser, m.launcher)
	m.browser, m.launcher = browser, l
	m.pages.Store(0)
}

func shutdown(browser *rod.Browser, l *launcher.Launcher) error {
	var err error
	if browser != nil {
		err = browser.Close()
	}
	if l != nil {
		l.Kill()
	}
	return err
}
