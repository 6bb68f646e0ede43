package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultRecycleAfter is the default number of pages a browser renders
// before it is replaced. Chrome's memory use grows with every page and
// never returns to its baseline.
const DefaultRecycleAfter = 75

// browserManager hands out a shared browser and replaces it after
// recycleAfter pages, once no page is in flight.
type browserManager struct {
	mu           sync.Mutex
	browser      *rod.Browser
	launcher     *launcher.Launcher
	recycleAfter int
	rendered     int
	inFlight     int
	closed       bool
}

func newBrowserManager(recycleAfter int) (*browserManager, error) {
	bm := &browserManager{recycleAfter: recycleAfter}
	browser, l, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	bm.browser, bm.launcher = browser, l
	return bm, nil
}

// acquire returns the browser to render one page on. Every successful
// acquire must be paired with release.
func (bm *browserManager) acquire() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, fmt.Errorf("browser closed")
	}
	if bm.recycleAfter > 0 && bm.rendered >= bm.recycleAfter && bm.inFlight == 0 {
		bm.recycle()
	}
	bm.inFlight++
	return bm.browser, nil
}

func (bm *browserManager) release() {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	bm.inFlight--
	bm.rendered++
}

// recycle swaps in a fresh browser. The old one is kept if the launch fails.
// Must be called with mu held.
func (bm *browserManager) recycle() {
	browser, l, err := launchBrowser()
	if err != nil {
		return
	}
	_ = bm.browser.Close()
	bm.launcher.Kill()
	bm.browser, bm.launcher = browser, l
	bm.rendered = 0
}

func (bm *browserManager) close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	err := bm.browser.Close()
	bm.launcher.Kill()
	return err
}

func (bm *browserManager) pid() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.launcher.PID()
}

// launchBrowser starts headless Chrome with flags that keep background
// pages from being throttled.
func launchBrowser() (*rod.Browser, *launcher.Launcher, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

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
