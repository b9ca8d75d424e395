package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"prolinked-backend/pkg/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// ErrEmptyDocument is returned when the browser produced no bytes.
var ErrEmptyDocument = errors.New("pdf: empty document")

// Renderer prints HTML to PDF in a headless Chromium.
// The browser is started on first use and shared between calls.
type Renderer struct {
	chromeBin string
	timeout   time.Duration

	mu      sync.Mutex
	launch  *launcher.Launcher
	browser *rod.Browser

	alive func(*rod.Browser) bool
}

func NewRenderer(chromeBin string, timeout time.Duration) *Renderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Renderer{chromeBin: chromeBin, timeout: timeout, alive: browserAlive}
}

// browserAlive asks the browser for its version on a context of its own, so a
// cancelled request cannot make a healthy browser look dead.
func browserAlive(b *rod.Browser) bool {
	_, err := b.Timeout(2 * time.Second).Version()
	return err == nil
}

func (r *Renderer) connect() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	launch := launcher.New().
		Headless(true).
		NoSandbox(true)
	if r.chromeBin != "" {
		launch = launch.Bin(r.chromeBin)
	} else if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		launch.Cleanup()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		launch.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	logger.Log.Info("Headless browser started", slog.String("control_url", browserURL))
	r.launch = launch
	r.browser = browser
	return browser, nil
}

// discard closes stale if it is still the shared browser, so the next call
// relaunches. A nil stale closes whatever is running.
func (r *Renderer) discard(stale *rod.Browser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stale != nil && r.browser != stale {
		return
	}
	if r.browser != nil {
		_ = r.browser.Close()
		r.browser = nil
	}
	if r.launch != nil {
		r.launch.Cleanup()
		r.launch = nil
	}
}

// pageFailed keeps the shared browser unless it stopped answering. Other
// requests may be printing on it.
func (r *Renderer) pageFailed(browser *rod.Browser, err error) error {
	if !r.alive(browser) {
		logger.Log.Warn("Headless browser unresponsive, relaunching on next render", slog.Any("error", err))
		r.discard(browser)
	}
	return fmt.Errorf("create page: %w", err)
}

// HTMLToPDF renders an A4 PDF from a complete HTML document.
func (r *Renderer) HTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	browser, err := r.connect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, r.pageFailed(browser, err)
	}
	defer func() {
		_ = page.Close()
	}()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
		PaperWidth:        float64Ptr(8.27),
		PaperHeight:       float64Ptr(11.69),
	})
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	return data, nil
}

// Close shuts the browser down. Safe to call when it was never started.
func (r *Renderer) Close() {
	r.discard(nil)
}

func float64Ptr(v float64) *float64 {
	return &v
}
