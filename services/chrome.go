package services

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Letter page geometry in inches, the unit PrintToPDF expects.
const (
	paperWidthIn   = 8.5
	paperHeightIn  = 11.0
	marginTopIn    = 0.5
	marginBottomIn = 0.5
	marginLeftIn   = 0.75
	marginRightIn  = 0.75
)

const defaultRenderTimeout = 30 * time.Second

// ChromeEngine renders HTML documents to PDF with a headless browser.
// Requires Chrome/Chromium to be installed on the system.
type ChromeEngine struct {
	execPath string
	timeout  time.Duration
}

// NewChromeEngine creates a layout engine backed by headless Chrome. An empty
// execPath lets chromedp locate the browser itself.
func NewChromeEngine(execPath string, timeout time.Duration) *ChromeEngine {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &ChromeEngine{execPath: execPath, timeout: timeout}
}

// RenderHTML loads the document into a fresh browser tab and prints it to
// PDF. Every call gets its own browser context, so concurrent requests share
// no mutable state. Browser failures propagate unchanged.
func (e *ChromeEngine) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, e.timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginTopIn).
				WithMarginBottom(marginBottomIn).
				WithMarginLeft(marginLeftIn).
				WithMarginRight(marginRightIn).
				WithPrintBackground(false).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf layout failed: %w", err)
	}

	return pdf, nil
}
