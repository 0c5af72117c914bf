package infrastructure

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 content surface at 96 DPI; captured at 2x for print fidelity.
const (
	surfaceWidthPx  = 794
	surfaceHeightPx = 1123
	captureScale    = 2.0
)

// Interactive/editing-only affordances are hidden before rasterizing and
// restored afterwards, so the surface never carries editor chrome into the
// export.
const hideInteractiveCSS = `.drag-handle, .section-drag-indicator, .cursor-move, .cursor-pointer,
.edit-button, .delete-button, .add-button, button { display: none !important; }`

const injectHideScript = `(() => {
	const style = document.createElement('style');
	style.id = '__export_hide';
	style.textContent = ` + "`" + hideInteractiveCSS + "`" + `;
	document.head.appendChild(style);
	return true;
})()`

const removeHideScript = `(() => {
	const style = document.getElementById('__export_hide');
	if (style) style.remove();
	return true;
})()`

// ChromedpCapturer rasterizes a rendered surface into one tall PNG. It runs
// against a private tab, so failures never leave a shared surface altered;
// the tab and process are torn down on every exit path.
type ChromedpCapturer struct {
	timeout time.Duration
}

func NewChromedpCapturer() *ChromedpCapturer {
	return &ChromedpCapturer{timeout: 60 * time.Second}
}

func (c *ChromedpCapturer) CaptureSurface(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		// fail before touching the surface at all
		return nil, errors.New("no surface to capture")
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocatorOptions()...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, c.timeout)
	defer cancelRun()

	var shot []byte
	var ok bool
	err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(surfaceWidthPx, surfaceHeightPx, chromedp.EmulateScale(captureScale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(injectHideScript, &ok),
		chromedp.FullScreenshot(&shot, 100),
		chromedp.Evaluate(removeHideScript, &ok),
	)
	if err != nil {
		return nil, err
	}
	return shot, nil
}
