// Package flashcards builds printable vocabulary flashcard sheets as HTML
// and PDF.
//
// # Quick Start
//
// Build a document from cards in one call:
//
//	result, err := flashcards.Build(ctx, flashcards.BuildInput{
//	    Base:   "spanish",
//	    Cards:  cards,
//	    Layout: flashcards.DefaultLayout(),
//	}, flashcards.WithBuiltinTemplates())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTMLPath, result.PDFPath, result.PDF.Pages)
//
// # Document Lifecycle
//
// Build drives a Document through these stages, which can also be run by
// hand:
//
//  1. Create loads the header template and fills ${title}
//  2. RenderFlashcard fills the flash template once per card
//  3. AppendPaginated groups rendered cards into pages of a Grid, or
//     AppendSequential appends them without page structure
//  4. Persist finalizes the markup and writes <base>.htm atomically
//  5. RenderToPDF loads the written file into headless Chrome and exports
//     <base>.pdf
//
// A finalized document accepts no more cards.
//
// # Templates
//
// Templates are HTML fragments with ${name} placeholders:
//
//	templates/
//	├── header.htm.in   ${title}
//	├── flash.htm.in    ${uid} ${pos} ${english} ${lwc} ${ipa} ${imgPath} ${notes}
//	├── page1x2.htm.in  ${card0} ${card1}
//	└── page2x3.htm.in  ${card0} .. ${card5}
//
// By default they are read from ./templates and a missing file is an error
// wrapping ErrTemplateNotFound. WithBuiltinTemplates uses the copies
// compiled into the binary; WithTemplateDir(dir, true) falls back to them
// per file. A grid CxR needs a page<C>x<R>.htm.in template.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
// Tests and callers without a browser can pass their own Launcher.
package flashcards
