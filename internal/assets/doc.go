// Package assets loads the HTML template fragments flashcard documents are
// assembled from.
//
// # Loaders
//
//	Loader (interface)
//	    │
//	    ├── FilesystemLoader  - {dir}/{name}.htm.in on disk
//	    ├── EmbeddedLoader    - default templates compiled in with go:embed
//	    └── Resolver          - custom directory first, embedded on not-found
//
// A document needs four templates:
//
//	header.htm.in   opens <html> and <body>, holds the stylesheet; ${title}
//	flash.htm.in    one card; ${uid} ${pos} ${english} ${lwc} ${ipa}
//	                ${imgPath} ${notes}
//	page1x2.htm.in  one printed page of 1 column x 2 rows; ${card0} ${card1}
//	page2x3.htm.in  one printed page of 2 columns x 3 rows; ${card0}..${card5}
//
// Any other grid works once a page{C}x{R}.htm.in template exists for it.
//
// # Failure
//
// A missing file is reported as ErrTemplateNotFound so callers can treat it
// as fatal. Template names are validated and resolved paths must stay inside
// the template directory.
package assets
