// Lightbox is a desktop photo viewer. Run it with an optional album
// directory argument.
package main

import "lightbox/internal/ui"

func main() {
	ui.CreateApplication()
}
