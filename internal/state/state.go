// Package state holds the application state and the store that owns it.
// All mutation happens through Store.Dispatch; everything handed out is a
// snapshot copy.
package state

// Page identifies one of the application's screens.
type Page int

const (
	PageWelcome Page = iota
	PageImport
	PageGrid
	PageLoupe
)

func (p Page) String() string {
	switch p {
	case PageWelcome:
		return "Welcome"
	case PageImport:
		return "Import"
	case PageGrid:
		return "Grid"
	case PageLoupe:
		return "Loupe"
	default:
		return "Unknown"
	}
}

// PhotoRecord identifies a single photo in the current album.
// Width and Height stay zero until the image service has looked at the file.
type PhotoRecord struct {
	Path      string
	Filename  string
	SizeBytes int64
	Width     int
	Height    int
}

// NavigationState tracks the current page and the back stack, oldest first.
type NavigationState struct {
	Page    Page
	History []Page
}

// PhotoState holds the album currently being viewed.
type PhotoState struct {
	AlbumPath    string
	Photos       []PhotoRecord
	CurrentIndex int
}

// UIState holds transient presentation flags. An empty ErrorMessage means no
// error is showing.
type UIState struct {
	IsLoading    bool
	ErrorMessage string
}

// AppState is the complete application state. It is always observed as a
// consistent snapshot; subscribers never see a partially applied update.
type AppState struct {
	Navigation NavigationState
	Photos     PhotoState
	UI         UIState
}

// clone returns a deep copy so callers can never reach back into the store's
// slices.
func (s AppState) clone() AppState {
	out := s
	out.Navigation.History = clonePages(s.Navigation.History)
	out.Photos.Photos = clonePhotos(s.Photos.Photos)
	return out
}

func clonePages(pages []Page) []Page {
	if len(pages) == 0 {
		return nil
	}
	dup := make([]Page, len(pages))
	copy(dup, pages)
	return dup
}

func clonePhotos(photos []PhotoRecord) []PhotoRecord {
	if len(photos) == 0 {
		return nil
	}
	dup := make([]PhotoRecord, len(photos))
	copy(dup, photos)
	return dup
}
