package state

// Action describes an intended state change. Actions are pure data; the
// closed set below is everything the store understands. Anything it does not
// recognize reduces to a no-op.
type Action interface {
	isAction()
}

// NavigationAction is the sub-domain of actions handled by the navigation
// reducer.
type NavigationAction interface {
	Action
	isNavigationAction()
}

// PhotoAction is the sub-domain of actions handled by the photo reducer.
type PhotoAction interface {
	Action
	isPhotoAction()
}

// UIAction is the sub-domain of actions handled by the UI reducer.
type UIAction interface {
	Action
	isUIAction()
}

// NavigateTo switches to a page, pushing the current page onto the history
// stack. Navigating to the page already shown is a no-op.
type NavigateTo struct {
	Page Page
}

// GoBack pops the most recent history entry. No-op when history is empty.
type GoBack struct{}

// SetAlbumPath records the selected album directory and clears any photos
// loaded from a previous album.
type SetAlbumPath struct {
	Path string
}

// LoadPhotosStart marks the beginning of an album load.
type LoadPhotosStart struct{}

// LoadPhotosSuccess replaces the photo list wholesale.
type LoadPhotosSuccess struct {
	Photos []PhotoRecord
}

// LoadPhotosFailure marks a failed album load. The error itself travels as a
// ShowError action.
type LoadPhotosFailure struct{}

// SelectPhoto makes the photo at Index current. Out-of-range indexes are
// ignored.
type SelectPhoto struct {
	Index int
}

// NextPhoto advances to the next photo, clamping at the end of the album.
type NextPhoto struct{}

// PreviousPhoto steps back to the previous photo, clamping at the start.
type PreviousPhoto struct{}

// ClearAlbum drops the current album and its photos.
type ClearAlbum struct{}

// SetPhotoDimensions fills in the decoded dimensions for one photo.
// Out-of-range indexes are ignored.
type SetPhotoDimensions struct {
	Index  int
	Width  int
	Height int
}

// ShowLoading raises the loading flag.
type ShowLoading struct{}

// HideLoading clears the loading flag.
type HideLoading struct{}

// ShowError sets the user-facing error message.
type ShowError struct {
	Message string
}

// ClearError dismisses the error message. Nothing else clears it.
type ClearError struct{}

func (NavigateTo) isAction()           {}
func (NavigateTo) isNavigationAction() {}
func (GoBack) isAction()               {}
func (GoBack) isNavigationAction()     {}

func (SetAlbumPath) isAction()            {}
func (SetAlbumPath) isPhotoAction()       {}
func (LoadPhotosStart) isAction()         {}
func (LoadPhotosStart) isPhotoAction()    {}
func (LoadPhotosSuccess) isAction()       {}
func (LoadPhotosSuccess) isPhotoAction()  {}
func (LoadPhotosFailure) isAction()       {}
func (LoadPhotosFailure) isPhotoAction()  {}
func (SelectPhoto) isAction()             {}
func (SelectPhoto) isPhotoAction()        {}
func (NextPhoto) isAction()               {}
func (NextPhoto) isPhotoAction()          {}
func (PreviousPhoto) isAction()           {}
func (PreviousPhoto) isPhotoAction()      {}
func (ClearAlbum) isAction()              {}
func (ClearAlbum) isPhotoAction()         {}
func (SetPhotoDimensions) isAction()      {}
func (SetPhotoDimensions) isPhotoAction() {}

func (ShowLoading) isAction()   {}
func (ShowLoading) isUIAction() {}
func (HideLoading) isAction()   {}
func (HideLoading) isUIAction() {}
func (ShowError) isAction()     {}
func (ShowError) isUIAction()   {}
func (ClearError) isAction()    {}
func (ClearError) isUIAction()  {}
