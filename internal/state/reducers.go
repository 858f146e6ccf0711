package state

// reduce composes the sub-domain reducers. Each sub-reducer only ever sees
// its own slice of the state; the full AppState is reassembled here.
// Reducers are pure and total: no I/O, and unrecognized actions fall through
// unchanged.
func reduce(s AppState, action Action) AppState {
	switch a := action.(type) {
	case NavigationAction:
		s.Navigation = reduceNavigation(s.Navigation, a)
	case PhotoAction:
		s.Photos = reducePhotos(s.Photos, a)
	case UIAction:
		s.UI = reduceUI(s.UI, a)
	}
	return s
}

func reduceNavigation(s NavigationState, action NavigationAction) NavigationState {
	switch a := action.(type) {
	case NavigateTo:
		if a.Page == s.Page {
			return s
		}
		history := make([]Page, 0, len(s.History)+1)
		history = append(history, s.History...)
		history = append(history, s.Page)
		s.History = history
		s.Page = a.Page
	case GoBack:
		if len(s.History) == 0 {
			return s
		}
		s.Page = s.History[len(s.History)-1]
		s.History = clonePages(s.History[:len(s.History)-1])
	}
	return s
}

func reducePhotos(s PhotoState, action PhotoAction) PhotoState {
	switch a := action.(type) {
	case SetAlbumPath:
		s.AlbumPath = a.Path
		s.Photos = nil
		s.CurrentIndex = 0
	case LoadPhotosStart:
		// The loading flag lives in UIState; nothing to do here.
	case LoadPhotosSuccess:
		s.Photos = clonePhotos(a.Photos)
		s.CurrentIndex = 0
	case LoadPhotosFailure:
		// Keep whatever was loaded before; the error travels as ShowError.
	case SelectPhoto:
		if a.Index >= 0 && a.Index < len(s.Photos) {
			s.CurrentIndex = a.Index
		}
	case NextPhoto:
		if len(s.Photos) > 0 && s.CurrentIndex < len(s.Photos)-1 {
			s.CurrentIndex++
		}
	case PreviousPhoto:
		if s.CurrentIndex > 0 {
			s.CurrentIndex--
		}
	case ClearAlbum:
		s.AlbumPath = ""
		s.Photos = nil
		s.CurrentIndex = 0
	case SetPhotoDimensions:
		if a.Index < 0 || a.Index >= len(s.Photos) {
			return s
		}
		photos := clonePhotos(s.Photos)
		photos[a.Index].Width = a.Width
		photos[a.Index].Height = a.Height
		s.Photos = photos
	}
	return s
}

func reduceUI(s UIState, action UIAction) UIState {
	switch a := action.(type) {
	case ShowLoading:
		s.IsLoading = true
	case HideLoading:
		s.IsLoading = false
	case ShowError:
		s.ErrorMessage = a.Message
	case ClearError:
		s.ErrorMessage = ""
	}
	return s
}
