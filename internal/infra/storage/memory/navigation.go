package memory

import (
	"log/slog"
	"sync"

	"rentalhub/internal/domain/content"
	"rentalhub/internal/infra/storage/local"
)

// NavigationRepository manages the two editable content pages. Edits
// stay in memory until an explicit Save; Reset persists immediately.
type NavigationRepository struct {
	mu     sync.Mutex
	store  *local.Store
	logger *slog.Logger
	pages  []content.NavigationPage
}

func NewNavigationRepository(store *local.Store, logger *slog.Logger) *NavigationRepository {
	repo := &NavigationRepository{
		store:  store,
		logger: logger,
		pages:  content.Defaults(),
	}
	if store != nil {
		if saved, ok := store.LoadNavigation(); ok {
			repo.pages = saved
		}
	}
	return repo
}

func (r *NavigationRepository) All() []content.NavigationPage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]content.NavigationPage(nil), r.pages...)
}

func (r *NavigationRepository) ByID(id string) (content.NavigationPage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, page := range r.pages {
		if page.ID == id {
			return page, true
		}
	}
	return content.NavigationPage{}, false
}

// UpdatePage changes a page's title and content in memory only.
func (r *NavigationRepository) UpdatePage(id, title, text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pages {
		if r.pages[i].ID == id {
			r.pages[i].Title = title
			r.pages[i].Content = text
			return true
		}
	}
	return false
}

// Save persists the current in-memory pages.
func (r *NavigationRepository) Save() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist(r.pages)
}

// Reset restores the defaults in memory and persists them.
func (r *NavigationRepository) Reset() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	defaults := content.Defaults()
	if !r.persist(defaults) {
		return false
	}
	r.pages = defaults
	return true
}

// Reload re-reads the bucket after an import replaced it.
func (r *NavigationRepository) Reload() {
	if r.store == nil {
		return
	}
	saved, ok := r.store.LoadNavigation()
	r.mu.Lock()
	defer r.mu.Unlock()
	if ok {
		r.pages = saved
	} else {
		r.pages = content.Defaults()
	}
}

func (r *NavigationRepository) persist(pages []content.NavigationPage) bool {
	if r.store == nil {
		return true
	}
	if err := r.store.SaveNavigation(pages); err != nil {
		if r.logger != nil {
			r.logger.Error("navigation save failed", "error", err)
		}
		return false
	}
	return true
}
