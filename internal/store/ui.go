package store

import (
	"sync"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/storage"
)

const (
	keyTheme    = "theme"
	keyLanguage = "language"
)

type UISnapshot struct {
	Theme          string `json:"theme"`
	Language       string `json:"language"`
	SidebarOpen    bool   `json:"sidebarOpen"`
	MobileMenuOpen bool   `json:"mobileMenuOpen"`
}

// UI owns cross-cutting presentation state. Theme and language changes
// are written through to durable storage; panel flags are ephemeral.
type UI struct {
	mu             sync.Mutex
	theme          string
	language       string
	sidebarOpen    bool
	mobileMenuOpen bool
	kv             storage.KV
	signal
}

func NewUI(kv storage.KV) *UI {
	u := &UI{theme: "light", language: "en", kv: kv}
	if v, err := kv.Get(keyTheme); err == nil && v != "" {
		u.theme = v
	}
	if v, err := kv.Get(keyLanguage); err == nil && v != "" {
		u.language = v
	}
	return u
}

func (u *UI) SetTheme(theme string) {
	u.mu.Lock()
	u.theme = theme
	_ = u.kv.Set(keyTheme, theme)
	u.mu.Unlock()
	u.emit()
}

func (u *UI) SetLanguage(lang string) {
	u.mu.Lock()
	u.language = lang
	_ = u.kv.Set(keyLanguage, lang)
	u.mu.Unlock()
	u.emit()
}

func (u *UI) ToggleSidebar() {
	u.mu.Lock()
	u.sidebarOpen = !u.sidebarOpen
	u.mu.Unlock()
	u.emit()
}

func (u *UI) ToggleMobileMenu() {
	u.mu.Lock()
	u.mobileMenuOpen = !u.mobileMenuOpen
	u.mu.Unlock()
	u.emit()
}

// CloseAllMenus shuts the sidebar and mobile menu in one step.
func (u *UI) CloseAllMenus() {
	u.mu.Lock()
	u.sidebarOpen = false
	u.mobileMenuOpen = false
	u.mu.Unlock()
	u.emit()
}

func (u *UI) Snapshot() UISnapshot {
	u.mu.Lock()
	defer u.mu.Unlock()
	return UISnapshot{
		Theme:          u.theme,
		Language:       u.language,
		SidebarOpen:    u.sidebarOpen,
		MobileMenuOpen: u.mobileMenuOpen,
	}
}
