// Package state owns the mutable application state: the investor profile,
// settings, the notification log, and the latest matching results. Every
// mutation funnels through the App object, persists a snapshot, and publishes
// a change event for subscribers.
package state

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/investlens/investlens/internal/catalog"
	"github.com/investlens/investlens/internal/domain"
	"github.com/investlens/investlens/internal/matching"
	"github.com/investlens/investlens/internal/storage"
)

// Persister stores JSON snapshots of each store. *storage.Store satisfies it.
type Persister interface {
	LoadSnapshot(key string, v any) error
	SaveSnapshot(key string, v any) error
}

// Event describes one store change for subscribers.
type Event struct {
	Topic   string `json:"topic"` // profile | settings | notifications | matches | analysis
	Payload any    `json:"payload"`
}

type Subscriber func(Event)

type App struct {
	mu sync.Mutex

	profile       domain.InvestorProfile
	settings      domain.Settings
	notifications []domain.Notification
	matches       []domain.MatchResult

	catalog *catalog.Catalog
	engine  *matching.Engine
	store   Persister
	log     *slog.Logger
	now     func() time.Time

	subMu sync.RWMutex
	subs  []Subscriber
}

// Option tweaks App construction; used by tests to pin the clock.
type Option func(*App)

func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New loads each store from its snapshot, silently substituting defaults
// when a snapshot is absent or no longer parses.
func New(store Persister, cat *catalog.Catalog, engine *matching.Engine, log *slog.Logger, opts ...Option) *App {
	a := &App{
		catalog: cat,
		engine:  engine,
		store:   store,
		log:     log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := store.LoadSnapshot(storage.KeyInvestorProfile, &a.profile); err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Warn("profile snapshot unreadable, using default", "error", err)
		}
		a.profile = domain.DefaultProfile(a.now())
	}
	if err := store.LoadSnapshot(storage.KeySettings, &a.settings); err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Warn("settings snapshot unreadable, using default", "error", err)
		}
		a.settings = domain.DefaultSettings()
	}
	if err := store.LoadSnapshot(storage.KeyNotifications, &a.notifications); err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			log.Warn("notifications snapshot unreadable, using seed", "error", err)
		}
		a.notifications = seedNotifications(a.now())
	}
	return a
}

// Subscribe registers a change listener. Listeners run synchronously after
// the mutation commits, outside the state lock.
func (a *App) Subscribe(s Subscriber) {
	a.subMu.Lock()
	a.subs = append(a.subs, s)
	a.subMu.Unlock()
}

func (a *App) publish(ev Event) {
	a.subMu.RLock()
	subs := make([]Subscriber, len(a.subs))
	copy(subs, a.subs)
	a.subMu.RUnlock()

	for _, s := range subs {
		s(ev)
	}
}

func (a *App) persist(key string, v any) {
	if err := a.store.SaveSnapshot(key, v); err != nil {
		// The snapshot is advisory; in-memory state stays authoritative.
		a.log.Warn("persist failed", "key", key, "error", err)
	}
}

// ---- Profile ----

func (a *App) Profile() domain.InvestorProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.profile
}

// ReplaceProfile swaps the whole profile record, persists it, and records a
// "Profile Saved" notification.
func (a *App) ReplaceProfile(p domain.InvestorProfile) {
	a.mu.Lock()
	a.profile = p
	a.persist(storage.KeyInvestorProfile, a.profile)
	profile := a.profile
	a.mu.Unlock()

	a.AddNotification(domain.NotifySuccess, "Profile Saved", "Your investor profile has been updated successfully.")
	a.publish(Event{Topic: "profile", Payload: profile})
}

// PatchProfile merges the set fields into the current profile, bumps
// UpdatedAt, and persists. Unlike ReplaceProfile it emits no notification.
func (a *App) PatchProfile(patch ProfilePatch) domain.InvestorProfile {
	a.mu.Lock()
	patch.apply(&a.profile)
	a.profile.UpdatedAt = a.now()
	a.persist(storage.KeyInvestorProfile, a.profile)
	profile := a.profile
	a.mu.Unlock()

	a.publish(Event{Topic: "profile", Payload: profile})
	return profile
}

// ---- Settings ----

func (a *App) Settings() domain.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// PatchSettings merges the set fields (nested toggles included), persists,
// and records a "Settings Updated" notification.
func (a *App) PatchSettings(patch SettingsPatch) domain.Settings {
	a.mu.Lock()
	patch.apply(&a.settings)
	a.persist(storage.KeySettings, a.settings)
	settings := a.settings
	a.mu.Unlock()

	a.AddNotification(domain.NotifySuccess, "Settings Updated", "Your preferences have been saved.")
	a.publish(Event{Topic: "settings", Payload: settings})
	return settings
}

// ---- Notifications ----

func (a *App) Notifications() []domain.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.Notification, len(a.notifications))
	copy(out, a.notifications)
	return out
}

// AddNotification prepends a new unread entry with a time-derived id.
func (a *App) AddNotification(typ domain.NotificationType, title, message string) domain.Notification {
	a.mu.Lock()
	now := a.now()
	n := domain.Notification{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Type:      typ,
		Title:     title,
		Message:   message,
		Timestamp: now,
		Read:      false,
	}
	a.notifications = append([]domain.Notification{n}, a.notifications...)
	a.persist(storage.KeyNotifications, a.notifications)
	a.mu.Unlock()

	a.publish(Event{Topic: "notifications", Payload: n})
	return n
}

// MarkNotificationRead flags one entry read; unknown ids are a no-op.
func (a *App) MarkNotificationRead(id string) {
	a.mu.Lock()
	for i := range a.notifications {
		if a.notifications[i].ID == id {
			a.notifications[i].Read = true
			break
		}
	}
	a.persist(storage.KeyNotifications, a.notifications)
	a.mu.Unlock()

	a.publish(Event{Topic: "notifications", Payload: nil})
}

func (a *App) MarkAllNotificationsRead() {
	a.mu.Lock()
	for i := range a.notifications {
		a.notifications[i].Read = true
	}
	a.persist(storage.KeyNotifications, a.notifications)
	a.mu.Unlock()

	a.publish(Event{Topic: "notifications", Payload: nil})
}

func (a *App) ClearNotifications() {
	a.mu.Lock()
	a.notifications = []domain.Notification{}
	a.persist(storage.KeyNotifications, a.notifications)
	a.mu.Unlock()

	a.publish(Event{Topic: "notifications", Payload: nil})
}

func (a *App) UnreadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, notif := range a.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// ---- Matching ----

// RunMatching scores the full catalog against the current profile, replaces
// the stored result set wholesale, and records a completion notification.
func (a *App) RunMatching() []domain.MatchResult {
	a.mu.Lock()
	profile := a.profile
	a.mu.Unlock()

	results := a.engine.Match(profile, a.catalog.All())

	a.mu.Lock()
	a.matches = results
	a.mu.Unlock()

	best := matching.BestFitCount(results)
	a.AddNotification(domain.NotifySuccess, "Matching Complete",
		"Found "+strconv.Itoa(best)+" best-fit properties.")
	a.publish(Event{Topic: "matches", Payload: results})
	return results
}

// Matches returns the result set of the last matching run, nil before any.
func (a *App) Matches() []domain.MatchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.MatchResult, len(a.matches))
	copy(out, a.matches)
	return out
}

func seedNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{
			ID:        strconv.FormatInt(now.UnixNano(), 10),
			Type:      domain.NotifyInfo,
			Title:     "Welcome to InvestLens",
			Message:   "Set up your investor profile to get personalized property matches.",
			Timestamp: now,
			Read:      false,
		},
		{
			ID:        strconv.FormatInt(now.Add(-time.Hour).UnixNano(), 10),
			Type:      domain.NotifyInfo,
			Title:     "Market Update",
			Message:   "Rental yields in Bangalore commercial corridors are up 0.4% this quarter.",
			Timestamp: now.Add(-time.Hour),
			Read:      true,
		},
		{
			ID:        strconv.FormatInt(now.Add(-24*time.Hour).UnixNano(), 10),
			Type:      domain.NotifySuccess,
			Title:     "Catalog Refreshed",
			Message:   "8 properties are available for matching.",
			Timestamp: now.Add(-24 * time.Hour),
			Read:      true,
		},
	}
}
