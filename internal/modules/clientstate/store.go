// Package clientstate holds the per-client session state (selections,
// preferences, locally tracked recordings) and persists a defined subset
// through an injected persister. It is an explicitly owned container, not a
// hidden singleton.
package clientstate

import (
	"encoding/json"
	"sync"
	"time"
)

// StorageKey names the persisted snapshot.
const StorageKey = "rightscard-storage"

// Persister stores and loads snapshot blobs. The file-backed localstore
// implements it; tests use an in-memory map.
type Persister interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
}

type User struct {
	ID                 string `json:"id"`
	Name               string `json:"name,omitempty"`
	State              string `json:"state,omitempty"`
	LanguagePreference string `json:"languagePreference,omitempty"`
}

// Recording is the client-side view of a capture; the durable row lives in
// the recordings table.
type Recording struct {
	RecordingID     string    `json:"recordingId"`
	InteractionType string    `json:"interactionType"`
	Timestamp       time.Time `json:"timestamp"`
	Duration        int       `json:"duration"`
	Medium          string    `json:"medium"`
	Location        string    `json:"location,omitempty"`
	AISummary       string    `json:"aiSummary,omitempty"`
	IsUploaded      bool      `json:"isUploaded"`
}

type EmergencyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
	IsLawyer     bool   `json:"isLawyer"`
}

type NotificationSettings struct {
	EnablePushNotifications  bool `json:"enablePushNotifications"`
	EnableLocationAlerts     bool `json:"enableLocationAlerts"`
	EnableRecordingReminders bool `json:"enableRecordingReminders"`
}

type ShareableCard struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ShareableText   string    `json:"shareableText"`
	InteractionType string    `json:"interactionType,omitempty"`
	Created         time.Time `json:"created"`
}

type Preferences struct {
	AutoRecord             bool   `json:"autoRecord"`
	DefaultRecordingType   string `json:"defaultRecordingType"` // audio | video
	EnableLocationTracking bool   `json:"enableLocationTracking"`
	EnableOfflineMode      bool   `json:"enableOfflineMode"`
	Theme                  string `json:"theme"` // light | dark | system
}

// snapshot is exactly the persisted subset. Transient flags (online status,
// generation-in-progress, modal visibility) are deliberately absent.
// Settings blocks are pointers so a snapshot written before a field existed
// leaves the in-memory defaults alone instead of zeroing them.
type snapshot struct {
	User                 *User                 `json:"user"`
	Recordings           []Recording           `json:"recordings"`
	SelectedState        string                `json:"selectedState"`
	SelectedLanguage     string                `json:"selectedLanguage"`
	EmergencyContacts    []EmergencyContact    `json:"emergencyContacts"`
	NotificationSettings *NotificationSettings `json:"notificationSettings"`
	ShareableCards       []ShareableCard       `json:"shareableCards"`
	Preferences          *Preferences          `json:"preferences"`
}

// Store is safe for concurrent use; every mutation persists the snapshot.
type Store struct {
	mu        sync.Mutex
	persister Persister

	user                 *User
	recordings           []Recording
	selectedState        string
	selectedLanguage     string
	emergencyContacts    []EmergencyContact
	notificationSettings NotificationSettings
	shareableCards       []ShareableCard
	preferences          Preferences

	// transient session flags, never persisted
	isOnline     bool
	isGenerating bool
}

func defaultPreferences() Preferences {
	return Preferences{
		AutoRecord:             false,
		DefaultRecordingType:   "audio",
		EnableLocationTracking: true,
		EnableOfflineMode:      true,
		Theme:                  "system",
	}
}

func defaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EnablePushNotifications:  true,
		EnableLocationAlerts:     true,
		EnableRecordingReminders: true,
	}
}

// New creates a store, loading the persisted snapshot when one exists.
func New(p Persister) (*Store, error) {
	s := &Store{
		persister:            p,
		selectedState:        "General",
		selectedLanguage:     "en",
		notificationSettings: defaultNotificationSettings(),
		preferences:          defaultPreferences(),
		isOnline:             true,
	}

	if p != nil {
		raw, err := p.Load(StorageKey)
		if err != nil {
			return nil, err
		}
		if len(raw) > 0 {
			var snap snapshot
			if err := json.Unmarshal(raw, &snap); err != nil {
				return nil, err
			}
			s.applySnapshot(snap)
		}
	}
	return s, nil
}

func (s *Store) applySnapshot(snap snapshot) {
	s.user = snap.User
	s.recordings = snap.Recordings
	if snap.SelectedState != "" {
		s.selectedState = snap.SelectedState
	}
	if snap.SelectedLanguage != "" {
		s.selectedLanguage = snap.SelectedLanguage
	}
	s.emergencyContacts = snap.EmergencyContacts
	if snap.NotificationSettings != nil {
		s.notificationSettings = *snap.NotificationSettings
	}
	s.shareableCards = snap.ShareableCards
	if snap.Preferences != nil {
		prefs := *snap.Preferences
		if prefs.DefaultRecordingType == "" {
			prefs.DefaultRecordingType = defaultPreferences().DefaultRecordingType
		}
		if prefs.Theme == "" {
			prefs.Theme = defaultPreferences().Theme
		}
		s.preferences = prefs
	}
}

func (s *Store) snapshotLocked() snapshot {
	settings := s.notificationSettings
	prefs := s.preferences
	return snapshot{
		User:                 s.user,
		Recordings:           s.recordings,
		SelectedState:        s.selectedState,
		SelectedLanguage:     s.selectedLanguage,
		EmergencyContacts:    s.emergencyContacts,
		NotificationSettings: &settings,
		ShareableCards:       s.shareableCards,
		Preferences:          &prefs,
	}
}

// persistLocked writes the snapshot. Persistence errors are returned to the
// caller of the mutation that triggered them.
func (s *Store) persistLocked() error {
	if s.persister == nil {
		return nil
	}
	raw, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		return err
	}
	return s.persister.Save(StorageKey, raw)
}

func (s *Store) SetUser(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	return s.persistLocked()
}

func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) SetSelectedState(state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedState = state
	if s.user != nil {
		s.user.State = state
	}
	return s.persistLocked()
}

func (s *Store) SelectedState() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedState
}

func (s *Store) SetSelectedLanguage(language string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedLanguage = language
	if s.user != nil {
		s.user.LanguagePreference = language
	}
	return s.persistLocked()
}

func (s *Store) SelectedLanguage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLanguage
}

// AddRecording prepends, keeping the list most-recent-first.
func (s *Store) AddRecording(rec Recording) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordings = append([]Recording{rec}, s.recordings...)
	return s.persistLocked()
}

func (s *Store) UpdateRecording(id string, update func(*Recording)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recordings {
		if s.recordings[i].RecordingID == id {
			update(&s.recordings[i])
			break
		}
	}
	return s.persistLocked()
}

func (s *Store) RemoveRecording(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.recordings[:0]
	for _, rec := range s.recordings {
		if rec.RecordingID != id {
			kept = append(kept, rec)
		}
	}
	s.recordings = kept
	return s.persistLocked()
}

func (s *Store) ClearRecordings() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordings = nil
	return s.persistLocked()
}

func (s *Store) Recordings() []Recording {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Recording, len(s.recordings))
	copy(out, s.recordings)
	return out
}

func (s *Store) AddEmergencyContact(contact EmergencyContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emergencyContacts = append(s.emergencyContacts, contact)
	return s.persistLocked()
}

func (s *Store) RemoveEmergencyContact(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.emergencyContacts[:0]
	for _, contact := range s.emergencyContacts {
		if contact.ID != id {
			kept = append(kept, contact)
		}
	}
	s.emergencyContacts = kept
	return s.persistLocked()
}

func (s *Store) EmergencyContacts() []EmergencyContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmergencyContact, len(s.emergencyContacts))
	copy(out, s.emergencyContacts)
	return out
}

// AddShareableCard prepends, newest first.
func (s *Store) AddShareableCard(card ShareableCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shareableCards = append([]ShareableCard{card}, s.shareableCards...)
	return s.persistLocked()
}

func (s *Store) ShareableCards() []ShareableCard {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ShareableCard, len(s.shareableCards))
	copy(out, s.shareableCards)
	return out
}

func (s *Store) UpdateNotificationSettings(settings NotificationSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notificationSettings = settings
	return s.persistLocked()
}

func (s *Store) NotificationSettings() NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notificationSettings
}

func (s *Store) UpdatePreferences(prefs Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences = prefs
	return s.persistLocked()
}

func (s *Store) Preferences() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preferences
}

// SetOnline and SetGenerating track transient session flags. They never
// touch the persister.
func (s *Store) SetOnline(online bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOnline = online
}

func (s *Store) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOnline
}

func (s *Store) SetGenerating(generating bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isGenerating = generating
}

func (s *Store) Generating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isGenerating
}
