package clientstate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rightscard/core/internal/pkg/localstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	blobs map[string][]byte
}

func newMemPersister() *memPersister {
	return &memPersister{blobs: map[string][]byte{}}
}

func (m *memPersister) Save(key string, data []byte) error {
	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[key] = copied
	return nil
}

func (m *memPersister) Load(key string) ([]byte, error) {
	return m.blobs[key], nil
}

func TestRoundTripAcrossRestart(t *testing.T) {
	p := newMemPersister()
	s, err := New(p)
	require.NoError(t, err)

	require.NoError(t, s.SetUser(&User{ID: "u1", Name: "Ada", State: "CA", LanguagePreference: "es"}))
	require.NoError(t, s.SetSelectedState("CA"))
	require.NoError(t, s.SetSelectedLanguage("es"))
	require.NoError(t, s.AddRecording(Recording{
		RecordingID:     "r1",
		InteractionType: "traffic_stop",
		Timestamp:       time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Duration:        42,
		Medium:          "audio",
	}))
	require.NoError(t, s.AddEmergencyContact(EmergencyContact{ID: "c1", Name: "Legal Aid", Phone: "211", IsLawyer: true}))
	require.NoError(t, s.UpdatePreferences(Preferences{
		AutoRecord:           true,
		DefaultRecordingType: "video",
		Theme:                "dark",
	}))
	s.SetOnline(false)
	s.SetGenerating(true)

	// Simulated restart: a fresh store over the same persister.
	reloaded, err := New(p)
	require.NoError(t, err)

	assert.Equal(t, s.User(), reloaded.User())
	assert.Equal(t, "CA", reloaded.SelectedState())
	assert.Equal(t, "es", reloaded.SelectedLanguage())
	assert.Equal(t, s.Recordings(), reloaded.Recordings())
	assert.Equal(t, s.EmergencyContacts(), reloaded.EmergencyContacts())
	assert.Equal(t, s.Preferences(), reloaded.Preferences())
	assert.Equal(t, s.NotificationSettings(), reloaded.NotificationSettings())

	// Transient flags fall back to their defaults after a restart.
	assert.True(t, reloaded.Online())
	assert.False(t, reloaded.Generating())
}

func TestOldSnapshotKeepsSettingsDefaults(t *testing.T) {
	// A blob written before the settings blocks existed carries neither
	// preferences nor notificationSettings.
	p := newMemPersister()
	require.NoError(t, p.Save(StorageKey, []byte(`{"selectedState":"NY","recordings":[]}`)))

	s, err := New(p)
	require.NoError(t, err)

	assert.Equal(t, "NY", s.SelectedState())
	assert.Equal(t, defaultPreferences(), s.Preferences())
	assert.Equal(t, defaultNotificationSettings(), s.NotificationSettings())
}

func TestPartialPreferencesBackfilled(t *testing.T) {
	p := newMemPersister()
	require.NoError(t, p.Save(StorageKey, []byte(`{"preferences":{"autoRecord":true}}`)))

	s, err := New(p)
	require.NoError(t, err)

	prefs := s.Preferences()
	assert.True(t, prefs.AutoRecord)
	assert.Equal(t, "audio", prefs.DefaultRecordingType)
	assert.Equal(t, "system", prefs.Theme)
}

func TestTransientFlagsNeverPersisted(t *testing.T) {
	p := newMemPersister()
	s, err := New(p)
	require.NoError(t, err)

	s.SetOnline(false)
	s.SetGenerating(true)
	require.NoError(t, s.SetSelectedState("TX"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(p.blobs[StorageKey], &raw))
	assert.NotContains(t, raw, "isOnline")
	assert.NotContains(t, raw, "isGenerating")
	assert.Contains(t, raw, "selectedState")
	assert.Contains(t, raw, "preferences")
	assert.Contains(t, raw, "recordings")
	assert.Contains(t, raw, "emergencyContacts")
}

func TestAddRecordingPrepends(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, s.AddRecording(Recording{RecordingID: "old"}))
	require.NoError(t, s.AddRecording(Recording{RecordingID: "new"}))

	recs := s.Recordings()
	require.Len(t, recs, 2)
	assert.Equal(t, "new", recs[0].RecordingID)
	assert.Equal(t, "old", recs[1].RecordingID)
}

func TestRemoveAndClearRecordings(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, s.AddRecording(Recording{RecordingID: "a"}))
	require.NoError(t, s.AddRecording(Recording{RecordingID: "b"}))

	require.NoError(t, s.RemoveRecording("a"))
	recs := s.Recordings()
	require.Len(t, recs, 1)
	assert.Equal(t, "b", recs[0].RecordingID)

	require.NoError(t, s.ClearRecordings())
	assert.Empty(t, s.Recordings())
}

func TestUpdateRecordingAttachesSummary(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, s.AddRecording(Recording{RecordingID: "r1"}))

	require.NoError(t, s.UpdateRecording("r1", func(r *Recording) {
		r.AISummary = "short factual summary"
		r.IsUploaded = true
	}))

	recs := s.Recordings()
	assert.Equal(t, "short factual summary", recs[0].AISummary)
	assert.True(t, recs[0].IsUploaded)
}

func TestDefaultsWithoutSnapshot(t *testing.T) {
	s, err := New(newMemPersister())
	require.NoError(t, err)

	assert.Equal(t, "General", s.SelectedState())
	assert.Equal(t, "en", s.SelectedLanguage())
	assert.Equal(t, "audio", s.Preferences().DefaultRecordingType)
	assert.True(t, s.NotificationSettings().EnablePushNotifications)
}

func TestFileBackedPersister(t *testing.T) {
	dir := t.TempDir()
	fileStore, err := localstore.New(dir)
	require.NoError(t, err)

	s, err := New(fileStore)
	require.NoError(t, err)
	require.NoError(t, s.SetSelectedState("WA"))
	require.NoError(t, s.AddShareableCard(ShareableCard{ID: "card1", Title: "Know Your Rights"}))

	reloaded, err := New(fileStore)
	require.NoError(t, err)
	assert.Equal(t, "WA", reloaded.SelectedState())
	require.Len(t, reloaded.ShareableCards(), 1)
	assert.Equal(t, "card1", reloaded.ShareableCards()[0].ID)
}
