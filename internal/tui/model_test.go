package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-share-cache/models"
)

type editCall struct {
	op   string
	id   models.RecordID
	text string
}

type fakeView struct {
	zones   []models.Zone
	current models.ZoneID
	topics  map[models.ZoneID][]models.Topic

	edits   []editCall
	editErr error
}

func (f *fakeView) CurrentZone() (models.Zone, bool) {
	for _, z := range f.zones {
		if z.ID == f.current {
			return z, true
		}
	}
	return models.Zone{}, false
}

func (f *fakeView) Zones() []models.Zone { return f.zones }

func (f *fakeView) Topics() []models.Topic { return f.topics[f.current] }

func (f *fakeView) SelectZone(_ context.Context, id models.ZoneID) error {
	f.current = id
	return nil
}

func (f *fakeView) record(op string, id models.RecordID, text string) error {
	f.edits = append(f.edits, editCall{op: op, id: id, text: text})
	return f.editErr
}

func (f *fakeView) AddTopic(_ context.Context, name string) error {
	return f.record("add-topic", "", name)
}

func (f *fakeView) RenameTopic(_ context.Context, id models.RecordID, name string) error {
	return f.record("rename-topic", id, name)
}

func (f *fakeView) DeleteTopic(_ context.Context, id models.RecordID) error {
	return f.record("delete-topic", id, "")
}

func (f *fakeView) AddNote(_ context.Context, topicID models.RecordID, title string) error {
	return f.record("add-note", topicID, title)
}

func (f *fakeView) UpdateNote(_ context.Context, id models.RecordID, title string) error {
	return f.record("update-note", id, title)
}

func (f *fakeView) DeleteNote(_ context.Context, id models.RecordID) error {
	return f.record("delete-note", id, "")
}

type countingSyncer struct{ calls int }

func (s *countingSyncer) SyncNow() { s.calls++ }

func newFakeView() *fakeView {
	return &fakeView{
		zones: []models.Zone{
			{ID: "z1", Name: "Alpha", Scope: models.ScopePrivate},
			{ID: "z2", Name: "Beta", Scope: models.ScopeShared},
		},
		current: "z1",
		topics: map[models.ZoneID][]models.Topic{
			"z1": {
				{ID: "t1", Name: "Go", Permission: models.PermissionReadWrite, Notes: []models.Note{
					{ID: "n1", TopicID: "t1", Title: "channels", Permission: models.PermissionReadWrite},
				}},
				{ID: "t2", Name: "Rust", Permission: models.PermissionReadOnly},
			},
			"z2": {
				{ID: "t9", Name: "Shared", Permission: models.PermissionReadOnly},
			},
		},
	}
}

func press(t *testing.T, m model, k string) (model, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	next, cmd := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out, cmd
}

func TestModel_RendersCurrentZone(t *testing.T) {
	m := newModel(context.Background(), newFakeView(), &countingSyncer{}, nil)

	require.Len(t, m.rows, 3)
	assert.Equal(t, models.RecordID("t1"), m.rows[0].id)
	assert.True(t, m.rows[1].note)
	assert.True(t, m.rows[2].readOnly)

	out := m.View()
	assert.Contains(t, out, "Alpha (private)")
	assert.Contains(t, out, "channels")
	assert.Contains(t, out, "[read-only]")
}

func TestModel_NoZone(t *testing.T) {
	m := newModel(context.Background(), &fakeView{}, &countingSyncer{}, nil)

	assert.False(t, m.hasZone)
	assert.Contains(t, m.View(), "No zones yet")
}

func TestModel_Navigation(t *testing.T) {
	m := newModel(context.Background(), newFakeView(), &countingSyncer{}, nil)

	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, "down")
	m, _ = press(t, m, "j")
	m, _ = press(t, m, "down")
	assert.Equal(t, 2, m.idx)

	m, _ = press(t, m, "k")
	assert.Equal(t, 1, m.idx)
}

func TestModel_SyncKey(t *testing.T) {
	s := &countingSyncer{}
	m := newModel(context.Background(), newFakeView(), s, nil)

	m, cmd := press(t, m, "s")

	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "sync requested", m.status)
}

func TestModel_CopySelectedID(t *testing.T) {
	var copied string
	m := newModel(context.Background(), newFakeView(), &countingSyncer{}, func(s string) error {
		copied = s
		return nil
	})

	m, _ = press(t, m, "down")
	m, cmd := press(t, m, "c")
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(model)

	assert.Equal(t, "n1", copied)
	assert.Equal(t, "copied n1", m.status)
}

func TestModel_CopyFailure(t *testing.T) {
	m := newModel(context.Background(), newFakeView(), &countingSyncer{}, func(string) error {
		return errors.New("no clipboard")
	})

	m, cmd := press(t, m, "c")
	next, _ := m.Update(cmd())
	m = next.(model)

	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestModel_RecordsChangedKeepsSelection(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down") // t2

	// a new topic arrives in front of the selection
	view.topics["z1"] = append([]models.Topic{{ID: "t0", Name: "C"}}, view.topics["z1"]...)

	next, _ := m.Update(recordsChangedMsg{zoneID: "z2"})
	m = next.(model)
	assert.Len(t, m.rows, 3, "other zones do not redraw")

	next, _ = m.Update(recordsChangedMsg{zoneID: "z1"})
	m = next.(model)
	require.Len(t, m.rows, 4)
	assert.Equal(t, models.RecordID("t2"), m.rows[m.idx].id)
}

func TestModel_NextZone(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	m, cmd := press(t, m, "tab")
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(model)

	assert.Equal(t, models.ZoneID("z2"), m.zone.ID)
	require.Len(t, m.rows, 1)
	assert.Equal(t, "Shared", m.rows[0].text)
}

func TestModel_CurrentZoneChanged(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	view.current = "z2"
	next, _ := m.Update(currentZoneChangedMsg{zoneID: "z2"})
	m = next.(model)

	assert.Equal(t, "Beta", m.zone.Name)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(context.Background(), newFakeView(), &countingSyncer{}, nil)

	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// finish runs the command of a submitted edit and feeds its result back.
func finish(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()

	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(model)
}

func TestModel_AddTopic(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	m, _ = press(t, m, "a")
	require.Equal(t, editAddTopic, m.editing)

	// keys bound in the list are plain text while typing
	m, _ = press(t, m, "quick")
	assert.Equal(t, editAddTopic, m.editing)
	assert.Contains(t, m.View(), "new topic: ")

	m, cmd := press(t, m, "enter")
	assert.Equal(t, editNone, m.editing)
	m = finish(t, m, cmd)

	assert.Equal(t, []editCall{{op: "add-topic", text: "quick"}}, view.edits)
	assert.Equal(t, "saved", m.status)
}

func TestModel_AddNoteUsesTopicOfSelection(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	m, _ = press(t, m, "down") // n1 under t1
	m, _ = press(t, m, "n")
	m, _ = press(t, m, "select")
	m, cmd := press(t, m, "enter")
	finish(t, m, cmd)

	assert.Equal(t, []editCall{{op: "add-note", id: "t1", text: "select"}}, view.edits)
}

func TestModel_EditPrefillsCurrentText(t *testing.T) {
	tests := []struct {
		name  string
		downs int
		want  editCall
	}{
		{name: "topic", downs: 0, want: editCall{op: "rename-topic", id: "t1", text: "Golang"}},
		{name: "note", downs: 1, want: editCall{op: "update-note", id: "n1", text: "channelslang"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := newFakeView()
			m := newModel(context.Background(), view, &countingSyncer{}, nil)
			for range tt.downs {
				m, _ = press(t, m, "down")
			}

			m, _ = press(t, m, "e")
			m, _ = press(t, m, "lang")
			m, cmd := press(t, m, "enter")
			finish(t, m, cmd)

			assert.Equal(t, []editCall{tt.want}, view.edits)
		})
	}
}

func TestModel_Delete(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	m, _ = press(t, m, "down")
	m, cmd := press(t, m, "x")
	finish(t, m, cmd)

	assert.Equal(t, []editCall{{op: "delete-note", id: "n1"}}, view.edits)
}

func TestModel_ReadOnlyRowIsNotEdited(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "down") // t2 is read-only

	m, cmd := press(t, m, "x")
	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, "Rust is read-only")

	m, cmd = press(t, m, "e")
	assert.Nil(t, cmd)
	assert.Equal(t, editNone, m.editing)
	assert.Empty(t, view.edits)
}

func TestModel_CancelAndEmptyInput(t *testing.T) {
	view := newFakeView()
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	m, _ = press(t, m, "a")
	m, _ = press(t, m, "draft")
	m, cmd := press(t, m, "esc")
	assert.Nil(t, cmd)
	assert.Equal(t, editNone, m.editing)

	m, _ = press(t, m, "a")
	assert.Empty(t, m.input.Value(), "a cancelled draft is not kept")
	m, cmd = press(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Equal(t, "nothing entered", m.status)
	assert.Empty(t, view.edits)
}

func TestModel_EditFailureIsShown(t *testing.T) {
	view := newFakeView()
	view.editErr = errors.New("permission denied")
	m := newModel(context.Background(), view, &countingSyncer{}, nil)

	m, cmd := press(t, m, "x")
	m = finish(t, m, cmd)

	assert.Equal(t, "edit failed: permission denied", m.errMsg)
}
