package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-share-cache/models"
)

// row is one rendered line: a topic or one of its notes. topic is the
// topic itself or the parent of a note.
type row struct {
	id       models.RecordID
	topic    models.RecordID
	text     string
	note     bool
	readOnly bool
}

type editKind int

const (
	editNone editKind = iota
	editAddTopic
	editAddNote
	editRename
)

type model struct {
	ctx    context.Context
	view   zoneView
	syncer syncer
	copyFn func(string) error

	zone    models.Zone
	hasZone bool
	rows    []row
	idx     int

	status string
	errMsg string

	input   textinput.Model
	editing editKind
	target  row
}

func newModel(ctx context.Context, view zoneView, syncer syncer, copyFn func(string) error) model {
	input := textinput.New()
	input.CharLimit = 200

	m := model{
		ctx:    ctx,
		view:   view,
		syncer: syncer,
		copyFn: copyFn,
		input:  input,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsChangedMsg:
		// batches of other zones do not change the screen
		if m.hasZone && msg.zoneID == m.zone.ID {
			m.refresh()
		}
		return m, nil
	case currentZoneChangedMsg:
		m.refresh()
		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("copied %s", msg.id)
		return m, nil
	case editDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("edit failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "saved"
		m.refresh()
		return m, nil
	case selectZoneDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("switch zone: %v", msg.err)
			return m, nil
		}
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if m.editing != editNone {
			return m.updateInput(msg)
		}
		return m.updateKey(msg)
	}

	if m.editing != editNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateInput handles keys while a name is being typed.
func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.cancel):
		m.stopEditing()
		m.status = ""
		return m, nil
	case key.Matches(msg, keys.submit):
		text := strings.TrimSpace(m.input.Value())
		kind, target := m.editing, m.target
		m.stopEditing()
		if text == "" {
			m.status = "nothing entered"
			return m, nil
		}
		return m, m.cmdEdit(kind, target, text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.sync):
		m.syncer.SyncNow()
		m.errMsg = ""
		m.status = "sync requested"
	case key.Matches(msg, keys.copy):
		r, ok := m.selected()
		if !ok {
			m.status = "nothing to copy"
			return m, nil
		}
		return m, m.cmdCopy(r.id)
	case key.Matches(msg, keys.nextZone):
		next, ok := m.nextZone()
		if !ok {
			return m, nil
		}
		return m, m.cmdSelectZone(next)
	case key.Matches(msg, keys.addTopic):
		if !m.hasZone {
			m.status = "no zone to add to"
			return m, nil
		}
		return m, m.startEditing(editAddTopic, row{}, "", "new topic: ")
	case key.Matches(msg, keys.addNote):
		r, ok := m.selected()
		if !ok {
			m.status = "select a topic first"
			return m, nil
		}
		return m, m.startEditing(editAddNote, r, "", "new note: ")
	case key.Matches(msg, keys.edit):
		r, ok := m.writable()
		if !ok {
			return m, nil
		}
		return m, m.startEditing(editRename, r, r.text, "rename: ")
	case key.Matches(msg, keys.remove):
		r, ok := m.writable()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(r)
	}

	return m, nil
}

// writable returns the selected row unless it is missing or read-only, in
// which case the reason is shown.
func (m *model) writable() (row, bool) {
	r, ok := m.selected()
	if !ok {
		m.status = "nothing selected"
		return row{}, false
	}
	if r.readOnly {
		m.errMsg = fmt.Sprintf("%s is read-only", r.text)
		return row{}, false
	}
	return r, true
}

func (m *model) startEditing(kind editKind, target row, value, prompt string) tea.Cmd {
	m.editing = kind
	m.target = target
	m.errMsg = ""
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *model) stopEditing() {
	m.editing = editNone
	m.target = row{}
	m.input.Blur()
	m.input.Reset()
}

// refresh rebuilds the rows from the current zone, keeping the selection on
// the same record when it still exists.
func (m *model) refresh() {
	var selectedID models.RecordID
	if r, ok := m.selected(); ok {
		selectedID = r.id
	}

	m.zone, m.hasZone = m.view.CurrentZone()
	m.rows = nil
	if m.hasZone {
		m.rows = buildRows(m.view.Topics())
	}

	m.idx = 0
	if i := slices.IndexFunc(m.rows, func(r row) bool { return r.id == selectedID }); i >= 0 {
		m.idx = i
	}
}

func buildRows(topics []models.Topic) []row {
	var rows []row
	for _, t := range topics {
		rows = append(rows, row{
			id:       t.ID,
			topic:    t.ID,
			text:     t.Name,
			readOnly: !t.Permission.CanWrite(),
		})
		for _, n := range t.Notes {
			rows = append(rows, row{
				id:       n.ID,
				topic:    t.ID,
				text:     n.Title,
				note:     true,
				readOnly: !n.Permission.CanWrite(),
			})
		}
	}
	return rows
}

func (m model) selected() (row, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.idx], true
}

// nextZone returns the zone after the current one, wrapping around.
func (m model) nextZone() (models.ZoneID, bool) {
	zones := m.view.Zones()
	if len(zones) < 2 {
		return "", false
	}

	i := slices.IndexFunc(zones, func(z models.Zone) bool { return z.ID == m.zone.ID })
	return zones[(i+1)%len(zones)].ID, true
}

func (m model) cmdCopy(id models.RecordID) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{id: id, err: m.copyFn(string(id))}
	}
}

func (m model) cmdSelectZone(id models.ZoneID) tea.Cmd {
	return func() tea.Msg {
		return selectZoneDoneMsg{err: m.view.SelectZone(m.ctx, id)}
	}
}

func (m model) cmdEdit(kind editKind, target row, text string) tea.Cmd {
	view, ctx := m.view, m.ctx
	return func() tea.Msg {
		var err error
		switch {
		case kind == editAddTopic:
			err = view.AddTopic(ctx, text)
		case kind == editAddNote:
			err = view.AddNote(ctx, target.topic, text)
		case kind == editRename && target.note:
			err = view.UpdateNote(ctx, target.id, text)
		case kind == editRename:
			err = view.RenameTopic(ctx, target.id, text)
		}
		return editDoneMsg{err: err}
	}
}

func (m model) cmdDelete(target row) tea.Cmd {
	view, ctx := m.view, m.ctx
	return func() tea.Msg {
		if target.note {
			return editDoneMsg{err: view.DeleteNote(ctx, target.id)}
		}
		return editDoneMsg{err: view.DeleteTopic(ctx, target.id)}
	}
}
