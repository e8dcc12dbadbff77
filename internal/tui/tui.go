// Package tui is the terminal front end of the client cache. It shows the
// topics and notes of the current zone, redraws whenever the cache publishes
// a change and edits writable records through the zone's topic cache.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/notify"
	"github.com/MKhiriev/go-share-cache/internal/service"
	"github.com/MKhiriev/go-share-cache/models"
)

type TUI struct {
	services *service.ClientServices
	records  *notify.Bus[models.RecordsChanged]
	current  *notify.Bus[models.CurrentZoneChanged]

	logger *logger.Logger
}

func New(
	services *service.ClientServices,
	records *notify.Bus[models.RecordsChanged],
	current *notify.Bus[models.CurrentZoneChanged],
	logger *logger.Logger,
) *TUI {
	return &TUI{
		services: services,
		records:  records,
		current:  current,
		logger:   logger.WithComponent("tui"),
	}
}

// Run blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, syncServiceView{t.services.SyncService}, t.services.SyncJob, clipboard.WriteAll)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// redraws are idempotent: dropping a burst loses nothing
	recordsSub, err := t.records.Subscribe(notify.SubscriptionSpec{
		Name:         "tui-records",
		Buffer:       16,
		Backpressure: notify.BackpressureDropNewest,
	}, func(_ context.Context, ev models.RecordsChanged) error {
		p.Send(recordsChangedMsg{zoneID: ev.ZoneID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe to record changes: %w", err)
	}
	defer recordsSub.Close()

	currentSub, err := t.current.Subscribe(notify.SubscriptionSpec{
		Name: "tui-current-zone",
	}, func(_ context.Context, ev models.CurrentZoneChanged) error {
		p.Send(currentZoneChangedMsg{zoneID: ev.ZoneID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("subscribe to current zone: %w", err)
	}
	defer currentSub.Close()

	if _, err = p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run terminal ui: %w", err)
	}

	t.logger.Info().Msg("terminal ui closed")
	return nil
}
