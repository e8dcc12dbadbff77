package tui

import "github.com/MKhiriev/go-share-cache/models"

// recordsChangedMsg is sent for every applied batch of any zone.
type recordsChangedMsg struct {
	zoneID models.ZoneID
}

type currentZoneChangedMsg struct {
	zoneID models.ZoneID
}

type copyDoneMsg struct {
	id  models.RecordID
	err error
}

type selectZoneDoneMsg struct {
	err error
}

type editDoneMsg struct {
	err error
}
