package cache

import "github.com/MKhiriev/go-share-cache/models"

// TopicTokenKey is the token store key of a zone's record stream.
func TopicTokenKey(zoneID models.ZoneID) string {
	return "zone:" + string(zoneID)
}

// ZoneTokenKey is the token store key of a database's zone stream.
func ZoneTokenKey(scope models.Scope) string {
	return "db:" + string(scope)
}
