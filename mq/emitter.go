package mq

import (
	"encoding/json"
	"log"

	"dokan/globals"
	"dokan/rdx"
)

// Event describes an entity change published on the store-events channel so
// external consumers (search indexers, dashboards) can react without
// polling the database.
type Event struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Method     string `json:"method"`
}

const channel = "store-events"

// Emit publishes the event to Redis. Delivery is best-effort; a missing
// broker only logs.
func Emit(eventName string, content Event) {
	if rdx.Conn == nil {
		return
	}
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[mq] marshal %s: %v", eventName, err)
		return
	}
	if err := rdx.Conn.Publish(globals.Ctx, channel, data).Err(); err != nil {
		log.Printf("[mq] publish %s: %v", eventName, err)
	}
}
