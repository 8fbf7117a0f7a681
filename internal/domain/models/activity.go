package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ActivityType string

const (
	ActivityTrip        ActivityType = "trip"
	ActivityMaintenance ActivityType = "maintenance"
	ActivityFuel        ActivityType = "fuel"
	ActivityDriver      ActivityType = "driver"
	ActivityVehicle     ActivityType = "vehicle"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Activity is one entry of the dashboard activity feed.
type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
	Type        ActivityType `json:"type"`
	Priority    Priority     `json:"priority"`
}

type AlertType string

const (
	AlertMaintenance AlertType = "maintenance"
	AlertFuel        AlertType = "fuel"
	AlertInspection  AlertType = "inspection"
	AlertLicense     AlertType = "license"
	AlertInsurance   AlertType = "insurance"
)

// Alert is a maintenance alert raised against a vehicle.
type Alert struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Type        AlertType `json:"type"`
	Priority    Priority  `json:"priority"`
	Resolved    bool      `json:"resolved"`
	VehicleID   string    `json:"vehicle_id,omitempty"`
}

// UnmarshalJSON accepts resolved as a bool, a 0/1 number or a quoted form of
// either. MySQL reports BOOLEAN columns as TINYINT(1).
func (a *Alert) UnmarshalJSON(b []byte) error {
	type alias Alert
	aux := struct {
		*alias
		Resolved json.RawMessage `json:"resolved"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	resolved, err := parseFlag(aux.Resolved)
	if err != nil {
		return fmt.Errorf("alert %s: resolved: %w", a.ID, err)
	}
	a.Resolved = resolved
	return nil
}

func parseFlag(raw json.RawMessage) (bool, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	switch strings.ToLower(s) {
	case "", "null":
		return false, nil
	case "true", "t", "yes":
		return true, nil
	case "false", "f", "no":
		return false, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
