package types

import (
	"systemsnake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventSteer
	UIEventToggle
	UIEventReset
	UIEventCopyScore
	UIEventTrackToggle
	UIEventTrackNext
	UIEventTrackPrev
	UIEventTrackMute
	UIEventQuit
)

type SteerData struct {
	Direction domain.Direction
}
