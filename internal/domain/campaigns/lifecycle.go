package campaigns

import "time"

// PendingThreshold is the number of attached images that moves a campaign
// out of the upload stage.
const PendingThreshold = 3

type Trigger int

const (
	// TriggerUpdate is an update-campaign request, with or without an
	// explicit status.
	TriggerUpdate Trigger = iota
	// TriggerImageAttached fires after an uploaded image was linked to the
	// campaign.
	TriggerImageAttached
)

type Input struct {
	Trigger Trigger
	Current Status
	// Requested is the status argument of an update request, nil when the
	// request did not carry one.
	Requested  *Status
	ImageCount int
	EndDate    *time.Time
	Today      time.Time
}

type Outcome struct {
	Status Status
	// PurgeAttachments asks the caller to delete every CampaignImage of the
	// campaign together with the images they reference.
	PurgeAttachments bool
}

// Next computes the status a campaign moves to. It has no side effects.
//
// A cancel request does not land on StatusCancelled: it wipes the
// attachments and sends the campaign back to StatusUpload so the partner can
// start over.
func Next(in Input) Outcome {
	if in.Trigger == TriggerImageAttached {
		if in.Current == StatusUpload && in.ImageCount >= PendingThreshold {
			return Outcome{Status: StatusPending}
		}
		return Outcome{Status: in.Current}
	}

	if in.Requested != nil {
		switch *in.Requested {
		case StatusSubmitted:
			return Outcome{Status: StatusSubmitted}
		case StatusCancelled:
			return Outcome{Status: StatusUpload, PurgeAttachments: true}
		default:
			return Outcome{Status: *in.Requested}
		}
	}

	if in.Current == StatusSubmitted && in.EndDate != nil && !DateOf(*in.EndDate).After(DateOf(in.Today)) {
		return Outcome{Status: StatusCompleted}
	}
	return Outcome{Status: in.Current}
}

// DateOf truncates t to its calendar day, expressed at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
