package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mcamargo/planner/internal/domain"
)

// dateFormat is the long human-readable form used in email bodies and
// subjects, e.g. "March 10, 2024".
const dateFormat = "January 2, 2006"

// tripCreatedTmpl is sent to the trip owner right after creation. The link
// points at the trip confirmation endpoint, which kicks off the participant
// invites.
var tripCreatedTmpl = template.Must(template.New("trip_created").Parse(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>You requested a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
  <p>To confirm your trip, click the link below:</p>
  <p><a href="{{.ConfirmURL}}">Confirm trip</a></p>
  <p>If you don't know what this email is about, just ignore it.</p>
</div>
`))

// inviteTmpl is sent to a participant, either when the owner confirms the
// trip or when the participant is invited afterwards. The link points at the
// participant confirmation endpoint.
var inviteTmpl = template.Must(template.New("invite").Parse(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>You have been invited on a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
  <p>To confirm your presence on the trip, click the link below:</p>
  <p><a href="{{.ConfirmURL}}">Confirm presence</a></p>
  <p>If you don't know what this email is about, just ignore it.</p>
</div>
`))

// tmplData is the shared payload for both templates.
type tmplData struct {
	Destination string
	StartsAt    string
	EndsAt      string
	ConfirmURL  string
}

// tripCreatedMessage renders the owner's confirmation-kickoff email.
func tripCreatedMessage(trip domain.Trip, owner domain.Participant, confirmURL string) (Message, error) {
	html, err := render(tripCreatedTmpl, trip, confirmURL)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      owner.Email,
		Subject: fmt.Sprintf("Confirm your trip to %s on %s", trip.Destination, trip.StartsAt.Format(dateFormat)),
		HTML:    html,
	}, nil
}

// inviteMessage renders a participant's confirm-your-presence email.
func inviteMessage(trip domain.Trip, participant domain.Participant, confirmURL string) (Message, error) {
	html, err := render(inviteTmpl, trip, confirmURL)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      participant.Email,
		Subject: fmt.Sprintf("Confirm your presence on the trip to %s on %s", trip.Destination, trip.StartsAt.Format(dateFormat)),
		HTML:    html,
	}, nil
}

func render(tmpl *template.Template, trip domain.Trip, confirmURL string) (string, error) {
	var sb strings.Builder
	err := tmpl.Execute(&sb, tmplData{
		Destination: trip.Destination,
		StartsAt:    trip.StartsAt.Format(dateFormat),
		EndsAt:      trip.EndsAt.Format(dateFormat),
		ConfirmURL:  confirmURL,
	})
	if err != nil {
		return "", fmt.Errorf("mail: render %s: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(sb.String()), nil
}
