package invite

import (
	"fmt"
	"strings"

	"gamenight/backend/internal/models"
)

// EmailSubject builds the invite email subject line for an event.
func EmailSubject(event models.Event) string {
	return fmt.Sprintf("You're invited: %s", event.Title)
}

// EmailBody builds the plain-text invite email. personalMessage is the host's
// optional note and may be empty.
func EmailBody(event models.Event, hostName, link, personalMessage string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s is hosting a game night: %s\n\n", hostName, event.Title)
	if !event.Date.IsZero() {
		fmt.Fprintf(&b, "When: %s", event.Date.Format("Monday, January 2"))
		if event.StartTime != "" {
			fmt.Fprintf(&b, " at %s", event.StartTime)
		}
		b.WriteString("\n")
	}
	if event.Location != "" {
		fmt.Fprintf(&b, "Where: %s\n", event.Location)
	}
	if event.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", event.Theme)
	}
	if personalMessage != "" {
		fmt.Fprintf(&b, "\n%q\n", personalMessage)
	}
	fmt.Fprintf(&b, "\nRSVP here: %s\n", link)

	return b.String()
}
