package app

import (
	"fmt"
	"time"
)

// RepoStats entity
type RepoStats struct {
	Stars int
	Forks int
}

// CommitTotal is an approximate number of commits in a repository.
// Known is false when the total couldn't be derived from pagination metadata.
type CommitTotal struct {
	Count int
	Known bool
}

// Contributor entity
type Contributor struct {
	Login         string
	ProfileURL    string
	AvatarURL     string
	Contributions int
}

// EstimatedPRs returns rough number of pull requests: contributions/10, floored.
func (c Contributor) EstimatedPRs() int {
	return estimatePRs(c.Contributions)
}

// EstimatedPoints returns contributions*1.5, floored.
func (c Contributor) EstimatedPoints() int {
	return estimatePoints(c.Contributions)
}

func estimatePRs(contributions int) int {
	if contributions <= 0 {
		return 0
	}
	return contributions / 10
}

func estimatePoints(contributions int) int {
	if contributions <= 0 {
		return 0
	}
	return contributions * 3 / 2
}

// EventKind is github event type discriminator.
type EventKind string

// Event kinds kept in activity feed.
const (
	EventPullRequest EventKind = "PullRequestEvent"
	EventPush        EventKind = "PushEvent"
)

// ActivityEvent entity
type ActivityEvent struct {
	Kind           EventKind
	ActorLogin     string
	ActorAvatarURL string
	CreatedAt      time.Time

	PRNumber int
	PRTitle  string
	PRAction string

	CommitMessage string
}

// Message formats event as one line of text.
func (e ActivityEvent) Message() string {
	switch e.Kind {
	case EventPullRequest:
		verb := "Open"
		if e.PRAction == "closed" {
			verb = "Merge"
		}
		return fmt.Sprintf("%s pull request #%d %s", verb, e.PRNumber, e.PRTitle)
	case EventPush:
		msg := e.CommitMessage
		if msg == "" {
			msg = "Commit"
		}
		return "Pushed commit: " + msg
	}

	return string(e.Kind)
}

// Program entity
type Program struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Description string `json:"description" yaml:"description"`
	Timeline    string `json:"timeline" yaml:"timeline"`
	Stipend     string `json:"stipend" yaml:"stipend"`
	Link        string `json:"link" yaml:"link"`
}
