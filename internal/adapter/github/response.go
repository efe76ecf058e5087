package github

import (
	"fmt"

	gh "github.com/google/go-github/v71/github"
	jsoniter "github.com/json-iterator/go"
	"github.com/opensource-compass/compassdash/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type repositoryResponse gh.Repository

func (r repositoryResponse) ToRepoStats() app.RepoStats {
	repo := gh.Repository(r)
	return app.RepoStats{
		Stars: repo.GetStargazersCount(),
		Forks: repo.GetForksCount(),
	}
}

type contributorsResponse []*gh.Contributor

func (s contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(s))
	for _, el := range s {
		if el == nil {
			continue
		}
		cs = append(cs, app.Contributor{
			Login:         el.GetLogin(),
			ProfileURL:    el.GetHTMLURL(),
			AvatarURL:     el.GetAvatarURL(),
			Contributions: el.GetContributions(),
		})
	}

	return cs
}

type eventsResponse []*gh.Event

// ToActivityEvents converts github events. Payload is decoded only for pull request and push events.
func (s eventsResponse) ToActivityEvents() ([]app.ActivityEvent, error) {
	es := make([]app.ActivityEvent, 0, len(s))
	for _, el := range s {
		if el == nil {
			continue
		}
		e := app.ActivityEvent{
			Kind:           app.EventKind(el.GetType()),
			ActorLogin:     el.GetActor().GetLogin(),
			ActorAvatarURL: el.GetActor().GetAvatarURL(),
			CreatedAt:      el.GetCreatedAt().Time,
		}

		switch e.Kind {
		case app.EventPullRequest, app.EventPush:
			payload, err := el.ParsePayload()
			if err != nil {
				return nil, fmt.Errorf("parsing %s %s payload: %w", el.GetType(), el.GetID(), err)
			}
			switch p := payload.(type) {
			case *gh.PullRequestEvent:
				e.PRAction = p.GetAction()
				e.PRNumber = p.GetPullRequest().GetNumber()
				if e.PRNumber == 0 {
					e.PRNumber = p.GetNumber()
				}
				e.PRTitle = p.GetPullRequest().GetTitle()
			case *gh.PushEvent:
				if len(p.Commits) > 0 {
					e.CommitMessage = p.Commits[0].GetMessage()
				}
			}
		}

		es = append(es, e)
	}

	return es, nil
}
