package api

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spudtrooper/goutil/or"
)

const (
	defaultMax = 30
)

// Follower is one user from the authenticated user's followers list.
type Follower struct {
	Login             string `json:"login"`
	ID                int32  `json:"id"`
	NodeID            string `json:"node_id"`
	AvatarURL         string `json:"avatar_url"`
	GravatarID        string `json:"gravatar_id"`
	URL               string `json:"url"`
	HTMLURL           string `json:"html_url"`
	FollowersURL      string `json:"followers_url"`
	FollowingURL      string `json:"following_url"`
	GistsURL          string `json:"gists_url"`
	StarredURL        string `json:"starred_url"`
	SubscriptionsURL  string `json:"subscriptions_url"`
	OrganizationsURL  string `json:"organizations_url"`
	ReposURL          string `json:"repos_url"`
	EventsURL         string `json:"events_url"`
	ReceivedEventsURL string `json:"received_events_url"`
	Type              string `json:"type"`
	SiteAdmin         bool   `json:"site_admin"`
}

type Followers []Follower

// GetFollowers returns one page of the authenticated user's followers,
// in the order the API returns them.
func (c *Client) GetFollowers(ctx context.Context, fOpts ...FollowersOption) (Followers, error) {
	opts := MakeFollowersOptions(fOpts...)
	max := or.Int(opts.Max(), defaultMax)
	route := createRoute("user/followers", param{"per_page", max})
	var payload Followers
	if err := c.get(ctx, route, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errors.Errorf("error parsing JSON: expected an array of followers")
	}
	return payload, nil
}
