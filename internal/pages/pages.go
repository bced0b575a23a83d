// Package pages describes the posts and users pages shared by the CLI and
// the HTML server: where their data comes from, how it is searched and how
// it is labelled.
package pages

import (
	"strconv"

	"github.com/fivetwenty-io/jph/internal/constants"
	"github.com/fivetwenty-io/jph/pkg/fetchstate"
	"github.com/fivetwenty-io/jph/pkg/jph"
)

// Page is the static description of one list page.
type Page[T any] struct {
	Name              string
	Path              string
	Title             string
	Subtitle          string
	EmptyMessage      string
	SearchPlaceholder string
	DefaultLimit      int
	Match             fetchstate.Matcher[T]
	Key               func(item T, index int) string
	Fetcher           func(client jph.Client) fetchstate.Fetcher[T]
}

// NewController creates the per-view controller for the page. A negative
// limit selects the page default.
func (p Page[T]) NewController(client jph.Client, limit int, logger jph.Logger) *fetchstate.Controller[T] {
	if limit < 0 {
		limit = p.DefaultLimit
	}

	return fetchstate.New(p.Fetcher(client), p.Match, fetchstate.Options{
		Name:   p.Name,
		Limit:  limit,
		Logger: logger,
	})
}

// Posts is the blog posts page.
var Posts = Page[jph.Post]{
	Name:              "posts",
	Path:              "/",
	Title:             "Blog Posts",
	Subtitle:          "Fetched from JSONPlaceholder API",
	EmptyMessage:      "No posts available",
	SearchPlaceholder: "Search posts...",
	DefaultLimit:      constants.DefaultPostsLimit,
	Match:             PostFields,
	Key:               PostKey,
	Fetcher: func(client jph.Client) fetchstate.Fetcher[jph.Post] {
		return client.Posts().List
	},
}

// Users is the user directory page.
var Users = Page[jph.User]{
	Name:              "users",
	Path:              "/users",
	Title:             "User Directory",
	Subtitle:          "Browse our community members",
	EmptyMessage:      "No users found",
	SearchPlaceholder: "Search users...",
	DefaultLimit:      constants.DefaultUsersLimit,
	Match:             UserFields,
	Key:               UserKey,
	Fetcher: func(client jph.Client) fetchstate.Fetcher[jph.User] {
		return client.Users().List
	},
}

// PostFields are the fields a post search matches: title and body.
func PostFields(post jph.Post) []string {
	return []string{post.Title, post.Body}
}

// UserFields are the fields a user search matches.
func UserFields(user jph.User) []string {
	return []string{user.Name, user.Username, user.Email, user.Company.Name}
}

// PostKey keys a post by id.
func PostKey(post jph.Post, _ int) string {
	return strconv.Itoa(post.ID)
}

// UserKey keys a user by id.
func UserKey(user jph.User, _ int) string {
	return strconv.Itoa(user.ID)
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Href   string
	Label  string
	Active bool
}

// Navigation returns the navigation bar with the entry for activePath marked.
func Navigation(activePath string) []NavItem {
	items := []NavItem{
		{Href: Posts.Path, Label: "Posts"},
		{Href: Users.Path, Label: "Users"},
	}

	for i := range items {
		items[i].Active = items[i].Href == activePath
	}

	return items
}
