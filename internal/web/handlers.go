package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/fivetwenty-io/jph/internal/pages"
	"github.com/fivetwenty-io/jph/pkg/fetchstate"
	"github.com/fivetwenty-io/jph/pkg/jph"
	"github.com/fivetwenty-io/jph/pkg/listview"
	"go.uber.org/zap"
)

// PostCard is the template model of one post.
type PostCard struct {
	ID     int
	UserID int
	Title  string
	Body   string
}

// UserCard is the template model of one user.
type UserCard struct {
	Name     string
	Username string
	Email    string
	Phone    string
	Website  string
	Company  string
}

type pageData[R any] struct {
	Title             string
	Subtitle          string
	Path              string
	SearchPlaceholder string
	SearchTerm        string
	Nav               []pages.NavItem
	Error             string
	RetryURL          string
	List              listview.View[R]
}

func (s *Server) postsHandler() http.HandlerFunc {
	return servePage(s, pages.Posts, s.opts.PostsLimit, func(post jph.Post, _ int) PostCard {
		return PostCard{ID: post.ID, UserID: post.UserID, Title: post.Title, Body: post.Body}
	})
}

func (s *Server) usersHandler() http.HandlerFunc {
	return servePage(s, pages.Users, s.opts.UsersLimit, func(user jph.User, _ int) UserCard {
		return UserCard{
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Phone:    user.Phone,
			Website:  user.Website,
			Company:  user.Company.Name,
		}
	})
}

// servePage runs one controller lifecycle per request. The controller is
// closed as soon as the request context ends so a late upstream response is
// dropped.
func servePage[T, R any](s *Server, page pages.Page[T], limit int, render func(T, int) R) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ctrl := page.NewController(s.client, limit, jph.NewZapLogger(s.logger))
		stop := context.AfterFunc(ctx, ctrl.Close)

		defer func() {
			stop()
			ctrl.Close()
		}()

		snap, err := ctrl.Load(ctx)
		if errors.Is(err, fetchstate.ErrClosed) || ctx.Err() != nil {
			s.logger.Debug("request ended before fetch completed", zap.String("page", page.Name))

			return
		}

		snap = ctrl.SetSearchTerm(r.URL.Query().Get("q"))

		data := pageData[R]{
			Title:             page.Title,
			Subtitle:          page.Subtitle,
			Path:              page.Path,
			SearchPlaceholder: page.SearchPlaceholder,
			SearchTerm:        snap.Filter.SearchTerm,
			Nav:               pages.Navigation(page.Path),
			RetryURL:          r.URL.RequestURI(),
			List: listview.Build(listview.Props[T, R]{
				Items:        snap.Filter.Visible,
				RenderItem:   render,
				KeyExtractor: page.Key,
				IsLoading:    snap.Loading(),
				EmptyMessage: page.EmptyMessage,
			}),
		}

		status := http.StatusOK

		if snap.Failed() {
			data.Error = snap.State.ErrorMessage
			status = http.StatusBadGateway
		}

		s.render(w, page.Name, status, data)
	}
}

func (s *Server) render(w http.ResponseWriter, name string, status int, data any) {
	var buf bytes.Buffer

	err := s.templates[name].ExecuteTemplate(&buf, "layout", data)
	if err != nil {
		s.logger.Error("rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
