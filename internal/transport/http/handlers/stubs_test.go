package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/service"
	"github.com/peepapp/chitter/internal/transport/http/middleware"
)

type stubUserDirectory struct {
	registerFn     func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	authCalls      int
}

func (s *stubUserDirectory) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	if s.registerFn == nil {
		return nil, errors.New("unexpected Register call")
	}
	return s.registerFn(ctx, input)
}

func (s *stubUserDirectory) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	s.authCalls++
	if s.authenticateFn == nil {
		return nil, errors.New("unexpected Authenticate call")
	}
	return s.authenticateFn(ctx, email, password)
}

type stubPeepStore struct {
	createFn  func(ctx context.Context, input service.CreatePeepInput) (int64, error)
	listFn    func(ctx context.Context) ([]domain.Peep, error)
	getFn     func(ctx context.Context, id int64) (*domain.Peep, error)
	repliesFn func(ctx context.Context, parentID int64) ([]domain.Peep, error)

	created []service.CreatePeepInput
}

func (s *stubPeepStore) Create(ctx context.Context, input service.CreatePeepInput) (int64, error) {
	s.created = append(s.created, input)
	if s.createFn == nil {
		return int64(len(s.created)), nil
	}
	return s.createFn(ctx, input)
}

func (s *stubPeepStore) ListWithAuthors(ctx context.Context) ([]domain.Peep, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s *stubPeepStore) GetByID(ctx context.Context, id int64) (*domain.Peep, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s *stubPeepStore) Replies(ctx context.Context, parentID int64) ([]domain.Peep, error) {
	if s.repliesFn == nil {
		return nil, nil
	}
	return s.repliesFn(ctx, parentID)
}

type tagCall struct {
	peepID  int64
	rawTags string
}

type stubTaggingService struct {
	calls      []tagCall
	taggedFn   func(ctx context.Context, peepID int64) ([]string, error)
	tagUsersFn func(ctx context.Context, peepID int64, rawTags string) error
}

func (s *stubTaggingService) TagUsers(ctx context.Context, peepID int64, rawTags string) error {
	s.calls = append(s.calls, tagCall{peepID: peepID, rawTags: rawTags})
	if s.tagUsersFn == nil {
		return nil
	}
	return s.tagUsersFn(ctx, peepID, rawTags)
}

func (s *stubTaggingService) TaggedUsernames(ctx context.Context, peepID int64) ([]string, error) {
	if s.taggedFn == nil {
		return nil, nil
	}
	return s.taggedFn(ctx, peepID)
}

type memSessionRepo struct {
	sessions map[string]int64
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]int64)}
}

func (r *memSessionRepo) Create(ctx context.Context, session *domain.Session) error {
	r.sessions[session.ID] = session.UserID
	return nil
}

func (r *memSessionRepo) GetUserID(ctx context.Context, id string) (int64, bool, error) {
	userID, ok := r.sessions[id]
	return userID, ok, nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type testApp struct {
	server   *httptest.Server
	client   *http.Client
	users    *stubUserDirectory
	peeps    *stubPeepStore
	tags     *stubTaggingService
	sessions *memSessionRepo
}

// setupTestApp wires stub services into the same routes main.go builds and
// serves them from an httptest server. The client does not follow
// redirects, so tests can assert on Location headers.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	if err := LoadTemplates("../../../../web/templates"); err != nil {
		t.Fatalf("loading templates: %v", err)
	}

	users := &stubUserDirectory{}
	peeps := &stubPeepStore{}
	tags := &stubTaggingService{}
	sessionRepo := newMemSessionRepo()
	sessions := middleware.NewSessionManager(sessionRepo)

	authHandler := NewAuthHandler(users, sessions)
	peepHandler := NewPeepHandler(peeps, tags, sessions)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", peepHandler.Home)
	mux.HandleFunc("GET /peeps", peepHandler.List)
	mux.Handle("GET /peeps/new", sessions.RequireLogin(http.HandlerFunc(peepHandler.NewForm)))
	mux.Handle("POST /peeps", sessions.RequireLogin(http.HandlerFunc(peepHandler.Create)))
	mux.Handle("GET /peeps/{id}", sessions.RequireLogin(http.HandlerFunc(peepHandler.Show)))
	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /logout", authHandler.Logout)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{
		server:   server,
		client:   client,
		users:    users,
		peeps:    peeps,
		tags:     tags,
		sessions: sessionRepo,
	}
}

// loginAs seeds a session row and returns the cookie carrying its token.
func (a *testApp) loginAs(userID int64) *http.Cookie {
	token := "test-session-token"
	a.sessions.sessions[token] = userID
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}
