package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-booking-client/internal/data/entity"
	"movie-booking-client/internal/dto/request"
	"movie-booking-client/pkg/apiclient"
	"movie-booking-client/pkg/database"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeToken string

func (f fakeToken) Token() string { return string(f) }

func envelope(w http.ResponseWriter, code int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"success": success, "message": message, "data": data})
}

func newBackend(t *testing.T, routes func(r chi.Router)) *Repository {
	t.Helper()
	r := chi.NewRouter()
	r.Route("/api", routes)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	client := apiclient.NewClient(server.URL+"/api", server.Client(), fakeToken("tok"), zap.NewNop())
	return NewRepository(client, database.NewMemoryStorage(), zap.NewNop())
}

func TestAuthRepository_Login(t *testing.T) {
	var body map[string]string
	repo := newBackend(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &body)
			envelope(w, http.StatusOK, true, "Login successful", map[string]any{
				"token": "abc", "type": "Bearer", "id": 7, "name": "Ana", "email": "ana@mail.com",
				"roles": []string{"USER", "ADMIN"},
			})
		})
	})

	auth, err := repo.Auth.Login(context.Background(), &request.LoginRequest{Email: "ana@mail.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "abc", auth.Token)
	assert.True(t, auth.ToUser().IsAdmin())
	assert.Equal(t, "ana@mail.com", body["email"])
	assert.Equal(t, "secret", body["password"])
}

func TestAuthRepository_LoginRejected(t *testing.T) {
	repo := newBackend(t, func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			envelope(w, http.StatusUnauthorized, false, "Invalid email or password", nil)
		})
	})

	_, err := repo.Auth.Login(context.Background(), &request.LoginRequest{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", apiclient.Message(err, "Login failed"))
}

func TestMovieRepository_ListAndPage(t *testing.T) {
	var queries []string
	repo := newBackend(t, func(r chi.Router) {
		r.Get("/movies", func(w http.ResponseWriter, r *http.Request) {
			queries = append(queries, r.URL.RawQuery)
			if r.URL.Query().Get("paginated") == "true" {
				envelope(w, http.StatusOK, true, "", map[string]any{
					"content":       []map[string]any{{"id": 3, "title": "C"}},
					"totalElements": 3, "totalPages": 3, "number": 2, "size": 1,
					"first": false, "last": true,
				})
				return
			}
			envelope(w, http.StatusOK, true, "", []map[string]any{{"id": 1, "title": "A"}, {"id": 2, "title": "B"}})
		})
	})

	movies, err := repo.Movie.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, 2)

	page, err := repo.Movie.FindPage(context.Background(), request.MovieListQuery{Page: 2, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.True(t, page.Last)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "C", page.Content[0].Title)

	require.Len(t, queries, 2)
	assert.Contains(t, queries[0], "paginated=false")
	assert.Contains(t, queries[1], "paginated=true")
	assert.Contains(t, queries[1], "page=2")
}

func TestMovieRepository_CRUD(t *testing.T) {
	var methods []string
	repo := newBackend(t, func(r chi.Router) {
		r.Post("/movies", func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, "POST")
			envelope(w, http.StatusOK, true, "Movie created", map[string]any{"id": 10, "title": "New"})
		})
		r.Put("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, "PUT "+chi.URLParam(r, "id"))
			envelope(w, http.StatusOK, true, "Movie updated", map[string]any{"id": 10, "title": "Edited"})
		})
		r.Delete("/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
			methods = append(methods, "DELETE "+chi.URLParam(r, "id"))
			envelope(w, http.StatusOK, true, "Movie deleted", nil)
		})
	})

	ctx := context.Background()
	req := &request.MovieRequest{Title: "New", Description: "d", Genre: "g", PosterURL: "http://x/p.jpg"}

	created, err := repo.Movie.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)

	updated, err := repo.Movie.Update(ctx, 10, req)
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)

	require.NoError(t, repo.Movie.Delete(ctx, 10))
	assert.Equal(t, []string{"POST", "PUT 10", "DELETE 10"}, methods)
}

func TestShowtimeRepository_ByMovieAndDate(t *testing.T) {
	var gotDate string
	repo := newBackend(t, func(r chi.Router) {
		r.Get("/showtimes/movie/{id}/date", func(w http.ResponseWriter, r *http.Request) {
			gotDate = r.URL.Query().Get("date")
			envelope(w, http.StatusOK, true, "", []map[string]any{
				{"id": 4, "movieId": 1, "startTime": "2030-05-01T19:00:00", "endTime": "2030-05-01T21:00:00"},
			})
		})
	})

	date := time.Date(2030, 5, 1, 0, 0, 0, 0, time.Local)
	showtimes, err := repo.Showtime.FindByMovieIDAndDate(context.Background(), 1, date)

	require.NoError(t, err)
	require.Len(t, showtimes, 1)
	assert.Equal(t, "2030-05-01T00:00:00", gotDate)
	assert.Equal(t, 19, showtimes[0].StartTime.Hour())
}

func TestShowtimeRepository_CreateSendsLocalTimes(t *testing.T) {
	var body map[string]any
	repo := newBackend(t, func(r chi.Router) {
		r.Post("/showtimes", func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			json.Unmarshal(raw, &body)
			envelope(w, http.StatusOK, true, "", map[string]any{"id": 5})
		})
	})

	start := time.Date(2030, 1, 2, 18, 30, 0, 0, time.Local)
	_, err := repo.Showtime.Create(context.Background(), &request.ShowtimeRequest{
		MovieID: 1, StartTime: start, EndTime: start.Add(2 * time.Hour), TotalSeats: 40,
	})

	require.NoError(t, err)
	assert.Equal(t, "2030-01-02T18:30:00", body["startTime"])
	assert.Equal(t, "2030-01-02T20:30:00", body["endTime"])
	assert.Equal(t, float64(40), body["totalSeats"])
}

func TestSeatAndReservationRepository(t *testing.T) {
	var cancelled string
	repo := newBackend(t, func(r chi.Router) {
		r.Get("/seats/showtime/{id}", func(w http.ResponseWriter, r *http.Request) {
			envelope(w, http.StatusOK, true, "", []map[string]any{
				{"id": 1, "seatNumber": "A1", "isBooked": false},
				{"id": 2, "seatNumber": "A2", "isBooked": true},
			})
		})
		r.Get("/reservations/my-reservations", func(w http.ResponseWriter, r *http.Request) {
			envelope(w, http.StatusOK, true, "", []map[string]any{{"id": 9, "seatNumbers": []string{"A1"}}})
		})
		r.Put("/reservations/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
			cancelled = chi.URLParam(r, "id")
			envelope(w, http.StatusOK, true, "Reservation cancelled", map[string]any{"id": 9, "isCancelled": true})
		})
	})

	ctx := context.Background()
	seats, err := repo.Seat.FindByShowtimeID(ctx, 3)
	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.True(t, seats[1].IsBooked)

	mine, err := repo.Reservation.FindMine(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, []string{"A1"}, mine[0].SeatNumbers)

	res, err := repo.Reservation.Cancel(ctx, 9)
	require.NoError(t, err)
	assert.True(t, res.IsCancelled)
	assert.Equal(t, "9", cancelled)
}

func TestReportRepository_Forbidden(t *testing.T) {
	repo := newBackend(t, func(r chi.Router) {
		r.Get("/admin/reports", func(w http.ResponseWriter, r *http.Request) {
			envelope(w, http.StatusForbidden, false, "Access denied", nil)
		})
	})

	_, err := repo.Report.Generate(context.Background())

	var apiErr *apiclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ana@mail.com",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionRepository_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := database.NewMemoryStorage()
	repo := NewSessionRepository(store, zap.NewNop())

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	token := signedToken(t, time.Now().Add(time.Hour))
	user := &entity.User{ID: 1, Name: "Ana", Email: "ana@mail.com", Roles: []string{"USER"}}
	require.NoError(t, repo.Save(ctx, token, user))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, token, loaded.Token)
	assert.Equal(t, user, loaded.User)
	require.NotNil(t, loaded.ExpiresAt)

	require.NoError(t, repo.Clear(ctx))
	_, hasToken, _ := store.Get(ctx, entity.StorageKeyToken)
	_, hasUser, _ := store.Get(ctx, entity.StorageKeyUser)
	assert.False(t, hasToken)
	assert.False(t, hasUser)
}

func TestSessionRepository_OpaqueTokenAccepted(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(database.NewMemoryStorage(), zap.NewNop())

	require.NoError(t, repo.Save(ctx, "opaque-token", &entity.User{ID: 2}))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", loaded.Token)
	assert.Nil(t, loaded.ExpiresAt)
}

func TestSessionRepository_Corrupt(t *testing.T) {
	ctx := context.Background()

	t.Run("unparseable user", func(t *testing.T) {
		store := database.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, entity.StorageKeyToken, "tok"))
		require.NoError(t, store.Set(ctx, entity.StorageKeyUser, "{not json"))

		_, err := NewSessionRepository(store, zap.NewNop()).Load(ctx)
		assert.ErrorIs(t, err, ErrSessionCorrupt)
	})

	for name, raw := range map[string]string{"null user": "null", "empty user": "{}"} {
		t.Run(name, func(t *testing.T) {
			store := database.NewMemoryStorage()
			require.NoError(t, store.Set(ctx, entity.StorageKeyToken, "tok"))
			require.NoError(t, store.Set(ctx, entity.StorageKeyUser, raw))

			session, err := NewSessionRepository(store, zap.NewNop()).Load(ctx)
			assert.ErrorIs(t, err, ErrSessionCorrupt)
			assert.Nil(t, session)
		})
	}

	t.Run("token without user", func(t *testing.T) {
		store := database.NewMemoryStorage()
		require.NoError(t, store.Set(ctx, entity.StorageKeyToken, "tok"))

		_, err := NewSessionRepository(store, zap.NewNop()).Load(ctx)
		assert.ErrorIs(t, err, ErrSessionCorrupt)
	})

	t.Run("expired token", func(t *testing.T) {
		repo := NewSessionRepository(database.NewMemoryStorage(), zap.NewNop())
		require.NoError(t, repo.Save(ctx, signedToken(t, time.Now().Add(-time.Minute)), &entity.User{ID: 1}))

		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}
