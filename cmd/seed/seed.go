package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	apperrors "todogql/internal/errors"
	"todogql/internal/model"
	"todogql/internal/service"
)

// SeedUser is one entry of the seed document.
type SeedUser struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     string     `json:"role"`
	Todos    []SeedTodo `json:"todos"`
}

// SeedTodo is an initial to-do of a SeedUser.
type SeedTodo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// loadSeed reads a JSON array of users from an http(s) URL or a file path.
func loadSeed(ctx context.Context, source string) ([]SeedUser, error) {
	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch seed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open seed file: %w", err)
		}
		body = f
	}
	defer body.Close()

	var users []SeedUser
	if err := json.NewDecoder(body).Decode(&users); err != nil {
		return nil, fmt.Errorf("parse seed JSON: %w", err)
	}
	return users, nil
}

// seedUsers registers every user. Emails that already exist are skipped.
func seedUsers(ctx context.Context, svc service.AuthService, users []SeedUser) (created int, skipped int, err error) {
	for _, u := range users {
		in := service.RegisterInput{
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
			Role:     model.Role(u.Role),
		}
		for _, t := range u.Todos {
			in.Todos = append(in.Todos, service.InitialTodo{Title: t.Title, Description: t.Description})
		}

		if _, err := svc.Register(ctx, in); err != nil {
			if apperrors.Is(err, apperrors.ErrConflict) {
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("register %s: %w", u.Email, err)
		}
		created++
	}
	return created, skipped, nil
}
