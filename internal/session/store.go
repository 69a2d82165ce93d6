// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the two browser cookies that hold a dashboard
// session: "token" (the opaque bearer credential) and "userName" (the
// URL-encoded display name). No other package writes these cookie names.
package session

import (
	"errors"
	"net/http"
	"net/url"
)

// Cookie names of the session pair.
const (
	TokenCookieName    = "token"
	UserNameCookieName = "userName"
)

// CookieMaxAge is the lifetime of both session cookies (7 days).
const CookieMaxAge = 7 * 24 * 60 * 60

// ErrEmptyToken is returned by Write when asked to persist an empty token.
var ErrEmptyToken = errors.New("session token is empty")

// Pair is the raw content of the session cookies.
type Pair struct {
	Token       string
	DisplayName string
}

// Store reads and writes the session cookie pair.
type Store struct {
	secure bool
}

// NewStore returns a Store. secure sets the Secure cookie attribute and
// should be true only in production.
func NewStore(secure bool) *Store {
	return &Store{secure: secure}
}

// Write sets both session cookies on w in one call. Nothing is written when
// token is empty.
func (s *Store) Write(w http.ResponseWriter, token, displayName string) error {
	if token == "" {
		return ErrEmptyToken
	}

	http.SetCookie(w, s.cookie(TokenCookieName, token, CookieMaxAge))
	http.SetCookie(w, s.cookie(UserNameCookieName, url.QueryEscape(displayName), CookieMaxAge))

	return nil
}

// Clear expires both session cookies. It is safe to call when they are absent.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie(TokenCookieName, "", -1))
	http.SetCookie(w, s.cookie(UserNameCookieName, "", -1))
}

// Read returns the session pair carried by r. A request with only one of the
// two cookies, or with an empty token, has no session.
func (s *Store) Read(r *http.Request) (Pair, bool) {
	tokenCookie, err := r.Cookie(TokenCookieName)
	if err != nil || tokenCookie.Value == "" {
		return Pair{}, false
	}

	nameCookie, err := r.Cookie(UserNameCookieName)
	if err != nil {
		return Pair{}, false
	}

	name, err := url.QueryUnescape(nameCookie.Value)
	if err != nil {
		name = nameCookie.Value
	}

	return Pair{Token: tokenCookie.Value, DisplayName: name}, true
}

// Token returns the bearer token of r's session, if any.
func (s *Store) Token(r *http.Request) (string, bool) {
	pair, ok := s.Read(r)
	if !ok {
		return "", false
	}
	return pair.Token, true
}

// Partial reports whether r carries exactly one cookie of the pair. Such a
// session is corrupted and must be cleared.
func (s *Store) Partial(r *http.Request) bool {
	_, tokenErr := r.Cookie(TokenCookieName)
	_, nameErr := r.Cookie(UserNameCookieName)
	return (tokenErr == nil) != (nameErr == nil)
}

func (s *Store) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secure,
		HttpOnly: name == TokenCookieName,
		SameSite: http.SameSiteLaxMode,
	}
}
