// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/utils"
)

const requestIDHeader = "X-Request-ID"

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := s.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func (s *Server) withInjectedFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.Method + " " + r.URL.Path

		s.mu.Lock()
		s.calls[route]++
		var status int
		if queued := s.failures[route]; len(queued) > 0 {
			status, s.failures[route] = queued[0], queued[1:]
		}
		s.mu.Unlock()

		if status != 0 {
			utils.WriteError(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth rejects requests without a valid bearer token with 401, like the
// real API, and stores the user id in the request context.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(raw, s.signKey, tokenIssuer)
		if err != nil {
			log.Err(err).Msg("token rejected")
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		_, known := s.accounts[token.UserID]
		s.mu.Unlock()
		if !known {
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), token.UserID)))
	})
}

func newToken(userID int64, signKey string) (string, error) {
	token, err := utils.GenerateJWTToken(tokenIssuer, userID, tokenTTL, signKey)
	if err != nil {
		return "", err
	}
	return token.SignedString, nil
}
