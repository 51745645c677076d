// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/kundelik/internal/utils"
)

// AuthRequestBuilder creates requests carrying the bearer credential of the
// current session. It holds no state of its own and never interprets the
// response.
type AuthRequestBuilder struct {
	client  *utils.HTTPClient
	session SessionReader
}

// NewAuthRequestBuilder binds client to the session source.
func NewAuthRequestBuilder(client *utils.HTTPClient, session SessionReader) *AuthRequestBuilder {
	return &AuthRequestBuilder{client: client, session: session}
}

// WithAuth sets "Authorization: Bearer <token>" on req when the session is
// authenticated and leaves req untouched otherwise.
func (b *AuthRequestBuilder) WithAuth(req *resty.Request) *resty.Request {
	if s := b.session.Current(); s.IsAuthenticated() {
		req.SetHeader("Authorization", "Bearer "+s.Token)
	}
	return req
}

// R returns a new request bound to ctx and passed through [WithAuth].
func (b *AuthRequestBuilder) R(ctx context.Context) *resty.Request {
	return b.WithAuth(b.client.R().SetContext(ctx))
}
