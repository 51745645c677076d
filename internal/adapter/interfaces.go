// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the kundelik client
// and the remote health-diary API.
//
// [AuthRequestBuilder] attaches the bearer credential of the current session
// to outgoing requests. [ServerAdapter] is the remote contract expressed as
// Go methods; the package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// HTTP status codes are mapped to the sentinel errors of errors.go by
// mapHTTPError, and every failure to obtain a response wraps [ErrTransport],
// so callers use [errors.Is] for classification.
package adapter

import (
	"context"

	"github.com/MKhiriev/kundelik/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// SessionReader exposes the current session to the request builder.
// store.SessionStore satisfies it.
type SessionReader interface {
	Current() models.Session
}

// ServerAdapter is the remote health-diary contract. Every method except
// Register and Login carries the bearer token of the current session when
// one exists. Mutations are never retried automatically.
type ServerAdapter interface {
	// Register creates an account and returns the session it establishes.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login exchanges credentials for a session.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// FetchWater returns the water log of the current period.
	FetchWater(ctx context.Context) (models.WaterResponse, error)
	// AddWater appends one drink and returns the new running total.
	AddWater(ctx context.Context, req models.AddWaterRequest) (models.AddWaterResponse, error)
	// ResetWater clears the water log server-side.
	ResetWater(ctx context.Context) error

	// FetchSleep returns the finished sessions and the open one, if any.
	FetchSleep(ctx context.Context) (models.SleepResponse, error)
	// StartSleep opens a sleep session.
	StartSleep(ctx context.Context) (models.StartSleepResponse, error)
	// EndSleep closes the open sleep session.
	EndSleep(ctx context.Context) error
	// ResetSleep clears the sleep history server-side.
	ResetSleep(ctx context.Context) error

	// FetchNutrition returns the meal slots of the day.
	FetchNutrition(ctx context.Context) (models.NutritionResponse, error)
	// UpdateMeal changes the calories and/or the time of one meal.
	UpdateMeal(ctx context.Context, req models.UpdateMealRequest) error
	// ResetNutrition clears the meals server-side.
	ResetNutrition(ctx context.Context) error

	// FetchProgress returns the weight goal, its history and measurements.
	FetchProgress(ctx context.Context) (models.ProgressResponse, error)
	// UpdateProgress changes the given fields and optionally records a
	// history entry.
	UpdateProgress(ctx context.Context, req models.UpdateProgressRequest) error
	// ResetProgress clears the progress record server-side.
	ResetProgress(ctx context.Context) error
}
