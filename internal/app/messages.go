// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-visible message constants of the kundelik
// client.
//
// The interface language is Kazakh. Every error a tracker or the auth flow
// can show maps to exactly one of the Msg* constants, so the wording stays
// the same across the terminal views.
package app

const (
	// MsgLoading is shown while a tracker is fetching its state.
	MsgLoading = "Жүктелуде..."

	// MsgNetworkFailure is shown when a request could not reach the server.
	MsgNetworkFailure = "Серверге қосылу мүмкін болмады. Қайталап көріңіз."

	// MsgUnauthorized is shown when the session is missing or was rejected.
	MsgUnauthorized = "Жүйеге қайта кіріңіз"

	// MsgInvalidInput is shown for client-side validation failures, e.g. a
	// non-numeric water amount or a zero weight.
	MsgInvalidInput = "Дұрыс емес мән енгізілді"

	// MsgAlreadyActive is shown when a sleep session is started twice.
	MsgAlreadyActive = "Ұйқы сессиясы басталып қойған"

	// MsgNoActiveSession is shown when there is no sleep session to end.
	MsgNoActiveSession = "Белсенді ұйқы сессиясы жоқ"

	// MsgServerFailure is shown when the server reported an error.
	MsgServerFailure = "Серверде қате пайда болды"

	// MsgStorageFailure is shown when the device-local store failed.
	MsgStorageFailure = "Деректерді сақтау мүмкін болмады"

	// MsgControllerClosed is shown when an operation targets a closed view.
	MsgControllerClosed = "Бет жабылды"

	// MsgUnknownError is the fallback for errors without a dedicated text.
	MsgUnknownError = "Белгісіз қате"
)

// Authentication form messages.
const (
	MsgLoginFailed        = "Кіру мүмкін болмады. Қайталап көріңіз."
	MsgRegisterFailed     = "Тіркелу мүмкін болмады. Қайталап көріңіз."
	MsgInvalidCredentials = "Email немесе құпия сөз қате"
	MsgPasswordsMismatch  = "Құпия сөздер сәйкес келмейді"
	MsgPasswordTooShort   = "Парольдің ұзындығы кемінде 6 таңба болуы керек"
	MsgInvalidEmail       = "Дұрыс емес email форматы"
	MsgRequiredFields     = "Барлық өрістерді толтырыңыз"
	MsgAccountExists      = "Бұл email тіркелген"
)
