// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync/atomic"

// DomainID identifies a local sync root.
type DomainID string

// Domain is a named local sync root bound to one remote account.
type Domain struct {
	// ID is the domain identifier; it equals the account's DomainID.
	ID DomainID `json:"id"`

	// DisplayName is shown to the user.
	DisplayName string `json:"display_name"`

	// AccountID is the remote account the domain mirrors.
	AccountID string `json:"account_id"`
}

// Account is a remote account as listed by the server.
type Account struct {
	// ID is the account identifier.
	ID string `json:"account_id"`

	// DisplayName is used for the domain created for this account.
	DisplayName string `json:"display_name"`

	// DomainID is the local domain this account is materialized into.
	DomainID DomainID `json:"domain_id"`
}

// Progress is a live progress-reporting handle attached to a domain that is
// present both locally and remotely. Counters are safe for concurrent use.
type Progress struct {
	total     atomic.Int64
	completed atomic.Int64
}

// Add grows the amount of pending work by n units.
func (p *Progress) Add(n int64) {
	p.total.Add(n)
}

// Done marks n units of work as completed.
func (p *Progress) Done(n int64) {
	p.completed.Add(n)
}

// Snapshot returns the completed and total counters.
func (p *Progress) Snapshot() (completed, total int64) {
	return p.completed.Load(), p.total.Load()
}

// DomainState is one registry entry: a live domain and its progress handle.
type DomainState struct {
	Domain   Domain
	Account  Account
	Progress *Progress
}
