// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry keeps local sync roots ("domains") in lockstep with the
// remote accounts.
//
// Any change signal (a peer process editing the domains directory, or the
// server announcing an account change) requests a reconciliation. Signals
// are coalesced by a workers.Debouncer, so bursts cost one pass.
package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-share-cache/internal/logger"
	"github.com/MKhiriev/go-share-cache/internal/workers"
	"github.com/MKhiriev/go-share-cache/models"
)

// Registry reconciles domains against accounts.
type Registry struct {
	domains  DomainManager
	accounts AccountSource

	debouncer *workers.Debouncer

	mu     sync.RWMutex
	states map[models.DomainID]models.DomainState

	logger *logger.Logger
}

// NewRegistry creates a Registry. debounce is the coalescing window for
// Signal; zero uses workers.DefaultDebounceInterval.
func NewRegistry(domains DomainManager, accounts AccountSource, debounce time.Duration, log *logger.Logger) *Registry {
	r := &Registry{
		domains:  domains,
		accounts: accounts,
		states:   make(map[models.DomainID]models.DomainState),
		logger:   log.WithComponent("registry"),
	}
	r.debouncer = workers.NewDebouncer(debounce, func(ctx context.Context) {
		if err := r.Reconcile(ctx); err != nil {
			r.logger.Err(err).Msg("reconciliation failed")
		}
	})

	return r
}

// Signal requests a reconciliation. Bursts are coalesced.
func (r *Registry) Signal() {
	r.debouncer.Signal()
}

// Stop cancels a pending reconciliation and waits for a running one.
func (r *Registry) Stop() {
	r.debouncer.Stop()
}

// Reconcile fetches domains and accounts and brings them in line:
//   - a domain without an account is removed;
//   - an account without a domain gets one;
//   - a domain with an account is kept and carries a progress handle.
//
// Domains that already match their account are left untouched.
func (r *Registry) Reconcile(ctx context.Context) error {
	domains, err := r.domains.Domains(ctx)
	if err != nil {
		return fmt.Errorf("list domains: %w", err)
	}
	accounts, err := r.accounts.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	byDomain := make(map[models.DomainID]models.Account, len(accounts))
	for _, acc := range accounts {
		if acc.DomainID == "" {
			continue
		}
		byDomain[acc.DomainID] = acc
	}

	var errs []error
	live := make(map[models.DomainID]models.Domain, len(domains))

	for _, domain := range domains {
		if _, ok := byDomain[domain.ID]; !ok {
			if err := r.domains.RemoveDomain(ctx, domain.ID); err != nil {
				errs = append(errs, fmt.Errorf("remove domain %s: %w", domain.ID, err))
				continue
			}
			r.logger.Info().Str("domain_id", string(domain.ID)).Msg("domain removed, account is gone")
			continue
		}
		live[domain.ID] = domain
	}

	for id, acc := range byDomain {
		want := domainFor(acc)
		if have, ok := live[id]; ok && have == want {
			continue
		}
		if err := r.domains.AddDomain(ctx, want); err != nil {
			errs = append(errs, fmt.Errorf("add domain %s: %w", id, err))
			continue
		}
		r.logger.Info().Str("domain_id", string(id)).Msg("domain added for account")
		live[id] = want
	}

	r.mu.Lock()
	next := make(map[models.DomainID]models.DomainState, len(live))
	for id, domain := range live {
		progress := &models.Progress{}
		if prev, ok := r.states[id]; ok && prev.Progress != nil {
			progress = prev.Progress
		}
		next[id] = models.DomainState{Domain: domain, Account: byDomain[id], Progress: progress}
	}
	r.states = next
	r.mu.Unlock()

	return errors.Join(errs...)
}

// Domains returns the live domains sorted by display name.
func (r *Registry) Domains() []models.DomainState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.DomainState, 0, len(r.states))
	for _, state := range r.states {
		out = append(out, state)
	}
	slices.SortFunc(out, func(a, b models.DomainState) int {
		if a.Domain.DisplayName != b.Domain.DisplayName {
			if a.Domain.DisplayName < b.Domain.DisplayName {
				return -1
			}
			return 1
		}
		if a.Domain.ID < b.Domain.ID {
			return -1
		}
		if a.Domain.ID > b.Domain.ID {
			return 1
		}
		return 0
	})

	return out
}

// Progress returns the progress handle of a live domain.
func (r *Registry) Progress(id models.DomainID) (*models.Progress, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[id]
	return state.Progress, ok
}

func domainFor(acc models.Account) models.Domain {
	name := acc.DisplayName
	if name == "" {
		name = acc.ID
	}
	return models.Domain{ID: acc.DomainID, DisplayName: name, AccountID: acc.ID}
}
