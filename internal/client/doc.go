// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the client process: the SQLite snapshot, the zone and
// topic caches behind the sync coordinator, the domain registry, the signal
// listener and the terminal observer.
package client
