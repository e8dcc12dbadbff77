// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Permission describes what the current participant may do with a cached
// entry. Topics receive it from the zone scope or from their share record;
// notes capture their topic's permission when they are first cached.
type Permission int

const (
	// PermissionUnknown is the zero value: no share record has been seen yet
	// for an entry that lives in the shared scope.
	PermissionUnknown Permission = iota

	// PermissionReadOnly allows reading the entry but not mutating it.
	PermissionReadOnly

	// PermissionReadWrite allows every local mutation.
	PermissionReadWrite
)

var permissionNames = map[Permission]string{
	PermissionUnknown:   "unknown",
	PermissionReadOnly:  "read_only",
	PermissionReadWrite: "read_write",
}

// String returns the wire name of the permission.
func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("permission(%d)", int(p))
}

// CanWrite reports whether local mutations are allowed.
func (p Permission) CanWrite() bool {
	return p == PermissionReadWrite
}

// MarshalText implements encoding.TextMarshaler so permissions travel as
// strings in JSON and in the SQL snapshot.
func (p Permission) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value decodes
// to PermissionUnknown.
func (p *Permission) UnmarshalText(text []byte) error {
	parsed, err := ParsePermission(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePermission converts a wire name back into a Permission.
func ParsePermission(s string) (Permission, error) {
	if s == "" {
		return PermissionUnknown, nil
	}
	for p, name := range permissionNames {
		if name == s {
			return p, nil
		}
	}
	return PermissionUnknown, fmt.Errorf("%w: %q", ErrUnknownPermission, s)
}
