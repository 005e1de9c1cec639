// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder is one record of the `bw list folders` JSON output. Folder names
// are flat strings; nesting is encoded with slashes ("A/B/C").
type Folder struct {
	// ID is the folder identifier. The pseudo-folder "No Folder" is exported
	// with a null identifier and maps to the destination root group.
	ID *string `json:"id"`

	// Name is the full slash-delimited display name.
	Name string `json:"name"`
}
