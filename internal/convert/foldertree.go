// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package convert

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/MKhiriev/bitwarden2keepass/internal/logger"
	"github.com/MKhiriev/bitwarden2keepass/internal/store"
	"github.com/MKhiriev/bitwarden2keepass/models"
)

// slashRuns strips leading and trailing slash runs off a folder name before
// it is split into path segments. The pattern matches the upstream folder
// name handling of the source application.
var slashRuns = regexp.MustCompile(`^/+|/+$`)

// NodeID tags a folder node as either carrying a real source folder
// identifier or being a synthetic intermediate created only to complete the
// hierarchy (e.g. "A" and "A/B" when the source defines only "A/B/C").
// The tagged form keeps synthetic nodes distinct from the root, whose
// source identifier is null.
type NodeID struct {
	value string
	real  bool
}

// RealID returns a NodeID carrying the source folder identifier id.
func RealID(id string) NodeID {
	return NodeID{value: id, real: true}
}

// SyntheticID returns the NodeID of an intermediate node without a source
// identifier.
func SyntheticID() NodeID {
	return NodeID{}
}

// Real returns the source identifier and true for real nodes, or ("",
// false) for synthetic ones.
func (id NodeID) Real() (string, bool) {
	return id.value, id.real
}

// FolderNode is one node of the reconstructed folder hierarchy. Children
// are unique per parent by segment name (case-sensitive) and keep insertion
// order, which is ascending by name because the flat folder list is sorted
// before insertion.
type FolderNode struct {
	// ID tags the node as real or synthetic. Ignored on the root.
	ID NodeID

	// Name is the single path segment displayed for this node, empty on
	// the root.
	Name string

	// Parent is a non-owning back-reference, nil on the root.
	Parent *FolderNode

	// Group is the destination group handle, assigned on materialization.
	Group models.GroupID

	children map[string]*FolderNode
	order    []string
}

func newFolderNode(id NodeID, name string, parent *FolderNode) *FolderNode {
	return &FolderNode{
		ID:       id,
		Name:     name,
		Parent:   parent,
		children: make(map[string]*FolderNode),
	}
}

// Children returns the child nodes in insertion order.
func (n *FolderNode) Children() []*FolderNode {
	children := make([]*FolderNode, 0, len(n.order))
	for _, name := range n.order {
		children = append(children, n.children[name])
	}

	return children
}

// insert walks path from n, creating synthetic intermediates for missing
// segments, and tags the final segment's node with id. A node first created
// synthetically is upgraded when its real definition arrives later.
func (n *FolderNode) insert(path []string, id NodeID) {
	node := n
	for i, segment := range path {
		child, exists := node.children[segment]
		if !exists {
			childID := SyntheticID()
			if i == len(path)-1 {
				childID = id
			}
			child = newFolderNode(childID, segment, node)
			node.children[segment] = child
			node.order = append(node.order, segment)
		} else if i == len(path)-1 {
			if _, isReal := child.ID.Real(); !isReal {
				child.ID = id
			}
		}
		node = child
	}
}

// FolderIndex maps source folder identifiers to destination group handles.
// The empty key holds the root group for items without a folder. Built once
// per run and read-only afterwards.
type FolderIndex map[string]models.GroupID

// BuildFolderTree reconstructs the folder hierarchy from the flat,
// slash-delimited folder list.
//
// The list is sorted by full display name first, so every parent path is
// inserted before any of its descendants. Folders with a null identifier
// (the source's "No Folder" pseudo-entry) and names reducing to an empty
// path (e.g. consisting only of slashes) are skipped.
func BuildFolderTree(folders []models.Folder) *FolderNode {
	sorted := make([]models.Folder, len(folders))
	copy(sorted, folders)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	root := newFolderNode(SyntheticID(), "", nil)

	for _, folder := range sorted {
		if folder.ID == nil {
			continue
		}

		trimmed := slashRuns.ReplaceAllString(folder.Name, "")
		if trimmed == "" {
			continue
		}

		root.insert(strings.Split(trimmed, "/"), RealID(*folder.ID))
	}

	return root
}

// MaterializeGroups creates a destination group for every node of the tree
// and returns the folder-identifier lookup.
//
// The traversal is breadth-first, so a parent's group always exists before
// any child group is created under it. Synthetic nodes get groups (the
// hierarchy must be complete) but no index record, since no source item can
// reference them.
func MaterializeGroups(ctx context.Context, st store.Store, root *FolderNode, log *logger.Logger) (FolderIndex, error) {
	rootGroup, err := st.RootGroup(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving root group: %w", err)
	}

	root.Group = rootGroup
	index := FolderIndex{"": rootGroup}

	queue := []*FolderNode{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, child := range node.Children() {
			group, err := st.AddGroup(ctx, node.Group, child.Name)
			if err != nil {
				return nil, fmt.Errorf("creating group %q: %w", child.Name, err)
			}

			child.Group = group
			if id, isReal := child.ID.Real(); isReal {
				index[id] = group
			}

			queue = append(queue, child)
		}
	}

	log.Debug().Int("groups", len(index)).Msg("folder hierarchy materialized")

	return index, nil
}
