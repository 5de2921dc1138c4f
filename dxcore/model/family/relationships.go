/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package family illustrates the dependency inversion principle.
//
// Relationships is the low-level store of directed relations between
// people. Research is the high-level consumer. Research depends only on the
// RelationshipBrowser abstraction, never on how Relationships lays out its
// data, so the store can change representation without touching Research.
package family

import (
	"fmt"

	"dirpx.dev/dxsolid/dxcore/model"
)

// Relation is one directed edge: From is the Kind of To.
type Relation struct {
	From Person       `json:"from" yaml:"from"`
	Kind RelationKind `json:"kind" yaml:"kind"`
	To   Person       `json:"to" yaml:"to"`
}

// String renders the relation as "John is parent of Chris".
func (r Relation) String() string {
	return r.From.Name + " is " + r.Kind.String() + " of " + r.To.Name
}

// RelationshipBrowser is the query surface high-level code depends on.
type RelationshipBrowser interface {
	// FindAllChildrenOf returns the children of the person with the given
	// name, in the order they were registered.
	FindAllChildrenOf(name string) []Person
}

// Relationships stores relations in registration order.
//
// The zero value is an empty store ready to use. Relationships is not safe
// for concurrent mutation.
type Relationships struct {
	relations []Relation
}

// AddParentAndChild records that parent is a parent of child.
//
// Two relations are stored, one in each direction: {parent, Parent, child}
// followed by {child, Child, parent}. Both people must have a name.
func (r *Relationships) AddParentAndChild(parent, child Person) error {
	if err := model.ValidateAll([]*Person{&parent, &child}); err != nil {
		return fmt.Errorf("add parent and child: %w", err)
	}
	r.relations = append(r.relations,
		Relation{From: parent, Kind: Parent, To: child},
		Relation{From: child, Kind: Parent.Inverse(), To: parent},
	)
	return nil
}

// FindAllChildrenOf implements RelationshipBrowser.
func (r *Relationships) FindAllChildrenOf(name string) []Person {
	var children []Person
	for _, rel := range r.relations {
		if rel.From.Name == name && rel.Kind == Parent {
			children = append(children, rel.To)
		}
	}
	return children
}

// Len returns the number of stored relations.
func (r *Relationships) Len() int {
	return len(r.relations)
}

var _ RelationshipBrowser = (*Relationships)(nil)
