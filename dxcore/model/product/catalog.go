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

package product

import (
	"fmt"

	"dirpx.dev/dxsolid/dxcore/errors"
	"dirpx.dev/dxsolid/dxcore/model"
	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// LoadCatalog decodes a YAML sequence of products.
//
// The document looks like:
//
//	# products.yaml
//	- name: apple
//	  color: green
//	  size: small
//	- name: house
//	  color: red
//	  size: yuge
//
// Entries are decoded and validated one by one so that every invalid entry
// is reported, not just the first. A null entry is invalid because it
// carries no name. An empty document yields an empty catalog.
func LoadCatalog(data []byte) ([]Product, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, &errors.UnmarshalError{Type: "Catalog", Data: data, Reason: err.Error()}
	}

	products := make([]Product, len(nodes))
	c := rxmerr.NewCollector()
	for i := range nodes {
		if err := nodes[i].Decode(&products[i]); err != nil {
			c.Append(fmt.Errorf("catalog[%d]: %w", i, err))
			continue
		}
		// Null nodes never reach UnmarshalYAML and decode to the zero Product.
		if err := products[i].Validate(); err != nil {
			c.Append(fmt.Errorf("catalog[%d]: %w", i, err))
		}
	}
	if err := c.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// DefaultCatalog returns the apple, tree and house products used by the
// demonstration.
func DefaultCatalog() []Product {
	return []Product{
		*model.MustValidate(&Product{name: "apple", color: Green, size: Small}),
		*model.MustValidate(&Product{name: "tree", color: Green, size: Large}),
		*model.MustValidate(&Product{name: "house", color: Red, size: Yuge}),
	}
}
