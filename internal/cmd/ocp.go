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

package cmd

import (
	"fmt"
	"iter"
	"os"
	"slices"

	"dirpx.dev/dxsolid/dxcore/model"
	"dirpx.dev/dxsolid/dxcore/model/product"
	"dirpx.dev/dxsolid/dxcore/model/spec"
	"github.com/mitchellh/cli"
)

var _ cli.Command = (*OCPCommand)(nil)

// OCPCommand filters a product catalog with the closed ProductFilter and
// with the open specification-based filter.
type OCPCommand struct {
	*Command

	flagCatalog string
	flagFormat  string
}

func (c *OCPCommand) Synopsis() string {
	return "Filter products with fixed methods and with composable specifications"
}

func (c *OCPCommand) Help() string {
	return helpText(`
Usage: dxsolid ocp [options]

  Filters the built-in catalog (apple, tree, house) or a YAML catalog and
  prints the green products twice, once per filter, followed by the red and
  yuge products.

      $ dxsolid ocp -catalog products.yaml -format json

Options:

  -catalog=<path>   YAML list of products with name, color and size keys.
  -format=<format>  Output format for matched products: text, json or yaml.
                    Default: text.
`)
}

func (c *OCPCommand) Run(args []string) int {
	fs := c.FlagSet("ocp")
	fs.StringVar(&c.flagCatalog, "catalog", "", "")
	fs.StringVar(&c.flagFormat, "format", "text", "")
	if err := fs.Parse(args); err != nil {
		return c.fail(err)
	}

	switch c.flagFormat {
	case "text", "json", "yaml":
	default:
		return c.fail(fmt.Errorf("invalid output format: %s", c.flagFormat))
	}

	products, err := c.products()
	if err != nil {
		return c.fail(err)
	}

	var pf product.ProductFilter
	if err := c.print("Green products (old):", "is green", pf.FilterByColor(slices.Values(products), product.Green)); err != nil {
		return c.fail(err)
	}

	var bf spec.BetterFilter[product.Product]
	if err := c.print("Green products (new):", "is green", bf.Filter(slices.Values(products), product.ByColor(product.Green))); err != nil {
		return c.fail(err)
	}

	redAndYuge, err := spec.And[product.Product](product.ByColor(product.Red), product.BySize(product.Yuge))
	if err != nil {
		return c.fail(err)
	}
	if err := c.print("Red and yuge products (new):", "is red and yuge", bf.Filter(slices.Values(products), redAndYuge)); err != nil {
		return c.fail(err)
	}

	return CommandSuccess
}

func (c *OCPCommand) products() ([]product.Product, error) {
	if c.flagCatalog == "" {
		return product.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(c.flagCatalog)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	products, err := product.LoadCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", c.flagCatalog, err)
	}
	c.Logger.Debug("catalog loaded", "path", c.flagCatalog, "products", len(products))
	return products, nil
}

func (c *OCPCommand) print(title, what string, products iter.Seq[product.Product]) error {
	fmt.Fprintln(c.Out, title)
	for p := range products {
		switch c.flagFormat {
		case "json":
			data, err := model.ToJSON(&p)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Out, "%s\n", data)
		case "yaml":
			data, err := model.ToYAML(&p)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Out, "---\n%s", data)
		default:
			fmt.Fprintf(c.Out, "- %s %s.\n", p.Name(), what)
		}
	}
	return nil
}
