// Package catalog loads the product menu from YAML.
//
// A catalog lists products with their image and one price per size:
//
//	currency: "₱"
//	items:
//	  - name: Latte
//	    image: images/latte.jpg
//	    variants:
//	      - {size: M, price: 120}
//	      - {size: L, price: 140}
//
// Parse validates product names and prices with the storefront rules and
// rejects duplicate names or sizes. Default returns the embedded menu.
// Find resolves a name and size into a cart.Product ready to be added.
package catalog
