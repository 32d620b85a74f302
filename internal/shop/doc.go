// Package shop wires the home screen's behavior: paging products into the
// flyout slot pool, committing taps to the cart and starting the flyout once
// the tapped card has been measured.
package shop
