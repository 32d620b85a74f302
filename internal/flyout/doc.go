package flyout

// Package flyout choreographs the add-to-cart transition: a clone of the
// tapped product shrinks in place, then flies to the cart icon while fading
// out. Animated values live in a pool of slots indexed by list position and
// are advanced by an external frame clock.
